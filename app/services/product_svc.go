package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/utils/apperr"
)

const (
	msgCategoryRequired   = "Select at least one category or request a new one."
	msgDiscountExceeds    = "Discount price cannot exceed base price."
	msgRelationshipFailed = "unable to update product relationships"
)

// ProductPayload is a full create submission. Shape validation runs in the
// handler via validator tags; cross-field invariants are checked here.
type ProductPayload struct {
	Name               string            `json:"name" validate:"required,min=2,max=255"`
	Slug               string            `json:"slug,omitempty"`
	ShortDescription   string            `json:"short_description,omitempty" validate:"max=500"`
	Description        string            `json:"description,omitempty"`
	Sku                string            `json:"sku,omitempty" validate:"max=100"`
	Price              decimal.Decimal   `json:"price" validate:"required"`
	DiscountPrice      *decimal.Decimal  `json:"discount_price,omitempty"`
	Stock              int               `json:"stock" validate:"gte=0"`
	Status             string            `json:"status,omitempty" validate:"omitempty,oneof=publish draft archived"`
	ProductType        string            `json:"product_type,omitempty" validate:"omitempty,oneof=simple variable"`
	Condition          string            `json:"condition,omitempty"`
	Packaging          string            `json:"packaging,omitempty"`
	ReturnPolicy       string            `json:"return_policy,omitempty"`
	MainImageID        string            `json:"main_image_id,omitempty"`
	CategoryIDs        []string          `json:"category_ids"`
	TagIDs             []string          `json:"tag_ids,omitempty"`
	BrandIDs           []string          `json:"brand_ids,omitempty"`
	CategoryRequestIDs []string          `json:"category_request_ids,omitempty"`
	ImageIDs           []string          `json:"image_ids,omitempty"`
	Variations         []VariationInput  `json:"variations,omitempty"`
}

// ProductUpdatePayload uses pointers throughout: a nil field was absent from
// the request and leaves the stored value (or link set) untouched.
type ProductUpdatePayload struct {
	Name               *string           `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Slug               *string           `json:"slug,omitempty"`
	ShortDescription   *string           `json:"short_description,omitempty" validate:"omitempty,max=500"`
	Description        *string           `json:"description,omitempty"`
	Sku                *string           `json:"sku,omitempty" validate:"omitempty,max=100"`
	Price              *decimal.Decimal  `json:"price,omitempty"`
	DiscountPrice      *decimal.Decimal  `json:"discount_price,omitempty"`
	Stock              *int              `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Status             *string           `json:"status,omitempty" validate:"omitempty,oneof=publish draft archived"`
	ProductType        *string           `json:"product_type,omitempty" validate:"omitempty,oneof=simple variable"`
	Condition          *string           `json:"condition,omitempty"`
	Packaging          *string           `json:"packaging,omitempty"`
	ReturnPolicy       *string           `json:"return_policy,omitempty"`
	MainImageID        *string           `json:"main_image_id,omitempty"`
	CategoryIDs        *[]string         `json:"category_ids,omitempty"`
	TagIDs             *[]string         `json:"tag_ids,omitempty"`
	BrandIDs           *[]string         `json:"brand_ids,omitempty"`
	CategoryRequestIDs *[]string         `json:"category_request_ids,omitempty"`
	ImageIDs           *[]string         `json:"image_ids,omitempty"`
	Variations         *[]VariationInput `json:"variations,omitempty"`
}

type ProductListResult struct {
	Items      []models.Product `json:"items"`
	Page       int              `json:"page"`
	Pages      int              `json:"pages"`
	TotalCount int64            `json:"total_count"`
}

// ProductService sequences a save into product row, link table, image and
// variation writes. The steps after the row write are best-effort: there is
// no transaction spanning them, and a mid-sequence failure leaves the row
// and earlier link changes committed (surfaced as a DependencyError).
type ProductService struct {
	productRepo    repositories.ProductRepositoryImpl
	categoryRepo   repositories.CategoryRepositoryImpl
	requestRepo    repositories.CategoryRequestRepositoryImpl
	relationRepo   repositories.ProductRelationRepositoryImpl
	imageRepo      repositories.ProductImageRepositoryImpl
	variationRepo  repositories.ProductVariationRepositoryImpl
	slugSvc        *SlugService
	skuSvc         *SKUService
	accessSvc      *AccessService
	reviewGateSvc  *ReviewGateService
	imageSvc       *ImageService
	variationSvc   *VariationService
	notifierSvc    *NotifierService
}

func NewProductService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	requestRepo repositories.CategoryRequestRepositoryImpl,
	relationRepo repositories.ProductRelationRepositoryImpl,
	imageRepo repositories.ProductImageRepositoryImpl,
	variationRepo repositories.ProductVariationRepositoryImpl,
	slugSvc *SlugService,
	skuSvc *SKUService,
	accessSvc *AccessService,
	reviewGateSvc *ReviewGateService,
	imageSvc *ImageService,
	variationSvc *VariationService,
	notifierSvc *NotifierService,
) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		requestRepo:   requestRepo,
		relationRepo:  relationRepo,
		imageRepo:     imageRepo,
		variationRepo: variationRepo,
		slugSvc:       slugSvc,
		skuSvc:        skuSvc,
		accessSvc:     accessSvc,
		reviewGateSvc: reviewGateSvc,
		imageSvc:      imageSvc,
		variationSvc:  variationSvc,
		notifierSvc:   notifierSvc,
	}
}

func isCatalogManager(user *models.User) bool {
	return user != nil && (user.IsAdmin() || user.IsVendor())
}

// pendingRequestIDs keeps only ids whose category request is still pending.
// Resolved requests are silently dropped; the reconciliation of links whose
// request was later approved or rejected is undefined upstream.
func (s *ProductService) pendingRequestIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	requests, err := s.requestRepo.GetPendingByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	pending := make([]string, 0, len(requests))
	for _, r := range requests {
		pending = append(pending, r.ID)
	}
	return pending, nil
}

func (s *ProductService) Create(ctx context.Context, user *models.User, payload *ProductPayload) (*models.Product, error) {
	if !isCatalogManager(user) {
		return nil, apperr.Authorization("you do not have permission to manage products")
	}

	if payload.DiscountPrice != nil && payload.DiscountPrice.GreaterThan(payload.Price) {
		return nil, apperr.Validation("invalid product payload", map[string]string{
			"discount_price": msgDiscountExceeds,
		})
	}

	pendingIDs, err := s.pendingRequestIDs(ctx, payload.CategoryRequestIDs)
	if err != nil {
		return nil, apperr.FromStore("category_requests", "unable to verify category requests", err)
	}
	if len(payload.CategoryIDs) == 0 && len(pendingIDs) == 0 {
		return nil, apperr.Validation("invalid product payload", map[string]string{
			"category_ids": msgCategoryRequired,
		})
	}

	var primaryCategory string
	if len(payload.CategoryIDs) > 0 {
		categories, err := s.categoryRepo.GetByIDs(ctx, payload.CategoryIDs)
		if err != nil {
			return nil, apperr.FromStore("categories", "unable to verify categories", err)
		}
		if len(categories) != len(dedup(payload.CategoryIDs)) {
			return nil, apperr.Validation("invalid product payload", map[string]string{
				"category_ids": "One or more selected categories do not exist.",
			})
		}
		primaryCategory = primarySlug(categories, payload.CategoryIDs)
	}

	status := payload.Status
	if status == "" {
		status = models.ProductStatusPublish
	}
	// Only pending-request links: the product cannot go live yet.
	if len(payload.CategoryIDs) == 0 {
		status = models.ProductStatusDraft
	}

	slug, err := s.slugSvc.UniqueSlug(ctx, firstNonEmpty(payload.Slug, payload.Name), "", s.productRepo.SlugExists)
	if err != nil {
		if errors.Is(err, ErrInvalidSlug) {
			return nil, apperr.Validation("invalid product payload", map[string]string{
				"name": "Name cannot be converted to a URL slug.",
			})
		}
		return nil, apperr.FromStore("products", "unable to resolve product slug", err)
	}

	sku := payload.Sku
	skuAuto := false
	if sku != "" {
		sku, err = s.skuSvc.EnsureUnique(ctx, sku, "")
	} else {
		sku, err = s.skuSvc.AutoGenerate(ctx, primaryCategory)
		skuAuto = true
	}
	if err != nil {
		return nil, apperr.FromStore("products", "unable to resolve product SKU", err)
	}

	requestedStatus := status
	var gateBrand *models.Brand
	if user.IsVendor() && status == models.ProductStatusPublish {
		gateBrand, err = s.reviewGateSvc.Check(ctx, user.ID)
		if err != nil {
			return nil, apperr.FromStore("brands", "unable to check review requirements", err)
		}
		if gateBrand != nil {
			status = models.ProductStatusDraft
		}
	}

	product := &models.Product{
		ID:               uuid.New().String(),
		CreatedBy:        user.ID,
		Name:             payload.Name,
		Slug:             slug,
		ShortDescription: payload.ShortDescription,
		Description:      payload.Description,
		Sku:              sku,
		SkuAutoGenerated: skuAuto,
		Price:            payload.Price,
		DiscountPrice:    payload.DiscountPrice,
		Stock:            payload.Stock,
		Status:           status,
		ProductType:      firstNonEmpty(payload.ProductType, models.ProductTypeSimple),
		Condition:        payload.Condition,
		Packaging:        payload.Packaging,
		ReturnPolicy:     payload.ReturnPolicy,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperr.FromStore("products", "unable to create product", err)
	}

	if err := s.writeRelations(ctx, product.ID, payload.CategoryIDs, payload.TagIDs, payload.BrandIDs, pendingIDs); err != nil {
		return nil, err
	}

	if err := s.attachImages(ctx, product, user.ID, payload.ImageIDs, payload.MainImageID); err != nil {
		return nil, err
	}

	if payload.Variations != nil {
		if err := s.variationSvc.Sync(ctx, product.ID, payload.Variations); err != nil {
			return nil, apperr.Dependency(msgRelationshipFailed, err)
		}
	}

	if gateBrand != nil {
		s.emitReviewNotification(ctx, user, product, gateBrand, requestedStatus)
	}

	return s.loadJoined(ctx, product.ID)
}

func (s *ProductService) Update(ctx context.Context, user *models.User, id string, payload *ProductUpdatePayload) (*models.Product, error) {
	if !isCatalogManager(user) {
		return nil, apperr.Authorization("you do not have permission to manage products")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.FromStore("products", "unable to load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}

	capability, err := s.accessSvc.ResolveProduct(ctx, user, product)
	if err != nil {
		return nil, apperr.FromStore("brands", "unable to resolve product access", err)
	}
	// Not-found rather than forbidden: a vendor with no relation to the
	// product must not learn it exists.
	if !capability.CanView {
		return nil, apperr.NotFound("product not found")
	}
	if !capability.CanEdit {
		return nil, apperr.Authorization("you do not have permission to edit this product")
	}

	price := product.Price
	if payload.Price != nil {
		price = *payload.Price
	}
	discount := product.DiscountPrice
	if payload.DiscountPrice != nil {
		discount = payload.DiscountPrice
	}
	if discount != nil && discount.GreaterThan(price) {
		return nil, apperr.Validation("invalid product payload", map[string]string{
			"discount_price": msgDiscountExceeds,
		})
	}

	// Resolve the category/pending-request state the save would end in.
	var categoryCount int
	if payload.CategoryIDs != nil {
		categoryCount = len(dedup(*payload.CategoryIDs))
	} else {
		stored, err := s.relationRepo.CategoryLinkCount(ctx, product.ID)
		if err != nil {
			return nil, apperr.FromStore("product_categories", "unable to count category links", err)
		}
		categoryCount = int(stored)
	}

	var pendingIDs []string
	pendingTouched := payload.CategoryRequestIDs != nil
	if pendingTouched {
		pendingIDs, err = s.pendingRequestIDs(ctx, *payload.CategoryRequestIDs)
		if err != nil {
			return nil, apperr.FromStore("category_requests", "unable to verify category requests", err)
		}
	} else {
		pendingIDs, err = s.relationRepo.CategoryRequestIDs(ctx, product.ID)
		if err != nil {
			return nil, apperr.FromStore("product_category_requests", "unable to load category request links", err)
		}
	}
	if categoryCount == 0 && len(pendingIDs) == 0 {
		return nil, apperr.Validation("invalid product payload", map[string]string{
			"category_ids": msgCategoryRequired,
		})
	}

	nameChanged := payload.Name != nil && *payload.Name != product.Name
	slugChanged := payload.Slug != nil && *payload.Slug != "" && *payload.Slug != product.Slug
	if nameChanged || slugChanged {
		base := product.Name
		if payload.Name != nil {
			base = *payload.Name
		}
		if slugChanged {
			base = *payload.Slug
		}
		slug, err := s.slugSvc.UniqueSlug(ctx, base, product.ID, s.productRepo.SlugExists)
		if err != nil {
			if errors.Is(err, ErrInvalidSlug) {
				return nil, apperr.Validation("invalid product payload", map[string]string{
					"name": "Name cannot be converted to a URL slug.",
				})
			}
			return nil, apperr.FromStore("products", "unable to resolve product slug", err)
		}
		product.Slug = slug
	}

	if payload.Sku != nil && *payload.Sku != "" {
		sku, err := s.skuSvc.EnsureUnique(ctx, *payload.Sku, product.ID)
		if err != nil {
			return nil, apperr.FromStore("products", "unable to resolve product SKU", err)
		}
		product.Sku = sku
		product.SkuAutoGenerated = false
	} else if product.SkuAutoGenerated && payload.CategoryIDs != nil && len(*payload.CategoryIDs) > 0 {
		// No explicit SKU was ever supplied; keep it in sync with the
		// primary category.
		categories, err := s.categoryRepo.GetByIDs(ctx, *payload.CategoryIDs)
		if err != nil {
			return nil, apperr.FromStore("categories", "unable to verify categories", err)
		}
		primary := primarySlug(categories, *payload.CategoryIDs)
		// Resubmitting an unchanged category set must not churn the SKU, so
		// regenerate only when the primary category moves the prefix.
		if primary != "" && !strings.HasPrefix(product.Sku, helpers.SKUPrefix(primary)) {
			sku, err := s.skuSvc.AutoGenerate(ctx, primary)
			if err != nil {
				return nil, apperr.FromStore("products", "unable to resolve product SKU", err)
			}
			product.Sku = sku
		}
	}

	if payload.Name != nil {
		product.Name = *payload.Name
	}
	if payload.ShortDescription != nil {
		product.ShortDescription = *payload.ShortDescription
	}
	if payload.Description != nil {
		product.Description = *payload.Description
	}
	product.Price = price
	product.DiscountPrice = discount
	if payload.Stock != nil {
		product.Stock = *payload.Stock
	}
	if payload.ProductType != nil {
		product.ProductType = *payload.ProductType
	}
	if payload.Condition != nil {
		product.Condition = *payload.Condition
	}
	if payload.Packaging != nil {
		product.Packaging = *payload.Packaging
	}
	if payload.ReturnPolicy != nil {
		product.ReturnPolicy = *payload.ReturnPolicy
	}

	requestedStatus := product.Status
	if payload.Status != nil {
		requestedStatus = *payload.Status
	}
	status := requestedStatus
	if categoryCount == 0 {
		status = models.ProductStatusDraft
	}
	var gateBrand *models.Brand
	if user.IsVendor() && payload.Status != nil && *payload.Status == models.ProductStatusPublish && status == models.ProductStatusPublish {
		gateBrand, err = s.reviewGateSvc.Check(ctx, user.ID)
		if err != nil {
			return nil, apperr.FromStore("brands", "unable to check review requirements", err)
		}
		if gateBrand != nil {
			status = models.ProductStatusDraft
		}
	}
	product.Status = status

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperr.FromStore("products", "unable to update product", err)
	}

	// Partial update: only replace the link sets whose field was present.
	if payload.CategoryIDs != nil {
		if err := s.relationRepo.ReplaceCategories(ctx, product.ID, *payload.CategoryIDs); err != nil {
			return nil, apperr.Dependency(msgRelationshipFailed, err)
		}
	}
	if payload.TagIDs != nil {
		if err := s.relationRepo.ReplaceTags(ctx, product.ID, *payload.TagIDs); err != nil {
			return nil, apperr.Dependency(msgRelationshipFailed, err)
		}
	}
	if payload.BrandIDs != nil {
		if err := s.relationRepo.ReplaceBrands(ctx, product.ID, *payload.BrandIDs); err != nil {
			return nil, apperr.Dependency(msgRelationshipFailed, err)
		}
	}
	if pendingTouched {
		if err := s.relationRepo.ReplaceCategoryRequests(ctx, product.ID, pendingIDs); err != nil {
			return nil, apperr.Dependency(msgRelationshipFailed, err)
		}
	}

	if payload.ImageIDs != nil {
		mainRequested := ""
		if payload.MainImageID != nil {
			mainRequested = *payload.MainImageID
		}
		if err := s.attachImages(ctx, product, user.ID, *payload.ImageIDs, mainRequested); err != nil {
			return nil, err
		}
	} else if payload.MainImageID != nil {
		if err := s.setMainImage(ctx, product, *payload.MainImageID); err != nil {
			return nil, err
		}
	}

	if payload.Variations != nil {
		if err := s.variationSvc.Sync(ctx, product.ID, *payload.Variations); err != nil {
			return nil, apperr.Dependency(msgRelationshipFailed, err)
		}
	}

	if gateBrand != nil {
		s.emitReviewNotification(ctx, user, product, gateBrand, requestedStatus)
	}

	return s.loadJoined(ctx, product.ID)
}

func (s *ProductService) Delete(ctx context.Context, user *models.User, id string) error {
	if !isCatalogManager(user) {
		return apperr.Authorization("you do not have permission to manage products")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return apperr.FromStore("products", "unable to load product", err)
	}
	if product == nil {
		return apperr.NotFound("product not found")
	}

	capability, err := s.accessSvc.ResolveProduct(ctx, user, product)
	if err != nil {
		return apperr.FromStore("brands", "unable to resolve product access", err)
	}
	if !capability.CanView {
		return apperr.NotFound("product not found")
	}
	if !capability.CanEdit {
		return apperr.Authorization("you do not have permission to delete this product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return apperr.FromStore("products", "unable to delete product", err)
	}

	// Link cleanup is best-effort and not transactional with the row delete.
	if err := s.relationRepo.DeleteAllForProduct(ctx, id); err != nil {
		log.Printf("Delete: link cleanup for product %s failed: %v", id, err)
	}
	if err := s.imageRepo.DeleteByProductID(ctx, id); err != nil {
		log.Printf("Delete: image cleanup for product %s failed: %v", id, err)
	}
	if err := s.variationRepo.DeleteByProductID(ctx, id); err != nil {
		log.Printf("Delete: variation cleanup for product %s failed: %v", id, err)
	}
	return nil
}

func (s *ProductService) Get(ctx context.Context, user *models.User, id string) (*models.Product, error) {
	if !isCatalogManager(user) {
		return nil, apperr.Authorization("you do not have permission to manage products")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.FromStore("products", "unable to load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}
	capability, err := s.accessSvc.ResolveProduct(ctx, user, product)
	if err != nil {
		return nil, apperr.FromStore("brands", "unable to resolve product access", err)
	}
	if !capability.CanView {
		return nil, apperr.NotFound("product not found")
	}
	return s.loadJoined(ctx, id)
}

func (s *ProductService) List(ctx context.Context, user *models.User, filter repositories.ProductFilter, page, perPage int) (*ProductListResult, error) {
	if !isCatalogManager(user) {
		return nil, apperr.Authorization("you do not have permission to manage products")
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	if user.IsVendor() {
		filter.CreatedBy = user.ID
		ownedBrandIDs, err := s.accessSvc.OwnedBrandIDs(ctx, user)
		if err != nil {
			return nil, apperr.FromStore("brands", "unable to resolve owned brands", err)
		}
		filter.BrandIDs = ownedBrandIDs
	}

	items, total, err := s.productRepo.List(ctx, filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, apperr.FromStore("products", "unable to list products", err)
	}

	pages := int(math.Ceil(float64(total) / float64(perPage)))
	if pages == 0 {
		pages = 1
	}
	return &ProductListResult{Items: items, Page: page, Pages: pages, TotalCount: total}, nil
}

func (s *ProductService) writeRelations(ctx context.Context, productID string, categoryIDs, tagIDs, brandIDs, requestIDs []string) error {
	if err := s.relationRepo.ReplaceCategories(ctx, productID, categoryIDs); err != nil {
		return apperr.Dependency(msgRelationshipFailed, err)
	}
	if err := s.relationRepo.ReplaceTags(ctx, productID, tagIDs); err != nil {
		return apperr.Dependency(msgRelationshipFailed, err)
	}
	if err := s.relationRepo.ReplaceBrands(ctx, productID, brandIDs); err != nil {
		return apperr.Dependency(msgRelationshipFailed, err)
	}
	if err := s.relationRepo.ReplaceCategoryRequests(ctx, productID, requestIDs); err != nil {
		return apperr.Dependency(msgRelationshipFailed, err)
	}
	return nil
}

func (s *ProductService) attachImages(ctx context.Context, product *models.Product, actorID string, imageIDs []string, mainImageID string) error {
	if len(imageIDs) == 0 {
		return nil
	}
	resolved, mapping, err := s.imageSvc.Attach(ctx, product.ID, actorID, imageIDs)
	if err != nil {
		return apperr.Dependency(msgRelationshipFailed, err)
	}
	stored := ""
	if product.MainImageID != nil {
		stored = *product.MainImageID
	}
	// A payload that resubmits images without naming a main keeps the stored
	// main image as long as it survived the attach.
	requested := mainImageID
	if requested == "" {
		requested = stored
	}
	mainID := ResolveMainImage(requested, resolved, mapping)
	if mainID != "" && mainID != stored {
		if err := s.productRepo.UpdateColumns(ctx, product.ID, map[string]interface{}{"main_image_id": mainID}); err != nil {
			return apperr.Dependency(msgRelationshipFailed, err)
		}
		product.MainImageID = &mainID
	}
	return nil
}

func (s *ProductService) setMainImage(ctx context.Context, product *models.Product, imageID string) error {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return apperr.FromStore("product_images", "unable to load image", err)
	}
	if image == nil || image.ProductID != product.ID {
		return apperr.Validation("invalid product payload", map[string]string{
			"main_image_id": "Main image must be one of the product's images.",
		})
	}
	if err := s.productRepo.UpdateColumns(ctx, product.ID, map[string]interface{}{"main_image_id": image.ID}); err != nil {
		return apperr.Dependency(msgRelationshipFailed, err)
	}
	product.MainImageID = &image.ID
	return nil
}

func (s *ProductService) emitReviewNotification(ctx context.Context, user *models.User, product *models.Product, brand *models.Brand, requestedStatus string) {
	err := s.notifierSvc.NotifyAllAdmins(ctx,
		"Product awaiting review",
		user.Email+" requested to publish \""+product.Name+"\"; it was saved as draft pending review.",
		models.NotificationSeverityWarning,
		"product",
		product.ID,
		map[string]string{
			"requested_status": requestedStatus,
			"final_status":     product.Status,
			"brand_id":         brand.ID,
			"brand_name":       brand.Name,
		},
	)
	if err != nil {
		log.Printf("emitReviewNotification: failed for product %s: %v", product.ID, err)
	}
}

func (s *ProductService) loadJoined(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetJoined(ctx, id)
	if err != nil {
		return nil, apperr.FromStore("products", "unable to load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product not found")
	}
	requestIDs, err := s.relationRepo.CategoryRequestIDs(ctx, id)
	if err != nil {
		return nil, apperr.FromStore("product_category_requests", "unable to load category request links", err)
	}
	product.CategoryRequestIDs = requestIDs
	return product, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// primarySlug picks the slug of the first submitted category id. GetByIDs
// runs an IN query whose result order is database order, not payload order.
func primarySlug(categories []models.Category, ids []string) string {
	slugsByID := make(map[string]string, len(categories))
	for _, c := range categories {
		slugsByID[c.ID] = c.Slug
	}
	for _, id := range ids {
		if slug, ok := slugsByID[id]; ok {
			return slug
		}
	}
	return ""
}

func dedup(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/models/migrations"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/services"
	"github.com/velamart/catalog-admin/app/utils/renderer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type handlerFixture struct {
	handler *ProductHandler
	admin   *models.User
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	requestRepo := repositories.NewCategoryRequestRepository(db)
	relationRepo := repositories.NewProductRelationRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	variationRepo := repositories.NewProductVariationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	productSvc := services.NewProductService(
		productRepo, categoryRepo, requestRepo, relationRepo, imageRepo, variationRepo,
		services.NewSlugService(),
		services.NewSKUService(productRepo),
		services.NewAccessService(brandRepo, productRepo),
		services.NewReviewGateService(brandRepo),
		services.NewImageService(imageRepo),
		services.NewVariationService(variationRepo),
		services.NewNotifierService(notificationRepo, userRepo, nil),
	)

	admin := &models.User{ID: uuid.New().String(), FirstName: "Ada", LastName: "Admin", Email: "ada@example.com", Password: "x", Role: models.RoleAdmin}
	if err := userRepo.Create(ctx, admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	category := &models.Category{ID: "cat-1", Name: "Shoes", Slug: "shoes"}
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	return &handlerFixture{
		handler: NewProductHandler(renderer.New(), validator.New(), productSvc),
		admin:   admin,
	}
}

func authenticatedRequest(method, target string, body string, user *models.User) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUser, user)
	return req.WithContext(ctx)
}

func TestProductCreateEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"name": "Red Shoe", "price": 49.90, "stock": 5, "category_ids": ["cat-1"]}`
	req := authenticatedRequest(http.MethodPost, "/api/v1/products", body, f.admin)
	rec := httptest.NewRecorder()

	f.handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	var response struct {
		Item struct {
			ID           string `json:"id"`
			Slug         string `json:"slug"`
			Status       string `json:"status"`
			PriceDisplay string `json:"price_display"`
		} `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Item.Slug != "red-shoe" {
		t.Errorf("slug = %q, want red-shoe", response.Item.Slug)
	}
	if response.Item.Status != models.ProductStatusPublish {
		t.Errorf("status = %q, want publish", response.Item.Status)
	}
	if response.Item.PriceDisplay != "$49.90" {
		t.Errorf("price_display = %q, want $49.90", response.Item.PriceDisplay)
	}
}

func TestProductCreateValidationEnvelope(t *testing.T) {
	f := newHandlerFixture(t)

	req := authenticatedRequest(http.MethodPost, "/api/v1/products", `{"price": 10}`, f.admin)
	rec := httptest.NewRecorder()

	f.handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
	var response struct {
		Error      string `json:"error"`
		Validation struct {
			FieldErrors map[string]string `json:"field_errors"`
		} `json:"validation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Error == "" {
		t.Error("error message is empty")
	}
	if _, ok := response.Validation.FieldErrors["name"]; !ok {
		t.Errorf("field_errors = %v, want an entry for name", response.Validation.FieldErrors)
	}
}

func TestProductCreateMalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	req := authenticatedRequest(http.MethodPost, "/api/v1/products", `{not json`, f.admin)
	rec := httptest.NewRecorder()

	f.handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestProductListEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	for _, name := range []string{"Red Shoe", "Blue Shoe"} {
		body := fmt.Sprintf(`{"name": %q, "price": 20, "category_ids": ["cat-1"]}`, name)
		rec := httptest.NewRecorder()
		f.handler.Create(rec, authenticatedRequest(http.MethodPost, "/api/v1/products", body, f.admin))
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := httptest.NewRecorder()
	f.handler.List(rec, authenticatedRequest(http.MethodGet, "/api/v1/products?per_page=1", "", f.admin))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var response struct {
		Items      []json.RawMessage `json:"items"`
		Page       int               `json:"page"`
		Pages      int               `json:"pages"`
		TotalCount int64             `json:"total_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Items) != 1 {
		t.Errorf("items = %d, want per_page limit of 1", len(response.Items))
	}
	if response.TotalCount != 2 || response.Pages != 2 {
		t.Errorf("total=%d pages=%d, want 2/2", response.TotalCount, response.Pages)
	}
}

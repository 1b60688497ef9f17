package services

import (
	"context"
	"log"

	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

// Capability is the resolved permission pair for one caller on one record.
// OwnerID propagates ownership to child records: a new attribute option
// inherits the attribute's resolved owner.
type Capability struct {
	CanView bool
	CanEdit bool
	OwnerID string
}

// EntityDescriptor parameterizes owner-based visibility so the branching is
// written once instead of per entity type. SharedAllowed marks records with
// an empty owner as readable by every catalog manager.
type EntityDescriptor struct {
	OwnerID       string
	SharedAllowed bool
}

type AccessService struct {
	brandRepo   repositories.BrandRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewAccessService(brandRepo repositories.BrandRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *AccessService {
	return &AccessService{brandRepo: brandRepo, productRepo: productRepo}
}

// ResolveOwned computes capabilities for attribute/tag/brand style records.
func (s *AccessService) ResolveOwned(user *models.User, desc EntityDescriptor) Capability {
	if user == nil {
		return Capability{}
	}
	if user.IsAdmin() {
		return Capability{CanView: true, CanEdit: true, OwnerID: desc.OwnerID}
	}
	if !user.IsVendor() {
		return Capability{}
	}
	if desc.OwnerID == user.ID {
		return Capability{CanView: true, CanEdit: true, OwnerID: user.ID}
	}
	if desc.OwnerID == "" && desc.SharedAllowed {
		return Capability{CanView: true, CanEdit: false}
	}
	return Capability{}
}

// OwnedBrandIDs resolves the set of brands a vendor owns. Ownership is a
// created_by match; when the vendor owns no brand rows yet, their profile
// brand slug is used as a fallback lookup.
func (s *AccessService) OwnedBrandIDs(ctx context.Context, user *models.User) ([]string, error) {
	brands, err := s.brandRepo.GetOwnedBy(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(brands) == 0 && user.BrandSlug != "" {
		brand, err := s.brandRepo.GetBySlug(ctx, user.BrandSlug)
		if err != nil {
			return nil, err
		}
		if brand != nil {
			brands = append(brands, *brand)
		}
	}
	ids := make([]string, 0, len(brands))
	for _, b := range brands {
		ids = append(ids, b.ID)
	}
	return ids, nil
}

// ResolveProduct grants admins full access; a vendor gets access when they
// created the product or when the product is linked to a brand they own.
// Customers are always denied.
func (s *AccessService) ResolveProduct(ctx context.Context, user *models.User, product *models.Product) (Capability, error) {
	if user == nil || product == nil {
		return Capability{}, nil
	}
	if user.IsAdmin() {
		return Capability{CanView: true, CanEdit: true, OwnerID: product.CreatedBy}, nil
	}
	if !user.IsVendor() {
		return Capability{}, nil
	}
	if product.CreatedBy == user.ID {
		return Capability{CanView: true, CanEdit: true, OwnerID: user.ID}, nil
	}

	ownedBrandIDs, err := s.OwnedBrandIDs(ctx, user)
	if err != nil {
		return Capability{}, err
	}
	if len(ownedBrandIDs) == 0 {
		return Capability{}, nil
	}

	linkedBrandIDs, err := s.productRepo.LinkedBrandIDs(ctx, product.ID)
	if err != nil {
		return Capability{}, err
	}
	owned := make(map[string]bool, len(ownedBrandIDs))
	for _, id := range ownedBrandIDs {
		owned[id] = true
	}
	for _, id := range linkedBrandIDs {
		if owned[id] {
			log.Printf("ResolveProduct: vendor %s granted access to product %s via brand %s", user.ID, product.ID, id)
			return Capability{CanView: true, CanEdit: true, OwnerID: product.CreatedBy}, nil
		}
	}
	return Capability{}, nil
}

// ResolveAttribute applies the shared-vs-owned attribute rules: admins see
// and edit everything, owners see and edit their own, other vendors can only
// view unowned (shared) attributes.
func (s *AccessService) ResolveAttribute(user *models.User, attribute *models.Attribute) Capability {
	if attribute == nil {
		return Capability{}
	}
	return s.ResolveOwned(user, EntityDescriptor{OwnerID: attribute.CreatedBy, SharedAllowed: true})
}

// ResolveCategory: categories are admin-owned; catalog managers may read.
func (s *AccessService) ResolveCategory(user *models.User) Capability {
	if user == nil {
		return Capability{}
	}
	if user.IsAdmin() {
		return Capability{CanView: true, CanEdit: true}
	}
	if user.IsVendor() {
		return Capability{CanView: true, CanEdit: false}
	}
	return Capability{}
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

func newAccessFixture(t *testing.T) (*AccessService, repositories.BrandRepositoryImpl, repositories.ProductRepositoryImpl) {
	db := newTestDB(t)
	brandRepo := repositories.NewBrandRepository(db)
	productRepo := repositories.NewProductRepository(db)
	return NewAccessService(brandRepo, productRepo), brandRepo, productRepo
}

func TestResolveOwnedAdmin(t *testing.T) {
	svc, _, _ := newAccessFixture(t)
	admin := &models.User{ID: "u1", Role: models.RoleAdmin}

	cap := svc.ResolveOwned(admin, EntityDescriptor{OwnerID: "someone-else"})
	if !cap.CanView || !cap.CanEdit {
		t.Errorf("admin capability = %+v, want full access", cap)
	}
}

func TestResolveOwnedVendor(t *testing.T) {
	svc, _, _ := newAccessFixture(t)
	vendor := &models.User{ID: "v1", Role: models.RoleVendor}

	own := svc.ResolveOwned(vendor, EntityDescriptor{OwnerID: "v1"})
	if !own.CanView || !own.CanEdit {
		t.Errorf("owner capability = %+v, want full access", own)
	}

	shared := svc.ResolveOwned(vendor, EntityDescriptor{OwnerID: "", SharedAllowed: true})
	if !shared.CanView || shared.CanEdit {
		t.Errorf("shared capability = %+v, want view-only", shared)
	}

	foreign := svc.ResolveOwned(vendor, EntityDescriptor{OwnerID: "v2", SharedAllowed: true})
	if foreign.CanView || foreign.CanEdit {
		t.Errorf("foreign capability = %+v, want no access", foreign)
	}
}

func TestResolveOwnedCustomer(t *testing.T) {
	svc, _, _ := newAccessFixture(t)
	customer := &models.User{ID: "c1", Role: models.RoleCustomer}

	cap := svc.ResolveOwned(customer, EntityDescriptor{OwnerID: "", SharedAllowed: true})
	if cap.CanView || cap.CanEdit {
		t.Errorf("customer capability = %+v, want no access", cap)
	}
}

func TestOwnedBrandIDsFallbackSlug(t *testing.T) {
	svc, brandRepo, _ := newAccessFixture(t)
	ctx := context.Background()

	// Brand row created by an admin, so created_by does not point at the
	// vendor; only the profile slug ties them together.
	brand := &models.Brand{ID: uuid.New().String(), Name: "Acme", Slug: "acme"}
	if err := brandRepo.Create(ctx, brand); err != nil {
		t.Fatalf("create brand: %v", err)
	}

	vendor := &models.User{ID: "v1", Role: models.RoleVendor, BrandSlug: "acme"}
	ids, err := svc.OwnedBrandIDs(ctx, vendor)
	if err != nil {
		t.Fatalf("OwnedBrandIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != brand.ID {
		t.Errorf("OwnedBrandIDs = %v, want [%s]", ids, brand.ID)
	}
}

func TestResolveProductViaBrandLink(t *testing.T) {
	db := newTestDB(t)
	brandRepo := repositories.NewBrandRepository(db)
	productRepo := repositories.NewProductRepository(db)
	relationRepo := repositories.NewProductRelationRepository(db)
	svc := NewAccessService(brandRepo, productRepo)
	ctx := context.Background()

	brand := &models.Brand{ID: uuid.New().String(), Name: "Acme", Slug: "acme", CreatedBy: "v1"}
	if err := brandRepo.Create(ctx, brand); err != nil {
		t.Fatalf("create brand: %v", err)
	}
	product := seedProductWithSKU(t, productRepo, "LINKED-1")
	product.CreatedBy = "someone-else"
	if err := productRepo.Update(ctx, product); err != nil {
		t.Fatalf("update product: %v", err)
	}
	if err := relationRepo.ReplaceBrands(ctx, product.ID, []string{brand.ID}); err != nil {
		t.Fatalf("link brand: %v", err)
	}

	vendor := &models.User{ID: "v1", Role: models.RoleVendor}
	cap, err := svc.ResolveProduct(ctx, vendor, product)
	if err != nil {
		t.Fatalf("ResolveProduct: %v", err)
	}
	if !cap.CanView || !cap.CanEdit {
		t.Errorf("brand-linked vendor capability = %+v, want full access", cap)
	}
}

func TestResolveProductUnrelatedVendor(t *testing.T) {
	svc, _, productRepo := newAccessFixture(t)
	ctx := context.Background()

	product := seedProductWithSKU(t, productRepo, "HIDDEN-1")
	product.CreatedBy = "someone-else"
	if err := productRepo.Update(ctx, product); err != nil {
		t.Fatalf("update product: %v", err)
	}

	vendor := &models.User{ID: "v1", Role: models.RoleVendor}
	cap, err := svc.ResolveProduct(ctx, vendor, product)
	if err != nil {
		t.Fatalf("ResolveProduct: %v", err)
	}
	if cap.CanView || cap.CanEdit {
		t.Errorf("unrelated vendor capability = %+v, want no access", cap)
	}
}

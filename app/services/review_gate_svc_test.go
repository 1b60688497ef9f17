package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

func TestCheckNoGatedBrand(t *testing.T) {
	db := newTestDB(t)
	brandRepo := repositories.NewBrandRepository(db)
	svc := NewReviewGateService(brandRepo)
	ctx := context.Background()

	brand := &models.Brand{ID: uuid.New().String(), Name: "Acme", Slug: "acme", CreatedBy: "v1"}
	if err := brandRepo.Create(ctx, brand); err != nil {
		t.Fatalf("create brand: %v", err)
	}

	gated, err := svc.Check(ctx, "v1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if gated != nil {
		t.Errorf("Check = %+v, want nil for an ungated brand", gated)
	}
}

func TestCheckGatedBrand(t *testing.T) {
	db := newTestDB(t)
	brandRepo := repositories.NewBrandRepository(db)
	svc := NewReviewGateService(brandRepo)
	ctx := context.Background()

	brand := &models.Brand{
		ID:                             uuid.New().String(),
		Name:                           "Gated",
		Slug:                           "gated",
		CreatedBy:                      "v1",
		RequireProductReviewForPublish: true,
	}
	if err := brandRepo.Create(ctx, brand); err != nil {
		t.Fatalf("create brand: %v", err)
	}

	gated, err := svc.Check(ctx, "v1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if gated == nil || gated.ID != brand.ID {
		t.Errorf("Check = %+v, want the gated brand", gated)
	}
}

func TestCheckIgnoresOtherVendors(t *testing.T) {
	db := newTestDB(t)
	brandRepo := repositories.NewBrandRepository(db)
	svc := NewReviewGateService(brandRepo)
	ctx := context.Background()

	brand := &models.Brand{
		ID:                             uuid.New().String(),
		Name:                           "Gated",
		Slug:                           "gated",
		CreatedBy:                      "other-vendor",
		RequireProductReviewForPublish: true,
	}
	if err := brandRepo.Create(ctx, brand); err != nil {
		t.Fatalf("create brand: %v", err)
	}

	gated, err := svc.Check(ctx, "v1")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if gated != nil {
		t.Errorf("Check = %+v, another vendor's gate must not apply", gated)
	}
}

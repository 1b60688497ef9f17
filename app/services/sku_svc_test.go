package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

func seedProductWithSKU(t *testing.T, repo repositories.ProductRepositoryImpl, sku string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:     uuid.New().String(),
		Name:   "Seed " + sku,
		Slug:   "seed-" + strings.ToLower(sku),
		Sku:    sku,
		Price:  decimal.NewFromInt(10),
		Status: models.ProductStatusDraft,
	}
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestEnsureUniqueFree(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	svc := NewSKUService(repo)

	got, err := svc.EnsureUnique(context.Background(), "abc 123", "")
	if err != nil {
		t.Fatalf("EnsureUnique: %v", err)
	}
	if got != "ABC-123" {
		t.Errorf("EnsureUnique = %q, want %q", got, "ABC-123")
	}
}

func TestEnsureUniqueCollision(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	svc := NewSKUService(repo)
	seedProductWithSKU(t, repo, "ABC-123")

	got, err := svc.EnsureUnique(context.Background(), "abc-123", "")
	if err != nil {
		t.Fatalf("EnsureUnique: %v", err)
	}
	if got == "ABC-123" {
		t.Error("EnsureUnique returned the taken SKU unchanged")
	}
	if !strings.HasPrefix(got, "ABC-123") {
		t.Errorf("EnsureUnique = %q, want an ABC-123 variant", got)
	}
}

func TestEnsureUniqueExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	svc := NewSKUService(repo)
	product := seedProductWithSKU(t, repo, "ABC-123")

	got, err := svc.EnsureUnique(context.Background(), "ABC-123", product.ID)
	if err != nil {
		t.Fatalf("EnsureUnique: %v", err)
	}
	if got != "ABC-123" {
		t.Errorf("EnsureUnique = %q, want the product to keep its own SKU", got)
	}
}

func TestEnsureUniqueEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSKUService(repositories.NewProductRepository(db))

	if _, err := svc.EnsureUnique(context.Background(), "   ", ""); err == nil {
		t.Error("EnsureUnique accepted a whitespace-only SKU")
	}
}

func TestAutoGenerate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSKUService(repositories.NewProductRepository(db))

	got, err := svc.AutoGenerate(context.Background(), "shoes")
	if err != nil {
		t.Fatalf("AutoGenerate: %v", err)
	}
	if !strings.HasPrefix(got, "SH") {
		t.Errorf("AutoGenerate = %q, want SH prefix", got)
	}
	if len(got) != 11 {
		t.Errorf("AutoGenerate = %q with length %d, want 11", got, len(got))
	}
}

// skuTakenRepo reports the first N checked SKUs as taken, forcing the
// generator through its retry loop.
type skuTakenRepo struct {
	repositories.ProductRepositoryImpl
	taken   int
	checked []string
}

func (r *skuTakenRepo) SKUExists(ctx context.Context, sku, excludeID string) (bool, error) {
	r.checked = append(r.checked, sku)
	return len(r.checked) <= r.taken, nil
}

func TestAutoGenerateCollisionRetries(t *testing.T) {
	db := newTestDB(t)
	repo := &skuTakenRepo{ProductRepositoryImpl: repositories.NewProductRepository(db), taken: 2}
	svc := NewSKUService(repo)

	got, err := svc.AutoGenerate(context.Background(), "shoes")
	if err != nil {
		t.Fatalf("AutoGenerate: %v", err)
	}
	if len(repo.checked) != 3 {
		t.Fatalf("checked %d candidates, want 3", len(repo.checked))
	}
	for _, taken := range repo.checked[:2] {
		if got == taken {
			t.Errorf("AutoGenerate = %q, returned a taken SKU", got)
		}
	}
	if !strings.HasPrefix(got, "SH") || len(got) != 11 {
		t.Errorf("AutoGenerate = %q, want an 11-char SH-prefixed SKU", got)
	}
}

func TestAutoGenerateExhaustedFallsBackToTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := &skuTakenRepo{ProductRepositoryImpl: repositories.NewProductRepository(db), taken: 100}
	svc := NewSKUService(repo)

	got, err := svc.AutoGenerate(context.Background(), "shoes")
	if err != nil {
		t.Fatalf("AutoGenerate: %v", err)
	}
	if !strings.HasPrefix(got, "SH") {
		t.Errorf("AutoGenerate = %q, want SH prefix on the fallback SKU", got)
	}
	for _, taken := range repo.checked {
		if got == taken {
			t.Errorf("AutoGenerate = %q, returned a taken SKU", got)
		}
	}
}

func TestAutoGenerateNoCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewSKUService(repositories.NewProductRepository(db))

	got, err := svc.AutoGenerate(context.Background(), "")
	if err != nil {
		t.Fatalf("AutoGenerate: %v", err)
	}
	if !strings.HasPrefix(got, "PR") {
		t.Errorf("AutoGenerate = %q, want PR fallback prefix", got)
	}
}

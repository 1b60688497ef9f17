package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/velamart/catalog-admin/app/repositories"
)

func TestSyncReplacesWholesale(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductVariationRepository(db)
	svc := NewVariationService(repo)
	ctx := context.Background()

	price := decimal.NewFromInt(25)
	stock := 3
	first := []VariationInput{
		{Attributes: map[string]string{"size": "S"}, Sku: "VAR-S"},
		{Attributes: map[string]string{"size": "M"}, Price: &price, Stock: &stock},
	}
	if err := svc.Sync(ctx, "p1", first); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	second := []VariationInput{
		{Attributes: map[string]string{"size": "L"}, Sku: "VAR-L"},
	}
	if err := svc.Sync(ctx, "p1", second); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	stored, err := repo.GetByProductID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByProductID: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d variations, want the submitted set to replace the old one", len(stored))
	}
	if stored[0].Attributes["size"] != "L" || stored[0].Sku != "VAR-L" {
		t.Errorf("stored variation = %+v, want size L / VAR-L", stored[0])
	}
}

func TestSyncPreservesOrder(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductVariationRepository(db)
	svc := NewVariationService(repo)
	ctx := context.Background()

	inputs := []VariationInput{
		{Attributes: map[string]string{"size": "S"}},
		{Attributes: map[string]string{"size": "M"}},
		{Attributes: map[string]string{"size": "L"}},
	}
	if err := svc.Sync(ctx, "p1", inputs); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	stored, err := repo.GetByProductID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByProductID: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("stored %d variations, want 3", len(stored))
	}
	for i, want := range []string{"S", "M", "L"} {
		if stored[i].Attributes["size"] != want {
			t.Errorf("position %d = %q, want %q", i, stored[i].Attributes["size"], want)
		}
		if stored[i].SortOrder != i {
			t.Errorf("position %d sort_order = %d, want %d", i, stored[i].SortOrder, i)
		}
	}
}

func TestSyncEmptyClears(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductVariationRepository(db)
	svc := NewVariationService(repo)
	ctx := context.Background()

	if err := svc.Sync(ctx, "p1", []VariationInput{{Attributes: map[string]string{"size": "S"}}}); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := svc.Sync(ctx, "p1", nil); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	stored, err := repo.GetByProductID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByProductID: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("stored %d variations after empty sync, want 0", len(stored))
	}
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

func seedImage(t *testing.T, repo repositories.ProductImageRepositoryImpl, productID, url string) *models.ProductImage {
	t.Helper()
	image := &models.ProductImage{
		ID:        uuid.New().String(),
		ProductID: productID,
		URL:       url,
		CreatedBy: "seed",
	}
	if err := repo.Create(context.Background(), image); err != nil {
		t.Fatalf("seed image: %v", err)
	}
	return image
}

func TestAttachOwnImageReorders(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductImageRepository(db)
	svc := NewImageService(repo)
	ctx := context.Background()

	first := seedImage(t, repo, "p1", "https://cdn.example.com/a.jpg")
	second := seedImage(t, repo, "p1", "https://cdn.example.com/b.jpg")

	resolved, mapping, err := svc.Attach(ctx, "p1", "actor", []string{second.ID, first.ID})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if len(mapping) != 0 {
		t.Errorf("mapping = %v, want empty for already-owned images", mapping)
	}
	if len(resolved) != 2 || resolved[0] != second.ID || resolved[1] != first.ID {
		t.Errorf("resolved = %v, want submitted order preserved", resolved)
	}

	reloaded, err := repo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("reload image: %v", err)
	}
	if reloaded.SortOrder != 0 {
		t.Errorf("sort order = %d, want 0", reloaded.SortOrder)
	}
}

func TestAttachForeignImageClones(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductImageRepository(db)
	svc := NewImageService(repo)
	ctx := context.Background()

	source := seedImage(t, repo, "p1", "https://cdn.example.com/a.jpg")

	resolved, mapping, err := svc.Attach(ctx, "p2", "actor", []string{source.ID})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	cloneID, ok := mapping[source.ID]
	if !ok {
		t.Fatalf("mapping = %v, want clone entry for %s", mapping, source.ID)
	}
	if len(resolved) != 1 || resolved[0] != cloneID {
		t.Errorf("resolved = %v, want [%s]", resolved, cloneID)
	}

	clone, err := repo.GetByID(ctx, cloneID)
	if err != nil {
		t.Fatalf("load clone: %v", err)
	}
	if clone.ProductID != "p2" {
		t.Errorf("clone product = %s, want p2", clone.ProductID)
	}
	if clone.URL != source.URL {
		t.Errorf("clone URL = %q, want %q", clone.URL, source.URL)
	}
	if clone.CreatedBy != "actor" {
		t.Errorf("clone created_by = %q, want actor", clone.CreatedBy)
	}

	// The source row still belongs to its original product.
	original, err := repo.GetByID(ctx, source.ID)
	if err != nil {
		t.Fatalf("reload source: %v", err)
	}
	if original.ProductID != "p1" {
		t.Errorf("source product = %s, attaching must not move the row", original.ProductID)
	}
}

func TestAttachSkipsUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductImageRepository(db)
	svc := NewImageService(repo)

	resolved, mapping, err := svc.Attach(context.Background(), "p1", "actor", []string{"missing", ""})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if len(resolved) != 0 || len(mapping) != 0 {
		t.Errorf("resolved=%v mapping=%v, want both empty", resolved, mapping)
	}
}

func TestResolveMainImage(t *testing.T) {
	resolved := []string{"a", "b"}
	mapping := map[string]string{"orig": "b"}

	if got := ResolveMainImage("", resolved, nil); got != "a" {
		t.Errorf("default main = %q, want first resolved", got)
	}
	if got := ResolveMainImage("orig", resolved, mapping); got != "b" {
		t.Errorf("mapped main = %q, want clone id b", got)
	}
	if got := ResolveMainImage("unknown", resolved, mapping); got != "a" {
		t.Errorf("unknown main = %q, want fallback to first resolved", got)
	}
	if got := ResolveMainImage("x", nil, nil); got != "" {
		t.Errorf("empty resolved main = %q, want empty", got)
	}
}

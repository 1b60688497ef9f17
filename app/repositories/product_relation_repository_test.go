package repositories

import (
	"context"
	"sort"
	"testing"

	"github.com/velamart/catalog-admin/app/models"
)

func categoryLinks(t *testing.T, r *productRelationRepository, productID string) []string {
	t.Helper()
	var ids []string
	err := r.db.Model(&models.ProductCategory{}).
		Where("product_id = ?", productID).
		Pluck("category_id", &ids).Error
	if err != nil {
		t.Fatalf("load links: %v", err)
	}
	sort.Strings(ids)
	return ids
}

func TestReplaceCategoriesSwapsSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db).(*productRelationRepository)
	ctx := context.Background()

	if err := repo.ReplaceCategories(ctx, "p1", []string{"c1", "c2"}); err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
	if got := categoryLinks(t, repo, "p1"); len(got) != 2 {
		t.Fatalf("links = %v, want 2", got)
	}

	if err := repo.ReplaceCategories(ctx, "p1", []string{"c3"}); err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
	got := categoryLinks(t, repo, "p1")
	if len(got) != 1 || got[0] != "c3" {
		t.Errorf("links = %v, want [c3]", got)
	}
}

func TestReplaceCategoriesIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db).(*productRelationRepository)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.ReplaceCategories(ctx, "p1", []string{"c1", "c2"}); err != nil {
			t.Fatalf("ReplaceCategories pass %d: %v", i+1, err)
		}
	}
	got := categoryLinks(t, repo, "p1")
	if len(got) != 2 {
		t.Errorf("links after repeated replace = %v, want exactly 2", got)
	}
}

func TestReplaceCategoriesDedups(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db).(*productRelationRepository)
	ctx := context.Background()

	if err := repo.ReplaceCategories(ctx, "p1", []string{"c1", "c1", "", "c2", "c1"}); err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
	got := categoryLinks(t, repo, "p1")
	if len(got) != 2 || got[0] != "c1" || got[1] != "c2" {
		t.Errorf("links = %v, want [c1 c2]", got)
	}
}

func TestReplaceCategoriesEmptyClears(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db).(*productRelationRepository)
	ctx := context.Background()

	if err := repo.ReplaceCategories(ctx, "p1", []string{"c1"}); err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
	if err := repo.ReplaceCategories(ctx, "p1", nil); err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
	if got := categoryLinks(t, repo, "p1"); len(got) != 0 {
		t.Errorf("links = %v, want none", got)
	}
}

func TestReplaceScopedToProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db).(*productRelationRepository)
	ctx := context.Background()

	if err := repo.ReplaceCategories(ctx, "p1", []string{"c1"}); err != nil {
		t.Fatalf("ReplaceCategories p1: %v", err)
	}
	if err := repo.ReplaceCategories(ctx, "p2", []string{"c2"}); err != nil {
		t.Fatalf("ReplaceCategories p2: %v", err)
	}
	if got := categoryLinks(t, repo, "p1"); len(got) != 1 || got[0] != "c1" {
		t.Errorf("p1 links = %v, replacing p2 must not touch p1", got)
	}
}

func TestCategoryRequestLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceCategoryRequests(ctx, "p1", []string{"r1", "r2"}); err != nil {
		t.Fatalf("ReplaceCategoryRequests: %v", err)
	}
	ids, err := repo.CategoryRequestIDs(ctx, "p1")
	if err != nil {
		t.Fatalf("CategoryRequestIDs: %v", err)
	}
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "r1" || ids[1] != "r2" {
		t.Errorf("request ids = %v, want [r1 r2]", ids)
	}
}

func TestCategoryLinkCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceCategories(ctx, "p1", []string{"c1", "c2", "c3"}); err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
	count, err := repo.CategoryLinkCount(ctx, "p1")
	if err != nil {
		t.Fatalf("CategoryLinkCount: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestDeleteAllForProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRelationRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceCategories(ctx, "p1", []string{"c1"}); err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
	if err := repo.ReplaceTags(ctx, "p1", []string{"t1"}); err != nil {
		t.Fatalf("ReplaceTags: %v", err)
	}
	if err := repo.ReplaceBrands(ctx, "p1", []string{"b1"}); err != nil {
		t.Fatalf("ReplaceBrands: %v", err)
	}
	if err := repo.ReplaceCategoryRequests(ctx, "p1", []string{"r1"}); err != nil {
		t.Fatalf("ReplaceCategoryRequests: %v", err)
	}

	if err := repo.DeleteAllForProduct(ctx, "p1"); err != nil {
		t.Fatalf("DeleteAllForProduct: %v", err)
	}

	count, err := repo.CategoryLinkCount(ctx, "p1")
	if err != nil {
		t.Fatalf("CategoryLinkCount: %v", err)
	}
	if count != 0 {
		t.Errorf("category links = %d after delete, want 0", count)
	}
	ids, err := repo.CategoryRequestIDs(ctx, "p1")
	if err != nil {
		t.Fatalf("CategoryRequestIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("request links = %v after delete, want none", ids)
	}
}

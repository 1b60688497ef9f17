package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/models"
)

func seedRequest(t *testing.T, repo CategoryRequestRepositoryImpl, status string) *models.CategoryRequest {
	t.Helper()
	request := &models.CategoryRequest{
		ID:        uuid.New().String(),
		Name:      "Sneakers",
		Status:    status,
		CreatedBy: "v1",
	}
	if err := repo.Create(context.Background(), request); err != nil {
		t.Fatalf("create request: %v", err)
	}
	return request
}

func TestGetPendingByIDsFiltersResolved(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRequestRepository(db)
	ctx := context.Background()

	pending := seedRequest(t, repo, models.CategoryRequestStatusPending)
	approved := seedRequest(t, repo, models.CategoryRequestStatusApproved)
	rejected := seedRequest(t, repo, models.CategoryRequestStatusRejected)

	got, err := repo.GetPendingByIDs(ctx, []string{pending.ID, approved.ID, rejected.ID, "missing"})
	if err != nil {
		t.Fatalf("GetPendingByIDs: %v", err)
	}
	if len(got) != 1 || got[0].ID != pending.ID {
		t.Errorf("GetPendingByIDs = %v, want only the pending request", got)
	}
}

func TestGetPendingByIDsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRequestRepository(db)

	got, err := repo.GetPendingByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetPendingByIDs: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetPendingByIDs(nil) = %v, want empty", got)
	}
}

package services

import (
	"context"

	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

// ReviewGateService decides whether a vendor's publish request must land as
// draft pending admin review.
type ReviewGateService struct {
	brandRepo repositories.BrandRepositoryImpl
}

func NewReviewGateService(brandRepo repositories.BrandRepositoryImpl) *ReviewGateService {
	return &ReviewGateService{brandRepo: brandRepo}
}

// Check returns the first owned brand that requires product review, or nil
// when the vendor may publish directly.
func (s *ReviewGateService) Check(ctx context.Context, vendorID string) (*models.Brand, error) {
	brands, err := s.brandRepo.GetOwnedBy(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	for i := range brands {
		if brands[i].RequireProductReviewForPublish {
			return &brands[i], nil
		}
	}
	return nil, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

// VariationInput is one submitted variation row. Price and Stock accept
// JSON numbers or numeric strings and store as null when absent.
type VariationInput struct {
	Attributes map[string]string `json:"attributes"`
	Price      *decimal.Decimal  `json:"price,omitempty"`
	Sku        string            `json:"sku,omitempty"`
	Stock      *int              `json:"stock,omitempty"`
	ImageID    *string           `json:"image_id,omitempty"`
}

type VariationService struct {
	variationRepo repositories.ProductVariationRepositoryImpl
}

func NewVariationService(variationRepo repositories.ProductVariationRepositoryImpl) *VariationService {
	return &VariationService{variationRepo: variationRepo}
}

// Sync replaces the product's variation rows wholesale, preserving the
// submitted order as sort_order. The UI always submits the complete set.
func (s *VariationService) Sync(ctx context.Context, productID string, inputs []VariationInput) error {
	rows := make([]models.ProductVariation, 0, len(inputs))
	for i, input := range inputs {
		attrs := input.Attributes
		if attrs == nil {
			attrs = map[string]string{}
		}
		rows = append(rows, models.ProductVariation{
			ID:         uuid.New().String(),
			ProductID:  productID,
			Attributes: models.AttributeMap(attrs),
			Price:      input.Price,
			Sku:        input.Sku,
			Stock:      input.Stock,
			ImageID:    input.ImageID,
			SortOrder:  i,
		})
	}
	if err := s.variationRepo.ReplaceAll(ctx, productID, rows); err != nil {
		return fmt.Errorf("failed to replace variations for product %s: %w", productID, err)
	}
	return nil
}

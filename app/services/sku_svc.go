package services

import (
	"context"
	"fmt"
	"time"

	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/repositories"
)

const (
	skuUserAttempts = 5
	skuAutoAttempts = 6
)

type SKUService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewSKUService(productRepo repositories.ProductRepositoryImpl) *SKUService {
	return &SKUService{productRepo: productRepo}
}

// EnsureUnique normalizes a user-supplied SKU and resolves collisions by
// appending a 3-digit random suffix, falling back to a timestamp suffix
// after five attempts.
func (s *SKUService) EnsureUnique(ctx context.Context, sku, excludeID string) (string, error) {
	normalized := helpers.NormalizeSKU(sku)
	if normalized == "" {
		return "", fmt.Errorf("sku is empty after normalization")
	}

	taken, err := s.productRepo.SKUExists(ctx, normalized, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check sku %q: %w", normalized, err)
	}
	if !taken {
		return normalized, nil
	}

	for i := 0; i < skuUserAttempts; i++ {
		candidate := fmt.Sprintf("%s-%s", normalized, helpers.RandomDigits(3))
		taken, err := s.productRepo.SKUExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check sku %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s-%d", normalized, time.Now().UnixMilli()), nil
}

// AutoGenerate builds a SKU from a 2-letter category prefix plus 7 random
// digits and 2 random letters, retrying on collision.
func (s *SKUService) AutoGenerate(ctx context.Context, category string) (string, error) {
	prefix := helpers.SKUPrefix(category)

	for i := 0; i < skuAutoAttempts; i++ {
		candidate := prefix + helpers.RandomDigits(7) + helpers.RandomLetters(2)
		taken, err := s.productRepo.SKUExists(ctx, candidate, "")
		if err != nil {
			return "", fmt.Errorf("failed to check sku %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano()), nil
}

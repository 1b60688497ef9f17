package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/models"
	"github.com/velamart/catalog-admin/app/repositories"
)

// ImageService reassigns media rows to a product. Images already owned by
// the product only get their sort order refreshed; images owned by another
// product (or none) are cloned so the source product keeps its asset. The
// returned mapping translates original ids to clone ids, which callers use
// to resolve a main-image reference that may point at an original.
type ImageService struct {
	imageRepo repositories.ProductImageRepositoryImpl
}

func NewImageService(imageRepo repositories.ProductImageRepositoryImpl) *ImageService {
	return &ImageService{imageRepo: imageRepo}
}

func (s *ImageService) Attach(ctx context.Context, productID, actorID string, imageIDs []string) ([]string, map[string]string, error) {
	resolved := make([]string, 0, len(imageIDs))
	mapping := make(map[string]string)

	for sortOrder, imageID := range imageIDs {
		if imageID == "" {
			continue
		}
		image, err := s.imageRepo.GetByID(ctx, imageID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load image %s: %w", imageID, err)
		}
		if image == nil {
			log.Printf("Attach: image %s not found, skipping", imageID)
			continue
		}

		if image.ProductID == productID {
			if err := s.imageRepo.UpdateSortOrder(ctx, image.ID, sortOrder); err != nil {
				return nil, nil, fmt.Errorf("failed to reorder image %s: %w", image.ID, err)
			}
			resolved = append(resolved, image.ID)
			continue
		}

		clone := &models.ProductImage{
			ID:         uuid.New().String(),
			ProductID:  productID,
			URL:        image.URL,
			StorageKey: image.StorageKey,
			AltText:    image.AltText,
			SortOrder:  sortOrder,
			CreatedBy:  actorID,
		}
		if err := s.imageRepo.Create(ctx, clone); err != nil {
			return nil, nil, fmt.Errorf("failed to clone image %s: %w", image.ID, err)
		}
		mapping[image.ID] = clone.ID
		resolved = append(resolved, clone.ID)
	}

	return resolved, mapping, nil
}

// ResolveMainImage translates a requested main-image id through the clone
// mapping and confirms it is among the resolved ids.
func ResolveMainImage(requested string, resolved []string, mapping map[string]string) string {
	if requested == "" {
		if len(resolved) > 0 {
			return resolved[0]
		}
		return ""
	}
	if clone, ok := mapping[requested]; ok {
		requested = clone
	}
	for _, id := range resolved {
		if id == requested {
			return id
		}
	}
	if len(resolved) > 0 {
		return resolved[0]
	}
	return ""
}

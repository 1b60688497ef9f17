package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velamart/catalog-admin/app/helpers"
)

var ErrInvalidSlug = errors.New("name produces an empty slug")

// ExistsFunc reports whether a candidate value is already taken, excluding
// the record being updated.
type ExistsFunc func(ctx context.Context, value, excludeID string) (bool, error)

const slugMaxAttempts = 10

type SlugService struct{}

func NewSlugService() *SlugService {
	return &SlugService{}
}

// UniqueSlug normalizes base and returns the first free slug, trying
// "-2".."-10" suffixes and finally a time-derived suffix so the loop always
// terminates.
func (s *SlugService) UniqueSlug(ctx context.Context, base, excludeID string, exists ExistsFunc) (string, error) {
	slug := helpers.Slugify(base)
	if slug == "" {
		return "", ErrInvalidSlug
	}

	taken, err := exists(ctx, slug, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check slug %q: %w", slug, err)
	}
	if !taken {
		return slug, nil
	}

	for i := 2; i <= slugMaxAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli()), nil
}

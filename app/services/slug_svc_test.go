package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func existsSet(taken ...string) ExistsFunc {
	set := make(map[string]bool, len(taken))
	for _, v := range taken {
		set[v] = true
	}
	return func(ctx context.Context, value, excludeID string) (bool, error) {
		return set[value], nil
	}
}

func TestUniqueSlugFree(t *testing.T) {
	svc := NewSlugService()
	got, err := svc.UniqueSlug(context.Background(), "Red Shoe", "", existsSet())
	if err != nil {
		t.Fatalf("UniqueSlug: %v", err)
	}
	if got != "red-shoe" {
		t.Errorf("UniqueSlug = %q, want %q", got, "red-shoe")
	}
}

func TestUniqueSlugCollision(t *testing.T) {
	svc := NewSlugService()
	got, err := svc.UniqueSlug(context.Background(), "Red Shoe", "", existsSet("red-shoe", "red-shoe-2"))
	if err != nil {
		t.Fatalf("UniqueSlug: %v", err)
	}
	if got != "red-shoe-3" {
		t.Errorf("UniqueSlug = %q, want %q", got, "red-shoe-3")
	}
}

func TestUniqueSlugExhausted(t *testing.T) {
	taken := []string{"red-shoe"}
	for i := 2; i <= 10; i++ {
		taken = append(taken, "red-shoe-"+strconv.Itoa(i))
	}
	svc := NewSlugService()
	got, err := svc.UniqueSlug(context.Background(), "Red Shoe", "", existsSet(taken...))
	if err != nil {
		t.Fatalf("UniqueSlug: %v", err)
	}
	if !strings.HasPrefix(got, "red-shoe-") {
		t.Errorf("UniqueSlug = %q, want time-suffixed red-shoe-*", got)
	}
	if len(got) <= len("red-shoe-10") {
		t.Errorf("UniqueSlug = %q, expected a timestamp suffix", got)
	}
}

func TestUniqueSlugInvalid(t *testing.T) {
	svc := NewSlugService()
	_, err := svc.UniqueSlug(context.Background(), "!!!", "", existsSet())
	if !errors.Is(err, ErrInvalidSlug) {
		t.Errorf("UniqueSlug(!!!) error = %v, want ErrInvalidSlug", err)
	}
}

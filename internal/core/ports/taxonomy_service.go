package ports

import (
	"context"

	"github.com/novafin/finance-system/internal/core/domain"
)

// AddCategoryInput carries the fields of a new category. Icon and Color fall
// back to domain defaults when empty.
type AddCategoryInput struct {
	Name  string
	Icon  string
	Color string
}

// TaxonomyService manages per-user category sets with a transparent fallback
// to the built-in defaults.
type TaxonomyService interface {
	// CategoriesFor returns the session user's stored taxonomy, or the default
	// taxonomy when none is stored (also for a nil session). Never writes.
	CategoriesFor(ctx context.Context, session *domain.Session) (domain.Taxonomy, error)
	// ReplaceCategories overwrites the session user's taxonomy wholesale.
	ReplaceCategories(ctx context.Context, session *domain.Session, taxonomy domain.Taxonomy) error
	// AddCategory appends a category to the resolved taxonomy (expanding the
	// defaults on first customization) and persists the result.
	AddCategory(ctx context.Context, session *domain.Session, kind domain.CategoryKind, input AddCategoryInput) (*domain.Category, error)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
)

// TaxonomyService manages per-user category sets. The categories blob maps
// user id to taxonomy; users absent from the map see the built-in defaults.
type TaxonomyService struct {
	store ports.BlobStore
	log   zerolog.Logger
}

func NewTaxonomyService(store ports.BlobStore, log zerolog.Logger) *TaxonomyService {
	return &TaxonomyService{store: store, log: log}
}

// CategoriesFor resolves the taxonomy visible to the session. Reading never
// writes anything, so first-time users keep seeing the defaults until they
// customize.
func (s *TaxonomyService) CategoriesFor(ctx context.Context, session *domain.Session) (domain.Taxonomy, error) {
	if session == nil {
		return domain.DefaultTaxonomy(), nil
	}

	byUser, err := s.loadAll(ctx)
	if err != nil {
		return domain.Taxonomy{}, err
	}

	taxonomy, ok := byUser[session.ID]
	if !ok {
		return domain.DefaultTaxonomy(), nil
	}
	return taxonomy, nil
}

// ReplaceCategories overwrites the session user's taxonomy wholesale. No
// merging and no duplicate-name validation, matching the replace contract.
func (s *TaxonomyService) ReplaceCategories(ctx context.Context, session *domain.Session, taxonomy domain.Taxonomy) error {
	if session == nil {
		return domain.ErrUnauthenticated
	}

	byUser, err := s.loadAll(ctx)
	if err != nil {
		return err
	}

	byUser[session.ID] = taxonomy
	if err := saveJSON(ctx, s.store, ports.KeyCategories, byUser); err != nil {
		return err
	}

	s.log.Info().Str("user_id", session.ID).Msg("taxonomy replaced")
	return nil
}

// AddCategory appends a category to the resolved taxonomy and persists it.
// For a user still on the defaults this is the moment the defaults get copied
// into their own stored taxonomy.
func (s *TaxonomyService) AddCategory(ctx context.Context, session *domain.Session, kind domain.CategoryKind, input ports.AddCategoryInput) (*domain.Category, error) {
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}

	taxonomy, err := s.CategoriesFor(ctx, session)
	if err != nil {
		return nil, err
	}

	category := domain.Category{
		ID:    newID(),
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
	}
	if category.Icon == "" {
		category.Icon = domain.DefaultCategoryIcon
	}
	if category.Color == "" {
		category.Color = domain.DefaultCategoryColor
	}

	group := taxonomy.Group(kind)
	*group = append(*group, category)

	if err := s.ReplaceCategories(ctx, session, taxonomy); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *TaxonomyService) loadAll(ctx context.Context) (map[string]domain.Taxonomy, error) {
	byUser := make(map[string]domain.Taxonomy)
	if _, err := loadJSON(ctx, s.store, ports.KeyCategories, &byUser); err != nil {
		return nil, err
	}
	return byUser, nil
}

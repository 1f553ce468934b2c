package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
	"github.com/novafin/finance-system/internal/infrastructure/db/memory"
)

func TestTaxonomyService_Defaults(t *testing.T) {
	store := memory.NewBlobStore()
	svc := NewTaxonomyService(store, zerolog.Nop())
	ctx := context.Background()

	for _, session := range []*domain.Session{nil, sessionFor("u1")} {
		taxonomy, err := svc.CategoriesFor(ctx, session)
		if err != nil {
			t.Fatalf("CategoriesFor returned error: %v", err)
		}
		if len(taxonomy.Expenses) != 7 || len(taxonomy.Incomes) != 4 {
			t.Fatalf("expected 7 expense + 4 income defaults, got %d/%d",
				len(taxonomy.Expenses), len(taxonomy.Incomes))
		}
	}

	// Reading must never persist the defaults.
	if _, ok, _ := store.Get(ctx, ports.KeyCategories); ok {
		t.Fatalf("CategoriesFor must not write to the store")
	}
}

func TestTaxonomyService_Replace(t *testing.T) {
	svc := NewTaxonomyService(memory.NewBlobStore(), zerolog.Nop())
	ctx := context.Background()
	session := sessionFor("u1")

	custom := domain.Taxonomy{
		Expenses: []domain.Category{{ID: "x1", Name: "Mascotas", Icon: "🐕", Color: "#000000"}},
		Incomes:  []domain.Category{{ID: "x2", Name: "Ventas", Icon: "🛒", Color: "#111111"}},
	}
	if err := svc.ReplaceCategories(ctx, session, custom); err != nil {
		t.Fatalf("ReplaceCategories returned error: %v", err)
	}

	got, err := svc.CategoriesFor(ctx, session)
	if err != nil {
		t.Fatalf("CategoriesFor returned error: %v", err)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Name != "Mascotas" {
		t.Fatalf("expected the replaced taxonomy, got %+v", got)
	}

	// Another user keeps seeing the defaults.
	other, _ := svc.CategoriesFor(ctx, sessionFor("u2"))
	if len(other.Expenses) != 7 {
		t.Fatalf("user u2 must keep the defaults, got %d expenses", len(other.Expenses))
	}
}

func TestTaxonomyService_Replace_Unauthenticated(t *testing.T) {
	svc := NewTaxonomyService(memory.NewBlobStore(), zerolog.Nop())

	err := svc.ReplaceCategories(context.Background(), nil, domain.DefaultTaxonomy())
	if err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestTaxonomyService_AddCategory_FillsDefaults(t *testing.T) {
	svc := NewTaxonomyService(memory.NewBlobStore(), zerolog.Nop())
	ctx := context.Background()
	session := sessionFor("u1")

	category, err := svc.AddCategory(ctx, session, domain.KindExpense, ports.AddCategoryInput{Name: "Mascotas"})
	if err != nil {
		t.Fatalf("AddCategory returned error: %v", err)
	}
	if category.Icon != domain.DefaultCategoryIcon || category.Color != domain.DefaultCategoryColor {
		t.Fatalf("expected default icon/color, got %q %q", category.Icon, category.Color)
	}
	if category.ID == "" {
		t.Fatalf("expected a generated id")
	}

	// First customization expands the defaults into the stored taxonomy.
	got, _ := svc.CategoriesFor(ctx, session)
	if len(got.Expenses) != 8 {
		t.Fatalf("expected defaults plus the new category (8), got %d", len(got.Expenses))
	}
	if got.Expenses[7].Name != "Mascotas" {
		t.Fatalf("expected the new category appended last, got %+v", got.Expenses[7])
	}
}

func TestTaxonomyService_AddCategory_IncomeKind(t *testing.T) {
	svc := NewTaxonomyService(memory.NewBlobStore(), zerolog.Nop())
	ctx := context.Background()
	session := sessionFor("u1")

	if _, err := svc.AddCategory(ctx, session, domain.KindIncome, ports.AddCategoryInput{
		Name: "Arriendos", Icon: "🏢", Color: "#123456",
	}); err != nil {
		t.Fatalf("AddCategory returned error: %v", err)
	}

	got, _ := svc.CategoriesFor(ctx, session)
	if len(got.Incomes) != 5 || len(got.Expenses) != 7 {
		t.Fatalf("expected 5 incomes / 7 expenses, got %d/%d", len(got.Incomes), len(got.Expenses))
	}
}

func TestTaxonomyService_AddCategory_Unauthenticated(t *testing.T) {
	svc := NewTaxonomyService(memory.NewBlobStore(), zerolog.Nop())

	_, err := svc.AddCategory(context.Background(), nil, domain.KindExpense, ports.AddCategoryInput{Name: "X"})
	if err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

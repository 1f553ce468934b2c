package domain

// CategoryKind selects one of the two taxonomy groups.
type CategoryKind string

const (
	KindExpense CategoryKind = "gastos"
	KindIncome  CategoryKind = "ingresos"
)

// Defaults applied when a new category omits icon or color.
const (
	DefaultCategoryIcon  = "📦"
	DefaultCategoryColor = "#6B7280"
)

// Category is a named, iconized transaction label.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Icon  string `json:"icono"`
	Color string `json:"color"`
}

// Taxonomy is one user's category set, split by kind.
type Taxonomy struct {
	Expenses []Category `json:"gastos"`
	Incomes  []Category `json:"ingresos"`
}

// Group returns the slice for the given kind. Unknown kinds map to expenses.
func (t *Taxonomy) Group(kind CategoryKind) *[]Category {
	if kind == KindIncome {
		return &t.Incomes
	}
	return &t.Expenses
}

// DefaultTaxonomy returns a fresh copy of the built-in category set shown to
// users with no stored taxonomy. It is never persisted until the user's first
// customization; returning a copy keeps the built-in set immutable.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Expenses: []Category{
			{ID: "1", Name: "Alimentación", Icon: "🍔", Color: "#F59E0B"},
			{ID: "2", Name: "Transporte", Icon: "🚗", Color: "#3B82F6"},
			{ID: "3", Name: "Entretenimiento", Icon: "🎮", Color: "#8B5CF6"},
			{ID: "4", Name: "Educación", Icon: "📚", Color: "#10B981"},
			{ID: "5", Name: "Salud", Icon: "🏥", Color: "#EF4444"},
			{ID: "6", Name: "Vivienda", Icon: "🏠", Color: "#6366F1"},
			{ID: "7", Name: "Otros", Icon: "📦", Color: "#6B7280"},
		},
		Incomes: []Category{
			{ID: "8", Name: "Salario", Icon: "💼", Color: "#10B981"},
			{ID: "9", Name: "Freelance", Icon: "💻", Color: "#3B82F6"},
			{ID: "10", Name: "Inversiones", Icon: "📈", Color: "#8B5CF6"},
			{ID: "11", Name: "Otros", Icon: "💰", Color: "#6B7280"},
		},
	}
}

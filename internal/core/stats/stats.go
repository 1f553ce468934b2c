// Package stats computes derived views over an already-loaded transaction
// list. Nothing here touches storage and nothing is cached: every aggregate
// is recomputed from the slice it is given, so there is no invalidation to
// get wrong.
package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/novafin/finance-system/internal/core/domain"
)

// DefaultSpendWindowDays is the window used for the daily average when the
// caller does not pick one.
const DefaultSpendWindowDays = 30

// BalanceSummary is the headline aggregate: total incomes, total expenses and
// their difference.
type BalanceSummary struct {
	Incomes  float64 `json:"ingresos"`
	Expenses float64 `json:"gastos"`
	Balance  float64 `json:"balance"`
}

// Balance sums the transaction amounts per type. An empty input yields all
// zeros.
func Balance(txns []domain.Transaction) BalanceSummary {
	var b BalanceSummary
	for _, t := range txns {
		switch t.Type {
		case domain.TypeIncome:
			b.Incomes += t.Amount
		case domain.TypeExpense:
			b.Expenses += t.Amount
		}
	}
	b.Balance = b.Incomes - b.Expenses
	return b
}

// SortKey selects the ordering applied by FilterSort.
type SortKey string

const (
	SortDateDesc   SortKey = "fecha-desc"
	SortDateAsc    SortKey = "fecha-asc"
	SortAmountDesc SortKey = "monto-desc"
	SortAmountAsc  SortKey = "monto-asc"
)

// Filter is a set of independently composable constraints. Zero values mean
// "no constraint"; the zero SortKey falls back to SortDateDesc, the history
// view's default ordering.
type Filter struct {
	Type     domain.TransactionType
	Category string
	// Search matches case-insensitively against category or description.
	Search   string
	DateFrom time.Time
	DateTo   time.Time
	SortBy   SortKey
}

// FilterSort returns the transactions matching every set constraint, ordered
// by the requested key. Sorting is stable, so ties keep storage order. The
// input slice is never mutated.
func FilterSort(txns []domain.Transaction, f Filter) []domain.Transaction {
	result := make([]domain.Transaction, 0, len(txns))
	search := strings.ToLower(f.Search)

	for _, t := range txns {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Category), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if !f.DateFrom.IsZero() && t.Date.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && t.Date.After(f.DateTo) {
			continue
		}
		result = append(result, t)
	}

	switch f.SortBy {
	case SortDateAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	case SortAmountDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Amount > result[j].Amount })
	case SortAmountAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Amount < result[j].Amount })
	default: // SortDateDesc
		sort.SliceStable(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	}

	return result
}

// CategoryShare is one slice of a per-category breakdown. Percentage is
// pre-formatted to one decimal, the shape the pie chart consumes.
type CategoryShare struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage string  `json:"percentage"`
}

// CategoryBreakdown groups transactions of the given type by category, sums
// each group and computes its share of the group total, sorted by value
// descending.
func CategoryBreakdown(txns []domain.Transaction, tipo domain.TransactionType) []CategoryShare {
	totals := make(map[string]float64)
	var names []string // first-seen order, for deterministic ties
	var groupTotal float64

	for _, t := range txns {
		if t.Type != tipo {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			names = append(names, t.Category)
		}
		totals[t.Category] += t.Amount
		groupTotal += t.Amount
	}
	if len(names) == 0 {
		return []CategoryShare{}
	}

	shares := make([]CategoryShare, 0, len(names))
	for _, name := range names {
		value := totals[name]
		shares = append(shares, CategoryShare{
			Name:       name,
			Value:      value,
			Percentage: strconv.FormatFloat(value/groupTotal*100, 'f', 1, 64),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Value > shares[j].Value })
	return shares
}

// MonthlyPoint is one calendar-month bucket of the evolution chart.
type MonthlyPoint struct {
	Month    string  `json:"mes"`
	Incomes  float64 `json:"ingresos"`
	Expenses float64 `json:"gastos"`
	Balance  float64 `json:"balance"`
}

// MonthlyEvolution buckets transactions by the calendar year-month of their
// date and sums each type per bucket, sorted ascending by month key.
func MonthlyEvolution(txns []domain.Transaction) []MonthlyPoint {
	byMonth := make(map[string]*MonthlyPoint)
	for _, t := range txns {
		key := t.Date.Format("2006-01")
		p, ok := byMonth[key]
		if !ok {
			p = &MonthlyPoint{Month: key}
			byMonth[key] = p
		}
		if t.Type == domain.TypeIncome {
			p.Incomes += t.Amount
		} else {
			p.Expenses += t.Amount
		}
	}

	points := make([]MonthlyPoint, 0, len(byMonth))
	for _, p := range byMonth {
		p.Balance = p.Incomes - p.Expenses
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

// SavingsRate is the balance as a percentage of income, rounded to one
// decimal. Zero income yields zero.
func SavingsRate(balance, incomes float64) float64 {
	if incomes <= 0 {
		return 0
	}
	return round1(balance / incomes * 100)
}

// AverageDailySpend sums expenses dated within the inclusive window
// [now-windowDays, now] and divides by the window length. Dividing by the
// window rather than the active-day count makes this an amortized average.
func AverageDailySpend(txns []domain.Transaction, windowDays int, now time.Time) float64 {
	if windowDays <= 0 {
		windowDays = DefaultSpendWindowDays
	}
	from := now.AddDate(0, 0, -windowDays)

	var total float64
	for _, t := range txns {
		if t.Type != domain.TypeExpense {
			continue
		}
		if t.Date.Before(from) || t.Date.After(now) {
			continue
		}
		total += t.Amount
	}
	return total / float64(windowDays)
}

// Summary is the statistics-page roll-up.
type Summary struct {
	Balance      BalanceSummary `json:"balance"`
	SavingsRate  float64        `json:"porcentajeAhorro"`
	DailyAverage float64        `json:"promedioDiario"`
	Total        int            `json:"cantidadTransacciones"`
	Expenses     int            `json:"cantidadGastos"`
	Incomes      int            `json:"cantidadIngresos"`
}

// Summarize computes the full statistics roll-up in one pass over the list.
func Summarize(txns []domain.Transaction, now time.Time) Summary {
	balance := Balance(txns)
	s := Summary{
		Balance:      balance,
		SavingsRate:  SavingsRate(balance.Balance, balance.Incomes),
		DailyAverage: AverageDailySpend(txns, DefaultSpendWindowDays, now),
		Total:        len(txns),
	}
	for _, t := range txns {
		switch t.Type {
		case domain.TypeExpense:
			s.Expenses++
		case domain.TypeIncome:
			s.Incomes++
		}
	}
	return s
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

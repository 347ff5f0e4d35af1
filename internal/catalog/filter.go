// Package catalog owns the product collection: the pure filter/sort engine
// and the state manager that keeps a derived, filtered view consistent with
// the authoritative collection.
package catalog

import (
	"sort"
	"strings"

	"github.com/yourorg/stockroom/internal/models"
)

// ApplyFilters returns the subset of products matching every active
// criterion in f, ordered by f.SortBy/f.SortOrder. The input slice is never
// mutated. The sort is stable: products with equal keys keep their relative
// insertion order regardless of direction.
//
// Stages run in a fixed order, each narrowing the candidate set: search,
// category, status, minimum price, maximum price, then the sort.
func ApplyFilters(products []models.Product, f models.Filters) []models.Product {
	filtered := make([]models.Product, len(products))
	copy(filtered, products)

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		filtered = keep(filtered, func(p models.Product) bool {
			return matchesSearch(p, needle)
		})
	}
	if f.Category != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Category == f.Category
		})
	}
	if f.Status != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return string(p.Status) == f.Status
		})
	}
	if f.MinPrice != nil {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Price >= *f.MinPrice
		})
	}
	if f.MaxPrice != nil {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Price <= *f.MaxPrice
		})
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		c := compareBy(filtered[i], filtered[j], f.SortBy)
		if f.SortOrder == models.SortDesc {
			return c > 0
		}
		return c < 0
	})

	return filtered
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p models.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.SKU), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// compareBy orders a against b on the given key: text keys compare
// case-insensitively, numeric keys numerically, createdAt as a timestamp.
func compareBy(a, b models.Product, key models.SortKey) int {
	switch key {
	case models.SortByPrice:
		return compareFloat(a.Price, b.Price)
	case models.SortByStock:
		return compareFloat(float64(a.Stock), float64(b.Stock))
	case models.SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

package repository

import (
	"sort"
	"strings"

	"storefront/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the query pipeline. Any other value leaves the
// collection in insertion order.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortName      = "name"
)

// ProductFilter holds the optional query parameters of a list request.
// Pointer fields distinguish "absent" from zero.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
	Sort     string
	Limit    *int
}

// matchesFilter reports whether a product passes every active predicate.
func matchesFilter(p model.Product, f ProductFilter) bool {
	if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

// applyFilter runs the pipeline over a snapshot: predicates, then sort, then
// limit. The snapshot itself is never reordered; sorting operates on the
// filtered copy only.
func applyFilter(snapshot []model.Product, f ProductFilter) []model.Product {
	filtered := []model.Product{}
	for _, p := range snapshot {
		if matchesFilter(p, f) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, f.Sort)

	if f.Limit != nil && *f.Limit > 0 && *f.Limit < len(filtered) {
		filtered = filtered[:*f.Limit]
	}

	return filtered
}

// sortProducts orders products in place by the given key. Sorting is stable:
// equal keys keep their relative insertion order.
func sortProducts(products []model.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortName:
		// Collation rather than byte order; catalogue names are not ASCII-only.
		c := collate.New(language.Und, collate.Loose)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

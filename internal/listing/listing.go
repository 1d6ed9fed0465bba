// Package listing derives an ordered product list from the catalog and a
// set of filter criteria. It is a pure transformation: no state, no errors,
// and an empty result is valid output.
package listing

import (
	"sort"
	"strings"

	"github.com/luxeshop/storefront/internal/entity"
)

// Apply filters products by every active criterion and then sorts the
// survivors by the chosen key. The input slice is never mutated.
func Apply(products []entity.Product, c entity.FilterCriteria) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	sortProducts(out, c.Sort)
	return out
}

func matches(p entity.Product, c entity.FilterCriteria) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	if len(c.Categories) > 0 && !contains(c.Categories, p.Category) {
		return false
	}

	// The price range is checked against the base price; the price sorts
	// below use the discounted price. Intentional asymmetry.
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}

	if len(c.Tags) > 0 && !anyOverlap(c.Tags, p.Tags) {
		return false
	}

	return true
}

// sortProducts orders products by the given key. The sort is stable, so
// ties keep catalog order.
func sortProducts(products []entity.Product, key string) {
	switch key {
	case entity.SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DisplayPrice() < products[j].DisplayPrice()
		})
	case entity.SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DisplayPrice() > products[j].DisplayPrice()
		})
	case entity.SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case entity.SortLatest:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anyOverlap(selected, tags []string) bool {
	for _, s := range selected {
		if contains(tags, s) {
			return true
		}
	}
	return false
}

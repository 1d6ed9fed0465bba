// Package catalog answers read-only queries over the fixed product list.
package catalog

import (
	"strings"

	"github.com/luxeshop/storefront/internal/entity"
)

// Store holds the catalog. It is read-only after construction, so it needs
// no locking.
type Store struct {
	products []entity.Product
}

// New creates a Store over the given products. Catalog order is the order
// given here and is preserved by every query.
func New(products []entity.Product) *Store {
	return &Store{products: products}
}

// All returns every product in catalog order.
func (s *Store) All() []entity.Product {
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID returns the product with the given id. A missing id is an absent
// result, not an error.
func (s *Store) ByID(id string) (entity.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// ByCategory returns all products with an exact category match.
func (s *Store) ByCategory(category string) []entity.Product {
	var out []entity.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns all products flagged as featured.
func (s *Store) Featured() []entity.Product {
	var out []entity.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, description, or any tag contains the
// query, case-insensitively.
func (s *Store) Search(query string) []entity.Product {
	q := strings.ToLower(query)
	var out []entity.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			anyTagContains(p.Tags, q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the unique category labels in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			out = append(out, p.Category)
		}
	}
	return out
}

// Tags returns the unique tag labels in first-seen order.
func (s *Store) Tags() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		for _, t := range p.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	return out
}

func anyTagContains(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

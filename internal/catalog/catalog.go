package catalog

import "voltly/internal/model"

// Catalog is the immutable in-memory product catalogue. It is built once
// at startup from the static product data and never mutated.
type Catalog struct {
	byCategory map[model.Category][]model.Product
	byID       map[int]model.Product
}

// New builds the catalogue from the built-in product data.
func New() *Catalog {
	return newFromProducts(products)
}

func newFromProducts(all []model.Product) *Catalog {
	c := &Catalog{
		byCategory: make(map[model.Category][]model.Product),
		byID:       make(map[int]model.Product, len(all)),
	}
	for _, p := range all {
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
		c.byID[p.ID] = p
	}
	return c
}

// ByCategory returns the products of a category in catalogue order.
func (c *Catalog) ByCategory(category model.Category) []model.Product {
	return c.byCategory[category]
}

// ByID returns a product by its identifier.
func (c *Catalog) ByID(id int) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Brands returns the distinct brands present in a category, in catalogue
// order.
func (c *Catalog) Brands(category model.Category) []string {
	seen := make(map[string]struct{})
	var brands []string
	for _, p := range c.byCategory[category] {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	return brands
}

// Size returns the total number of products in the catalogue.
func (c *Catalog) Size() int {
	return len(c.byID)
}

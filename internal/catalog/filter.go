package catalog

import (
	"sort"
	"strings"

	"voltly/internal/model"
)

// SortOrder selects price ordering of filtered results.
type SortOrder string

const (
	SortNone      SortOrder = "none"
	SortPriceAsc  SortOrder = "low-to-high"
	SortPriceDesc SortOrder = "high-to-low"
)

// Valid reports whether the sort order is known.
func (s SortOrder) Valid() bool {
	return s == SortNone || s == SortPriceAsc || s == SortPriceDesc
}

// FilterState captures the selections of every filter dimension. An empty
// dimension imposes no constraint.
type FilterState struct {
	Brands      []string
	Sizes       []string
	SqftRanges  []string
	PriceRanges []string
	Features    []string
	PriceSort   SortOrder
}

// ActiveCount returns the number of active filter selections, counting a
// non-default sort as one.
func (f *FilterState) ActiveCount() int {
	n := len(f.Brands) + len(f.Sizes) + len(f.SqftRanges) + len(f.PriceRanges) + len(f.Features)
	if f.PriceSort != "" && f.PriceSort != SortNone {
		n++
	}
	return n
}

// Filter narrows a category's product list to those matching the filter
// state and applies price sorting. Within a dimension a product must match
// at least one selected value; across dimensions all must pass. Sorting is
// stable; SortNone preserves catalogue order.
func Filter(products []model.Product, category model.Category, state FilterState) []model.Product {
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, category, &state) {
			filtered = append(filtered, p)
		}
	}

	switch state.PriceSort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	return filtered
}

func matches(p *model.Product, category model.Category, state *FilterState) bool {
	if len(state.Brands) > 0 && !contains(state.Brands, p.Brand) {
		return false
	}

	if len(state.Sizes) > 0 {
		// Substring match so range labels qualify for their endpoints:
		// a "2-3 ton" unit shows under the "3 ton" filter.
		size := productSize(p, category)
		if !anyMatch(state.Sizes, func(s string) bool { return size != "" && strings.Contains(size, s) }) {
			return false
		}
	}

	if len(state.SqftRanges) > 0 {
		sqft := productSqftRange(p, category)
		if !anyMatch(state.SqftRanges, func(band string) bool { return matchesSqftBand(sqft, band) }) {
			return false
		}
	}

	if len(state.PriceRanges) > 0 {
		if !anyMatch(state.PriceRanges, func(band string) bool { return matchesPriceBand(p.Price, band) }) {
			return false
		}
	}

	if len(state.Features) > 0 {
		if !anyMatch(state.Features, func(feature string) bool { return hasFeature(p, feature) }) {
			return false
		}
	}

	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func anyMatch(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if pred(v) {
			return true
		}
	}
	return false
}

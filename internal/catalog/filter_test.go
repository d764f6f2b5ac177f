package catalog

import (
	"testing"

	"voltly/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heatPumpFixtures() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Acme 2 ton Heat Pump", Price: 4500, Brand: "Acme", Rebate: true,
			Category: model.CategoryHeatPumps, Features: []string{"Variable speed compressor"}},
		{ID: 2, Name: "Acme 2-3 ton Heat Pump", Price: 6500, Brand: "Acme",
			Category: model.CategoryHeatPumps, Features: []string{"WiFi thermostat"}},
		{ID: 3, Name: "Borealis 3 ton Heat Pump", Price: 8500, Brand: "Borealis", Rebate: true,
			Category: model.CategoryHeatPumps, EnergyStar: true, Features: []string{"Quiet operation"}},
		{ID: 4, Name: "Borealis 4 ton Heat Pump", Price: 3500, Brand: "Borealis",
			Category: model.CategoryHeatPumps, Features: []string{}},
	}
}

func TestFilter_EmptyStatePassesAll(t *testing.T) {
	products := heatPumpFixtures()
	result := Filter(products, model.CategoryHeatPumps, FilterState{})
	require.Len(t, result, len(products))
	// Catalogue order preserved
	for i, p := range products {
		assert.Equal(t, p.ID, result[i].ID)
	}
}

func TestFilter_BrandDimension(t *testing.T) {
	products := heatPumpFixtures()

	result := Filter(products, model.CategoryHeatPumps, FilterState{Brands: []string{"Acme"}})
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].ID)
	assert.Equal(t, 2, result[1].ID)

	// OR within the dimension
	result = Filter(products, model.CategoryHeatPumps, FilterState{Brands: []string{"Acme", "Borealis"}})
	assert.Len(t, result, 4)
}

func TestFilter_SizeDimension(t *testing.T) {
	products := heatPumpFixtures()

	tests := []struct {
		name        string
		sizes       []string
		expectedIDs []int
	}{
		{"2 ton does not match 2-3 ton", []string{"2 ton"}, []int{1}},
		{"2-3 ton exact", []string{"2-3 ton"}, []int{2}},
		{"3 ton includes the 2-3 ton range", []string{"3 ton"}, []int{2, 3}},
		{"multiple sizes", []string{"3 ton", "4 ton"}, []int{2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(products, model.CategoryHeatPumps, FilterState{Sizes: tt.sizes})
			ids := make([]int, len(result))
			for i, p := range result {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilter_SqftDimension(t *testing.T) {
	products := heatPumpFixtures()

	// "< 1,000 sq ft" maps only to the 2 ton coverage range
	result := Filter(products, model.CategoryHeatPumps, FilterState{SqftRanges: []string{"< 1,000 sq ft"}})
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)

	// "2,500+ sq ft" includes the 4 ton range
	result = Filter(products, model.CategoryHeatPumps, FilterState{SqftRanges: []string{"2,500+ sq ft"}})
	require.Len(t, result, 1)
	assert.Equal(t, 4, result[0].ID)
}

func TestFilter_PriceDimension(t *testing.T) {
	products := heatPumpFixtures()

	tests := []struct {
		band        string
		expectedIDs []int
	}{
		{"< $4,000", []int{4}},
		{"$4,000 - $6,000", []int{1}},
		{"$6,000 - $8,000", []int{2}},
		{"$8,000+", []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			result := Filter(products, model.CategoryHeatPumps, FilterState{PriceRanges: []string{tt.band}})
			ids := make([]int, len(result))
			for i, p := range result {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}

	// Band boundaries are inclusive on the middle bands
	boundary := []model.Product{{ID: 9, Name: "Edge 2 ton Heat Pump", Price: 6000, Category: model.CategoryHeatPumps}}
	assert.Len(t, Filter(boundary, model.CategoryHeatPumps, FilterState{PriceRanges: []string{"$4,000 - $6,000"}}), 1)
	assert.Len(t, Filter(boundary, model.CategoryHeatPumps, FilterState{PriceRanges: []string{"$6,000 - $8,000"}}), 1)
}

func TestFilter_FeatureDimension(t *testing.T) {
	products := heatPumpFixtures()

	result := Filter(products, model.CategoryHeatPumps, FilterState{Features: []string{"Rebate Eligible"}})
	require.Len(t, result, 2)

	// Feature falls back to free-text matching
	result = Filter(products, model.CategoryHeatPumps, FilterState{Features: []string{"Variable Speed"}})
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)

	// Energy Star flag
	result = Filter(products, model.CategoryHeatPumps, FilterState{Features: []string{"Energy Star"}})
	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].ID)
}

func TestFilter_AndAcrossDimensions(t *testing.T) {
	products := heatPumpFixtures()

	result := Filter(products, model.CategoryHeatPumps, FilterState{
		Brands:      []string{"Borealis"},
		PriceRanges: []string{"$8,000+"},
	})
	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].ID)

	result = Filter(products, model.CategoryHeatPumps, FilterState{
		Brands: []string{"Acme"},
		Sizes:  []string{"4 ton"},
	})
	assert.Empty(t, result)
}

func TestFilter_PriceSort(t *testing.T) {
	products := heatPumpFixtures()

	asc := Filter(products, model.CategoryHeatPumps, FilterState{PriceSort: SortPriceAsc})
	require.Len(t, asc, 4)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := Filter(products, model.CategoryHeatPumps, FilterState{PriceSort: SortPriceDesc})
	require.Len(t, desc, 4)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestFilter_SortStability(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "A 2 ton Heat Pump", Price: 5000, Category: model.CategoryHeatPumps},
		{ID: 2, Name: "B 2 ton Heat Pump", Price: 5000, Category: model.CategoryHeatPumps},
		{ID: 3, Name: "C 2 ton Heat Pump", Price: 5000, Category: model.CategoryHeatPumps},
	}

	sorted := Filter(products, model.CategoryHeatPumps, FilterState{PriceSort: SortPriceAsc})
	require.Len(t, sorted, 3)
	assert.Equal(t, 1, sorted[0].ID)
	assert.Equal(t, 2, sorted[1].ID)
	assert.Equal(t, 3, sorted[2].ID)
}

func TestFilter_FurnaceModelNumberBands(t *testing.T) {
	furnaces := []model.Product{
		{ID: 11, Name: "Goodman 96% Furnace 045", Price: 3500, Category: model.CategoryFurnaces},
		{ID: 12, Name: "Goodman 96% Furnace 070", Price: 4000, Category: model.CategoryFurnaces},
		{ID: 13, Name: "Lennox Furnace 090", Price: 5300, Category: model.CategoryFurnaces},
	}

	result := Filter(furnaces, model.CategoryFurnaces, FilterState{Sizes: []string{"70K BTU"}})
	require.Len(t, result, 1)
	assert.Equal(t, 12, result[0].ID)

	result = Filter(furnaces, model.CategoryFurnaces, FilterState{SqftRanges: []string{"2,400+ sq ft"}})
	require.Len(t, result, 1)
	assert.Equal(t, 13, result[0].ID)
}

func TestFilter_TanklessNPVariant(t *testing.T) {
	tankless := []model.Product{
		{ID: 21, Name: "Rinnai 160K Tankless", Price: 3300, Category: model.CategoryTankless},
		{ID: 22, Name: "Navien 199K Tankless", Price: 4200, Category: model.CategoryTankless},
		{ID: 23, Name: "Rinnai 199K NP Tankless", Price: 4900, Category: model.CategoryTankless},
	}

	result := Filter(tankless, model.CategoryTankless, FilterState{Sizes: []string{"199K NP"}})
	require.Len(t, result, 1)
	assert.Equal(t, 23, result[0].ID)

	result = Filter(tankless, model.CategoryTankless, FilterState{Sizes: []string{"199K BTU"}})
	require.Len(t, result, 1)
	assert.Equal(t, 22, result[0].ID)
}

func TestFilter_BatterySizeBands(t *testing.T) {
	batteries := []model.Product{
		{ID: 31, Name: "EcoVolt 5kWh Smart Battery", Price: 4499, Category: model.CategorySmartBattery},
		{ID: 32, Name: "PowerCell 15kWh Home Battery", Price: 10999, Category: model.CategorySmartBattery},
		{ID: 33, Name: "PowerCell 20kWh Home Battery", Price: 13999, Category: model.CategorySmartBattery},
	}

	// A 15kWh unit derives the 15kWh band, never 5kWh
	result := Filter(batteries, model.CategorySmartBattery, FilterState{Sizes: []string{"15kWh"}})
	require.Len(t, result, 1)
	assert.Equal(t, 32, result[0].ID)

	// The 5kWh filter still surfaces 15kWh units via the substring match
	result = Filter(batteries, model.CategorySmartBattery, FilterState{Sizes: []string{"5kWh"}})
	require.Len(t, result, 2)
	assert.Equal(t, 31, result[0].ID)
	assert.Equal(t, 32, result[1].ID)

	result = Filter(batteries, model.CategorySmartBattery, FilterState{Sizes: []string{"20kWh"}})
	require.Len(t, result, 1)
	assert.Equal(t, 33, result[0].ID)
}

func TestFilterState_ActiveCount(t *testing.T) {
	state := FilterState{
		Brands:    []string{"Acme"},
		Sizes:     []string{"2 ton", "3 ton"},
		PriceSort: SortPriceAsc,
	}
	assert.Equal(t, 4, state.ActiveCount())

	assert.Equal(t, 0, (&FilterState{PriceSort: SortNone}).ActiveCount())
}

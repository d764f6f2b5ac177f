package catalog

import (
	"strings"

	"voltly/internal/model"
)

// Per-category band tables. These map a product's derived attribute
// (parsed from its name or flags) to the human-readable band labels the
// filter UI exposes. The tables are data, not algorithm, and drive both
// the available filter options and the matching predicates.

// SizeOptions returns the selectable size bands for a category.
func SizeOptions(category model.Category) []string {
	switch category {
	case model.CategoryHeatPumps:
		return []string{"2 ton", "2-3 ton", "3 ton", "4 ton"}
	case model.CategorySmartBattery:
		return []string{"5kWh", "10kWh", "15kWh", "20kWh"}
	case model.CategoryAirConditioners:
		return []string{"2 ton", "2.5 ton", "3 ton", "3.5 ton"}
	case model.CategoryFurnaces:
		return []string{"45K BTU", "70K BTU", "90K BTU"}
	case model.CategoryTankless:
		return []string{"160K BTU", "199K BTU", "199K NP"}
	}
	return nil
}

// SqftOptions returns the selectable square-footage bands for a category.
func SqftOptions(category model.Category) []string {
	switch category {
	case model.CategoryHeatPumps:
		return []string{
			"< 1,000 sq ft",
			"1,000 - 1,500 sq ft",
			"1,500 - 2,000 sq ft",
			"2,000 - 2,500 sq ft",
			"2,500+ sq ft",
		}
	case model.CategorySmartBattery:
		return []string{
			"< 1,500 sq ft",
			"1,500 - 2,500 sq ft",
			"2,500 - 3,500 sq ft",
			"3,500+ sq ft",
		}
	case model.CategoryAirConditioners:
		return []string{
			"< 1,500 sq ft",
			"1,500 - 2,000 sq ft",
			"2,000 - 2,500 sq ft",
			"2,500 - 3,000 sq ft",
			"3,000+ sq ft",
		}
	case model.CategoryFurnaces:
		return []string{
			"< 1,200 sq ft",
			"1,200 - 1,800 sq ft",
			"1,800 - 2,400 sq ft",
			"2,400+ sq ft",
		}
	case model.CategoryTankless:
		return []string{
			"< 2,000 sq ft",
			"2,000 - 3,000 sq ft",
			"3,000 - 4,000 sq ft",
			"4,000+ sq ft",
		}
	}
	return nil
}

// PriceOptions returns the selectable price bands. They are shared by
// every category.
func PriceOptions() []string {
	return []string{
		"< $4,000",
		"$4,000 - $6,000",
		"$6,000 - $8,000",
		"$8,000+",
	}
}

// FeatureOptions returns the selectable feature tags for a category.
func FeatureOptions(category model.Category) []string {
	switch category {
	case model.CategoryHeatPumps:
		return []string{"Rebate Eligible", "Variable Speed", "Wi-Fi Compatible", "Energy Star"}
	case model.CategorySmartBattery:
		return []string{"Rebate Eligible", "App Control", "Grid Tie", "Backup Power"}
	case model.CategoryAirConditioners:
		return []string{"Rebate Eligible", "Energy Efficient", "Quiet Operation", "Smart Home Compatible"}
	case model.CategoryFurnaces:
		return []string{"Rebate Eligible", "High Efficiency", "Variable Speed", "Smart Thermostat Compatible"}
	case model.CategoryTankless:
		return []string{"Rebate Eligible", "Endless Hot Water", "Space Saving", "Energy Efficient"}
	}
	return []string{"Rebate Eligible"}
}

// productSize derives the size band of a product from its name. Longer
// labels are checked first so "2-3 ton" never matches as "2 ton".
func productSize(p *model.Product, category model.Category) string {
	name := p.Name
	switch category {
	case model.CategoryHeatPumps:
		switch {
		case strings.Contains(name, "2-3 ton"):
			return "2-3 ton"
		case strings.Contains(name, "2 ton"):
			return "2 ton"
		case strings.Contains(name, "3 ton"):
			return "3 ton"
		case strings.Contains(name, "4 ton"):
			return "4 ton"
		}
	case model.CategorySmartBattery:
		switch {
		case strings.Contains(name, "5kWh") && !strings.Contains(name, "15kWh"):
			return "5kWh"
		case strings.Contains(name, "10kWh"):
			return "10kWh"
		case strings.Contains(name, "15kWh"):
			return "15kWh"
		case strings.Contains(name, "20kWh"):
			return "20kWh"
		}
	case model.CategoryAirConditioners:
		switch {
		case strings.Contains(name, "3.5 ton"):
			return "3.5 ton"
		case strings.Contains(name, "2.5 ton"):
			return "2.5 ton"
		case strings.Contains(name, "2 ton"):
			return "2 ton"
		case strings.Contains(name, "3 ton"):
			return "3 ton"
		}
	case model.CategoryFurnaces:
		switch {
		case strings.Contains(name, "045"):
			return "45K BTU"
		case strings.Contains(name, "070"):
			return "70K BTU"
		case strings.Contains(name, "090"):
			return "90K BTU"
		}
	case model.CategoryTankless:
		switch {
		case strings.Contains(name, "160"):
			return "160K BTU"
		case strings.Contains(name, "199") && strings.Contains(name, "NP"):
			return "199K NP"
		case strings.Contains(name, "199"):
			return "199K BTU"
		}
	}
	return ""
}

// productSqftRange derives the coverage range of a product from its name.
func productSqftRange(p *model.Product, category model.Category) string {
	name := p.Name
	switch category {
	case model.CategoryHeatPumps:
		switch {
		case strings.Contains(name, "2-3 ton"):
			return "1,000-2,000"
		case strings.Contains(name, "2 ton"):
			return "1,000-1,400"
		case strings.Contains(name, "3 ton"):
			return "1,400-2,000"
		case strings.Contains(name, "4 ton"):
			return "2,000-2,800"
		}
	case model.CategorySmartBattery:
		switch {
		case strings.Contains(name, "5kWh") && !strings.Contains(name, "15kWh"):
			return "1,000-1,500"
		case strings.Contains(name, "10kWh"):
			return "1,500-2,500"
		case strings.Contains(name, "15kWh"):
			return "2,500-3,500"
		case strings.Contains(name, "20kWh"):
			return "3,500+"
		}
	case model.CategoryAirConditioners:
		switch {
		case strings.Contains(name, "3.5 ton"):
			return "3,000+"
		case strings.Contains(name, "2.5 ton"):
			return "2,000-2,500"
		case strings.Contains(name, "2 ton"):
			return "1,500-2,000"
		case strings.Contains(name, "3 ton"):
			return "2,500-3,000"
		}
	case model.CategoryFurnaces:
		switch {
		case strings.Contains(name, "045"):
			return "1,200-1,800"
		case strings.Contains(name, "070"):
			return "1,800-2,400"
		case strings.Contains(name, "090"):
			return "2,400+"
		}
	case model.CategoryTankless:
		switch {
		case strings.Contains(name, "160"):
			return "2,000-3,000"
		case strings.Contains(name, "199"):
			return "3,000-4,000"
		}
	}
	return ""
}

// sqftBandMatches maps each selectable square-footage band to the product
// coverage ranges that satisfy it.
var sqftBandMatches = map[string][]string{
	"< 1,000 sq ft":        {"1,000-1,400"},
	"1,000 - 1,500 sq ft":  {"1,000-1,400", "1,000-2,000", "1,000-1,500"},
	"1,500 - 2,000 sq ft":  {"1,400-2,000", "1,000-2,000", "1,500-2,500", "1,500-2,000"},
	"2,000 - 2,500 sq ft":  {"2,000-2,800", "1,500-2,500", "2,000-2,500"},
	"2,500+ sq ft":         {"2,000-2,800", "2,500-3,500", "3,500+", "2,500-3,000", "3,000+"},
	"< 1,500 sq ft":        {"1,000-1,500"},
	"1,500 - 2,500 sq ft":  {"1,500-2,500"},
	"2,500 - 3,500 sq ft":  {"2,500-3,500"},
	"3,500+ sq ft":         {"3,500+"},
	"2,500 - 3,000 sq ft":  {"2,500-3,000"},
	"3,000+ sq ft":         {"3,000-4,000", "2,500-3,000", "3,000+"},
	"< 1,200 sq ft":        {"1,200-1,800"},
	"1,200 - 1,800 sq ft":  {"1,200-1,800"},
	"1,800 - 2,400 sq ft":  {"1,800-2,400"},
	"2,400+ sq ft":         {"2,400+"},
	"< 2,000 sq ft":        {"2,000-3,000"},
	"2,000 - 3,000 sq ft":  {"2,000-3,000"},
	"3,000 - 4,000 sq ft":  {"3,000-4,000"},
	"4,000+ sq ft":         {"3,000-4,000"},
}

// matchesSqftBand reports whether a product coverage range satisfies a
// selected square-footage band.
func matchesSqftBand(productRange, band string) bool {
	if productRange == "" {
		return false
	}
	for _, r := range sqftBandMatches[band] {
		if strings.Contains(productRange, r) {
			return true
		}
	}
	return false
}

// matchesPriceBand reports whether a price falls in a selected price band.
func matchesPriceBand(price float64, band string) bool {
	switch band {
	case "< $4,000":
		return price < 4000
	case "$4,000 - $6,000":
		return price >= 4000 && price <= 6000
	case "$6,000 - $8,000":
		return price >= 6000 && price <= 8000
	case "$8,000+":
		return price > 8000
	}
	return true
}

// hasFeature reports whether a product carries a selected feature tag,
// checking dedicated flags first and falling back to the free-text
// feature list.
func hasFeature(p *model.Product, feature string) bool {
	anyFeature := func(substrs ...string) bool {
		for _, f := range p.Features {
			lower := strings.ToLower(f)
			for _, s := range substrs {
				if strings.Contains(lower, s) {
					return true
				}
			}
		}
		return false
	}

	switch feature {
	case "Rebate Eligible":
		return p.Rebate
	case "Variable Speed":
		return p.VariableSpeed || anyFeature("variable")
	case "Wi-Fi Compatible", "App Control":
		return p.WiFiCompatible || anyFeature("wifi", "smart", "app")
	case "Energy Star":
		return p.EnergyStar || anyFeature("energy star")
	case "Grid Tie":
		return anyFeature("grid")
	case "Backup Power":
		return anyFeature("backup")
	case "High Efficiency":
		return anyFeature("efficiency")
	case "Energy Efficient":
		return anyFeature("energy efficient")
	case "Quiet Operation":
		return anyFeature("quiet")
	case "Smart Home Compatible":
		return anyFeature("smart home")
	case "Smart Thermostat Compatible":
		return anyFeature("smart thermostat")
	case "Endless Hot Water":
		return anyFeature("endless")
	case "Space Saving":
		return anyFeature("space")
	}
	return true
}

package model

// Category identifies a product catalogue category.
type Category string

const (
	CategoryHeatPumps       Category = "heat-pumps"
	CategoryAirConditioners Category = "air-conditioners"
	CategoryFurnaces        Category = "furnaces"
	CategoryTankless        Category = "tankless"
	CategorySmartBattery    Category = "smart-battery"
	CategoryService         Category = "service"
)

// Categories lists every browsable catalogue category.
var Categories = []Category{
	CategoryHeatPumps,
	CategoryAirConditioners,
	CategoryFurnaces,
	CategoryTankless,
	CategorySmartBattery,
}

// Valid reports whether the category is a known catalogue category.
func (c Category) Valid() bool {
	switch c {
	case CategoryHeatPumps, CategoryAirConditioners, CategoryFurnaces,
		CategoryTankless, CategorySmartBattery, CategoryService:
		return true
	}
	return false
}

// TechnicalDetail is a single name/value row on a product spec sheet.
type TechnicalDetail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product represents a home-comfort product in the catalogue.
// Products are immutable reference data built into the binary.
type Product struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Price            float64           `json:"price"`
	MonthlyPayment   float64           `json:"monthlyPayment,omitempty"`
	Category         Category          `json:"category"`
	PerSqft          bool              `json:"isPerSqft,omitempty"`
	Rebate           bool              `json:"rebate"`
	Features         []string          `json:"features"`
	Brand            string            `json:"brand,omitempty"`
	Model            string            `json:"model,omitempty"`
	SEERRating       float64           `json:"seerRating,omitempty"`
	BTURating        int               `json:"btuRating,omitempty"`
	RecommendedSqft  string            `json:"recommendedSqft,omitempty"`
	EnergyStar       bool              `json:"energyStar,omitempty"`
	WiFiCompatible   bool              `json:"wifiCompatible,omitempty"`
	VariableSpeed    bool              `json:"variableSpeed,omitempty"`
	TechnicalDetails []TechnicalDetail `json:"technicalDetails,omitempty"`
}

// HasFinancing reports whether a financing partner offers a monthly plan
// for this product.
func (p *Product) HasFinancing() bool {
	return p.MonthlyPayment > 0
}

// WarrantyEligible reports whether the product can carry an extended
// warranty. Products sold per square foot (like insulation) are not eligible.
func (p *Product) WarrantyEligible() bool {
	return !p.PerSqft
}

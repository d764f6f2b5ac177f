package pricing

// Province enumerates the Canadian provinces and territories the store
// ships to. Tax lookups are keyed by this type so an unknown province is
// a compile-time error, not a runtime failure.
type Province string

const (
	Alberta                 Province = "Alberta"
	BritishColumbia         Province = "British Columbia"
	Manitoba                Province = "Manitoba"
	NewBrunswick            Province = "New Brunswick"
	NewfoundlandAndLabrador Province = "Newfoundland and Labrador"
	NorthwestTerritories    Province = "Northwest Territories"
	NovaScotia              Province = "Nova Scotia"
	Nunavut                 Province = "Nunavut"
	Ontario                 Province = "Ontario"
	PrinceEdwardIsland      Province = "Prince Edward Island"
	Quebec                  Province = "Quebec"
	Saskatchewan            Province = "Saskatchewan"
	Yukon                   Province = "Yukon"
)

// taxComponents holds the consumption-tax components that apply in a
// province. Each province carries GST plus at most one of PST, HST or QST.
type taxComponents struct {
	GST  float64
	PST  float64
	HST  float64
	QST  float64
	Name string
}

// provinceTaxes maps each province to its tax components.
var provinceTaxes = map[Province]taxComponents{
	Alberta:                 {GST: 0.05, Name: "GST (5%)"},
	BritishColumbia:         {GST: 0.05, PST: 0.07, Name: "GST + PST (12%)"},
	Manitoba:                {GST: 0.05, PST: 0.07, Name: "GST + PST (12%)"},
	NewBrunswick:            {HST: 0.15, Name: "HST (15%)"},
	NewfoundlandAndLabrador: {HST: 0.15, Name: "HST (15%)"},
	NorthwestTerritories:    {GST: 0.05, Name: "GST (5%)"},
	NovaScotia:              {HST: 0.15, Name: "HST (15%)"},
	Nunavut:                 {GST: 0.05, Name: "GST (5%)"},
	Ontario:                 {HST: 0.13, Name: "HST (13%)"},
	PrinceEdwardIsland:      {HST: 0.15, Name: "HST (15%)"},
	Quebec:                  {GST: 0.05, QST: 0.09975, Name: "GST + QST (14.975%)"},
	Saskatchewan:            {GST: 0.05, PST: 0.06, Name: "GST + PST (11%)"},
	Yukon:                   {GST: 0.05, Name: "GST (5%)"},
}

// Provinces lists every province in display order.
var Provinces = []Province{
	Alberta,
	BritishColumbia,
	Manitoba,
	NewBrunswick,
	NewfoundlandAndLabrador,
	NorthwestTerritories,
	NovaScotia,
	Nunavut,
	Ontario,
	PrinceEdwardIsland,
	Quebec,
	Saskatchewan,
	Yukon,
}

// TaxRate returns the total consumption-tax rate for a province as a
// decimal fraction.
func TaxRate(p Province) float64 {
	rates := provinceTaxes[p]
	return rates.GST + rates.PST + rates.HST + rates.QST
}

// TaxAmount returns the tax payable on an amount in a province.
func TaxAmount(amount float64, p Province) float64 {
	return amount * TaxRate(p)
}

// TaxName returns the display name of a province's tax, e.g. "HST (13%)".
func TaxName(p Province) string {
	return provinceTaxes[p].Name
}

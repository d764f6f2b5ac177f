package catalog

import "voltly/internal/model"

// products is the static catalogue. IDs are unique across categories.
var products = []model.Product{
	// Heat pumps
	{
		ID: 101, Name: "Goodman 2 ton Cold Climate Heat Pump", Price: 5499, MonthlyPayment: 93,
		Category: model.CategoryHeatPumps, Rebate: true, Brand: "Goodman", Model: "GSZC7024",
		SEERRating: 17.2, RecommendedSqft: "1,000-1,400", EnergyStar: true,
		Features: []string{"Variable speed compressor", "Energy Star certified", "WiFi thermostat ready"},
	},
	{
		ID: 102, Name: "Daikin 2-3 ton Side Discharge Heat Pump", Price: 6899, MonthlyPayment: 116,
		Category: model.CategoryHeatPumps, Rebate: true, Brand: "Daikin", Model: "DZ6VSA361",
		SEERRating: 18.5, RecommendedSqft: "1,000-2,000", EnergyStar: true, VariableSpeed: true,
		Features: []string{"Variable speed inverter", "Quiet operation", "Smart home compatible"},
	},
	{
		ID: 103, Name: "Lennox 3 ton Heat Pump", Price: 7599,
		Category: model.CategoryHeatPumps, Rebate: false, Brand: "Lennox", Model: "ML17XP1-036",
		SEERRating: 17.0, RecommendedSqft: "1,400-2,000",
		Features: []string{"Single stage compressor", "Quiet operation"},
	},
	{
		ID: 104, Name: "Mitsubishi 4 ton Zuba Central Heat Pump", Price: 12499, MonthlyPayment: 209,
		Category: model.CategoryHeatPumps, Rebate: true, Brand: "Mitsubishi", Model: "PUZ-HA42NKA",
		SEERRating: 16.5, RecommendedSqft: "2,000-2,800", EnergyStar: true, WiFiCompatible: true, VariableSpeed: true,
		Features: []string{"Hyper-heat at -30C", "Variable speed", "WiFi control", "Energy Star certified"},
	},
	{
		ID: 105, Name: "Goodman 3 ton Heat Pump Value Series", Price: 3999,
		Category: model.CategoryHeatPumps, Rebate: false, Brand: "Goodman", Model: "GSZB4036",
		SEERRating: 14.3, RecommendedSqft: "1,400-2,000",
		Features: []string{"Single stage compressor"},
	},

	// Air conditioners
	{
		ID: 201, Name: "Goodman 2 ton Central Air Conditioner", Price: 3899, MonthlyPayment: 66,
		Category: model.CategoryAirConditioners, Rebate: false, Brand: "Goodman", Model: "GSXB402410",
		SEERRating: 14.3, RecommendedSqft: "1,500-2,000",
		Features: []string{"Energy efficient operation", "Quiet operation"},
	},
	{
		ID: 202, Name: "Daikin 2.5 ton Air Conditioner", Price: 4699, MonthlyPayment: 79,
		Category: model.CategoryAirConditioners, Rebate: true, Brand: "Daikin", Model: "DX5SEA301",
		SEERRating: 16.0, RecommendedSqft: "2,000-2,500",
		Features: []string{"Energy efficient", "Quiet operation", "Smart home compatible"},
	},
	{
		ID: 203, Name: "Lennox 3 ton Air Conditioner", Price: 5999,
		Category: model.CategoryAirConditioners, Rebate: false, Brand: "Lennox", Model: "ML14XC1-036",
		SEERRating: 16.2, RecommendedSqft: "2,500-3,000",
		Features: []string{"Quiet operation", "Single stage"},
	},
	{
		ID: 204, Name: "Daikin 3.5 ton Air Conditioner", Price: 6799, MonthlyPayment: 114,
		Category: model.CategoryAirConditioners, Rebate: true, Brand: "Daikin", Model: "DX5SEA421",
		SEERRating: 15.5, RecommendedSqft: "3,000+",
		Features: []string{"Energy efficient", "Smart home compatible"},
	},

	// Furnaces
	{
		ID: 301, Name: "Goodman GM9S960453 96% Furnace 045", Price: 3499, MonthlyPayment: 59,
		Category: model.CategoryFurnaces, Rebate: true, Brand: "Goodman", Model: "GM9S960453",
		BTURating: 45000, RecommendedSqft: "1,200-1,800",
		Features: []string{"96% AFUE high efficiency", "Single stage"},
	},
	{
		ID: 302, Name: "Goodman GM9C960703 96% Furnace 070", Price: 3999, MonthlyPayment: 67,
		Category: model.CategoryFurnaces, Rebate: true, Brand: "Goodman", Model: "GM9C960703",
		BTURating: 70000, RecommendedSqft: "1,800-2,400", VariableSpeed: true,
		Features: []string{"96% AFUE high efficiency", "Two stage", "Variable speed blower", "Smart thermostat compatible"},
	},
	{
		ID: 303, Name: "Lennox EL296V 090 Variable Speed Furnace", Price: 5299,
		Category: model.CategoryFurnaces, Rebate: false, Brand: "Lennox", Model: "EL296UH090XV48C",
		BTURating: 90000, RecommendedSqft: "2,400+", VariableSpeed: true,
		Features: []string{"96% AFUE high efficiency", "Variable speed blower", "Smart thermostat compatible"},
	},

	// Tankless water heaters
	{
		ID: 401, Name: "Rinnai RX160iN Tankless Water Heater", Price: 3299, MonthlyPayment: 55,
		Category: model.CategoryTankless, Rebate: true, Brand: "Rinnai", Model: "RX160iN",
		BTURating: 160000, RecommendedSqft: "2,000-3,000",
		Features: []string{"Endless hot water", "Space saving design", "Energy efficient"},
	},
	{
		ID: 402, Name: "Navien 199K Condensing Tankless", Price: 4199, MonthlyPayment: 71,
		Category: model.CategoryTankless, Rebate: true, Brand: "Navien", Model: "NPE-240A2",
		BTURating: 199900, RecommendedSqft: "3,000-4,000", WiFiCompatible: true,
		Features: []string{"Endless hot water", "Built-in recirculation", "WiFi remote control"},
	},
	{
		ID: 403, Name: "Rinnai RXP199iN 199K NP Condensing Tankless", Price: 4899,
		Category: model.CategoryTankless, Rebate: false, Brand: "Rinnai", Model: "RXP199iN",
		BTURating: 199000, RecommendedSqft: "3,000-4,000",
		Features: []string{"Endless hot water", "Space saving design", "Natural gas or propane"},
	},

	// Smart batteries
	{
		ID: 501, Name: "EcoVolt 5kWh Smart Battery", Price: 4499, MonthlyPayment: 76,
		Category: model.CategorySmartBattery, Rebate: true, Brand: "EcoVolt",
		RecommendedSqft: "1,000-1,500",
		Features: []string{"App control", "Backup power", "Grid tie ready"},
	},
	{
		ID: 502, Name: "EcoVolt 10kWh Smart Battery", Price: 7999, MonthlyPayment: 134,
		Category: model.CategorySmartBattery, Rebate: true, Brand: "EcoVolt",
		RecommendedSqft: "1,500-2,500", WiFiCompatible: true,
		Features: []string{"App control", "Backup power", "Grid tie ready", "Smart load management"},
	},
	{
		ID: 503, Name: "PowerCell 15kWh Home Battery", Price: 10999, MonthlyPayment: 184,
		Category: model.CategorySmartBattery, Rebate: true, Brand: "PowerCell",
		RecommendedSqft: "2,500-3,500",
		Features: []string{"Whole home backup power", "Grid tie", "App monitoring"},
	},
	{
		ID: 504, Name: "PowerCell 20kWh Home Battery", Price: 13999,
		Category: model.CategorySmartBattery, Rebate: false, Brand: "PowerCell",
		RecommendedSqft: "3,500+",
		Features: []string{"Whole home backup power", "Grid tie"},
	},
}

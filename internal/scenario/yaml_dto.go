package scenario

// YAMLFile is either a single scenario or a list under "scenarios".
type YAMLFile struct {
	YAMLScenario `yaml:",inline"`
	Scenarios    []YAMLScenario `yaml:"scenarios"`
}

// YAMLScenario mirrors Scenario with every field optional.
type YAMLScenario struct {
	Name             string            `yaml:"name"`
	ElectricityPrice *float64          `yaml:"electricity_price"`
	SteelOutput      *float64          `yaml:"steel_output"`
	DiscountRate     *float64          `yaml:"discount_rate"`
	Lifetime         *int              `yaml:"lifetime"`
	Electrolyzer     *YAMLElectrolyzer `yaml:"electrolyzer"`
	HDRI             *YAMLHDRI         `yaml:"hdri"`
	EAF              *YAMLEAF          `yaml:"eaf"`
	Finance          *YAMLFinance      `yaml:"finance"`
	Benchmarks       *YAMLBenchmarks   `yaml:"benchmarks"`
}

type YAMLBenchmarks struct {
	EAF       *float64 `yaml:"eaf_kwh_per_tls"`
	Heater    *float64 `yaml:"heater_kwh_per_tls"`
	Tolerance *float64 `yaml:"tolerance"`
}

type YAMLElectrolyzer struct {
	Efficiency     *float64 `yaml:"efficiency"`
	Capex          *float64 `yaml:"capex_musd_per_mw"`
	LangFactor     *float64 `yaml:"lang_factor"`
	SpecificEnergy *float64 `yaml:"specific_energy"`
	WaterPerKg     *float64 `yaml:"water_per_kg"`
	WaterPrice     *float64 `yaml:"water_price"`
	RefurbPeriod   *int     `yaml:"refurb_period"`
	RefurbFraction *float64 `yaml:"refurb_fraction"`
}

type YAMLOre struct {
	Fe2O3 *float64 `yaml:"fe2o3"`
	SiO2  *float64 `yaml:"sio2"`
	Al2O3 *float64 `yaml:"al2o3"`
	CaO   *float64 `yaml:"cao"`
	MgO   *float64 `yaml:"mgo"`
}

type YAMLHDRI struct {
	Metallization            *float64 `yaml:"metallization"`
	ExcessH2                 *float64 `yaml:"excess_h2"`
	Ore                      *YAMLOre `yaml:"ore"`
	H2InletK                 *float64 `yaml:"h2_inlet_k"`
	GasOutletK               *float64 `yaml:"gas_outlet_k"`
	DRIOutletK               *float64 `yaml:"dri_outlet_k"`
	RecuperatorEffectiveness *float64 `yaml:"recuperator_effectiveness"`
	HeaterEfficiency         *float64 `yaml:"heater_efficiency"`
	Capex                    *float64 `yaml:"capex_per_tonne_year"`
	FixedOM                  *float64 `yaml:"fixed_om_per_tonne"`
	IronOrePrice             *float64 `yaml:"iron_ore_price"`
	Labor                    *float64 `yaml:"labor_per_tonne"`
}

type YAMLEAF struct {
	ArcEfficiency        *float64 `yaml:"arc_efficiency"`
	Basicity             *float64 `yaml:"basicity"`
	CarbonInjection      *float64 `yaml:"carbon_injection"`
	ElectrodeConsumption *float64 `yaml:"electrode_consumption"`
	GridIntensity        *float64 `yaml:"grid_intensity"`
	Capex                *float64 `yaml:"capex_per_tonne_year"`
	FixedOM              *float64 `yaml:"fixed_om_per_tonne"`
	CoalPrice            *float64 `yaml:"coal_price"`
	LimePrice            *float64 `yaml:"lime_price"`
	EmissionPrice        *float64 `yaml:"emission_price"`
	Labor                *float64 `yaml:"labor_per_tonne"`
}

type YAMLFinance struct {
	AnalysisStartYear    *int     `yaml:"analysis_start_year"`
	InstallationMonths   *int     `yaml:"installation_months"`
	Inflation            *float64 `yaml:"inflation"`
	Utilization          *float64 `yaml:"utilization"`
	DemandRampup         *float64 `yaml:"demand_rampup"`
	SalesTax             *float64 `yaml:"sales_tax"`
	PropertyTax          *float64 `yaml:"property_tax"`
	AdminExpense         *float64 `yaml:"admin_expense"`
	IncomeTaxRate        *float64 `yaml:"income_tax_rate"`
	CapitalGainsTaxRate  *float64 `yaml:"capital_gains_tax_rate"`
	LandCost             *float64 `yaml:"land_cost"`
	TaxLossesMonetized   *bool    `yaml:"tax_losses_monetized"`
	SellUndepreciatedCap *bool    `yaml:"sell_undepreciated_cap"`
	DeprType             *string  `yaml:"depreciation_type"`
	DeprPeriod           *int     `yaml:"depreciation_period"`
}

// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for one evaluated scenario.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	RunID    string `json:"run_id"`
	Scenario string `json:"scenario"`
	Source   string `json:"source_file,omitempty"`

	Inputs      InputsV1      `json:"inputs"`
	Production  ProductionV1  `json:"production"`
	Capex       CapexV1       `json:"capex_usd"`
	Opex        OpexV1        `json:"opex_usd_per_year"`
	Electricity ElectricityV1 `json:"electricity_mwh_per_year"`
	Emissions   EmissionsV1   `json:"emissions_tco2_per_year"`
	Intensities IntensitiesV1 `json:"intensities_per_tls"`

	LCOS         LCOSV1       `json:"lcos_usd_per_tls"`
	Breakdown    []LineItemV1 `json:"breakdown,omitempty"`
	CashFlow     []CashFlowV1 `json:"cash_flow,omitempty"`
	Checks       []CheckV1    `json:"checks"`
	ChecksPassed bool         `json:"checks_passed"`
}

type InputsV1 struct {
	ElectricityPrice     float64 `json:"electricity_price_usd_per_mwh"`
	SteelOutput          float64 `json:"steel_output_kg_per_hr"`
	ElectrolyzerEff      float64 `json:"electrolyzer_efficiency"`
	ElectrolyzerCapex    float64 `json:"electrolyzer_capex_musd_per_mw"`
	LangFactor           float64 `json:"lang_factor"`
	ElectrolyzerSpecific float64 `json:"electrolyzer_kwh_per_kg"`
	DiscountRate         float64 `json:"discount_rate"`
	Lifetime             int     `json:"lifetime_years"`
}

type ProductionV1 struct {
	TonnesPerYear  float64 `json:"tls_per_year"`
	TonnesPerDay   float64 `json:"tls_per_day"`
	OperatingHours float64 `json:"operating_hours"`
	H2KgPerYear    float64 `json:"h2_kg_per_year"`
	ElectrolyzerMW float64 `json:"electrolyzer_mw"`
}

type CapexV1 struct {
	HDRI         float64 `json:"hdri"`
	EAF          float64 `json:"eaf"`
	Electrolyzer float64 `json:"electrolyzer"`
	Total        float64 `json:"total"`
}

type OpexV1 struct {
	HDRI         float64 `json:"hdri"`
	EAF          float64 `json:"eaf"`
	Electrolyzer float64 `json:"electrolyzer"`
	Electricity  float64 `json:"electricity"`
	Total        float64 `json:"total"`
}

type ElectricityV1 struct {
	EAF          float64 `json:"eaf"`
	Heater       float64 `json:"heater"`
	Electrolyzer float64 `json:"electrolyzer"`
	Total        float64 `json:"total"`
}

type EmissionsV1 struct {
	Direct   float64 `json:"direct"`
	Indirect float64 `json:"indirect"`
	Total    float64 `json:"total"`
}

type IntensitiesV1 struct {
	IronOreKg      float64 `json:"iron_ore_kg"`
	H2Kg           float64 `json:"h2_kg"`
	WaterKg        float64 `json:"water_kg"`
	CarbonKg       float64 `json:"carbon_kg"`
	LimeKg         float64 `json:"lime_kg"`
	ElectricityMWh float64 `json:"electricity_mwh"`
	EmissionsTCO2  float64 `json:"emissions_tco2"`
}

type LCOSV1 struct {
	Simple   float64 `json:"simple"`
	ProForma float64 `json:"pro_forma"`
}

type LineItemV1 struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"usd_per_tls"`
}

type CashFlowV1 struct {
	Year               int     `json:"year"`
	Production         float64 `json:"production_tls"`
	Price              float64 `json:"price"`
	Revenue            float64 `json:"revenue"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	CapitalExpenditure float64 `json:"capital_expenditure"`
	Depreciation       float64 `json:"depreciation"`
	IncomeTax          float64 `json:"income_tax"`
	CashFlow           float64 `json:"cash_flow"`
	Discounted         float64 `json:"discounted_cash_flow"`
}

type CheckV1 struct {
	Name     string  `json:"name"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
	Passed   bool    `json:"passed"`
	Warning  bool    `json:"warning,omitempty"`
	Note     string  `json:"note,omitempty"`
}

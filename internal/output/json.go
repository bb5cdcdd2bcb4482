package output

import (
	"io"

	"greensteel/internal/jsonutil"
	"greensteel/internal/plant"
	"greensteel/pkg/api"
)

// ToAPIReport converts an evaluated scenario to the stable wire schema (v1).
// Breakdown and cash flow are attached only when selected.
func ToAPIReport(r plant.Report, o Options) api.ReportV1 {
	s := r.Scenario
	out := r.Outputs
	v := api.ReportV1{
		RunID:    r.RunID,
		Scenario: s.Name,
		Source:   s.Source,
		Inputs: api.InputsV1{
			ElectricityPrice:     s.ElectricityPrice,
			SteelOutput:          s.SteelOutput,
			ElectrolyzerEff:      s.Electrolyzer.Efficiency,
			ElectrolyzerCapex:    s.Electrolyzer.CapexMUSDPerMW,
			LangFactor:           s.Electrolyzer.LangFactor,
			ElectrolyzerSpecific: s.Electrolyzer.SpecificEnergy,
			DiscountRate:         s.DiscountRate,
			Lifetime:             s.Lifetime,
		},
		Production: api.ProductionV1{
			TonnesPerYear:  out.TonnesPerYear,
			TonnesPerDay:   out.TonnesPerDay,
			OperatingHours: out.OperatingHours,
			H2KgPerYear:    out.Electrolyzer.H2KgPerYear,
			ElectrolyzerMW: out.Electrolyzer.CapacityMW,
		},
		Capex:       api.CapexV1(r.Capex),
		Opex:        api.OpexV1(r.Opex),
		Electricity: api.ElectricityV1(r.Electricity),
		Emissions:   api.EmissionsV1(r.Emissions),
		Intensities: api.IntensitiesV1{
			IronOreKg:      r.Intensities.IronOre,
			H2Kg:           r.Intensities.Hydrogen,
			WaterKg:        r.Intensities.Water,
			CarbonKg:       r.Intensities.Carbon,
			LimeKg:         r.Intensities.Lime,
			ElectricityMWh: r.Intensities.Electricity,
			EmissionsTCO2:  r.Intensities.Emissions,
		},
		LCOS: api.LCOSV1{Simple: r.SimpleLCOS, ProForma: r.ProForma.Price},
	}
	v.Checks, v.ChecksPassed = toAPIChecks(r.Checks)

	if o.Breakdown {
		for _, c := range r.ProForma.Breakdown {
			v.Breakdown = append(v.Breakdown, api.LineItemV1{Name: c.Name, Category: string(c.Category), Price: c.Price})
		}
	}
	if o.CashFlow {
		for _, y := range r.ProForma.Rows {
			v.CashFlow = append(v.CashFlow, api.CashFlowV1{
				Year:               y.Year,
				Production:         y.Production,
				Price:              y.Price,
				Revenue:            y.Revenue,
				OperatingExpenses:  y.OperatingExpenses,
				CapitalExpenditure: y.CapitalExpenditure,
				Depreciation:       y.Depreciation,
				IncomeTax:          y.IncomeTax,
				CashFlow:           y.CashFlow,
				Discounted:         y.DiscountedCashFlow,
			})
		}
	}
	return v
}

// ToAPIBalance converts a balance run to the stable wire schema (v1).
func ToAPIBalance(b plant.BalanceReport) api.BalanceV1 {
	v := api.BalanceV1{
		Scenario:    b.Scenario.Name,
		SteelOutput: b.Outputs.SteelRate,
	}
	for _, sec := range BalanceSections(b) {
		s := api.SectionV1{Name: sec.Name, Items: make([]api.QuantityV1, 0, len(sec.Items))}
		for _, q := range sec.Items {
			s.Items = append(s.Items, api.QuantityV1(q))
		}
		v.Sections = append(v.Sections, s)
	}
	v.Checks, v.ChecksPassed = toAPIChecks(b.Checks)
	return v
}

func toAPIChecks(list []plant.Check) ([]api.CheckV1, bool) {
	out := make([]api.CheckV1, 0, len(list))
	for _, c := range list {
		out = append(out, api.CheckV1{
			Name:     c.Name,
			Expected: c.Expected,
			Actual:   c.Actual,
			Passed:   c.Passed,
			Warning:  c.Warning,
			Note:     c.Note,
		})
	}
	return out, len(plant.Failed(list, false)) == 0
}

// WriteReportsJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteReportsJSON(w io.Writer, list []plant.Report, o Options) error {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r, o))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteBalancesJSON writes a single JSON array of v1 balances.
func WriteBalancesJSON(w io.Writer, list []plant.BalanceReport) error {
	out := make([]api.BalanceV1, 0, len(list))
	for _, b := range list {
		out = append(out, ToAPIBalance(b))
	}
	return jsonutil.EncodePretty(w, out)
}

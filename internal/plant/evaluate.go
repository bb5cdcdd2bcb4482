package plant

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"greensteel-core/finance"
	"greensteel-core/proforma"
	"greensteel-core/units"

	"greensteel/internal/scenario"
)

// Capex is the installed cost of each unit, USD.
type Capex struct {
	HDRI         float64
	EAF          float64
	Electrolyzer float64
	Total        float64
}

// Opex is the yearly operating cost of each unit, USD/yr, depreciation
// included. Electricity is kept apart so the effect of the power price is
// visible.
type Opex struct {
	HDRI         float64
	EAF          float64
	Electrolyzer float64
	Electricity  float64
	Total        float64
}

// Emissions are tCO2 per operating year.
type Emissions struct {
	Direct   float64
	Indirect float64
	Total    float64
}

// Report is the full evaluation of one scenario.
type Report struct {
	RunID    string
	Scenario scenario.Scenario

	Outputs     Outputs
	Capex       Capex
	Opex        Opex
	Electricity Electricity
	Emissions   Emissions
	Intensities Intensities

	SimpleLCOS float64 // USD/tls
	ProForma   proforma.Solution
	Checks     []Check
}

// Evaluate runs the models for s, costs the plant and solves both levelized
// cost methods.
func Evaluate(ctx context.Context, s scenario.Scenario) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	out, err := run(s)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		RunID:       uuid.NewString(),
		Scenario:    s,
		Outputs:     out,
		Electricity: electricity(out),
	}
	r.Intensities = intensities(s, out, r.Electricity)
	r.Checks = runChecks(s, out, r.Electricity)

	hf, ef := out.HDRIFinancial, out.EAFFinancial
	r.Capex = Capex{
		HDRI:         units.USD(hf.Capex),
		EAF:          units.USD(ef.Capex),
		Electrolyzer: units.USD(out.Electrolyzer.CapexMUSD),
	}
	r.Capex.Total = r.Capex.HDRI + r.Capex.EAF + r.Capex.Electrolyzer

	r.Opex = Opex{
		HDRI:         units.USD(hf.FixedOM + hf.Maintenance + hf.Depreciation + hf.IronOreCost + hf.LaborCost),
		EAF:          units.USD(ef.FixedOM + ef.Maintenance + ef.Depreciation + ef.CoalCost + ef.LaborCost + ef.LimeCost + ef.EmissionCost),
		Electrolyzer: out.Electrolyzer.WaterCostUSD,
		Electricity:  r.Electricity.Total * s.ElectricityPrice,
	}
	r.Opex.Total = r.Opex.HDRI + r.Opex.EAF + r.Opex.Electrolyzer + r.Opex.Electricity

	em := out.EAFEmission
	r.Emissions = Emissions{
		Direct:   units.PerYear(em.Direct),
		Indirect: units.PerYear(em.Indirect),
		Total:    units.PerYear(em.Total),
	}

	r.SimpleLCOS, err = finance.LCOE(out.TonnesPerYear, r.Capex.Total, r.Opex.Total, s.DiscountRate, s.Lifetime)
	if err != nil {
		return r, fmt.Errorf("simple lcos: %w", err)
	}

	pf, err := buildProForma(s, r)
	if err != nil {
		return r, fmt.Errorf("pro forma: %w", err)
	}
	if r.ProForma, err = pf.SolvePrice(ctx); err != nil {
		return r, fmt.Errorf("pro forma: %w", err)
	}
	return r, nil
}

// buildProForma lays the costed plant out as capital items, fixed costs and
// per-tonne feedstocks.
func buildProForma(s scenario.Scenario, r Report) (*proforma.ProForma, error) {
	out := r.Outputs
	f := s.Finance
	hf, ef := out.HDRIFinancial, out.EAFFinancial
	infl := f.Inflation

	p := proforma.DefaultParams()
	p.Commodity = proforma.Commodity{Name: "Steel", Unit: "tls", Escalation: infl}
	p.CapacityPerDay = out.TonnesPerDay
	p.Maintenance = proforma.Escalating{Value: units.USD(hf.Maintenance + ef.Maintenance), Escalation: infl}
	p.AnalysisStartYear = f.AnalysisStartYear
	p.OperatingLife = s.Lifetime
	p.InstallationMonths = f.InstallationMonths
	p.NonDepreciableAssets = f.LandCost
	p.EndOfProjectSaleNonDepr = f.LandCost * math.Pow(1+infl, float64(s.Lifetime))
	p.DemandRampup = f.DemandRampup
	p.LongTermUtilization = f.LongTermUtilization
	p.SalesTax = f.SalesTax
	p.LicenseAndPermit = proforma.Escalating{Escalation: infl}
	p.Rent = proforma.Escalating{Escalation: infl}
	p.PropertyTaxAndInsurance = f.PropertyTax
	p.AdminExpense = f.AdminExpense
	p.TotalIncomeTaxRate = f.IncomeTaxRate
	p.CapitalGainsTaxRate = f.CapitalGainsTaxRate
	p.SellUndepreciatedCap = f.SellUndepreciatedCap
	p.TaxLossesMonetized = f.TaxLossesMonetized
	p.GeneralInflationRate = infl
	p.LeverageAfterTaxNominalDiscountRate = s.DiscountRate

	pf := proforma.New(p)
	capital := []struct {
		name   string
		cost   float64
		refurb []float64
	}{
		{"HDRI shaft", r.Capex.HDRI, nil},
		{"EAF", r.Capex.EAF, nil},
		{"Electrolysis system", r.Capex.Electrolyzer, s.Electrolyzer.RefurbSchedule(s.Lifetime)},
	}
	for _, c := range capital {
		if err := pf.AddCapitalItem(c.name, c.cost, f.DeprType, f.DeprPeriod, c.refurb); err != nil {
			return nil, err
		}
	}

	fixed := []struct {
		name string
		usd  float64
	}{
		{"HDRI fixed O&M", units.USD(hf.FixedOM)},
		{"EAF fixed O&M", units.USD(ef.FixedOM)},
		{"Labor", units.USD(hf.LaborCost + ef.LaborCost)},
		{"Emission cost", units.USD(ef.EmissionCost)},
	}
	for _, c := range fixed {
		if err := pf.AddFixedCost(c.name, 1, "USD/yr", c.usd, infl); err != nil {
			return nil, err
		}
	}

	in := r.Intensities
	feed := s.Plant.Fin
	perKg := func(perTonne float64) float64 { return perTonne / units.KgPerTonne }
	feedstocks := []struct {
		name  string
		usage float64
		unit  string
		cost  float64
	}{
		{"Water", in.Water, "kg", perKg(s.Electrolyzer.WaterPricePerTonne)},
		{"Electricity", in.Electricity, "MWh", s.ElectricityPrice},
		{"Coal", in.Carbon, "kg", perKg(feed.CoalPerTonne)},
		{"Lime", in.Lime, "kg", perKg(feed.LimePerTonne)},
		{"Iron ore", in.IronOre, "kg", perKg(s.Plant.DRI.Fin.IronOrePerTonne)},
	}
	for _, c := range feedstocks {
		if err := pf.AddFeedstock(c.name, c.usage, c.unit, c.cost, infl); err != nil {
			return nil, err
		}
	}
	return pf, nil
}

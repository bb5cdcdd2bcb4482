package eaf

import (
	"fmt"
	"math"

	"greensteel-core/hdri"
	"greensteel-core/quantity"
	"greensteel-core/units"
)

// FinancialOutputs are MUSD (capex) and MUSD/yr.
type FinancialOutputs struct {
	Capex        float64
	FixedOM      float64
	Maintenance  float64
	Depreciation float64
	CoalCost     float64
	LaborCost    float64
	LimeCost     float64
	EmissionCost float64
}

func (o FinancialOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "capex", Label: "Capital cost", Value: o.Capex, Unit: "MUSD"},
		{Key: "fixed_om", Label: "Fixed O&M", Value: o.FixedOM, Unit: "MUSD/yr"},
		{Key: "maintenance", Label: "Maintenance", Value: o.Maintenance, Unit: "MUSD/yr"},
		{Key: "depreciation", Label: "Depreciation", Value: o.Depreciation, Unit: "MUSD/yr"},
		{Key: "coal_cost", Label: "Coal", Value: o.CoalCost, Unit: "MUSD/yr"},
		{Key: "labor_cost", Label: "Labor", Value: o.LaborCost, Unit: "MUSD/yr"},
		{Key: "lime_cost", Label: "Lime", Value: o.LimeCost, Unit: "MUSD/yr"},
		{Key: "emission_cost", Label: "Emissions", Value: o.EmissionCost, Unit: "MUSD/yr"},
	}
}

// Financial converts unit rates into plant totals for a capacity in tls/yr.
// Consumables are scaled from the per-tonne balance.
func (m Model) Financial(tlsPerYear float64) (FinancialOutputs, error) {
	if math.IsNaN(tlsPerYear) || math.IsInf(tlsPerYear, 0) || tlsPerYear < 0 {
		return FinancialOutputs{}, fmt.Errorf("%w: capacity %v tls/yr", hdri.ErrInvalidRate, tlsPerYear)
	}
	perTonne, err := m.Mass(units.KgPerTonne)
	if err != nil {
		return FinancialOutputs{}, err
	}
	em, err := m.Emission(units.KgPerTonne)
	if err != nil {
		return FinancialOutputs{}, err
	}

	f := m.Fin
	capex := units.MUSD(f.CapexPerTonneYear * tlsPerYear * f.LangFactor)
	return FinancialOutputs{
		Capex:        capex,
		FixedOM:      units.MUSD(f.FixedOMPerTonne * tlsPerYear),
		Maintenance:  f.MaintenanceFraction * capex,
		Depreciation: capex / f.PlantLifeYears,
		CoalCost:     units.MUSD(perTonne.CarbonNeeded / units.KgPerTonne * f.CoalPerTonne * tlsPerYear),
		LaborCost:    units.MUSD(f.LaborPerTonne * tlsPerYear),
		LimeCost:     units.MUSD(perTonne.LimeNeeded / units.KgPerTonne * f.LimePerTonne * tlsPerYear),
		EmissionCost: units.MUSD(em.Total * f.EmissionPerTonne * tlsPerYear),
	}, nil
}

package hdri

import (
	"fmt"
	"math"

	"greensteel-core/quantity"
	"greensteel-core/units"
)

// FinancialOutputs are in million USD (capex) and million USD per year.
type FinancialOutputs struct {
	Capex        float64
	FixedOM      float64
	Maintenance  float64
	Depreciation float64
	IronOreCost  float64
	LaborCost    float64
}

func (o FinancialOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "capex", Label: "Capital cost", Value: o.Capex, Unit: "MUSD"},
		{Key: "fixed_om", Label: "Fixed O&M", Value: o.FixedOM, Unit: "MUSD/yr"},
		{Key: "maintenance", Label: "Maintenance", Value: o.Maintenance, Unit: "MUSD/yr"},
		{Key: "depreciation", Label: "Depreciation", Value: o.Depreciation, Unit: "MUSD/yr"},
		{Key: "iron_ore_cost", Label: "Iron ore", Value: o.IronOreCost, Unit: "MUSD/yr"},
		{Key: "labor_cost", Label: "Labor", Value: o.LaborCost, Unit: "MUSD/yr"},
	}
}

// OrePerTonne returns tonnes of pellets per tonne of steel.
func (m Model) OrePerTonne() (float64, error) {
	mass, err := m.Mass(units.KgPerTonne)
	if err != nil {
		return 0, err
	}
	return mass.IronOre / units.KgPerTonne, nil
}

// Financial converts the unit cost rates into plant totals for a capacity
// in tonnes of liquid steel per year.
func (m Model) Financial(tlsPerYear float64) (FinancialOutputs, error) {
	if math.IsNaN(tlsPerYear) || math.IsInf(tlsPerYear, 0) || tlsPerYear < 0 {
		return FinancialOutputs{}, fmt.Errorf("%w: capacity %v tls/yr", ErrInvalidRate, tlsPerYear)
	}
	orePerTls, err := m.OrePerTonne()
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
		IronOreCost:  units.MUSD(orePerTls * f.IronOrePerTonne * tlsPerYear),
		LaborCost:    units.MUSD(f.LaborPerTonne * tlsPerYear),
	}, nil
}

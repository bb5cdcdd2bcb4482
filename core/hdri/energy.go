package hdri

import (
	"greensteel-core/quantity"
	"greensteel-core/thermo"
	"greensteel-core/units"
)

// EnergyOutputs is the shaft enthalpy balance in kW.
type EnergyOutputs struct {
	EnthalpyIn    float64
	EnthalpyOut   float64
	EnergyBalance float64 // EnthalpyOut − EnthalpyIn
}

// NeedsHeat reports whether the products carry more enthalpy than the feed.
func (o EnergyOutputs) NeedsHeat() bool { return o.EnergyBalance > 0 }

func (o EnergyOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "enthalpy_in", Label: "Enthalpy in", Value: o.EnthalpyIn, Unit: "kW"},
		{Key: "enthalpy_out", Label: "Enthalpy out", Value: o.EnthalpyOut, Unit: "kW"},
		{Key: "energy_balance", Label: "Energy balance", Value: o.EnergyBalance, Unit: "kW"},
	}
}

// Energy computes H_out − H_in around the shaft, formation enthalpies
// included, for a steel rate in kg/hr.
func (m Model) Energy(steelRate float64) (EnergyOutputs, error) {
	mass, err := m.Mass(steelRate)
	if err != nil {
		return EnergyOutputs{}, err
	}

	fe2o3In := mass.IronOre * m.Ore.Fe2O3
	h2In, err := thermo.GasEnthalpyFlow(thermo.H2, mass.H2In, m.H2InK)
	if err != nil {
		return EnergyOutputs{}, err
	}
	in := thermo.Fe2O3Enthalpy(fe2o3In, m.OreInK) +
		thermo.SolidSensible(mass.Gangue, thermo.CpGangue, m.OreInK) +
		h2In

	h2Out, err := thermo.GasEnthalpyFlow(thermo.H2, mass.H2Out, m.GasOutK)
	if err != nil {
		return EnergyOutputs{}, err
	}
	h2oOut, err := thermo.GasEnthalpyFlow(thermo.H2O, mass.H2OOut, m.GasOutK)
	if err != nil {
		return EnergyOutputs{}, err
	}
	out := thermo.SolidSensible(mass.PureIronOut, thermo.CpFe, m.DRIOutK) +
		thermo.Fe2O3Enthalpy(mass.UnreducedFe2O3, m.DRIOutK) +
		thermo.SolidSensible(mass.Gangue, thermo.CpGangue, m.DRIOutK) +
		h2Out + h2oOut

	inKW := units.KJPerHourToKW(in)
	outKW := units.KJPerHourToKW(out)
	return EnergyOutputs{
		EnthalpyIn:    inKW,
		EnthalpyOut:   outKW,
		EnergyBalance: outKW - inKW,
	}, nil
}

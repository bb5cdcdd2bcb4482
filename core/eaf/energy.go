package eaf

import (
	"greensteel-core/quantity"
	"greensteel-core/thermo"
	"greensteel-core/units"
)

// EnergyOutputs is the furnace electrical demand, kW.
type EnergyOutputs struct {
	SteelHeat     float64
	SlagHeat      float64
	ReductionHeat float64
	Electricity   float64
}

func (o EnergyOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "steel_heat", Label: "Steel heating and melting", Value: o.SteelHeat, Unit: "kW"},
		{Key: "slag_heat", Label: "Slag", Value: o.SlagHeat, Unit: "kW"},
		{Key: "reduction_heat", Label: "Carbon reduction", Value: o.ReductionHeat, Unit: "kW"},
		{Key: "el_needed", Label: "Electricity needed", Value: o.Electricity, Unit: "kW"},
	}
}

// Energy computes the arc power that melts hot DRI charged at the shaft
// discharge temperature.
func (m Model) Energy(steelRate float64) (EnergyOutputs, error) {
	if err := m.Validate(); err != nil {
		return EnergyOutputs{}, err
	}
	dri, err := m.DRI.Mass(steelRate)
	if err != nil {
		return EnergyOutputs{}, err
	}
	mass := m.mass(dri)

	perKg := m.CpSolid*(m.MeltK-m.DRI.DRIOutK) + m.FusionHeat + m.CpLiquid*(m.TapK-m.MeltK)
	steel := units.KJPerHourToKW(mass.SteelOut * perKg)
	slag := units.KJPerHourToKW(mass.SlagOut * m.SlagEnthalpy)
	red := units.KJPerHourToKW(dri.UnreducedFe2O3 / thermo.MFe2O3 * thermo.ReductionEnthalpyC())

	return EnergyOutputs{
		SteelHeat:     steel,
		SlagHeat:      slag,
		ReductionHeat: red,
		Electricity:   (steel + slag + red) / m.ArcEfficiency,
	}, nil
}

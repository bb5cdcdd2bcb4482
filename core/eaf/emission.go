package eaf

import (
	"greensteel-core/quantity"
	"greensteel-core/thermo"
	"greensteel-core/units"
)

// EmissionOutputs are tCO2/hr.
type EmissionOutputs struct {
	Indirect  float64 // grid electricity for the furnace and the H2 heater
	Direct    float64
	Total     float64
	Carbon    float64 // reduction and injection carbon burnt to CO2
	Lime      float64 // calcination
	Electrode float64
	Pellet    float64 // upstream pelletizing
}

func (o EmissionOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "indirect_emissions", Label: "Indirect emissions", Value: o.Indirect, Unit: "tCO2/hr"},
		{Key: "direct_emissions", Label: "Direct emissions", Value: o.Direct, Unit: "tCO2/hr"},
		{Key: "total_emissions", Label: "Total emissions", Value: o.Total, Unit: "tCO2/hr"},
		{Key: "carbon_emissions", Label: "Carbon", Value: o.Carbon, Unit: "tCO2/hr"},
		{Key: "lime_emissions", Label: "Lime calcination", Value: o.Lime, Unit: "tCO2/hr"},
		{Key: "electrode_emissions", Label: "Electrodes", Value: o.Electrode, Unit: "tCO2/hr"},
		{Key: "pellet_emissions", Label: "Pellet production", Value: o.Pellet, Unit: "tCO2/hr"},
	}
}

// Emission computes CO2 for a steel rate in kg/hr. Alloy carbon stays in the
// steel and is not counted.
func (m Model) Emission(steelRate float64) (EmissionOutputs, error) {
	en, err := m.Energy(steelRate)
	if err != nil {
		return EmissionOutputs{}, err
	}
	heater, err := m.DRI.Heater(steelRate)
	if err != nil {
		return EmissionOutputs{}, err
	}
	dri, err := m.DRI.Mass(steelRate)
	if err != nil {
		return EmissionOutputs{}, err
	}
	mass := m.mass(dri)

	const co2PerC = thermo.MCO2 / thermo.MC
	mwh := (en.Electricity + heater.Electricity) / units.KWPerMW
	indirect := mwh * m.GridIntensity
	carbon := (mass.CarbonReduction + mass.CarbonInjected) * co2PerC / units.KgPerTonne
	lime := mass.LimeNeeded * thermo.MCO2 / thermo.MCaO / units.KgPerTonne
	electrode := m.ElectrodeConsumption * mass.SteelOut / units.KgPerTonne * co2PerC / units.KgPerTonne
	pellet := dri.IronOre / units.KgPerTonne * m.PelletIntensity

	direct := carbon + lime + electrode + pellet
	return EmissionOutputs{
		Indirect:  indirect,
		Direct:    direct,
		Total:     indirect + direct,
		Carbon:    carbon,
		Lime:      lime,
		Electrode: electrode,
		Pellet:    pellet,
	}, nil
}

package hdri

import (
	"math"

	"greensteel-core/quantity"
	"greensteel-core/thermo"
	"greensteel-core/units"
)

// RecuperatorOutputs describes the top-gas/fresh-H2 heat exchanger.
type RecuperatorOutputs struct {
	H2OutletK        float64 // fresh H2 temperature leaving the recuperator
	EnthalpyToHeater float64 // sensible enthalpy of the H2 entering the heater, kW
	DutyRecovered    float64 // kW
}

func (o RecuperatorOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "h2_outlet_temp", Label: "H2 outlet temperature", Value: o.H2OutletK, Unit: "K"},
		{Key: "enthalpy_to_heater", Label: "H2 enthalpy to heater", Value: o.EnthalpyToHeater, Unit: "kW"},
		{Key: "duty_recovered", Label: "Recovered duty", Value: o.DutyRecovered, Unit: "kW"},
	}
}

// Recuperator preheats the fresh H2 against the top gas. The outlet
// temperature follows the effectiveness relation T_feed + ε(T_gas − T_feed).
func (m Model) Recuperator(steelRate float64) (RecuperatorOutputs, error) {
	mass, err := m.Mass(steelRate)
	if err != nil {
		return RecuperatorOutputs{}, err
	}
	tOut := m.H2FeedK + m.RecuperatorEffectiveness*(m.GasOutK-m.H2FeedK)

	hOut, err := thermo.GasSensibleFlow(thermo.H2, mass.H2In, tOut)
	if err != nil {
		return RecuperatorOutputs{}, err
	}
	hFeed, err := thermo.GasSensibleFlow(thermo.H2, mass.H2In, m.H2FeedK)
	if err != nil {
		return RecuperatorOutputs{}, err
	}
	return RecuperatorOutputs{
		H2OutletK:        tOut,
		EnthalpyToHeater: units.KJPerHourToKW(hOut),
		DutyRecovered:    units.KJPerHourToKW(hOut - hFeed),
	}, nil
}

// HeaterOutputs is the electric H2 heater load.
type HeaterOutputs struct {
	HeatingDuty  float64 // recuperator outlet → shaft inlet, kW
	ShaftDeficit float64 // positive part of the shaft energy balance, kW
	Electricity  float64 // kW
}

func (o HeaterOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "heating_duty", Label: "H2 heating duty", Value: o.HeatingDuty, Unit: "kW"},
		{Key: "shaft_deficit", Label: "Shaft heat deficit", Value: o.ShaftDeficit, Unit: "kW"},
		{Key: "elec_needed", Label: "Electricity needed", Value: o.Electricity, Unit: "kW"},
	}
}

// Heater sizes the electric heater that lifts the reducing gas to the shaft
// inlet temperature and covers any heat the shaft itself is short of.
func (m Model) Heater(steelRate float64) (HeaterOutputs, error) {
	rec, err := m.Recuperator(steelRate)
	if err != nil {
		return HeaterOutputs{}, err
	}
	mass, err := m.Mass(steelRate)
	if err != nil {
		return HeaterOutputs{}, err
	}
	en, err := m.Energy(steelRate)
	if err != nil {
		return HeaterOutputs{}, err
	}
	hInlet, err := thermo.GasSensibleFlow(thermo.H2, mass.H2In, m.H2InK)
	if err != nil {
		return HeaterOutputs{}, err
	}

	duty := units.KJPerHourToKW(hInlet) - rec.EnthalpyToHeater
	deficit := math.Max(0, en.EnergyBalance)
	return HeaterOutputs{
		HeatingDuty:  duty,
		ShaftDeficit: deficit,
		Electricity:  (duty + deficit) / m.HeaterEfficiency,
	}, nil
}

// Package plant runs the HDRI, EAF and electrolyzer models for one scenario
// and turns them into plant totals, intensities and a levelized cost.
package plant

import (
	"context"
	"fmt"

	"greensteel-core/eaf"
	"greensteel-core/electrolyzer"
	"greensteel-core/hdri"
	"greensteel-core/quantity"
	"greensteel-core/units"

	"greensteel/internal/scenario"
)

// Outputs are the model results at the scenario's steel rate. Flows are per
// hour, financial outputs per operating year.
type Outputs struct {
	SteelRate      float64 // kg/hr
	TonnesPerYear  float64
	TonnesPerDay   float64
	OperatingHours float64

	HDRIMass      hdri.MassOutputs
	HDRIEnergy    hdri.EnergyOutputs
	Recuperator   hdri.RecuperatorOutputs
	Heater        hdri.HeaterOutputs
	HDRIFinancial hdri.FinancialOutputs

	EAFMass      eaf.MassOutputs
	EAFEnergy    eaf.EnergyOutputs
	EAFEmission  eaf.EmissionOutputs
	EAFFinancial eaf.FinancialOutputs

	Electrolyzer electrolyzer.Sizing
}

// Section is a named group of quantities, in print order.
type Section struct {
	Name  string
	Items []quantity.Quantity
}

// Sections lists every model output.
func (o Outputs) Sections() []Section {
	return []Section{
		{"HDRI mass", o.HDRIMass.Quantities()},
		{"HDRI energy", o.HDRIEnergy.Quantities()},
		{"Recuperator", o.Recuperator.Quantities()},
		{"Heater", o.Heater.Quantities()},
		{"HDRI financial", o.HDRIFinancial.Quantities()},
		{"EAF mass", o.EAFMass.Quantities()},
		{"EAF energy", o.EAFEnergy.Quantities()},
		{"EAF emissions", o.EAFEmission.Quantities()},
		{"EAF financial", o.EAFFinancial.Quantities()},
		{"Electrolyzer", o.Electrolyzer.Quantities()},
	}
}

// Electricity is MWh per year by consumer. Furnace and heater loads run
// over a calendar year; the electrolyzer follows the operating-year H2
// demand.
type Electricity struct {
	EAF          float64
	Heater       float64
	Electrolyzer float64
	Total        float64
}

// Intensities are per tonne of liquid steel.
type Intensities struct {
	IronOre     float64 // kg
	Lime        float64 // kg
	Carbon      float64 // kg
	Hydrogen    float64 // kg
	Water       float64 // kg
	Electricity float64 // MWh
	Emissions   float64 // tCO2
}

func (i Intensities) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "iron_ore", Label: "Iron ore", Value: i.IronOre, Unit: "kg/tls"},
		{Key: "lime", Label: "Lime", Value: i.Lime, Unit: "kg/tls"},
		{Key: "carbon", Label: "Carbon", Value: i.Carbon, Unit: "kg/tls"},
		{Key: "hydrogen", Label: "Hydrogen", Value: i.Hydrogen, Unit: "kg/tls"},
		{Key: "water", Label: "Water", Value: i.Water, Unit: "kg/tls"},
		{Key: "electricity", Label: "Electricity", Value: i.Electricity, Unit: "MWh/tls"},
		{Key: "emissions", Label: "Emissions", Value: i.Emissions, Unit: "tCO2/tls"},
	}
}

// BalanceReport is the output of the balance tool.
type BalanceReport struct {
	Scenario    scenario.Scenario
	Outputs     Outputs
	Electricity Electricity
	Intensities Intensities
	Checks      []Check
}

// Balance runs the models for s without costing the plant.
func Balance(ctx context.Context, s scenario.Scenario) (BalanceReport, error) {
	if err := ctx.Err(); err != nil {
		return BalanceReport{}, err
	}
	if err := s.Validate(); err != nil {
		return BalanceReport{}, err
	}
	out, err := run(s)
	if err != nil {
		return BalanceReport{}, err
	}
	elec := electricity(out)
	return BalanceReport{
		Scenario:    s,
		Outputs:     out,
		Electricity: elec,
		Intensities: intensities(s, out, elec),
		Checks:      runChecks(s, out, elec),
	}, nil
}

func run(s scenario.Scenario) (Outputs, error) {
	m := s.Plant
	rate := s.SteelOutput
	o := Outputs{
		SteelRate:      rate,
		TonnesPerYear:  units.TonnesPerYear(rate),
		TonnesPerDay:   units.TonnesPerDay(rate),
		OperatingHours: units.OperatingHoursPerYear,
	}

	var err error
	wrap := func(stage string) error { return fmt.Errorf("%s: %w", stage, err) }

	if o.HDRIMass, err = m.DRI.Mass(rate); err != nil {
		return o, wrap("hdri mass")
	}
	if o.HDRIEnergy, err = m.DRI.Energy(rate); err != nil {
		return o, wrap("hdri energy")
	}
	if o.Recuperator, err = m.DRI.Recuperator(rate); err != nil {
		return o, wrap("recuperator")
	}
	if o.Heater, err = m.DRI.Heater(rate); err != nil {
		return o, wrap("heater")
	}
	if o.HDRIFinancial, err = m.DRI.Financial(o.TonnesPerYear); err != nil {
		return o, wrap("hdri financial")
	}
	if o.EAFMass, err = m.Mass(rate); err != nil {
		return o, wrap("eaf mass")
	}
	if o.EAFEnergy, err = m.Energy(rate); err != nil {
		return o, wrap("eaf energy")
	}
	if o.EAFEmission, err = m.Emission(rate); err != nil {
		return o, wrap("eaf emissions")
	}
	if o.EAFFinancial, err = m.Financial(o.TonnesPerYear); err != nil {
		return o, wrap("eaf financial")
	}
	// The electrolyzer is sized on the full shaft feed.
	if o.Electrolyzer, err = electrolyzer.Size(units.PerYear(o.HDRIMass.H2In), s.Electrolyzer); err != nil {
		return o, wrap("electrolyzer")
	}
	return o, nil
}

func electricity(o Outputs) Electricity {
	e := Electricity{
		EAF:          units.CalendarMWhPerYear(o.EAFEnergy.Electricity),
		Heater:       units.CalendarMWhPerYear(o.Heater.Electricity),
		Electrolyzer: o.Electrolyzer.ElectricityMWhPerYear,
	}
	e.Total = e.EAF + e.Heater + e.Electrolyzer
	return e
}

func intensities(s scenario.Scenario, o Outputs, e Electricity) Intensities {
	tph := o.SteelRate / units.KgPerTonne
	h2 := o.HDRIMass.H2In / tph
	return Intensities{
		IronOre:     o.HDRIMass.IronOre / tph,
		Lime:        o.EAFMass.LimeNeeded / (o.EAFMass.SteelOut / units.KgPerTonne),
		Carbon:      o.EAFMass.CarbonNeeded / tph,
		Hydrogen:    h2,
		Water:       h2 * s.Electrolyzer.WaterPerKgH2,
		Electricity: e.Total / o.TonnesPerYear,
		Emissions:   o.EAFEmission.Total / tph,
	}
}

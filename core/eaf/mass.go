package eaf

import (
	"math"

	"greensteel-core/hdri"
	"greensteel-core/quantity"
	"greensteel-core/thermo"
)

// MassOutputs is the furnace mass balance in kg/hr.
type MassOutputs struct {
	SteelDesired    float64
	SteelOut        float64 // tapped steel
	DRIIn           float64
	CarbonNeeded    float64
	CarbonReduction float64 // for the leftover Fe2O3
	CarbonAlloy     float64 // dissolved in the steel
	CarbonInjected  float64 // foamy slag practice
	LimeNeeded      float64
	SlagOut         float64
}

// Yield is tapped steel per unit of requested steel.
func (o MassOutputs) Yield() float64 {
	if o.SteelDesired == 0 {
		return 1
	}
	return o.SteelOut / o.SteelDesired
}

func (o MassOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "steel_out", Label: "Steel out (actual)", Value: o.SteelOut, Unit: "kg/hr"},
		{Key: "dri_in", Label: "DRI in", Value: o.DRIIn, Unit: "kg/hr"},
		{Key: "carbon_needed", Label: "Carbon needed", Value: o.CarbonNeeded, Unit: "kg/hr"},
		{Key: "lime_needed", Label: "Lime needed", Value: o.LimeNeeded, Unit: "kg/hr"},
		{Key: "slag_out", Label: "Slag out", Value: o.SlagOut, Unit: "kg/hr"},
	}
}

// Mass computes the furnace charge and products for a steel rate in kg/hr.
func (m Model) Mass(steelRate float64) (MassOutputs, error) {
	if err := m.Validate(); err != nil {
		return MassOutputs{}, err
	}
	dri, err := m.DRI.Mass(steelRate)
	if err != nil {
		return MassOutputs{}, err
	}
	return m.mass(dri), nil
}

func (m Model) mass(dri hdri.MassOutputs) MassOutputs {
	feFromOxide := dri.UnreducedFe2O3 * 2 * thermo.MFe / thermo.MFe2O3
	feTotal := dri.PureIronOut + feFromOxide
	steel := feTotal / (1 - m.DRI.SteelCarbon)

	cRed := 3 * dri.UnreducedFe2O3 / thermo.MFe2O3 * thermo.MC
	cAlloy := steel * m.DRI.SteelCarbon
	cInj := m.CarbonInjection * steel / 1000

	ore := m.DRI.Ore
	acid := dri.IronOre * ore.Acid()
	base := dri.IronOre * ore.Base()
	lime := math.Max(0, m.Basicity*acid-base)

	return MassOutputs{
		SteelDesired:    dri.SteelOut,
		SteelOut:        steel,
		DRIIn:           dri.DRIOut(),
		CarbonNeeded:    cRed + cAlloy + cInj,
		CarbonReduction: cRed,
		CarbonAlloy:     cAlloy,
		CarbonInjected:  cInj,
		LimeNeeded:      lime,
		SlagOut:         dri.Gangue + lime,
	}
}

package hdri

import (
	"greensteel-core/quantity"
	"greensteel-core/thermo"
)

// MassOutputs is the shaft mass balance, in the unit of the steel rate.
type MassOutputs struct {
	SteelOut         float64 // requested steel, echoed back
	IronOre          float64 // pellets charged
	H2In             float64
	H2Out            float64
	H2OOut           float64
	PureIronOut      float64 // metallic Fe in the DRI
	GasStreamOut     float64 // H2Out + H2OOut
	IronOreOut       float64 // unreduced Fe2O3 + gangue leaving with the DRI
	UnreducedFe2O3   float64
	Gangue           float64
	H2Stoichiometric float64
}

// DRIOut is everything discharged at the bottom of the shaft.
func (o MassOutputs) DRIOut() float64 { return o.PureIronOut + o.IronOreOut }

func (o MassOutputs) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "steel_out", Label: "Steel out (desired)", Value: o.SteelOut, Unit: "kg/hr"},
		{Key: "iron_ore_in", Label: "Iron ore in", Value: o.IronOre, Unit: "kg/hr"},
		{Key: "h2_in", Label: "H2 in", Value: o.H2In, Unit: "kg/hr"},
		{Key: "h2_out", Label: "H2 out", Value: o.H2Out, Unit: "kg/hr"},
		{Key: "h2o_out", Label: "H2O out", Value: o.H2OOut, Unit: "kg/hr"},
		{Key: "pure_iron_out", Label: "Pure iron out", Value: o.PureIronOut, Unit: "kg/hr"},
		{Key: "gas_stream_out", Label: "Gas stream out", Value: o.GasStreamOut, Unit: "kg/hr"},
		{Key: "iron_ore_out", Label: "Iron ore out", Value: o.IronOreOut, Unit: "kg/hr"},
		{Key: "gangue_out", Label: "Gangue out", Value: o.Gangue, Unit: "kg/hr"},
	}
}

// Mass computes the shaft mass balance for a steel rate (kg/hr).
func (m Model) Mass(steelRate float64) (MassOutputs, error) {
	if err := checkRate(steelRate); err != nil {
		return MassOutputs{}, err
	}
	if err := m.Validate(); err != nil {
		return MassOutputs{}, err
	}

	feReduced := steelRate * (1 - m.SteelCarbon)
	feTotal := feReduced / m.Metallization

	fe2o3PerFe := thermo.MFe2O3 / (2 * thermo.MFe)
	fe2o3 := feTotal * fe2o3PerFe
	ore := fe2o3 / m.Ore.Fe2O3
	gangue := ore * m.Ore.Gangue()
	unreduced := (feTotal - feReduced) * fe2o3PerFe

	// 3 mol H2 per 2 mol Fe.
	molFe := feReduced / thermo.MFe
	h2Stoich := 1.5 * molFe * thermo.MH2
	h2In := m.ExcessH2 * h2Stoich
	h2o := 1.5 * molFe * thermo.MH2O
	h2Out := h2In - h2Stoich

	return MassOutputs{
		SteelOut:         steelRate,
		IronOre:          ore,
		H2In:             h2In,
		H2Out:            h2Out,
		H2OOut:           h2o,
		PureIronOut:      feReduced,
		GasStreamOut:     h2Out + h2o,
		IronOreOut:       unreduced + gangue,
		UnreducedFe2O3:   unreduced,
		Gangue:           gangue,
		H2Stoichiometric: h2Stoich,
	}, nil
}

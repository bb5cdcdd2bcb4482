// core/hdri/model.go
// Hydrogen direct-reduction shaft: Fe2O3 + 3H2 → 2Fe + 3H2O.
//
// Not all ore is reduced in the shaft (metallization ~95-97%); the leftover
// oxide travels with the DRI and is reduced by carbon in the arc furnace.
// More H2 is fed than is stoichiometrically required; the surplus leaves in
// the top gas with the product steam and can be recycled.
//
// All mass outputs share the unit of the requested steel rate: kg/hr in,
// kg/hr out. Energy outputs are kW for kg/hr inputs.
package hdri

import (
	"errors"
	"fmt"
	"math"

	"greensteel-core/units"
)

var (
	ErrInvalidRate  = errors.New("steel rate must be finite and ≥ 0")
	ErrInvalidModel = errors.New("invalid hdri model parameter")
)

// OreComposition is the mass-fraction analysis of the iron-ore pellets.
type OreComposition struct {
	Fe2O3 float64
	SiO2  float64
	Al2O3 float64
	CaO   float64
	MgO   float64
}

// Gangue is the non-iron fraction of the ore.
func (c OreComposition) Gangue() float64 { return c.SiO2 + c.Al2O3 + c.CaO + c.MgO }

// Acid returns SiO2 + Al2O3; Base returns CaO + MgO.
func (c OreComposition) Acid() float64 { return c.SiO2 + c.Al2O3 }
func (c OreComposition) Base() float64 { return c.CaO + c.MgO }

// Financials are the unit cost rates of the shaft plant.
type Financials struct {
	CapexPerTonneYear   float64 // USD per (tls/yr) of capacity, before the lang factor
	LangFactor          float64 // multiplier for construction and auxiliary systems
	FixedOMPerTonne     float64 // USD/tls
	MaintenanceFraction float64 // of total capex, per year
	PlantLifeYears      float64
	IronOrePerTonne     float64 // USD per tonne of ore
	LaborPerTonne       float64 // USD/tls
}

// Model holds the shaft's process and cost parameters.
type Model struct {
	Metallization float64 // fraction of ore iron reduced in the shaft
	ExcessH2      float64 // H2 fed / H2 consumed
	Ore           OreComposition
	SteelCarbon   float64 // carbon mass fraction of the final steel

	OreInK  float64 // pellet charge temperature
	H2FeedK float64 // fresh H2 temperature before the recuperator
	H2InK   float64 // reducing gas temperature at the shaft inlet
	GasOutK float64 // top gas temperature
	DRIOutK float64 // DRI discharge temperature

	RecuperatorEffectiveness float64
	HeaterEfficiency         float64 // electric heater efficiency

	Fin Financials
}

// Default returns the reference plant parameters. Reduction by H2 is
// endothermic; the excess H2 ratio and inlet temperature are set so the gas
// carries enough sensible heat that the shaft runs a small surplus.
func Default() Model {
	return Model{
		Metallization: 0.96,
		ExcessH2:      2.2,
		Ore: OreComposition{
			Fe2O3: 0.928,
			SiO2:  0.035,
			Al2O3: 0.015,
			CaO:   0.012,
			MgO:   0.010,
		},
		SteelCarbon: 0.0007,

		OreInK:  units.ReferenceTempK,
		H2FeedK: units.ReferenceTempK,
		H2InK:   1273.15,
		GasOutK: 473.15,
		DRIOutK: 873.15,

		RecuperatorEffectiveness: 0.75,
		HeaterEfficiency:         0.60,

		Fin: Financials{
			CapexPerTonneYear:   80,
			LangFactor:          3,
			FixedOMPerTonne:     13,
			MaintenanceFraction: 0.015,
			PlantLifeYears:      40,
			IronOrePerTonne:     90,
			LaborPerTonne:       20,
		},
	}
}

// Validate checks parameter ranges.
func (m Model) Validate() error {
	bad := func(field string, v float64) error {
		return fmt.Errorf("%w: %s=%v", ErrInvalidModel, field, v)
	}
	switch {
	case !(m.Metallization > 0 && m.Metallization <= 1):
		return bad("metallization", m.Metallization)
	case !(m.ExcessH2 >= 1):
		return bad("excess_h2", m.ExcessH2)
	case !(m.SteelCarbon >= 0 && m.SteelCarbon < 0.05):
		return bad("steel_carbon", m.SteelCarbon)
	case !(m.Ore.Fe2O3 > 0):
		return bad("ore.fe2o3", m.Ore.Fe2O3)
	case m.Ore.SiO2 < 0 || m.Ore.Al2O3 < 0 || m.Ore.CaO < 0 || m.Ore.MgO < 0:
		return bad("ore.gangue", m.Ore.Gangue())
	case math.Abs(m.Ore.Fe2O3+m.Ore.Gangue()-1) > 1e-6:
		return bad("ore.total", m.Ore.Fe2O3+m.Ore.Gangue())
	case !(m.RecuperatorEffectiveness >= 0 && m.RecuperatorEffectiveness < 1):
		return bad("recuperator_effectiveness", m.RecuperatorEffectiveness)
	case !(m.HeaterEfficiency > 0 && m.HeaterEfficiency <= 1):
		return bad("heater_efficiency", m.HeaterEfficiency)
	case m.GasOutK < m.H2FeedK:
		return bad("gas_out_k", m.GasOutK)
	case m.H2InK < m.GasOutK:
		return bad("h2_in_k", m.H2InK)
	case !(m.Fin.PlantLifeYears > 0):
		return bad("plant_life_years", m.Fin.PlantLifeYears)
	case !(m.Fin.LangFactor > 0):
		return bad("lang_factor", m.Fin.LangFactor)
	}
	return nil
}

func checkRate(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, r)
	}
	return nil
}

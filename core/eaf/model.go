// Package eaf models the electric arc furnace that melts hot DRI from the
// hydrogen shaft into liquid steel.
//
// Oxide the shaft left unreduced is reduced in the bath by injected carbon
// (Fe2O3 + 3C → 2Fe + 3CO), so the furnace taps slightly more steel than
// was requested upstream. Lime is added to reach the target slag basicity.
package eaf

import (
	"errors"
	"fmt"

	"greensteel-core/hdri"
)

var ErrInvalidModel = errors.New("invalid eaf model parameter")

// Financials are the unit cost rates of the furnace plant.
type Financials struct {
	CapexPerTonneYear   float64 // USD per (tls/yr), before the lang factor
	LangFactor          float64
	FixedOMPerTonne     float64 // USD/tls
	MaintenanceFraction float64 // of capex, per year
	PlantLifeYears      float64
	CoalPerTonne        float64 // USD/t carbon
	LaborPerTonne       float64 // USD/tls
	LimePerTonne        float64 // USD/t lime
	EmissionPerTonne    float64 // USD/tCO2
}

// Model is the furnace and the shaft that feeds it.
type Model struct {
	DRI hdri.Model

	TapK          float64
	MeltK         float64
	CpSolid       float64 // kJ/(kg·K)
	CpLiquid      float64 // kJ/(kg·K)
	FusionHeat    float64 // kJ/kg
	SlagEnthalpy  float64 // kJ/kg slag at tap
	ArcEfficiency float64

	Basicity             float64 // (CaO+MgO)/(SiO2+Al2O3)
	CarbonInjection      float64 // kg/tls
	ElectrodeConsumption float64 // kg/tls
	PelletIntensity      float64 // tCO2 per t ore pelletized
	GridIntensity        float64 // tCO2/MWh

	Fin Financials
}

func Default() Model {
	return Model{
		DRI: hdri.Default(),

		TapK:          1923.15,
		MeltK:         1811.15,
		CpSolid:       0.70,
		CpLiquid:      0.82,
		FusionHeat:    247,
		SlagEnthalpy:  1800,
		ArcEfficiency: 0.85,

		Basicity:             1.5,
		CarbonInjection:      10,
		ElectrodeConsumption: 1.8,
		PelletIntensity:      0.035,
		GridIntensity:        0.4,

		Fin: Financials{
			CapexPerTonneYear:   140,
			LangFactor:          3,
			FixedOMPerTonne:     32,
			MaintenanceFraction: 0.015,
			PlantLifeYears:      40,
			CoalPerTonne:        120,
			LaborPerTonne:       20,
			LimePerTonne:        112,
			EmissionPerTonne:    30,
		},
	}
}

func (m Model) Validate() error {
	bad := func(field string, v float64) error {
		return fmt.Errorf("%w: %s=%v", ErrInvalidModel, field, v)
	}
	switch {
	case m.TapK < m.MeltK:
		return bad("tap_k", m.TapK)
	case m.DRI.DRIOutK > m.MeltK:
		return bad("dri_out_k", m.DRI.DRIOutK)
	case !(m.ArcEfficiency > 0 && m.ArcEfficiency <= 1):
		return bad("arc_efficiency", m.ArcEfficiency)
	case m.Basicity < 0:
		return bad("basicity", m.Basicity)
	case m.CarbonInjection < 0:
		return bad("carbon_injection", m.CarbonInjection)
	case m.ElectrodeConsumption < 0:
		return bad("electrode_consumption", m.ElectrodeConsumption)
	case m.GridIntensity < 0:
		return bad("grid_intensity", m.GridIntensity)
	case !(m.Fin.PlantLifeYears > 0):
		return bad("plant_life_years", m.Fin.PlantLifeYears)
	case !(m.Fin.LangFactor > 0):
		return bad("lang_factor", m.Fin.LangFactor)
	}
	return m.DRI.Validate()
}

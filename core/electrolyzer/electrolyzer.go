// Package electrolyzer sizes the water electrolysis plant that supplies the
// shaft's hydrogen.
package electrolyzer

import (
	"errors"
	"fmt"
	"math"

	"greensteel-core/quantity"
	"greensteel-core/units"
)

// LHV of hydrogen, MJ/kg.
const LHV = 120.1

var ErrInvalidParam = errors.New("invalid electrolyzer parameter")

type Params struct {
	Efficiency         float64 // LHV basis
	CapexMUSDPerMW     float64
	LangFactor         float64
	SpecificEnergy     float64 // kWh per kg H2
	WaterPerKgH2       float64 // kg
	WaterPricePerTonne float64 // USD
	RefurbPeriodYears  int     // 0 disables stack replacement
	RefurbFraction     float64 // of capex, per replacement
}

func DefaultParams() Params {
	return Params{
		Efficiency:         0.67,
		CapexMUSDPerMW:     0.6,
		LangFactor:         3,
		SpecificEnergy:     55.5,
		WaterPerKgH2:       11,
		WaterPricePerTonne: 0.59289,
	}
}

func (p Params) Validate() error {
	switch {
	case !(p.Efficiency > 0 && p.Efficiency <= 1):
		return fmt.Errorf("%w: efficiency=%v", ErrInvalidParam, p.Efficiency)
	case p.CapexMUSDPerMW < 0:
		return fmt.Errorf("%w: capex=%v", ErrInvalidParam, p.CapexMUSDPerMW)
	case !(p.LangFactor > 0):
		return fmt.Errorf("%w: lang_factor=%v", ErrInvalidParam, p.LangFactor)
	case p.SpecificEnergy < 0:
		return fmt.Errorf("%w: specific_energy=%v", ErrInvalidParam, p.SpecificEnergy)
	case p.WaterPerKgH2 < 0 || p.WaterPricePerTonne < 0:
		return fmt.Errorf("%w: water", ErrInvalidParam)
	case p.RefurbPeriodYears < 0 || p.RefurbFraction < 0:
		return fmt.Errorf("%w: refurbishment", ErrInvalidParam)
	}
	return nil
}

// Sizing is the electrolysis plant for a given annual hydrogen demand.
type Sizing struct {
	H2KgPerYear           float64
	H2KgPerSecond         float64
	CapacityMW            float64
	CapexMUSD             float64
	WaterKgPerYear        float64
	WaterCostUSD          float64 // per year
	ElectricityMWhPerYear float64
}

func (s Sizing) Quantities() []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "h2_kg_per_year", Label: "H2 produced", Value: s.H2KgPerYear, Unit: "kg/yr"},
		{Key: "capacity", Label: "Electrical capacity", Value: s.CapacityMW, Unit: "MW"},
		{Key: "capex", Label: "Capital cost", Value: s.CapexMUSD, Unit: "MUSD"},
		{Key: "water", Label: "Water", Value: s.WaterKgPerYear, Unit: "kg/yr"},
		{Key: "water_cost", Label: "Water cost", Value: s.WaterCostUSD, Unit: "USD/yr"},
		{Key: "electricity", Label: "Electricity", Value: s.ElectricityMWhPerYear, Unit: "MWh/yr"},
	}
}

// Size returns the plant that delivers h2KgPerYear over the operating hours
// of a year. Capacity is rated as kg/s · LHV · efficiency; electricity use
// comes from the specific energy, not from the capacity.
func Size(h2KgPerYear float64, p Params) (Sizing, error) {
	if math.IsNaN(h2KgPerYear) || math.IsInf(h2KgPerYear, 0) || h2KgPerYear < 0 {
		return Sizing{}, fmt.Errorf("%w: h2 demand %v kg/yr", ErrInvalidParam, h2KgPerYear)
	}
	if err := p.Validate(); err != nil {
		return Sizing{}, err
	}
	kgs := units.KgPerSecond(h2KgPerYear)
	mw := kgs * LHV * p.Efficiency
	water := h2KgPerYear * p.WaterPerKgH2
	return Sizing{
		H2KgPerYear:           h2KgPerYear,
		H2KgPerSecond:         kgs,
		CapacityMW:            mw,
		CapexMUSD:             mw * p.CapexMUSDPerMW * p.LangFactor,
		WaterKgPerYear:        water,
		WaterCostUSD:          water / units.KgPerTonne * p.WaterPricePerTonne,
		ElectricityMWhPerYear: p.SpecificEnergy * h2KgPerYear / units.KWPerMW,
	}, nil
}

// RefurbSchedule returns, for each operating year, the fraction of capex
// spent on stack replacement. Replacements fall every RefurbPeriodYears and
// never in the final year.
func (p Params) RefurbSchedule(lifeYears int) []float64 {
	if lifeYears <= 0 {
		return nil
	}
	out := make([]float64, lifeYears)
	if p.RefurbPeriodYears <= 0 || p.RefurbFraction == 0 {
		return out
	}
	for y := p.RefurbPeriodYears; y < lifeYears; y += p.RefurbPeriodYears {
		out[y] = p.RefurbFraction
	}
	return out
}

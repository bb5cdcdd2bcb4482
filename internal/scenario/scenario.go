// Package scenario holds the inputs of one plant evaluation and loads them
// from YAML files.
package scenario

import (
	"fmt"
	"math"

	"greensteel-core/eaf"
	"greensteel-core/electrolyzer"
	"greensteel-core/proforma"
)

// Scenario is everything Evaluate needs. Zero values are not meaningful;
// start from Default.
type Scenario struct {
	Name   string
	Source string // file the scenario came from, empty for flags

	ElectricityPrice float64 // USD/MWh
	SteelOutput      float64 // kg/hr
	DiscountRate     float64
	Lifetime         int // years

	Electrolyzer electrolyzer.Params
	Plant        eaf.Model // furnace plus its HDRI shaft
	Finance      Finance
	Benchmarks   Benchmarks
}

// Benchmarks are reference per-tonne electricity demands. The capacity
// checks divide each consumer's yearly electricity by its benchmark and
// expect to recover the plant's calendar-year output within Tolerance.
type Benchmarks struct {
	EAFKWhPerTonne    float64
	HeaterKWhPerTonne float64
	Tolerance         float64 // relative
}

// Finance holds the pro forma assumptions that are not derived from the
// plant models.
type Finance struct {
	AnalysisStartYear    int
	InstallationMonths   int
	Inflation            float64
	LongTermUtilization  float64
	DemandRampup         float64
	SalesTax             float64
	PropertyTax          float64 // and insurance, fraction of capex per year
	AdminExpense         float64 // fraction of revenue
	IncomeTaxRate        float64
	CapitalGainsTaxRate  float64
	LandCost             float64 // USD
	TaxLossesMonetized   bool
	SellUndepreciatedCap bool
	DeprType             proforma.DeprType
	DeprPeriod           int
}

const DefaultName = "default"

// Default is the reference plant: about one million tonnes of steel a year
// on 56.12 USD/MWh electricity.
func Default() Scenario {
	return Scenario{
		Name:             DefaultName,
		ElectricityPrice: 56.12,
		SteelOutput:      120160,
		DiscountRate:     0.10,
		Lifetime:         40,
		Electrolyzer:     electrolyzer.DefaultParams(),
		Plant:            eaf.Default(),
		Finance: Finance{
			AnalysisStartYear:    2021,
			InstallationMonths:   12,
			Inflation:            0.025,
			LongTermUtilization:  1,
			SalesTax:             0.025,
			PropertyTax:          0.009,
			AdminExpense:         0.005,
			IncomeTaxRate:        0.385,
			CapitalGainsTaxRate:  0.15,
			TaxLossesMonetized:   true,
			SellUndepreciatedCap: true,
			DeprType:             proforma.MACRS,
			DeprPeriod:           10,
		},
		Benchmarks: Benchmarks{
			EAFKWhPerTonne:    501.315,
			HeaterKWhPerTonne: 690.5,
			Tolerance:         0.05,
		},
	}
}

// Validate checks the top-level inputs. Model and pro forma parameters are
// validated again by the packages that use them.
func (s Scenario) Validate() error {
	fe := func(field string, v any) error {
		return &FieldError{Path: s.Source, Field: field, Err: fmt.Errorf("%w: %v", ErrInvalidValue, v)}
	}
	switch {
	case !(s.SteelOutput > 0) || math.IsInf(s.SteelOutput, 0):
		return fe("steel_output", s.SteelOutput)
	case !(s.ElectricityPrice >= 0):
		return fe("electricity_price", s.ElectricityPrice)
	case !(s.DiscountRate > -1):
		return fe("discount_rate", s.DiscountRate)
	case s.Lifetime < 1:
		return fe("lifetime", s.Lifetime)
	case !(s.Electrolyzer.Efficiency > 0 && s.Electrolyzer.Efficiency <= 1):
		return fe("electrolyzer.efficiency", s.Electrolyzer.Efficiency)
	case !(s.Electrolyzer.CapexMUSDPerMW >= 0):
		return fe("electrolyzer.capex", s.Electrolyzer.CapexMUSDPerMW)
	case !(s.Electrolyzer.LangFactor > 0):
		return fe("electrolyzer.lang_factor", s.Electrolyzer.LangFactor)
	case !(s.Electrolyzer.SpecificEnergy >= 0):
		return fe("electrolyzer.specific_energy", s.Electrolyzer.SpecificEnergy)
	case !(s.Finance.LongTermUtilization > 0 && s.Finance.LongTermUtilization <= 1):
		return fe("finance.utilization", s.Finance.LongTermUtilization)
	case s.Finance.LandCost < 0:
		return fe("finance.land_cost", s.Finance.LandCost)
	case !(s.Benchmarks.EAFKWhPerTonne > 0):
		return fe("benchmarks.eaf_kwh_per_tls", s.Benchmarks.EAFKWhPerTonne)
	case !(s.Benchmarks.HeaterKWhPerTonne > 0):
		return fe("benchmarks.heater_kwh_per_tls", s.Benchmarks.HeaterKWhPerTonne)
	case !(s.Benchmarks.Tolerance > 0 && s.Benchmarks.Tolerance < 1):
		return fe("benchmarks.tolerance", s.Benchmarks.Tolerance)
	}
	if err := s.Plant.Validate(); err != nil {
		return &FieldError{Path: s.Source, Field: "plant", Err: err}
	}
	if _, err := proforma.Schedule(s.Finance.DeprType, s.Finance.DeprPeriod); err != nil {
		return &FieldError{Path: s.Source, Field: "finance.depreciation", Err: err}
	}
	return nil
}

package plant

import (
	"fmt"
	"math"

	"greensteel-core/thermo"
	"greensteel-core/units"

	"greensteel/internal/scenario"
)

// Check is one consistency test on the model outputs.
type Check struct {
	Name     string
	Expected float64
	Actual   float64
	Passed   bool
	// Warning checks are reported but never fail a strict run.
	Warning bool
	Note    string
}

const (
	closureTol = 1e-9
	yieldMax   = 1.10
)

func relEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func runChecks(s scenario.Scenario, o Outputs, e Electricity) []Check {
	b := s.Benchmarks
	tph := o.SteelRate / units.KgPerTonne
	m := o.HDRIMass
	in := m.IronOre + m.H2In
	outflow := m.DRIOut() + m.GasStreamOut
	y := o.EAFMass.Yield()

	// Fe carried by the ore must leave as metal or unreduced oxide.
	fePerFe2O3 := 2 * thermo.MFe / thermo.MFe2O3
	feIn := m.IronOre * s.Plant.DRI.Ore.Fe2O3 * fePerFe2O3
	feOut := m.PureIronOut + m.UnreducedFe2O3*fePerFe2O3

	checks := []Check{
		{
			Name:     "hdri.iron_balance",
			Expected: feIn,
			Actual:   feOut,
			Passed:   relEqual(feIn, feOut, closureTol),
			Note:     "kg Fe/hr",
		},
		{
			Name:     "hdri.mass_closure",
			Expected: in,
			Actual:   outflow,
			Passed:   relEqual(in, outflow, closureTol),
			Note:     "kg/hr",
		},
		{
			Name:     "eaf.yield",
			Expected: 1,
			Actual:   y,
			Passed:   y >= 1 && y <= yieldMax,
			Note:     "within [1, 1.10]",
		},
		capacityCheck("capacity.eaf_electricity", tph, e.EAF, b.EAFKWhPerTonne, b.Tolerance),
		capacityCheck("capacity.heater_electricity", tph, e.Heater, b.HeaterKWhPerTonne, b.Tolerance),
		{
			Name:     "hdri.energy_balance",
			Expected: 0,
			Actual:   o.HDRIEnergy.EnergyBalance,
			Passed:   !o.HDRIEnergy.NeedsHeat(),
			Warning:  true,
			Note:     "kW; positive means the heater covers a shaft deficit",
		},
	}
	return checks
}

// capacityCheck divides a consumer's yearly electricity by a benchmark
// kWh/tls and expects the plant's calendar-year output back within tol.
func capacityCheck(name string, tph, mwhPerYear, benchKWh, tol float64) Check {
	c := Check{
		Name:     name,
		Expected: tph * units.HoursPerYear,
		Note:     fmt.Sprintf("tls/yr over 8760 h at %g kWh/tls, ±%g%%", benchKWh, tol*100),
	}
	if !(benchKWh > 0) {
		return c
	}
	c.Actual = mwhPerYear * units.KWPerMW / benchKWh
	c.Passed = relEqual(c.Expected, c.Actual, tol)
	return c
}

// Failed returns the checks that did not pass. Warnings are included only
// when withWarnings is set.
func Failed(checks []Check, withWarnings bool) []Check {
	var out []Check
	for _, c := range checks {
		if !c.Passed && (withWarnings || !c.Warning) {
			out = append(out, c)
		}
	}
	return out
}

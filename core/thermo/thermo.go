// core/thermo/thermo.go
// Thermochemistry for the direct-reduction shaft and the arc furnace.
// Units: enthalpy in kJ/mol (gases) or kJ/kg (solids), temperature in K.
//
// Gases use NIST Shomate correlations:
//
//	H(T) − H(298.15) = A·t + B·t²/2 + C·t³/3 + D·t⁴/4 − E/t + F − H,  t = T/1000
//
// Solids use mean heat capacities, which is accurate enough for the
// 298–1923 K span the models cover.
//
// This package has no app/output deps; the models import it directly.
package thermo

import (
	"errors"
	"fmt"

	"greensteel-core/units"
)

var ErrTemperatureRange = errors.New("temperature outside correlation range")

// Molar masses, kg/mol.
const (
	MFe    = 0.055845
	MO     = 0.015999
	MH2    = 0.002016
	MH2O   = 0.018015
	MC     = 0.012011
	MCO2   = 0.044009
	MFe2O3 = 2*MFe + 3*MO
	MCaO   = 0.056077
)

// Standard enthalpies of formation at 298.15 K, kJ/mol.
const (
	DfHFe2O3 = -824.2
	DfHH2O   = -241.826
	DfHCO    = -110.53
	DfHCO2   = -393.51
)

// Mean solid heat capacities, kJ/(kg·K).
const (
	CpFe     = 0.60
	CpFe2O3  = 0.90
	CpGangue = 1.00
)

// shomate holds one temperature range of a Shomate correlation.
type shomate struct {
	Tmin, Tmax             float64
	A, B, C, D, E, F, G, H float64
}

func (s shomate) sensible(T float64) float64 {
	t := T / 1000
	return s.A*t + s.B*t*t/2 + s.C*t*t*t/3 + s.D*t*t*t*t/4 - s.E/t + s.F - s.H
}

func (s shomate) cp(T float64) float64 {
	t := T / 1000
	return s.A + s.B*t + s.C*t*t + s.D*t*t*t + s.E/(t*t)
}

// Species identifies a gas with a Shomate table.
type Species int

const (
	H2 Species = iota
	H2O
)

func (s Species) String() string {
	switch s {
	case H2:
		return "H2"
	case H2O:
		return "H2O"
	default:
		return fmt.Sprintf("Species(%d)", int(s))
	}
}

// NIST WebBook tables. H2O(g) is published for 500–1700 K; it stays
// within 0.01 kJ/mol of zero at 298 K, so the range is extended down.
var tables = map[Species][]shomate{
	H2: {
		{Tmin: 298, Tmax: 1000, A: 33.066178, B: -11.363417, C: 11.432816, D: -2.772874, E: -0.158558, F: -9.980797, G: 172.707974, H: 0},
		{Tmin: 1000, Tmax: 2500, A: 18.563083, B: 12.257357, C: -2.859786, D: 0.268238, E: 1.977990, F: -1.147438, G: 156.288133, H: 0},
	},
	H2O: {
		{Tmin: 298, Tmax: 1700, A: 30.09200, B: 6.832514, C: 6.793435, D: -2.534480, E: 0.082139, F: -250.8810, G: 223.3967, H: -241.8264},
	},
}

func lookup(sp Species, T float64) (shomate, error) {
	for _, r := range tables[sp] {
		if T >= r.Tmin && T <= r.Tmax {
			return r, nil
		}
	}
	return shomate{}, fmt.Errorf("%s at %.2f K: %w", sp, T, ErrTemperatureRange)
}

// SensibleEnthalpy returns H(T) − H(298.15 K) in kJ/mol. The 298.15 K lower
// bound is tolerated down to 298 K.
func SensibleEnthalpy(sp Species, T float64) (float64, error) {
	r, err := lookup(sp, T)
	if err != nil {
		return 0, err
	}
	return r.sensible(T), nil
}

// Cp returns the molar heat capacity in J/(mol·K).
func Cp(sp Species, T float64) (float64, error) {
	r, err := lookup(sp, T)
	if err != nil {
		return 0, err
	}
	return r.cp(T), nil
}

// Enthalpy returns ΔfH298 + (H(T) − H298) in kJ/mol.
func Enthalpy(sp Species, T float64) (float64, error) {
	h, err := SensibleEnthalpy(sp, T)
	if err != nil {
		return 0, err
	}
	if sp == H2O {
		h += DfHH2O
	}
	return h, nil
}

// GasEnthalpyFlow returns the total enthalpy (kJ/hr) of massKgHr of a gas at T.
func GasEnthalpyFlow(sp Species, massKgHr, T float64) (float64, error) {
	h, err := Enthalpy(sp, T)
	if err != nil {
		return 0, err
	}
	return massKgHr / molarMass(sp) * h, nil
}

// GasSensibleFlow returns massKgHr·(H(T)−H298) in kJ/hr.
func GasSensibleFlow(sp Species, massKgHr, T float64) (float64, error) {
	h, err := SensibleEnthalpy(sp, T)
	if err != nil {
		return 0, err
	}
	return massKgHr / molarMass(sp) * h, nil
}

// SolidSensible returns m·cp·(T − 298.15) in kJ for a mean-cp solid.
func SolidSensible(massKg, cp, T float64) float64 {
	return massKg * cp * (T - units.ReferenceTempK)
}

// Fe2O3Enthalpy returns the total enthalpy (formation + sensible) in kJ of
// massKg hematite at T.
func Fe2O3Enthalpy(massKg, T float64) float64 {
	return massKg/MFe2O3*DfHFe2O3 + SolidSensible(massKg, CpFe2O3, T)
}

func molarMass(sp Species) float64 {
	switch sp {
	case H2:
		return MH2
	case H2O:
		return MH2O
	}
	return 0
}

// ReductionEnthalpyH2 is ΔH298 of Fe2O3 + 3H2 → 2Fe + 3H2O(g), kJ/mol Fe2O3.
func ReductionEnthalpyH2() float64 { return 3*DfHH2O - DfHFe2O3 }

// ReductionEnthalpyC is ΔH298 of Fe2O3 + 3C → 2Fe + 3CO, kJ/mol Fe2O3.
func ReductionEnthalpyC() float64 { return 3*DfHCO - DfHFe2O3 }

package hdri

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b, rel float64) bool {
	return math.Abs(a-b) <= rel*math.Max(math.Abs(a), math.Abs(b))
}

func TestMass_ReferenceTonne(t *testing.T) {
	got, err := Default().Mass(1000)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"steel_out", got.SteelOut, 1000},
		{"iron_ore", got.IronOre, 1603.73},
		{"h2_in", got.H2In, 119.046},
		{"h2_out", got.H2Out, 64.934},
		{"h2o_out", got.H2OOut, 483.55},
		{"pure_iron", got.PureIronOut, 999.3},
		{"gangue", got.Gangue, 115.47},
		{"unreduced", got.UnreducedFe2O3, 59.531},
	}
	for _, tc := range tests {
		if !approx(tc.got, tc.want, 1e-4) {
			t.Errorf("%s = %.4f, want %.4f", tc.name, tc.got, tc.want)
		}
	}
}

func TestMass_Closure(t *testing.T) {
	for _, rate := range []float64{0, 1, 1000, 120160} {
		o, err := Default().Mass(rate)
		if err != nil {
			t.Fatal(err)
		}
		in := o.IronOre + o.H2In
		out := o.PureIronOut + o.IronOreOut + o.GasStreamOut
		if math.Abs(in-out) > 1e-9*math.Max(1, in) {
			t.Errorf("rate %v: in %.9f != out %.9f", rate, in, out)
		}
	}
}

func TestMass_Linear(t *testing.T) {
	m := Default()
	a, _ := m.Mass(1000)
	b, _ := m.Mass(5000)
	if !approx(b.IronOre, 5*a.IronOre, 1e-12) || !approx(b.H2In, 5*a.H2In, 1e-12) {
		t.Fatalf("mass balance is not linear in the rate")
	}
}

func TestMass_FullMetallizationLeavesNoOxide(t *testing.T) {
	m := Default()
	m.Metallization = 1
	o, err := m.Mass(1000)
	if err != nil {
		t.Fatal(err)
	}
	if o.UnreducedFe2O3 != 0 {
		t.Fatalf("unreduced = %v, want 0", o.UnreducedFe2O3)
	}
}

func TestInvalidRate(t *testing.T) {
	m := Default()
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := m.Mass(r); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("Mass(%v): want ErrInvalidRate, got %v", r, err)
		}
	}
	if _, err := m.Financial(-5); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Financial(-5): want ErrInvalidRate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Model)
	}{
		{"metallization", func(m *Model) { m.Metallization = 0 }},
		{"excess", func(m *Model) { m.ExcessH2 = 0.9 }},
		{"ore_total", func(m *Model) { m.Ore.Fe2O3 = 0.9 }},
		{"heater", func(m *Model) { m.HeaterEfficiency = 0 }},
		{"recuperator", func(m *Model) { m.RecuperatorEffectiveness = 1 }},
		{"temps", func(m *Model) { m.H2InK = 500 }},
	}
	for _, tc := range tests {
		m := Default()
		tc.mut(&m)
		if _, err := m.Mass(1000); !errors.Is(err, ErrInvalidModel) {
			t.Errorf("%s: want ErrInvalidModel, got %v", tc.name, err)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestEnergy_ReferenceTonne(t *testing.T) {
	e, err := Default().Energy(1000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(e.EnergyBalance-(-18.60)) > 0.1 {
		t.Fatalf("balance = %.2f kW, want ~-18.60", e.EnergyBalance)
	}
	if math.Abs(e.EnthalpyOut-e.EnthalpyIn-e.EnergyBalance) > 1e-9 {
		t.Fatal("balance is not out − in")
	}
}

func TestEnergy_ReferenceShaftReleasesHeat(t *testing.T) {
	e, err := Default().Energy(120160)
	if err != nil {
		t.Fatal(err)
	}
	if e.EnergyBalance >= 0 || e.NeedsHeat() {
		t.Fatalf("balance = %.1f kW, reference shaft should not need heat", e.EnergyBalance)
	}
	h, err := Default().Heater(120160)
	if err != nil {
		t.Fatal(err)
	}
	if h.ShaftDeficit != 0 {
		t.Fatalf("shaft deficit = %v kW, want 0", h.ShaftDeficit)
	}

	// At the old 1.2 ratio the gas cannot carry the reduction heat.
	m := Default()
	m.ExcessH2 = 1.2
	lean, err := m.Energy(1000)
	if err != nil {
		t.Fatal(err)
	}
	if !lean.NeedsHeat() {
		t.Fatalf("λ=1.2 balance = %.1f kW, want a deficit", lean.EnergyBalance)
	}
}

func TestRecuperatorAndHeater(t *testing.T) {
	m := Default()
	r, err := m.Recuperator(1000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.H2OutletK-429.4) > 1e-9 {
		t.Errorf("outlet = %.3f K, want 429.4", r.H2OutletK)
	}
	if math.Abs(r.EnthalpyToHeater-62.62) > 0.1 {
		t.Errorf("to heater = %.3f kW, want ~62.62", r.EnthalpyToHeater)
	}

	h, err := m.Heater(1000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(h.HeatingDuty-414.31) > 0.2 {
		t.Errorf("duty = %.3f kW, want ~414.31", h.HeatingDuty)
	}
	if math.Abs(h.Electricity-690.5) > 1 {
		t.Errorf("electricity = %.3f kW, want ~690.5", h.Electricity)
	}

	// A better recuperator leaves less for the heater.
	m.RecuperatorEffectiveness = 0.9
	h2, _ := m.Heater(1000)
	if h2.Electricity >= h.Electricity {
		t.Errorf("ε=0.9 heater %.2f kW not below ε=0.75 %.2f kW", h2.Electricity, h.Electricity)
	}
}

func TestFinancial(t *testing.T) {
	f, err := Default().Financial(1_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(f.Capex, 240, 1e-12) {
		t.Errorf("capex = %v MUSD, want 240", f.Capex)
	}
	if !approx(f.Maintenance, 3.6, 1e-12) || !approx(f.Depreciation, 6, 1e-12) {
		t.Errorf("maintenance %v, depreciation %v", f.Maintenance, f.Depreciation)
	}
	if !approx(f.IronOreCost, 1.60373*90, 1e-4) {
		t.Errorf("iron ore = %v MUSD/yr", f.IronOreCost)
	}
	if !approx(f.FixedOM, 13, 1e-12) || !approx(f.LaborCost, 20, 1e-12) {
		t.Errorf("fixed %v labor %v", f.FixedOM, f.LaborCost)
	}
}

func TestQuantitiesCarryUnits(t *testing.T) {
	o, _ := Default().Mass(1000)
	for _, q := range o.Quantities() {
		if q.Unit == "" || q.Key == "" {
			t.Errorf("quantity %+v missing key or unit", q)
		}
	}
}

package eaf

import (
	"errors"
	"math"
	"testing"

	"greensteel-core/hdri"
)

func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.5f, want %.5f±%g", name, got, want, tol)
	}
}

func TestMass_ReferenceTonne(t *testing.T) {
	o, err := Default().Mass(1000)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "steel_out", o.SteelOut, 1041.667, 1e-3)
	near(t, "carbon_reduction", o.CarbonReduction, 13.433, 1e-3)
	near(t, "carbon_needed", o.CarbonNeeded, 24.579, 1e-3)
	near(t, "lime", o.LimeNeeded, 84.998, 1e-3)
	near(t, "slag", o.SlagOut, 200.467, 1e-3)
	if y := o.Yield(); y < 1 || y > 1.10 {
		t.Errorf("yield %.4f outside [1, 1.10]", y)
	}
	if math.Abs(o.CarbonNeeded-(o.CarbonReduction+o.CarbonAlloy+o.CarbonInjected)) > 1e-12 {
		t.Error("carbon parts do not add up")
	}
}

func TestMass_FullMetallization(t *testing.T) {
	m := Default()
	m.DRI.Metallization = 1
	o, err := m.Mass(1000)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "steel_out", o.SteelOut, 1000, 1e-9)
	near(t, "carbon_reduction", o.CarbonReduction, 0, 1e-12)
	near(t, "yield", o.Yield(), 1, 1e-12)
}

func TestMass_BasicOreNeedsNoLime(t *testing.T) {
	m := Default()
	m.Basicity = 0.1
	o, err := m.Mass(1000)
	if err != nil {
		t.Fatal(err)
	}
	if o.LimeNeeded != 0 {
		t.Fatalf("lime = %v, want 0 when ore base exceeds the target", o.LimeNeeded)
	}
}

func TestEnergy_ReferenceTonne(t *testing.T) {
	e, err := Default().Energy(1000)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "steel_heat", e.SteelHeat, 288.03, 0.01)
	near(t, "slag_heat", e.SlagHeat, 100.23, 0.01)
	near(t, "reduction_heat", e.ReductionHeat, 51.01, 0.01)
	near(t, "electricity", e.Electricity, 516.80, 0.05)
}

func TestEnergy_ColdChargeCostsMore(t *testing.T) {
	hot, _ := Default().Energy(1000)
	m := Default()
	m.DRI.DRIOutK = 298.15
	cold, err := m.Energy(1000)
	if err != nil {
		t.Fatal(err)
	}
	if cold.Electricity <= hot.Electricity {
		t.Fatalf("cold %.1f kW not above hot %.1f kW", cold.Electricity, hot.Electricity)
	}
}

func TestEmission_ReferenceTonne(t *testing.T) {
	e, err := Default().Emission(1000)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "indirect", e.Indirect, 0.48292, 1e-4)
	near(t, "carbon", e.Carbon, 0.087386, 1e-5)
	near(t, "lime", e.Lime, 0.066706, 1e-5)
	near(t, "electrode", e.Electrode, 0.006870, 1e-5)
	near(t, "pellet", e.Pellet, 0.056131, 1e-5)
	near(t, "total", e.Total, e.Direct+e.Indirect, 1e-12)
}

func TestEmission_CleanGrid(t *testing.T) {
	m := Default()
	m.GridIntensity = 0
	e, err := m.Emission(1000)
	if err != nil {
		t.Fatal(err)
	}
	if e.Indirect != 0 {
		t.Fatalf("indirect = %v on a zero-carbon grid", e.Indirect)
	}
}

func TestFinancial(t *testing.T) {
	f, err := Default().Financial(1_000_000)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "capex", f.Capex, 420, 1e-9)
	near(t, "maintenance", f.Maintenance, 6.3, 1e-9)
	near(t, "depreciation", f.Depreciation, 10.5, 1e-9)
	near(t, "coal", f.CoalCost, 24.579*0.12, 1e-3)
	near(t, "lime", f.LimeCost, 84.998*0.112, 1e-3)
	near(t, "emission", f.EmissionCost, 0.70002*30, 5e-3)
}

func TestErrors(t *testing.T) {
	if _, err := Default().Mass(-1); !errors.Is(err, hdri.ErrInvalidRate) {
		t.Errorf("negative rate: %v", err)
	}
	m := Default()
	m.ArcEfficiency = 0
	if _, err := m.Energy(1000); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("arc efficiency 0: %v", err)
	}
	m = Default()
	m.TapK = 1700
	if _, err := m.Mass(1000); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("tap below melt: %v", err)
	}
}

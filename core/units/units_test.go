package units

import (
	"math"
	"testing"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestOperatingHours(t *testing.T) {
	if OperatingHoursPerYear != 8322 {
		t.Fatalf("OperatingHoursPerYear = %v, want 8322", OperatingHoursPerYear)
	}
}

func TestTonnesPerYear_Scaling(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0, 0},
		{1000, 8322},
		{120160, 120160 * 365 * 24 * 0.95 / 1000},
	}
	for _, tc := range tests {
		if got := TonnesPerYear(tc.rate); !near(got, tc.want, 1e-6) {
			t.Errorf("TonnesPerYear(%v) = %v, want %v", tc.rate, got, tc.want)
		}
	}
	// 120160 kg/hr is the "about a million tonnes per year" reference plant.
	if got := TonnesPerYear(120160); math.Abs(got-1e6) > 100 {
		t.Fatalf("reference plant = %v tls/yr, want ~1e6", got)
	}
}

func TestRoundTrips(t *testing.T) {
	for _, r := range []float64{1, 250.5, 120160} {
		if got := KgPerHour(TonnesPerYear(r)); !near(got, r, 1e-9*r) {
			t.Errorf("KgPerHour(TonnesPerYear(%v)) = %v", r, got)
		}
		if got := MUSD(USD(r)); !near(got, r, 1e-9*r) {
			t.Errorf("MUSD(USD(%v)) = %v", r, got)
		}
	}
}

func TestEnergyConversions(t *testing.T) {
	if got := CalendarMWhPerYear(1000); !near(got, 8760, 1e-9) {
		t.Fatalf("CalendarMWhPerYear(1000 kW) = %v", got)
	}
	if got := KJPerHourToKW(3600); got != 1 {
		t.Fatalf("KJPerHourToKW(3600) = %v", got)
	}
	if got := KgPerSecond(8322 * 3600); !near(got, 1, 1e-12) {
		t.Fatalf("KgPerSecond = %v", got)
	}
	if got := TonnesPerDay(1000); got != 24 {
		t.Fatalf("TonnesPerDay(1000) = %v", got)
	}
}

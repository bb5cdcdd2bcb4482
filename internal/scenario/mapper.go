package scenario

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"greensteel-core/proforma"
)

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Map overlays a YAML scenario on Default. index is the position in a
// "scenarios" list, or -1 for a single-scenario file.
func Map(path string, index int, y YAMLScenario) (Scenario, error) {
	s := Default()
	s.Source = path
	s.Name = strings.TrimSpace(y.Name)
	if s.Name == "" {
		s.Name = defaultName(path, index)
	}

	set(&s.ElectricityPrice, y.ElectricityPrice)
	set(&s.SteelOutput, y.SteelOutput)
	set(&s.DiscountRate, y.DiscountRate)
	set(&s.Lifetime, y.Lifetime)

	if e := y.Electrolyzer; e != nil {
		p := &s.Electrolyzer
		set(&p.Efficiency, e.Efficiency)
		set(&p.CapexMUSDPerMW, e.Capex)
		set(&p.LangFactor, e.LangFactor)
		set(&p.SpecificEnergy, e.SpecificEnergy)
		set(&p.WaterPerKgH2, e.WaterPerKg)
		set(&p.WaterPricePerTonne, e.WaterPrice)
		set(&p.RefurbPeriodYears, e.RefurbPeriod)
		set(&p.RefurbFraction, e.RefurbFraction)
	}

	if h := y.HDRI; h != nil {
		m := &s.Plant.DRI
		set(&m.Metallization, h.Metallization)
		set(&m.ExcessH2, h.ExcessH2)
		if o := h.Ore; o != nil {
			set(&m.Ore.Fe2O3, o.Fe2O3)
			set(&m.Ore.SiO2, o.SiO2)
			set(&m.Ore.Al2O3, o.Al2O3)
			set(&m.Ore.CaO, o.CaO)
			set(&m.Ore.MgO, o.MgO)
		}
		set(&m.H2InK, h.H2InletK)
		set(&m.GasOutK, h.GasOutletK)
		set(&m.DRIOutK, h.DRIOutletK)
		set(&m.RecuperatorEffectiveness, h.RecuperatorEffectiveness)
		set(&m.HeaterEfficiency, h.HeaterEfficiency)
		set(&m.Fin.CapexPerTonneYear, h.Capex)
		set(&m.Fin.FixedOMPerTonne, h.FixedOM)
		set(&m.Fin.IronOrePerTonne, h.IronOrePrice)
		set(&m.Fin.LaborPerTonne, h.Labor)
	}

	if e := y.EAF; e != nil {
		m := &s.Plant
		set(&m.ArcEfficiency, e.ArcEfficiency)
		set(&m.Basicity, e.Basicity)
		set(&m.CarbonInjection, e.CarbonInjection)
		set(&m.ElectrodeConsumption, e.ElectrodeConsumption)
		set(&m.GridIntensity, e.GridIntensity)
		set(&m.Fin.CapexPerTonneYear, e.Capex)
		set(&m.Fin.FixedOMPerTonne, e.FixedOM)
		set(&m.Fin.CoalPerTonne, e.CoalPrice)
		set(&m.Fin.LimePerTonne, e.LimePrice)
		set(&m.Fin.EmissionPerTonne, e.EmissionPrice)
		set(&m.Fin.LaborPerTonne, e.Labor)
	}

	if f := y.Finance; f != nil {
		d := &s.Finance
		set(&d.AnalysisStartYear, f.AnalysisStartYear)
		set(&d.InstallationMonths, f.InstallationMonths)
		set(&d.Inflation, f.Inflation)
		set(&d.LongTermUtilization, f.Utilization)
		set(&d.DemandRampup, f.DemandRampup)
		set(&d.SalesTax, f.SalesTax)
		set(&d.PropertyTax, f.PropertyTax)
		set(&d.AdminExpense, f.AdminExpense)
		set(&d.IncomeTaxRate, f.IncomeTaxRate)
		set(&d.CapitalGainsTaxRate, f.CapitalGainsTaxRate)
		set(&d.LandCost, f.LandCost)
		set(&d.TaxLossesMonetized, f.TaxLossesMonetized)
		set(&d.SellUndepreciatedCap, f.SellUndepreciatedCap)
		set(&d.DeprPeriod, f.DeprPeriod)
		if f.DeprType != nil {
			t, err := proforma.ParseDeprType(*f.DeprType)
			if err != nil {
				return Scenario{}, &FieldError{Path: path, Field: field(index, "finance.depreciation_type"), Err: err}
			}
			d.DeprType = t
		}
	}

	if b := y.Benchmarks; b != nil {
		set(&s.Benchmarks.EAFKWhPerTonne, b.EAF)
		set(&s.Benchmarks.HeaterKWhPerTonne, b.Heater)
		set(&s.Benchmarks.Tolerance, b.Tolerance)
	}

	if err := s.Validate(); err != nil {
		var fe *FieldError
		if errors.As(err, &fe) && index >= 0 {
			fe.Field = field(index, fe.Field)
		}
		return Scenario{}, err
	}
	return s, nil
}

func defaultName(path string, index int) string {
	if path == "" {
		return DefaultName
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if index >= 0 {
		return fmt.Sprintf("%s#%d", base, index+1)
	}
	return base
}

func field(index int, name string) string {
	if index < 0 {
		return name
	}
	return fmt.Sprintf("scenarios[%d].%s", index, name)
}

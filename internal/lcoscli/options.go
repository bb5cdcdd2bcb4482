// Package lcoscli parses the greensteel command line.
package lcoscli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"greensteel/internal/clibase"
	"greensteel/internal/scenario"
)

type Options struct {
	clibase.Common

	CashFlow  bool
	Breakdown bool
	Strict    bool

	// Overrides hold only the plant flags that were set.
	Overrides scenario.Overrides
}

// plantFlags are the knobs of the reference run, bound to pflag values.
type plantFlags struct {
	electricityPrice  float64
	steelOutput       float64
	efficiency        float64
	electrolyzerCapex float64
	langFactor        float64
	elecSpec          float64
	discountRate      float64
	lifetime          int
}

func registerPlant(fs *pflag.FlagSet, p *plantFlags) {
	d := scenario.Default()
	fs.Float64Var(&p.electricityPrice, "electricity-price", d.ElectricityPrice, "grid electricity price (USD/MWh)")
	fs.Float64Var(&p.steelOutput, "steel-output", d.SteelOutput, "liquid steel rate (kg/hr)")
	fs.Float64Var(&p.efficiency, "efficiency", d.Electrolyzer.Efficiency, "electrolyzer efficiency, LHV basis (0,1]")
	fs.Float64Var(&p.electrolyzerCapex, "electrolyzer-capex", d.Electrolyzer.CapexMUSDPerMW, "electrolyzer capex (MUSD/MW)")
	fs.Float64Var(&p.langFactor, "lang-factor", d.Electrolyzer.LangFactor, "electrolyzer installation (Lang) factor")
	fs.Float64Var(&p.elecSpec, "elec-spec", d.Electrolyzer.SpecificEnergy, "electrolyzer specific energy (kWh/kg H2)")
	fs.Float64Var(&p.discountRate, "discount-rate", d.DiscountRate, "discount rate")
	fs.IntVar(&p.lifetime, "lifetime", d.Lifetime, "plant lifetime (years)")
}

func changed[T any](fs *pflag.FlagSet, name string, v *T) *T {
	if !fs.Changed(name) {
		return nil
	}
	c := *v
	return &c
}

func (p *plantFlags) overrides(fs *pflag.FlagSet) scenario.Overrides {
	return scenario.Overrides{
		ElectricityPrice:  changed(fs, "electricity-price", &p.electricityPrice),
		SteelOutput:       changed(fs, "steel-output", &p.steelOutput),
		Efficiency:        changed(fs, "efficiency", &p.efficiency),
		ElectrolyzerCapex: changed(fs, "electrolyzer-capex", &p.electrolyzerCapex),
		LangFactor:        changed(fs, "lang-factor", &p.langFactor),
		ElecSpec:          changed(fs, "elec-spec", &p.elecSpec),
		DiscountRate:      changed(fs, "discount-rate", &p.discountRate),
		Lifetime:          changed(fs, "lifetime", &p.lifetime),
	}
}

// NewFlagSet returns the flag set and its usage printer.
func NewFlagSet(name string) (*pflag.FlagSet, func(io.Writer)) {
	fs := clibase.NewFlagSet(name)
	usage := clibase.UsageCommon(fs, name, "levelized cost of hydrogen DRI-EAF steel", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] scenario.yaml more/*.yaml\n", name)

		_, _ = fmt.Fprintln(out, "\nPlant (override every scenario):")
		_, _ = fmt.Fprintf(out, "      --electricity-price float   Grid price, USD/MWh [%s]\n", def("electricity-price"))
		_, _ = fmt.Fprintf(out, "      --steel-output float        Liquid steel, kg/hr [%s]\n", def("steel-output"))
		_, _ = fmt.Fprintf(out, "      --efficiency float          Electrolyzer efficiency, LHV [%s]\n", def("efficiency"))
		_, _ = fmt.Fprintf(out, "      --electrolyzer-capex float  Electrolyzer capex, MUSD/MW [%s]\n", def("electrolyzer-capex"))
		_, _ = fmt.Fprintf(out, "      --lang-factor float         Electrolyzer Lang factor [%s]\n", def("lang-factor"))
		_, _ = fmt.Fprintf(out, "      --elec-spec float           Electrolyzer kWh per kg H2 [%s]\n", def("elec-spec"))
		_, _ = fmt.Fprintf(out, "      --discount-rate float       Discount rate [%s]\n", def("discount-rate"))
		_, _ = fmt.Fprintf(out, "      --lifetime int              Plant life, years [%s]\n", def("lifetime"))

		_, _ = fmt.Fprintln(out, "\nReport:")
		_, _ = fmt.Fprintln(out, "      --cashflow                  Include the yearly pro forma cash flow")
		_, _ = fmt.Fprintln(out, "      --breakdown                 Include the per-item price breakdown")
		_, _ = fmt.Fprintln(out, "      --strict                    Exit 4 when a consistency check fails")
	})
	return fs, usage
}

// ParseArgs registers and parses all flags.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	var p plantFlags

	noHeader := clibase.Register(fs, &o.Common)
	registerPlant(fs, &p)
	fs.BoolVar(&o.CashFlow, "cashflow", false, "include the yearly cash flow")
	fs.BoolVar(&o.Breakdown, "breakdown", false, "include the price breakdown")
	fs.BoolVar(&o.Strict, "strict", false, "exit 4 when a consistency check fails")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if o.Help || o.Version || o.Examples {
		return o, nil
	}
	o.Overrides = p.overrides(fs)
	return o, clibase.AfterParse(fs, &o.Common, noHeader)
}

// PrintExamples writes the quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  # reference plant, about 1 Mt/yr\n  %s\n\n", name)
		_, _ = fmt.Fprintf(w, "  # cheaper power, with the price breakdown\n  %s --electricity-price 30 --breakdown\n\n", name)
		_, _ = fmt.Fprintf(w, "  # several scenario files in parallel, one JSON object per line\n  %s -o jsonl -t 4 scenarios/*.yaml\n", name)
	})
}

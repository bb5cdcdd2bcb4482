// Package balancecli parses the greensteel-balance command line.
package balancecli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"greensteel/internal/clibase"
	"greensteel/internal/scenario"
)

type Options struct {
	clibase.Common

	// SteelOutput is set only when --steel-output was given.
	SteelOutput *float64
}

func NewFlagSet(name string) (*pflag.FlagSet, func(io.Writer)) {
	fs := clibase.NewFlagSet(name)
	usage := clibase.UsageCommon(fs, name, "HDRI-EAF mass, energy and emission balance", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [--steel-output kg/hr]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] scenario.yaml\n", name)

		_, _ = fmt.Fprintln(out, "\nPlant:")
		_, _ = fmt.Fprintf(out, "      --steel-output float        Liquid steel, kg/hr [%s]\n", def("steel-output"))
	})
	return fs, usage
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader := clibase.Register(fs, &o.Common)
	rate := fs.Float64("steel-output", scenario.Default().SteelOutput, "liquid steel rate (kg/hr)")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if o.Help || o.Version || o.Examples {
		return o, nil
	}
	if fs.Changed("steel-output") {
		o.SteelOutput = rate
	}
	return o, clibase.AfterParse(fs, &o.Common, noHeader)
}

// Overrides maps the options onto scenario overrides.
func (o Options) Overrides() scenario.Overrides {
	return scenario.Overrides{SteelOutput: o.SteelOutput}
}

func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  # per-tonne balance (1000 kg/hr is one tonne per hour)\n  %s --steel-output 1000\n\n", name)
		_, _ = fmt.Fprintf(w, "  # machine-readable rows\n  %s -o tsv\n", name)
	})
}

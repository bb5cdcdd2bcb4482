// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"greensteel/internal/cliutil"
	"greensteel/internal/logging"
	"greensteel/internal/output"
)

// Common holds CLI fields shared by greensteel and greensteel-balance.
type Common struct {
	// Input
	Scenarios []string // YAML files; empty means the built-in default
	Threads   int

	// Output
	Output      string // text|tsv|json|jsonl
	Header      bool
	MetricsFile string

	// Environment and logging
	EnvFile   string
	LogLevel  string
	LogFormat string

	// Misc
	Quiet    bool
	Version  bool
	Help     bool
	Examples bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError. Usage is printed
// by the app, not by pflag.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *pflag.FlagSet, c *Common) *bool {
	fs.StringArrayVarP(&c.Scenarios, "scenario", "s", nil, "scenario YAML file (repeatable; positionals and globs too)")
	fs.IntVarP(&c.Threads, "threads", "t", 0, "scenarios evaluated in parallel (0=all CPUs)")

	fs.StringVarP(&c.Output, "output", "o", output.FormatText, "output: text | tsv | json | jsonl")
	noHeader := fs.Bool("no-header", false, "suppress the TSV header line")
	fs.StringVar(&c.MetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	fs.StringVar(&c.EnvFile, "env-file", "", "dotenv file with settings (default .env when present)")
	fs.StringVar(&c.LogLevel, "log-level", "", "debug | info | warn | error (default from GREENSTEEL_LOG_LEVEL, else info)")
	fs.StringVar(&c.LogFormat, "log-format", logging.FormatConsole, "console | json")

	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&c.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&c.Help, "help", "h", false, "show this help and exit")
	fs.BoolVar(&c.Examples, "examples", false, "print a quickstart and exit")
	return noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared validation.
func AfterParse(fs *pflag.FlagSet, c *Common, noHeader *bool) error {
	c.Header = !*noHeader
	if args := append(c.Scenarios, fs.Args()...); len(args) > 0 {
		exp, err := cliutil.ExpandPositionals(args)
		if err != nil {
			return err
		}
		c.Scenarios = exp
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if !slices.Contains(output.Formats, c.Output) {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q", c.LogLevel)
		}
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.MetricsFile == "-" {
		return errors.New("--metrics-file must be a path, not stdout")
	}
	return nil
}

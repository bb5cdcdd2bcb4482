package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"greensteel/internal/version"
)

// UsageCommon returns a usage printer for fs. extra prints tool-specific
// sections (usage lines, model knobs); def looks up a flag's default.
func UsageCommon(fs *pflag.FlagSet, name, about string, extra func(out io.Writer, def func(string) string)) func(io.Writer) {
	return func(out io.Writer) {
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, about)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --scenario file         Scenario YAML (repeatable); positionals and globs too")
		fmt.Fprintf(out, "  -t, --threads int           Scenarios evaluated in parallel (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintln(out, "      --no-header             Suppress the TSV header line")
		fmt.Fprintln(out, "      --metrics-file path     Write Prometheus metrics to a textfile")

		fmt.Fprintln(out, "\nEnvironment and logging:")
		fmt.Fprintln(out, "      --env-file path         Dotenv settings file [.env when present]")
		fmt.Fprintln(out, "      --log-level string      debug | info | warn | error [GREENSTEEL_LOG_LEVEL, else info]")
		fmt.Fprintf(out, "      --log-format string     console | json [%s]\n", def("log-format"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                 Only log errors")
		fmt.Fprintln(out, "      --examples              Print a quickstart and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// Package balanceapp is the greensteel-balance command: model outputs for a
// steel rate, without costing.
package balanceapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"greensteel/internal/appcore"
	"greensteel/internal/balancecli"
	"greensteel/internal/metrics"
	"greensteel/internal/plant"
	"greensteel/internal/scenario"
	"greensteel/internal/version"
)

const name = "greensteel-balance"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs, usage := balancecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := balancecli.ParseArgs(fs, argv)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		usage(outw)
		return appcore.Flush(outw, stderr, appcore.ExitUsage)
	}
	switch {
	case opts.Help:
		usage(outw)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	case opts.Version:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	case opts.Examples:
		balancecli.PrintExamples(outw, name)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	env, err := appcore.Setup(opts.Common, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	log := env.Log
	defer func() { _ = log.Sync() }()

	list, err := appcore.LoadScenarios(opts.Scenarios, opts.Overrides())
	if err != nil {
		return appcore.ExitCode(log, err)
	}

	var rec *metrics.Recorder
	if env.MetricsFile != "" {
		rec = metrics.New()
	}
	eval := func(ctx context.Context, s scenario.Scenario) (plant.BalanceReport, error) {
		b, err := plant.Balance(ctx, s)
		if err != nil {
			return b, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		log.Debug("balance computed", zap.String("scenario", s.Name), zap.Float64("steel_kg_per_hr", s.SteelOutput))
		appcore.LogChecks(log, s.Name, b.Checks)
		if rec != nil {
			rec.ObserveBalance(b)
		}
		return b, nil
	}

	wf := appcore.NewBalanceWriterFactory(opts.Output, opts.Header)
	code := appcore.Run(parent, stdout, appcore.Options{Threads: opts.Threads, Logger: log}, list, eval, wf, nil)

	if rec != nil && code == appcore.ExitOK {
		if err := rec.WriteFile(env.MetricsFile); err != nil {
			log.Error("write metrics", zap.Error(err))
			return appcore.ExitFailure
		}
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Package lcosapp is the greensteel command: evaluate scenarios and report
// their levelized cost of steel.
package lcosapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"greensteel/internal/appcore"
	"greensteel/internal/lcoscli"
	"greensteel/internal/metrics"
	"greensteel/internal/plant"
	"greensteel/internal/scenario"
	"greensteel/internal/version"
)

const name = "greensteel"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs, usage := lcoscli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := lcoscli.ParseArgs(fs, argv)
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
		lcoscli.PrintExamples(outw, name)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	env, err := appcore.Setup(opts.Common, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	log := env.Log
	defer func() { _ = log.Sync() }()

	list, err := appcore.LoadScenarios(opts.Scenarios, opts.Overrides)
	if err != nil {
		return appcore.ExitCode(log, err)
	}

	var rec *metrics.Recorder
	if env.MetricsFile != "" {
		rec = metrics.New()
	}
	eval := func(ctx context.Context, s scenario.Scenario) (plant.Report, error) {
		r, err := plant.Evaluate(ctx, s)
		if err != nil {
			return r, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		log.Info("scenario evaluated",
			zap.String("scenario", s.Name),
			zap.String("run_id", r.RunID),
			zap.Float64("lcos_simple", r.SimpleLCOS),
			zap.Float64("lcos_pro_forma", r.ProForma.Price),
		)
		appcore.LogChecks(log, s.Name, r.Checks)
		if rec != nil {
			rec.ObserveReport(r)
		}
		return r, nil
	}

	var failed func(plant.Report) bool
	if opts.Strict {
		failed = func(r plant.Report) bool { return len(plant.Failed(r.Checks, false)) > 0 }
	}

	wf := appcore.NewReportWriterFactory(opts.Output, opts.Header, opts.CashFlow, opts.Breakdown)
	code := appcore.Run(parent, stdout, appcore.Options{Threads: opts.Threads, Logger: log}, list, eval, wf, failed)

	if rec != nil && (code == appcore.ExitOK || code == appcore.ExitStrict) {
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

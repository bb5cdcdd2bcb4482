package appcore

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"greensteel/internal/clibase"
	"greensteel/internal/logging"
	"greensteel/internal/plant"
	"greensteel/internal/scenario"
	"greensteel/internal/settings"
)

// Env is the resolved process environment of one run.
type Env struct {
	Log         *zap.Logger
	Settings    settings.Settings
	MetricsFile string
}

// Setup reads settings and builds the logger. Flags win over the
// environment, which wins over the dotenv file.
func Setup(c clibase.Common, stderr io.Writer) (Env, error) {
	set, err := settings.Load(c.EnvFile)
	if err != nil {
		return Env{}, err
	}
	level := c.LogLevel
	if level == "" {
		level = set.LogLevel
	}
	log, err := logging.New(stderr, logging.Options{Level: level, Format: c.LogFormat, Quiet: c.Quiet})
	if err != nil {
		return Env{}, fmt.Errorf("%s: %w", settings.KeyLogLevel, err)
	}
	env := Env{Log: log, Settings: set, MetricsFile: c.MetricsFile}
	if env.MetricsFile == "" {
		env.MetricsFile = set.MetricsFile
	}
	log.Debug("settings resolved",
		zap.String("env_file", set.EnvFile),
		zap.Bool("nrel_api_key_set", set.NRELKeySet),
		zap.String("log_level", level),
		zap.String("metrics_file", env.MetricsFile),
	)
	return env, nil
}

// LoadScenarios loads paths, or the built-in default when there are none,
// and applies the command-line overrides to each.
func LoadScenarios(paths []string, ov scenario.Overrides) ([]scenario.Scenario, error) {
	list := []scenario.Scenario{scenario.Default()}
	if len(paths) > 0 {
		var err error
		if list, err = scenario.LoadAll(paths); err != nil {
			return nil, err
		}
	}
	if ov.Empty() {
		return list, nil
	}
	for i, s := range list {
		var err error
		if list[i], err = ov.Apply(s); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// LogChecks warns about every check that did not pass.
func LogChecks(log *zap.Logger, name string, checks []plant.Check) {
	for _, c := range plant.Failed(checks, true) {
		msg := "consistency check failed"
		if c.Warning {
			msg = "consistency check warning"
		}
		log.Warn(msg,
			zap.String("scenario", name),
			zap.String("check", c.Name),
			zap.Float64("expected", c.Expected),
			zap.Float64("actual", c.Actual),
			zap.String("note", c.Note),
		)
	}
}

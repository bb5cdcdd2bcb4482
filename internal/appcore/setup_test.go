package appcore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"greensteel/internal/clibase"
	"greensteel/internal/plant"
	"greensteel/internal/scenario"
)

func TestSetupFlagBeatsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GREENSTEEL_LOG_LEVEL", "error")
	t.Setenv("GREENSTEEL_METRICS_FILE", "env.prom")

	var stderr bytes.Buffer
	env, err := Setup(clibase.Common{LogLevel: "debug", LogFormat: "console"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "env.prom", env.MetricsFile)
	assert.True(t, env.Log.Core().Enabled(zap.DebugLevel))
	assert.Contains(t, stderr.String(), "settings resolved")

	env, err = Setup(clibase.Common{LogFormat: "console", MetricsFile: "flag.prom"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "flag.prom", env.MetricsFile)
	assert.False(t, env.Log.Core().Enabled(zap.WarnLevel))
}

func TestSetupMissingEnvFile(t *testing.T) {
	_, err := Setup(clibase.Common{EnvFile: filepath.Join(t.TempDir(), "nope.env")}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLoadScenarios(t *testing.T) {
	list, err := LoadScenarios(nil, scenario.Overrides{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, scenario.DefaultName, list[0].Name)

	dir := t.TempDir()
	path := filepath.Join(dir, "two.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: a\n  - name: b\n    electricity_price: 20\n"), 0o644))
	price := 40.0
	list, err = LoadScenarios([]string{path}, scenario.Overrides{ElectricityPrice: &price})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, s := range list {
		assert.Equal(t, 40.0, s.ElectricityPrice)
	}

	bad := -1.0
	_, err = LoadScenarios(nil, scenario.Overrides{SteelOutput: &bad})
	var fe *scenario.FieldError
	assert.ErrorAs(t, err, &fe)
}

func TestLogChecks(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	checks := []plant.Check{
		{Name: "ok", Passed: true},
		{Name: "bad"},
		{Name: "soft", Warning: true},
	}
	LogChecks(zap.New(core), "s", checks)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "consistency check failed", logs.All()[0].Message)
	assert.Equal(t, "consistency check warning", logs.All()[1].Message)
}

package metrics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greensteel/internal/plant"
	"greensteel/internal/scenario"
)

func TestObserveReport(t *testing.T) {
	rep, err := plant.Evaluate(context.Background(), scenario.Default())
	require.NoError(t, err)

	r := New()
	r.ObserveReport(rep)

	assert.Equal(t, rep.SimpleLCOS, testutil.ToFloat64(r.lcos.WithLabelValues("default", "simple")))
	assert.Equal(t, rep.ProForma.Price, testutil.ToFloat64(r.lcos.WithLabelValues("default", "pro_forma")))
	assert.Equal(t, rep.Electricity.Heater, testutil.ToFloat64(r.electricity.WithLabelValues("default", "heater")))
	assert.InEpsilon(t, rep.Intensities.Emissions, testutil.ToFloat64(r.emissions.WithLabelValues("default", "total")), 1e-12)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.checks.WithLabelValues("default")))
}

func TestWriteFile(t *testing.T) {
	b, err := plant.Balance(context.Background(), scenario.Default())
	require.NoError(t, err)

	r := New()
	r.ObserveBalance(b)
	path := filepath.Join(t.TempDir(), "greensteel.prom")
	require.NoError(t, r.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "# TYPE greensteel_steel_tonnes_per_year gauge")
	assert.Contains(t, text, `greensteel_electricity_mwh_per_year{consumer="eaf",scenario="default"}`)
	assert.False(t, strings.Contains(text, "greensteel_lcos_usd_per_tonne{"), "balance runs have no cost")
}

func TestWriteFileBadPath(t *testing.T) {
	r := New()
	err := r.WriteFile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}

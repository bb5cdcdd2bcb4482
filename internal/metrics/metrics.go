// Package metrics exports plant results as Prometheus gauges written to a
// node-exporter style textfile. There is no scrape endpoint.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"greensteel/internal/plant"
)

const namespace = "greensteel"

// Recorder collects one set of gauges per scenario. It is safe for
// concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	lcos        *prometheus.GaugeVec
	capex       *prometheus.GaugeVec
	electricity *prometheus.GaugeVec
	emissions   *prometheus.GaugeVec
	steel       *prometheus.GaugeVec
	checks      *prometheus.GaugeVec
}

func New() *Recorder {
	gauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, append([]string{"scenario"}, labels...))
	}
	r := &Recorder{
		reg:         prometheus.NewRegistry(),
		lcos:        gauge("lcos_usd_per_tonne", "Levelized cost of steel.", "method"),
		capex:       gauge("capex_usd", "Installed capital cost.", "unit"),
		electricity: gauge("electricity_mwh_per_year", "Yearly electricity use.", "consumer"),
		emissions:   gauge("emission_intensity_tco2_per_tonne", "CO2 per tonne of liquid steel.", "scope"),
		steel:       gauge("steel_tonnes_per_year", "Liquid steel output."),
		checks:      gauge("checks_failed", "Consistency checks that did not pass."),
	}
	r.reg.MustRegister(r.lcos, r.capex, r.electricity, r.emissions, r.steel, r.checks)
	return r
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Recorder) observeBalance(name string, tls float64, e plant.Electricity, checks []plant.Check) {
	r.steel.WithLabelValues(name).Set(tls)
	for consumer, v := range map[string]float64{
		"eaf":          e.EAF,
		"heater":       e.Heater,
		"electrolyzer": e.Electrolyzer,
	} {
		r.electricity.WithLabelValues(name, consumer).Set(v)
	}
	r.checks.WithLabelValues(name).Set(float64(len(plant.Failed(checks, false))))
}

// ObserveReport records an evaluated scenario.
func (r *Recorder) ObserveReport(rep plant.Report) {
	name := rep.Scenario.Name
	r.observeBalance(name, rep.Outputs.TonnesPerYear, rep.Electricity, rep.Checks)

	r.lcos.WithLabelValues(name, "simple").Set(rep.SimpleLCOS)
	r.lcos.WithLabelValues(name, "pro_forma").Set(rep.ProForma.Price)

	r.capex.WithLabelValues(name, "hdri").Set(rep.Capex.HDRI)
	r.capex.WithLabelValues(name, "eaf").Set(rep.Capex.EAF)
	r.capex.WithLabelValues(name, "electrolyzer").Set(rep.Capex.Electrolyzer)

	r.observeEmissions(name, rep.Outputs)
}

// ObserveBalance records a balance run.
func (r *Recorder) ObserveBalance(b plant.BalanceReport) {
	name := b.Scenario.Name
	r.observeBalance(name, b.Outputs.TonnesPerYear, b.Electricity, b.Checks)
	r.observeEmissions(name, b.Outputs)
}

func (r *Recorder) observeEmissions(name string, o plant.Outputs) {
	tph := o.SteelRate / 1000
	em := o.EAFEmission
	r.emissions.WithLabelValues(name, "direct").Set(em.Direct / tph)
	r.emissions.WithLabelValues(name, "indirect").Set(em.Indirect / tph)
	r.emissions.WithLabelValues(name, "total").Set(em.Total / tph)
}

// WriteFile writes every gauge to path in the Prometheus text format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics file %s: %w", path, err)
	}
	return nil
}

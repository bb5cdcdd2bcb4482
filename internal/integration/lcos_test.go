package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"greensteel/internal/appcore"
	"greensteel/internal/lcosapp"
	"greensteel/pkg/api"
)

func runLCOS(ctx context.Context, args ...string) (int, string, string) {
	var out, errb bytes.Buffer
	argv := append([]string{"--log-level", "error"}, args...)
	code := lcosapp.RunContext(ctx, argv, &out, &errb)
	return code, out.String(), errb.String()
}

func writeScenario(dir, name, body string) string {
	p := filepath.Join(dir, name)
	Expect(os.WriteFile(p, []byte(body), 0o644)).To(Succeed())
	return p
}

var _ = Describe("greensteel", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("prices the reference plant with no scenario files", func() {
		code, out, _ := runLCOS(context.Background(), "-o", "json")
		Expect(code).To(Equal(appcore.ExitOK))

		var reports []api.ReportV1
		Expect(json.Unmarshal([]byte(out), &reports)).To(Succeed())
		Expect(reports).To(HaveLen(1))
		r := reports[0]
		Expect(r.Scenario).To(Equal("default"))
		Expect(r.RunID).NotTo(BeEmpty())
		Expect(r.Production.TonnesPerYear).To(BeNumerically("~", 999971.52, 0.01))
		Expect(r.Production.ElectrolyzerMW).To(BeNumerically("~", 319.736, 0.01))
		Expect(r.Capex.Total).To(BeNumerically("~", 1235.506e6, 1e4))
		Expect(r.LCOS.Simple).To(BeNumerically("~", 858.437, 0.01))
		Expect(r.LCOS.ProForma).To(BeNumerically(">", 0))
		Expect(r.Intensities.ElectricityMWh).To(BeNumerically("~", 7.87792, 1e-4))
	})

	It("renders a readable text report by default", func() {
		code, out, _ := runLCOS(context.Background())
		Expect(code).To(Equal(appcore.ExitOK))
		Expect(out).To(ContainSubstring("Levelized cost of steel"))
		Expect(out).To(ContainSubstring("hdri.energy_balance"))
		Expect(out).To(ContainSubstring("PASS"))
		Expect(out).NotTo(ContainSubstring("FAIL"))
	})

	It("keeps scenario order across threads in JSONL", func() {
		p := writeScenario(dir, "many.yaml", `scenarios:
  - name: a
    electricity_price: 20
  - name: b
    electricity_price: 40
  - name: c
    electricity_price: 60
  - name: d
    electricity_price: 80
`)
		code, out, _ := runLCOS(context.Background(), "-t", "4", "-o", "jsonl", p)
		Expect(code).To(Equal(appcore.ExitOK))

		lines := strings.Split(strings.TrimSpace(out), "\n")
		Expect(lines).To(HaveLen(4))
		var prev float64
		for i, line := range lines {
			var r api.ReportV1
			Expect(json.Unmarshal([]byte(line), &r)).To(Succeed())
			Expect(r.Scenario).To(Equal(string(rune('a' + i))))
			Expect(r.LCOS.Simple).To(BeNumerically(">", prev))
			prev = r.LCOS.Simple
		}
	})

	It("writes one TSV header and honours --no-header", func() {
		code, out, _ := runLCOS(context.Background(), "-o", "tsv")
		Expect(code).To(Equal(appcore.ExitOK))
		Expect(strings.Count(out, "scenario\tsection\titem\tvalue\tunit")).To(Equal(1))

		code, out, _ = runLCOS(context.Background(), "-o", "tsv", "--no-header")
		Expect(code).To(Equal(appcore.ExitOK))
		Expect(out).NotTo(ContainSubstring("scenario\tsection"))
		Expect(out).To(HavePrefix("default\t"))
	})

	It("applies command-line overrides on top of scenario files", func() {
		p := writeScenario(dir, "s.yaml", "name: s\nelectricity_price: 20\n")
		_, out, _ := runLCOS(context.Background(), "-o", "json", "--electricity-price", "30", p)
		var reports []api.ReportV1
		Expect(json.Unmarshal([]byte(out), &reports)).To(Succeed())
		Expect(reports[0].Inputs.ElectricityPrice).To(Equal(30.0))
	})

	It("includes cash flow rows and breakdown on request", func() {
		code, out, _ := runLCOS(context.Background(), "-o", "json", "--cashflow", "--breakdown")
		Expect(code).To(Equal(appcore.ExitOK))
		var reports []api.ReportV1
		Expect(json.Unmarshal([]byte(out), &reports)).To(Succeed())
		Expect(reports[0].CashFlow).To(HaveLen(1 + reports[0].Inputs.Lifetime))
		Expect(reports[0].Breakdown).NotTo(BeEmpty())
	})

	It("passes --strict for the reference plant", func() {
		code, _, _ := runLCOS(context.Background(), "--strict")
		Expect(code).To(Equal(appcore.ExitOK))
	})

	It("passes --strict when only warnings are raised", func() {
		p := writeScenario(dir, "cold.yaml", "hdri:\n  excess_h2: 1.2\nbenchmarks:\n  heater_kwh_per_tls: 1000\n  tolerance: 0.9\n")
		code, out, _ := runLCOS(context.Background(), "--strict", p)
		Expect(code).To(Equal(appcore.ExitOK))
		Expect(out).To(ContainSubstring("WARN"))
	})

	DescribeTable("fails --strict with exit 4 when a capacity check fails",
		func(body, check string) {
			p := writeScenario(dir, "drift.yaml", body)
			code, out, _ := runLCOS(context.Background(), "--strict", p)
			Expect(code).To(Equal(appcore.ExitStrict))
			Expect(out).To(ContainSubstring("FAIL"))
			Expect(out).To(ContainSubstring(check))

			code, _, _ = runLCOS(context.Background(), p)
			Expect(code).To(Equal(appcore.ExitOK))
		},
		Entry("weak arc", "eaf:\n  arc_efficiency: 0.1\n", "capacity.eaf_electricity"),
		Entry("lossy heater", "hdri:\n  heater_efficiency: 0.05\n", "capacity.heater_electricity"),
		Entry("tighter benchmark", "benchmarks:\n  eaf_kwh_per_tls: 400\n", "capacity.eaf_electricity"),
	)

	It("writes a Prometheus textfile", func() {
		m := filepath.Join(dir, "greensteel.prom")
		code, _, _ := runLCOS(context.Background(), "--metrics-file", m)
		Expect(code).To(Equal(appcore.ExitOK))
		b, err := os.ReadFile(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring(`greensteel_lcos_usd_per_tonne{method="simple",scenario="default"}`))
	})

	DescribeTable("rejects bad input with exit 2",
		func(args func() []string, stderrHas string) {
			code, _, errOut := runLCOS(context.Background(), args()...)
			Expect(code).To(Equal(appcore.ExitUsage))
			Expect(errOut).To(ContainSubstring(stderrHas))
		},
		Entry("unknown flag", func() []string { return []string{"--bogus"} }, "bogus"),
		Entry("unknown output", func() []string { return []string{"-o", "xml"} }, "xml"),
		Entry("missing file", func() []string { return []string{filepath.Join(dir, "nope.yaml")} }, "cannot read scenario file"),
		Entry("glob without matches", func() []string { return []string{filepath.Join(dir, "*.yml")} }, "no scenario file matched"),
		Entry("invalid field", func() []string {
			return []string{writeScenario(dir, "bad.yaml", "electrolyzer:\n  efficiency: 1.5\n")}
		}, "efficiency"),
		Entry("unknown key", func() []string {
			return []string{writeScenario(dir, "typo.yaml", "electricty_price: 10\n")}
		}, "electricty_price"),
	)

	It("exits 130 when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		code, _, _ := runLCOS(ctx)
		Expect(code).To(Equal(appcore.ExitCancelled))
	})

	It("prints version and help without evaluating", func() {
		code, out, _ := runLCOS(context.Background(), "--version")
		Expect(code).To(Equal(appcore.ExitOK))
		Expect(out).To(HavePrefix("greensteel version "))

		code, out, _ = runLCOS(context.Background(), "-h")
		Expect(code).To(Equal(appcore.ExitOK))
		Expect(out).To(ContainSubstring("--electricity-price"))
	})
})

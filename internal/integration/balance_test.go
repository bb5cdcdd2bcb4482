package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"greensteel/internal/appcore"
	"greensteel/internal/balanceapp"
	"greensteel/pkg/api"
)

func runBalance(ctx context.Context, args ...string) (int, string, string) {
	var out, errb bytes.Buffer
	argv := append([]string{"--log-level", "error"}, args...)
	code := balanceapp.RunContext(ctx, argv, &out, &errb)
	return code, out.String(), errb.String()
}

func item(b api.BalanceV1, section, key string) (float64, bool) {
	for _, s := range b.Sections {
		if s.Name != section {
			continue
		}
		for _, q := range s.Items {
			if q.Key == key {
				return q.Value, true
			}
		}
	}
	return 0, false
}

var _ = Describe("greensteel-balance", func() {
	It("reports per-tonne intensities for the reference plant", func() {
		code, out, _ := runBalance(context.Background(), "-o", "json")
		Expect(code).To(Equal(appcore.ExitOK))

		var list []api.BalanceV1
		Expect(json.Unmarshal([]byte(out), &list)).To(Succeed())
		Expect(list).To(HaveLen(1))
		b := list[0]
		Expect(b.SteelOutput).To(Equal(120160.0))

		ore, ok := item(b, "Intensities", "iron_ore")
		Expect(ok).To(BeTrue())
		Expect(ore).To(BeNumerically("~", 1603.73, 0.01))
		h2, _ := item(b, "Intensities", "hydrogen")
		Expect(h2).To(BeNumerically("~", 119.046, 0.001))
		Expect(b.ChecksPassed).To(BeTrue())
	})

	It("scales with --steel-output without changing intensities", func() {
		_, full, _ := runBalance(context.Background(), "-o", "json")
		_, one, _ := runBalance(context.Background(), "-o", "json", "--steel-output", "1000")

		var a, b []api.BalanceV1
		Expect(json.Unmarshal([]byte(full), &a)).To(Succeed())
		Expect(json.Unmarshal([]byte(one), &b)).To(Succeed())
		Expect(b[0].SteelOutput).To(Equal(1000.0))

		wa, _ := item(a[0], "Intensities", "water")
		wb, _ := item(b[0], "Intensities", "water")
		Expect(wb).To(BeNumerically("~", wa, 1e-9))
	})

	It("prints every model section as text", func() {
		code, out, _ := runBalance(context.Background())
		Expect(code).To(Equal(appcore.ExitOK))
		for _, s := range []string{"HDRI mass", "Heater", "EAF emissions", "Electrolyzer", "Intensities"} {
			Expect(out).To(ContainSubstring(s))
		}
	})

	It("writes balance metrics", func() {
		m := filepath.Join(GinkgoT().TempDir(), "balance.prom")
		code, _, _ := runBalance(context.Background(), "--metrics-file", m)
		Expect(code).To(Equal(appcore.ExitOK))
		b, err := os.ReadFile(m)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring("greensteel_steel_tonnes_per_year"))
	})

	It("rejects a non-positive rate", func() {
		code, _, errOut := runBalance(context.Background(), "--steel-output", "0")
		Expect(code).To(Equal(appcore.ExitUsage))
		Expect(errOut).To(ContainSubstring("steel_output"))
	})

	It("exits 130 when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		code, _, _ := runBalance(ctx)
		Expect(code).To(Equal(appcore.ExitCancelled))
	})
})

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"greensteel-core/quantity"

	"greensteel/internal/plant"
)

// Money formats a dollar amount with two decimals and thousands separators.
func Money(usd float64) string {
	s := decimal.NewFromFloat(usd).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// MUSD formats dollars as millions with two decimals.
func MUSD(usd float64) string {
	return decimal.NewFromFloat(usd).Shift(-6).StringFixed(2)
}

type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, a ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, a...)
}

func (t *textWriter) line(label, value, unit string) {
	t.printf("  %-30s %18s %s\n", label, value, unit)
}

func (t *textWriter) quantities(list []quantity.Quantity) {
	for _, q := range list {
		t.line(q.Label, fmt.Sprintf("%.6g", q.Value), q.Unit)
	}
}

func (t *textWriter) checks(list []plant.Check) {
	t.printf("Checks\n")
	for _, c := range list {
		status := "PASS"
		switch {
		case c.Passed:
		case c.Warning:
			status = "WARN"
		default:
			status = "FAIL"
		}
		t.printf("  %-4s %-30s expected %.6g actual %.6g", status, c.Name, c.Expected, c.Actual)
		if c.Note != "" {
			t.printf(" (%s)", c.Note)
		}
		t.printf("\n")
	}
}

// WriteReportText prints one scenario as a sectioned human report.
func WriteReportText(w io.Writer, r plant.Report, o Options) error {
	t := &textWriter{w: w}
	s := r.Scenario
	t.printf("== %s", s.Name)
	if s.Source != "" {
		t.printf(" (%s)", s.Source)
	}
	t.printf("  run %s\n", r.RunID)

	t.printf("Production\n")
	t.line("Steel", Money(r.Outputs.TonnesPerYear), "tls/yr")
	t.line("Hydrogen", Money(r.Outputs.Electrolyzer.H2KgPerYear), "kg/yr")
	t.line("Electrolyzer", fmt.Sprintf("%.2f", r.Outputs.Electrolyzer.CapacityMW), "MW")

	t.printf("Capital cost\n")
	t.line("HDRI shaft", MUSD(r.Capex.HDRI), "MUSD")
	t.line("EAF", MUSD(r.Capex.EAF), "MUSD")
	t.line("Electrolyzer", MUSD(r.Capex.Electrolyzer), "MUSD")
	t.line("Total", MUSD(r.Capex.Total), "MUSD")

	t.printf("Operating cost\n")
	t.line("HDRI shaft", MUSD(r.Opex.HDRI), "MUSD/yr")
	t.line("EAF", MUSD(r.Opex.EAF), "MUSD/yr")
	t.line("Electrolyzer water", MUSD(r.Opex.Electrolyzer), "MUSD/yr")
	t.line("Electricity", MUSD(r.Opex.Electricity), "MUSD/yr")
	t.line("Total", MUSD(r.Opex.Total), "MUSD/yr")

	t.printf("Electricity\n")
	t.quantities(electricityItems(r.Electricity))

	t.printf("Emissions\n")
	t.line("Direct", Money(r.Emissions.Direct), "tCO2/yr")
	t.line("Indirect", Money(r.Emissions.Indirect), "tCO2/yr")
	t.line("Total", Money(r.Emissions.Total), "tCO2/yr")

	t.printf("Per tonne of steel\n")
	t.quantities(r.Intensities.Quantities())

	t.printf("Levelized cost of steel\n")
	t.line("Simple (CRF)", Money(r.SimpleLCOS), "USD/tls")
	t.line("Pro forma", Money(r.ProForma.Price), "USD/tls")

	if o.Breakdown {
		t.printf("Price breakdown\n")
		for _, c := range r.ProForma.Breakdown {
			t.line(c.Name, Money(c.Price), "USD/tls")
		}
		if r.ProForma.BreakdownApproximate {
			t.printf("  (tax losses carried forward; shares are approximate)\n")
		}
	}
	if o.CashFlow {
		t.printf("Cash flow (USD)\n")
		t.printf("  %-6s %14s %14s %18s %18s %18s\n", "year", "tls", "price", "revenue", "cash flow", "discounted")
		for _, y := range r.ProForma.Rows {
			t.printf("  %-6d %14.0f %14s %18s %18s %18s\n",
				y.Year, y.Production, Money(y.Price), Money(y.Revenue), Money(y.CashFlow), Money(y.DiscountedCashFlow))
		}
	}
	t.checks(r.Checks)
	t.printf("\n")
	return t.err
}

// WriteBalanceText prints every model output for one scenario.
func WriteBalanceText(w io.Writer, b plant.BalanceReport) error {
	t := &textWriter{w: w}
	t.printf("== %s  steel %.6g kg/hr\n", b.Scenario.Name, b.Outputs.SteelRate)
	for _, sec := range BalanceSections(b) {
		t.printf("%s\n", sec.Name)
		t.quantities(sec.Items)
	}
	t.checks(b.Checks)
	t.printf("\n")
	return t.err
}

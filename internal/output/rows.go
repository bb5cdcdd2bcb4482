package output

import (
	"fmt"
	"io"
	"strconv"

	"greensteel-core/quantity"

	"greensteel/internal/plant"
)

// Row is one TSV line below the scenario column.
type Row struct {
	Section string
	Item    string
	Value   float64
	Unit    string
}

// BalanceSections is every model section plus yearly electricity and the
// per-tonne intensities.
func BalanceSections(b plant.BalanceReport) []plant.Section {
	e := b.Electricity
	return append(b.Outputs.Sections(),
		plant.Section{Name: "Electricity", Items: electricityItems(e)},
		plant.Section{Name: "Intensities", Items: b.Intensities.Quantities()},
	)
}

func electricityItems(e plant.Electricity) []quantity.Quantity {
	return []quantity.Quantity{
		{Key: "eaf", Label: "EAF", Value: e.EAF, Unit: "MWh/yr"},
		{Key: "heater", Label: "H2 heater", Value: e.Heater, Unit: "MWh/yr"},
		{Key: "electrolyzer", Label: "Electrolyzer", Value: e.Electrolyzer, Unit: "MWh/yr"},
		{Key: "total", Label: "Total", Value: e.Total, Unit: "MWh/yr"},
	}
}

// ReportRows flattens a report into TSV rows.
func ReportRows(r plant.Report, o Options) []Row {
	rows := []Row{
		{"production", "tls_per_year", r.Outputs.TonnesPerYear, "tls/yr"},
		{"production", "h2_per_year", r.Outputs.Electrolyzer.H2KgPerYear, "kg/yr"},
		{"production", "electrolyzer_capacity", r.Outputs.Electrolyzer.CapacityMW, "MW"},
		{"capex", "hdri", r.Capex.HDRI, "USD"},
		{"capex", "eaf", r.Capex.EAF, "USD"},
		{"capex", "electrolyzer", r.Capex.Electrolyzer, "USD"},
		{"capex", "total", r.Capex.Total, "USD"},
		{"opex", "hdri", r.Opex.HDRI, "USD/yr"},
		{"opex", "eaf", r.Opex.EAF, "USD/yr"},
		{"opex", "electrolyzer", r.Opex.Electrolyzer, "USD/yr"},
		{"opex", "electricity", r.Opex.Electricity, "USD/yr"},
		{"opex", "total", r.Opex.Total, "USD/yr"},
	}
	for _, q := range electricityItems(r.Electricity) {
		rows = append(rows, Row{"electricity", q.Key, q.Value, q.Unit})
	}
	rows = append(rows,
		Row{"emissions", "direct", r.Emissions.Direct, "tCO2/yr"},
		Row{"emissions", "indirect", r.Emissions.Indirect, "tCO2/yr"},
		Row{"emissions", "total", r.Emissions.Total, "tCO2/yr"},
	)
	for _, q := range r.Intensities.Quantities() {
		rows = append(rows, Row{"intensity", q.Key, q.Value, q.Unit})
	}
	rows = append(rows,
		Row{"lcos", "simple", r.SimpleLCOS, "USD/tls"},
		Row{"lcos", "pro_forma", r.ProForma.Price, "USD/tls"},
	)
	if o.Breakdown {
		for _, c := range r.ProForma.Breakdown {
			rows = append(rows, Row{"breakdown", c.Name, c.Price, "USD/tls"})
		}
	}
	if o.CashFlow {
		for _, y := range r.ProForma.Rows {
			rows = append(rows, Row{"cash_flow", strconv.Itoa(y.Year), y.CashFlow, "USD"})
		}
	}
	return append(rows, checkRows(r.Checks)...)
}

// BalanceRows flattens a balance into TSV rows keyed by quantity key.
func BalanceRows(b plant.BalanceReport) []Row {
	var rows []Row
	for _, sec := range BalanceSections(b) {
		for _, q := range sec.Items {
			rows = append(rows, Row{sec.Name, q.Key, q.Value, q.Unit})
		}
	}
	return append(rows, checkRows(b.Checks)...)
}

func checkRows(list []plant.Check) []Row {
	rows := make([]Row, 0, len(list))
	for _, c := range list {
		pass := 0.0
		if c.Passed {
			pass = 1
		}
		rows = append(rows, Row{"check", c.Name, pass, "pass"})
	}
	return rows
}

// WriteTSV writes rows for one scenario as a tab-delimited table.
func WriteTSV(w io.Writer, scenario string, rows []Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			scenario, r.Section, r.Item, strconv.FormatFloat(r.Value, 'g', -1, 64), r.Unit,
		); err != nil {
			return err
		}
	}
	return nil
}

package writers

import (
	"io"

	"greensteel/internal/output"
	"greensteel/internal/plant"
)

func init() {
	Balances.Register(output.FormatText, func(w io.Writer, in <-chan plant.BalanceReport, _ output.Options) error {
		for b := range in {
			if err := output.WriteBalanceText(w, b); err != nil {
				return err
			}
		}
		return nil
	})
	Balances.Register(output.FormatTSV, func(w io.Writer, in <-chan plant.BalanceReport, o output.Options) error {
		header := o.Header
		for b := range in {
			if err := output.WriteTSV(w, b.Scenario.Name, output.BalanceRows(b), header); err != nil {
				return err
			}
			header = false
		}
		return nil
	})
	Balances.Register(output.FormatJSON, func(w io.Writer, in <-chan plant.BalanceReport, _ output.Options) error {
		var buf []plant.BalanceReport
		for b := range in {
			buf = append(buf, b)
		}
		return output.WriteBalancesJSON(w, buf)
	})
	Balances.Register(output.FormatJSONL, func(w io.Writer, in <-chan plant.BalanceReport, _ output.Options) error {
		return pipeJSONL(w, in, func(b plant.BalanceReport) any { return output.ToAPIBalance(b) })
	})
}

// StartBalanceWriter spins up a writer goroutine for balance runs.
func StartBalanceWriter(out io.Writer, format string, o output.Options, bufSize int) (chan<- plant.BalanceReport, <-chan error) {
	return Balances.Start(out, format, o, bufSize)
}

package writers

import (
	"io"

	"greensteel/internal/output"
	"greensteel/internal/plant"
)

func init() {
	Reports.Register(output.FormatText, func(w io.Writer, in <-chan plant.Report, o output.Options) error {
		for r := range in {
			if err := output.WriteReportText(w, r, o); err != nil {
				return err
			}
		}
		return nil
	})
	Reports.Register(output.FormatTSV, func(w io.Writer, in <-chan plant.Report, o output.Options) error {
		header := o.Header
		for r := range in {
			if err := output.WriteTSV(w, r.Scenario.Name, output.ReportRows(r, o), header); err != nil {
				return err
			}
			header = false
		}
		return nil
	})
	Reports.Register(output.FormatJSON, func(w io.Writer, in <-chan plant.Report, o output.Options) error {
		var buf []plant.Report
		for r := range in {
			buf = append(buf, r)
		}
		return output.WriteReportsJSON(w, buf, o)
	})
	Reports.Register(output.FormatJSONL, func(w io.Writer, in <-chan plant.Report, o output.Options) error {
		return pipeJSONL(w, in, func(r plant.Report) any { return output.ToAPIReport(r, o) })
	})
}

// StartReportWriter spins up a writer goroutine for evaluated scenarios.
func StartReportWriter(out io.Writer, format string, o output.Options, bufSize int) (chan<- plant.Report, <-chan error) {
	return Reports.Start(out, format, o, bufSize)
}

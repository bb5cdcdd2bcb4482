package appcore

import (
	"io"

	"greensteel/internal/output"
	"greensteel/internal/plant"
	"greensteel/internal/writers"
)

// ---------------- Report writer ----------------

type ReportWriterFactory struct {
	Format  string
	Options output.Options
}

func NewReportWriterFactory(format string, header, cashFlow, breakdown bool) ReportWriterFactory {
	return ReportWriterFactory{
		Format:  format,
		Options: output.Options{Header: header, CashFlow: cashFlow, Breakdown: breakdown},
	}
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- plant.Report, <-chan error) {
	return writers.StartReportWriter(out, w.Format, w.Options, bufSize)
}

// ---------------- Balance writer ----------------

type BalanceWriterFactory struct {
	Format string
	Header bool
}

func NewBalanceWriterFactory(format string, header bool) BalanceWriterFactory {
	return BalanceWriterFactory{Format: format, Header: header}
}

func (w BalanceWriterFactory) Start(out io.Writer, bufSize int) (chan<- plant.BalanceReport, <-chan error) {
	return writers.StartBalanceWriter(out, w.Format, output.Options{Header: w.Header}, bufSize)
}

package writers

import (
	"fmt"
	"io"

	"greensteel/internal/output"
	"greensteel/internal/plant"
)

// Stream consumes values from in until it is closed.
type Stream[T any] func(w io.Writer, in <-chan T, o output.Options) error

// Registry maps a format name to its handler. Last registration wins.
type Registry[T any] struct {
	kind    string
	streams map[string]Stream[T]
}

func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, streams: map[string]Stream[T]{}}
}

func (r *Registry[T]) Register(format string, fn Stream[T]) { r.streams[format] = fn }

func (r *Registry[T]) Lookup(format string) (Stream[T], error) {
	fn, ok := r.streams[format]
	if !ok {
		return nil, fmt.Errorf("unknown %s format %q (no writer registered)", r.kind, format)
	}
	return fn, nil
}

// Start spins up a writer goroutine. The input is always drained, so senders
// never block on a failed writer.
func (r *Registry[T]) Start(out io.Writer, format string, o output.Options, bufSize int) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)
	go func() {
		fn, err := r.Lookup(format)
		if err == nil {
			err = fn(out, in, o)
		}
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// Writer registries (format → handler), filled by init() in report.go and
// balance.go.
var (
	Reports  = NewRegistry[plant.Report]("report")
	Balances = NewRegistry[plant.BalanceReport]("balance")
)

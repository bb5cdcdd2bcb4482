// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"greensteel/internal/cmdutil"
	"greensteel/internal/scenario"
	"greensteel/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitFailure   = 3
	ExitStrict    = 4
	ExitCancelled = 130
)

type Options struct {
	Threads int
	Logger  *zap.Logger
}

// Evaluator turns one input into one result.
type Evaluator[In, T any] func(context.Context, In) (T, error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run evaluates inputs in parallel, writes results in input order and maps
// the outcome to an exit code. failed, when non-nil, marks results that
// fail a strict run; they are still written.
func Run[In, T any](
	parent context.Context,
	stdout io.Writer,
	o Options,
	inputs []In,
	eval Evaluator[In, T],
	wf WriterFactory[T],
	failed func(T) bool,
) int {
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = 1
	}
	inCh, writeErr := wf.Start(outw, thr*2)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	strictFailures := 0
	total, perr := cmdutil.RunStream[In, T](ctx, o.Threads, inputs, eval, func(x T) error {
		if failed != nil && failed(x) {
			strictFailures++
		}
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error("write output", zap.Error(werr))
		return ExitFailure
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("flush output", zap.Error(e))
		return ExitFailure
	}

	if perr != nil {
		return ExitCode(log, perr)
	}
	log.Debug("run complete", zap.Int("results", total))
	if strictFailures > 0 {
		log.Warn("strict mode: consistency checks failed", zap.Int("results", strictFailures))
		return ExitStrict
	}
	return ExitOK
}

// ExitCode logs err and maps it to an exit code: cancellation is 130, bad
// scenario input is a usage error, anything else an evaluation failure.
func ExitCode(log *zap.Logger, err error) int {
	var fe *scenario.FieldError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.As(err, &fe):
		log.Error("invalid scenario", zap.String("file", fe.Path), zap.String("field", fe.Field), zap.Error(fe.Err))
		return ExitUsage
	default:
		log.Error("evaluation failed", zap.Error(err))
		return ExitFailure
	}
}

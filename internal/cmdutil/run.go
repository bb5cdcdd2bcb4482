package cmdutil

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunStream evaluates inputs on up to threads goroutines and streams the
// results via send in input order. It returns the number of results sent
// and the first error encountered: a send error, otherwise the error of the
// earliest failing input.
func RunStream[In, Out any](
	ctx context.Context,
	threads int,
	inputs []In,
	eval func(context.Context, In) (Out, error),
	send func(Out) error,
) (int, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	results := make([]Out, len(inputs))
	errs := make([]error, len(inputs))
	ready := make([]chan struct{}, len(inputs))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, in := range inputs {
			g.Go(func() error {
				defer close(ready[i])
				if err := gctx.Err(); err != nil {
					errs[i] = err
					return err
				}
				results[i], errs[i] = eval(gctx, in)
				return errs[i]
			})
		}
	}()

	total := 0
	var sendErr error
	for i := range inputs {
		<-ready[i]
		if errs[i] != nil {
			break
		}
		if sendErr = send(results[i]); sendErr != nil {
			cancel()
			break
		}
		total++
	}

	<-launched
	waitErr := g.Wait()
	if sendErr != nil {
		return total, sendErr
	}
	// A failure cancels its siblings; report the failure, not their
	// cancellation, unless the caller cancelled.
	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if parent.Err() != nil || !errors.Is(err, context.Canceled) {
			return total, err
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return total, first
	}
	return total, waitErr
}

package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"greensteel/internal/scenario"
)

type lineFactory struct{}

func (lineFactory) Start(out io.Writer, bufSize int) (chan<- int, <-chan error) {
	in := make(chan int, bufSize)
	done := make(chan error, 1)
	go func() {
		var err error
		for v := range in {
			if err == nil {
				_, err = fmt.Fprintln(out, v)
			}
		}
		done <- err
	}()
	return in, done
}

func double(_ context.Context, v int) (int, error) { return 2 * v, nil }

func TestRunWritesInOrder(t *testing.T) {
	var b bytes.Buffer
	code := Run(context.Background(), &b, Options{Threads: 3}, []int{1, 2, 3, 4}, double, lineFactory{}, nil)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "2\n4\n6\n8\n", b.String())
}

func TestRunStrict(t *testing.T) {
	var b bytes.Buffer
	code := Run(context.Background(), &b, Options{}, []int{1, 2}, double, lineFactory{},
		func(v int) bool { return v == 4 })
	assert.Equal(t, ExitStrict, code)
	assert.Equal(t, "2\n4\n", b.String(), "failing results are still written")
}

func TestRunEvalErrors(t *testing.T) {
	fieldErr := &scenario.FieldError{Path: "a.yaml", Field: "lifetime", Err: scenario.ErrInvalidValue}
	cases := map[string]struct {
		err  error
		want int
	}{
		"config":    {fieldErr, ExitUsage},
		"cancelled": {context.Canceled, ExitCancelled},
		"other":     {errors.New("boom"), ExitFailure},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			eval := func(context.Context, int) (int, error) { return 0, tc.err }
			code := Run(context.Background(), io.Discard, Options{Logger: zap.NewNop()}, []int{1}, eval, lineFactory{}, nil)
			assert.Equal(t, tc.want, code)
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestRunBrokenPipeIsOK(t *testing.T) {
	in := make([]int, 5000)
	code := Run(context.Background(), brokenWriter{}, Options{}, in, double, lineFactory{}, nil)
	assert.Equal(t, ExitOK, code)
}

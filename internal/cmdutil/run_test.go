package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStreamKeepsOrder(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	var got []string
	n, err := RunStream(context.Background(), 3, in,
		func(_ context.Context, v int) (string, error) {
			time.Sleep(time.Duration(v) * time.Millisecond)
			return fmt.Sprint(v), nil
		},
		func(s string) error { got = append(got, s); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"5", "1", "4", "2", "3"}, got)
}

func TestRunStreamBoundsConcurrency(t *testing.T) {
	var cur, peak atomic.Int32
	in := make([]int, 20)
	_, err := RunStream(context.Background(), 2, in,
		func(_ context.Context, _ int) (int, error) {
			c := cur.Add(1)
			for {
				p := peak.Load()
				if c <= p || peak.CompareAndSwap(p, c) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			cur.Add(-1)
			return 0, nil
		},
		func(int) error { return nil },
	)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunStreamStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var sent []int
	n, err := RunStream(context.Background(), 1, []int{1, 2, 3},
		func(_ context.Context, v int) (int, error) {
			if v == 2 {
				return 0, boom
			}
			return v, nil
		},
		func(v int) error { sent = append(sent, v); return nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{1}, sent)
}

func TestRunStreamSendError(t *testing.T) {
	closed := errors.New("closed")
	n, err := RunStream(context.Background(), 4, []int{1, 2, 3},
		func(_ context.Context, v int) (int, error) { return v, nil },
		func(int) error { return closed },
	)
	assert.ErrorIs(t, err, closed)
	assert.Equal(t, 0, n)
}

func TestRunStreamCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunStream(ctx, 2, []int{1, 2},
		func(ctx context.Context, v int) (int, error) { return v, ctx.Err() },
		func(int) error { return nil },
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunStreamReportsFailureOverSiblingCancel(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunStream(context.Background(), 2, []int{1, 2},
		func(ctx context.Context, v int) (int, error) {
			if v == 2 {
				return 0, boom
			}
			<-ctx.Done()
			return 0, ctx.Err()
		},
		func(int) error { return nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, context.Canceled)
}

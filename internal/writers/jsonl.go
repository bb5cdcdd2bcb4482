package writers

import (
	"encoding/json"
	"io"

	"greensteel/internal/jsonlutil"
)

// pipeJSONL streams each value as one JSON line through its v1 wire form.
func pipeJSONL[T any](w io.Writer, in <-chan T, wire func(T) any) error {
	ch, done := jsonlutil.Start[T](w, cap(in),
		func(enc *json.Encoder, v T) error { return enc.Encode(wire(v)) },
		IsBrokenPipe,
	)
	for v := range in {
		ch <- v
	}
	close(ch)
	return <-done
}

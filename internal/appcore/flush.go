package appcore

import (
	"bufio"
	"fmt"
	"io"

	"greensteel/internal/writers"
)

// Flush flushes outw and returns code, or 3 when stdout failed for any
// reason other than a closed pipe.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitFailure
	}
	return code
}

package writers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greensteel/internal/output"
	"greensteel/internal/plant"
	"greensteel/internal/scenario"
	"greensteel/pkg/api"
)

func report(t *testing.T, name string) plant.Report {
	t.Helper()
	s := scenario.Default()
	s.Name = name
	r, err := plant.Evaluate(context.Background(), s)
	require.NoError(t, err)
	return r
}

func TestUnknownReportFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, "nope-format", output.Options{}, 1)
	close(in)
	err := <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestUnknownFormatDrainsInput(t *testing.T) {
	var b bytes.Buffer
	in, done := StartBalanceWriter(&b, "wat", output.Options{}, 1)
	bal, err := plant.Balance(context.Background(), scenario.Default())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		in <- bal
	}
	close(in)
	err = <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown balance format")
}

func TestEveryFormatRegistered(t *testing.T) {
	for _, f := range output.Formats {
		_, err := Reports.Lookup(f)
		assert.NoError(t, err, f)
		_, err = Balances.Lookup(f)
		assert.NoError(t, err, f)
	}
}

func TestReportJSONKeepsOrder(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, output.FormatJSON, output.Options{}, 4)
	in <- report(t, "a")
	in <- report(t, "b")
	close(in)
	require.NoError(t, <-done)

	var got []api.ReportV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Scenario)
	assert.Equal(t, "b", got[1].Scenario)
}

func TestReportJSONLOneLineEach(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, output.FormatJSONL, output.Options{Breakdown: true}, 1)
	in <- report(t, "a")
	in <- report(t, "b")
	close(in)
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	var v api.ReportV1
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &v))
	assert.Equal(t, "b", v.Scenario)
	assert.NotEmpty(t, v.Breakdown)
	assert.Contains(t, lines[0], "fixed O&M")
}

func TestReportTSVHeaderOnce(t *testing.T) {
	var b bytes.Buffer
	in, done := StartReportWriter(&b, output.FormatTSV, output.Options{Header: true}, 2)
	in <- report(t, "a")
	in <- report(t, "b")
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, 1, strings.Count(b.String(), output.TSVHeader))
	assert.Contains(t, b.String(), "\nb\tlcos\tpro_forma\t")
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(errors.New("x")))
}

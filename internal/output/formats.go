// Package output renders plant reports as text, TSV and the versioned JSON
// schema in pkg/api.
package output

const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted --output values in usage order.
var Formats = []string{FormatText, FormatTSV, FormatJSON, FormatJSONL}

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "scenario\tsection\titem\tvalue\tunit"

// Options select the optional report sections.
type Options struct {
	Header    bool // TSV header row
	CashFlow  bool
	Breakdown bool
}

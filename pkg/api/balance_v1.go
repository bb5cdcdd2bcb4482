// pkg/api/balance_v1.go
package api

// BalanceV1 is the stable schema for greensteel-balance: every model output
// for one steel rate, grouped by section.
type BalanceV1 struct {
	Scenario    string      `json:"scenario"`
	SteelOutput float64     `json:"steel_output_kg_per_hr"`
	Sections    []SectionV1 `json:"sections"`
	Checks      []CheckV1   `json:"checks,omitempty"`
	// ChecksPassed ignores warnings.
	ChecksPassed bool `json:"checks_passed"`
}

type SectionV1 struct {
	Name  string       `json:"name"`
	Items []QuantityV1 `json:"items"`
}

type QuantityV1 struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

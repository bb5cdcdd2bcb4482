// Package quantity carries labeled numeric model outputs with their units,
// so callers can print or serialize a model result without knowing its
// struct layout.
package quantity

import "fmt"

// Quantity is one labeled value.
type Quantity struct {
	Key   string // stable machine key, e.g. "iron_ore_in"
	Label string // human label, e.g. "Iron ore in"
	Value float64
	Unit  string // e.g. "kg/hr", "kW", "MUSD/yr"
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s: %.6g %s", q.Label, q.Value, q.Unit)
}

// Lister is implemented by every model output struct.
type Lister interface {
	Quantities() []Quantity
}

// Find returns the quantity with key k.
func Find(list []Quantity, k string) (Quantity, bool) {
	for _, q := range list {
		if q.Key == k {
			return q, true
		}
	}
	return Quantity{}, false
}

// Scale returns a copy of list with every value multiplied by f and the
// unit replaced by unit (when non-empty).
func Scale(list []Quantity, f float64, unit string) []Quantity {
	out := make([]Quantity, len(list))
	for i, q := range list {
		q.Value *= f
		if unit != "" {
			q.Unit = unit
		}
		out[i] = q
	}
	return out
}

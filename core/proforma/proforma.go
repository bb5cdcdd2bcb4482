package proforma

import (
	"fmt"
	"math"
)

// Category groups breakdown lines.
type Category string

const (
	CategoryCapital   Category = "Capital"
	CategoryFixed     Category = "Fixed OPEX"
	CategoryFeedstock Category = "Feedstock"
	CategoryTaxes     Category = "Taxes and fees"
)

// CapitalItem is depreciable equipment bought during construction.
type CapitalItem struct {
	Name       string
	Cost       float64 // USD
	DeprType   DeprType
	DeprPeriod int
	// Refurb[k] is the fraction of Cost spent again in operating year k.
	Refurb []float64
}

// FixedCost is a yearly cost independent of production.
type FixedCost struct {
	Name       string
	Usage      float64
	Unit       string
	Cost       float64 // USD per unit of usage per year
	Escalation float64
}

// Feedstock is consumed per unit of commodity produced.
type Feedstock struct {
	Name       string
	Usage      float64 // per unit of commodity
	Unit       string
	Cost       float64 // USD per unit of usage
	Escalation float64
}

type ProForma struct {
	Params Params

	capital    []CapitalItem
	fixed      []FixedCost
	feedstocks []Feedstock
}

func New(p Params) *ProForma { return &ProForma{Params: p} }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (pf *ProForma) AddCapitalItem(name string, cost float64, deprType DeprType, deprPeriod int, refurb []float64) error {
	if name == "" || !finite(cost) {
		return fmt.Errorf("%w: capital item %q cost %v", ErrInvalidParam, name, cost)
	}
	if _, err := Schedule(deprType, deprPeriod); err != nil {
		return fmt.Errorf("capital item %q: %w", name, err)
	}
	for _, f := range refurb {
		if !finite(f) || f < 0 {
			return fmt.Errorf("%w: capital item %q refurb fraction %v", ErrInvalidParam, name, f)
		}
	}
	pf.capital = append(pf.capital, CapitalItem{
		Name: name, Cost: cost, DeprType: deprType, DeprPeriod: deprPeriod,
		Refurb: append([]float64(nil), refurb...),
	})
	return nil
}

func (pf *ProForma) AddFixedCost(name string, usage float64, unit string, cost, escalation float64) error {
	if name == "" || !finite(usage) || !finite(cost) || !(escalation > -1) {
		return fmt.Errorf("%w: fixed cost %q", ErrInvalidParam, name)
	}
	pf.fixed = append(pf.fixed, FixedCost{name, usage, unit, cost, escalation})
	return nil
}

func (pf *ProForma) AddFeedstock(name string, usage float64, unit string, cost, escalation float64) error {
	if name == "" || !finite(usage) || !finite(cost) || !(escalation > -1) {
		return fmt.Errorf("%w: feedstock %q", ErrInvalidParam, name)
	}
	pf.feedstocks = append(pf.feedstocks, Feedstock{name, usage, unit, cost, escalation})
	return nil
}

func (pf *ProForma) CapitalItems() []CapitalItem { return pf.capital }
func (pf *ProForma) FixedCosts() []FixedCost     { return pf.fixed }
func (pf *ProForma) Feedstocks() []Feedstock     { return pf.feedstocks }

// TotalCapital is the construction-year capital plus installation.
func (pf *ProForma) TotalCapital() float64 {
	s := pf.Params.InstallationCost.Value
	for _, c := range pf.capital {
		s += c.Cost
	}
	return s
}

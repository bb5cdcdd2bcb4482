// Package proforma is a discounted-cash-flow pro forma that solves for the
// break-even price of a commodity.
//
// A ProForma is configured with plant parameters, capital items, fixed costs
// and feedstocks. SolvePrice finds the price in the analysis start year that
// drives the after-tax NPV to zero at the nominal discount rate, and returns
// the yearly cash flows and a per-item price breakdown.
package proforma

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParam = errors.New("invalid pro forma parameter")
	ErrNoRoot       = errors.New("no break-even price")
)

// Commodity is the product being priced.
type Commodity struct {
	Name         string
	Unit         string
	InitialPrice float64 // starting guess, ignored when solving exactly
	Escalation   float64 // per year
}

// Escalating is a yearly amount in analysis-start-year dollars.
type Escalating struct {
	Value      float64
	Escalation float64
}

// Installation is the one-off cost of installing the plant.
type Installation struct {
	Value       float64
	DeprType    DeprType
	DeprPeriod  int
	Depreciable bool
}

type Params struct {
	Commodity          Commodity
	CapacityPerDay     float64 // units of commodity per day
	Maintenance        Escalating
	AnalysisStartYear  int
	OperatingLife      int // years
	InstallationMonths int
	InstallationCost   Installation

	NonDepreciableAssets                float64 // land, bought in year 0
	EndOfProjectSaleNonDepr             float64 // land sale value in the final year
	DemandRampup                        float64 // years to reach long-term utilization
	LongTermUtilization                 float64
	CreditCardFees                      float64 // fraction of revenue
	SalesTax                            float64 // fraction of revenue
	LicenseAndPermit                    Escalating
	Rent                                Escalating
	PropertyTaxAndInsurance             float64 // fraction of capital cost per year
	AdminExpense                        float64 // fraction of revenue
	TotalIncomeTaxRate                  float64
	CapitalGainsTaxRate                 float64
	SellUndepreciatedCap                bool
	TaxLossesMonetized                  bool
	GeneralInflationRate                float64
	LeverageAfterTaxNominalDiscountRate float64
}

// DefaultParams is an empty plant: no costs, full utilization, one year of
// construction.
func DefaultParams() Params {
	return Params{
		Commodity:           Commodity{Name: "Product", Unit: "unit"},
		AnalysisStartYear:   2021,
		OperatingLife:       30,
		InstallationMonths:  12,
		InstallationCost:    Installation{DeprType: StraightLine, DeprPeriod: 4},
		LongTermUtilization: 1,
		TaxLossesMonetized:  true,
	}
}

func (p Params) revenueDeductions() float64 {
	return p.CreditCardFees + p.SalesTax + p.AdminExpense
}

// constructionYears is the number of whole years before operation starts.
// Capital is always spent at least one year ahead of production.
func (p Params) constructionYears() int {
	n := int(math.Ceil(float64(p.InstallationMonths) / 12))
	if n < 1 {
		n = 1
	}
	return n
}

func (p Params) Validate() error {
	bad := func(field string, v any) error {
		return fmt.Errorf("%w: %s=%v", ErrInvalidParam, field, v)
	}
	frac := func(v float64) bool { return v >= 0 && v < 1 }
	switch {
	case p.OperatingLife < 1:
		return bad("operating life", p.OperatingLife)
	case !(p.CapacityPerDay > 0) || math.IsInf(p.CapacityPerDay, 0):
		return bad("capacity", p.CapacityPerDay)
	case !(p.LongTermUtilization > 0 && p.LongTermUtilization <= 1):
		return bad("long term utilization", p.LongTermUtilization)
	case p.InstallationMonths < 0:
		return bad("installation months", p.InstallationMonths)
	case p.DemandRampup < 0:
		return bad("demand rampup", p.DemandRampup)
	case !frac(p.TotalIncomeTaxRate):
		return bad("total income tax rate", p.TotalIncomeTaxRate)
	case !frac(p.CapitalGainsTaxRate):
		return bad("capital gains tax rate", p.CapitalGainsTaxRate)
	case p.CreditCardFees < 0 || p.SalesTax < 0 || p.AdminExpense < 0 || !frac(p.revenueDeductions()):
		return bad("revenue deductions", p.revenueDeductions())
	case p.PropertyTaxAndInsurance < 0:
		return bad("property tax and insurance", p.PropertyTaxAndInsurance)
	case !(p.LeverageAfterTaxNominalDiscountRate > -1):
		return bad("leverage after tax nominal discount rate", p.LeverageAfterTaxNominalDiscountRate)
	}
	if p.InstallationCost.Depreciable {
		if _, err := Schedule(p.InstallationCost.DeprType, p.InstallationCost.DeprPeriod); err != nil {
			return fmt.Errorf("installation cost: %w", err)
		}
	}
	return nil
}

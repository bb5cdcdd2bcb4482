package proforma

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// YearRow is one year of the cash-flow table, nominal USD.
type YearRow struct {
	Year               int
	Production         float64
	Price              float64
	Revenue            float64
	RevenueDeductions  float64
	OperatingExpenses  float64
	CapitalExpenditure float64
	Depreciation       float64
	TaxableIncome      float64
	IncomeTax          float64
	Salvage            float64 // terminal value net of capital gains tax
	CashFlow           float64
	DiscountedCashFlow float64
}

// Contribution is the share of the break-even price attributable to one item.
type Contribution struct {
	Name     string
	Category Category
	Price    float64
}

type Solution struct {
	Price      float64 // commodity price in the analysis start year
	NPV        float64 // at Price; zero up to solver tolerance
	Iterations int
	Rows       []YearRow
	Breakdown  []Contribution
	// BreakdownApproximate is set when tax losses are carried forward, so
	// price is not exactly linear in the items.
	BreakdownApproximate bool
}

const (
	maxBisect = 200
	relTol    = 1e-10
)

// evaluate runs the cash flow at price. rows is filled when non-nil.
func (c *compiled) evaluate(price float64, rows []YearRow) float64 {
	n := c.n
	expense := make([]float64, n)
	capex := make([]float64, n)
	dep := make([]float64, n)
	salvage := make([]float64, n)
	direct := make([]float64, n)
	for _, l := range c.lines {
		floats.Add(expense, l.expense)
		floats.Add(capex, l.capex)
		floats.Add(dep, l.dep)
		floats.Add(salvage, l.salvage)
		floats.Add(direct, l.tax)
	}

	deduct := c.p.revenueDeductions()
	rate := c.p.TotalIncomeTaxRate
	cf := make([]float64, n)
	carried := 0.0
	for t := 0; t < n; t++ {
		revenue := price * c.revUnit[t]
		net := revenue * (1 - deduct)
		taxable := net - expense[t] - dep[t]

		var tax float64
		switch {
		case c.p.TaxLossesMonetized:
			tax = rate * taxable
		case taxable < 0:
			carried -= taxable
		default:
			used := math.Min(carried, taxable)
			carried -= used
			tax = rate * (taxable - used)
		}

		cf[t] = net - expense[t] - capex[t] - tax + salvage[t] - direct[t]
		if rows != nil {
			rows[t] = YearRow{
				Year:               c.p.AnalysisStartYear + t,
				Production:         c.production[t],
				Price:              price * escalation(c.p.Commodity.Escalation, t),
				Revenue:            revenue,
				RevenueDeductions:  revenue * deduct,
				OperatingExpenses:  expense[t],
				CapitalExpenditure: capex[t],
				Depreciation:       dep[t],
				TaxableIncome:      taxable,
				IncomeTax:          tax,
				Salvage:            salvage[t] - direct[t],
				CashFlow:           cf[t],
				DiscountedCashFlow: cf[t] * c.df[t],
			}
		}
	}
	return floats.Dot(cf, c.df)
}

// priceSlope is d(NPV)/d(price) with tax effects realised immediately.
func (c *compiled) priceSlope() float64 {
	return floats.Dot(c.df, c.revUnit) * (1 - c.p.revenueDeductions()) * (1 - c.p.TotalIncomeTaxRate)
}

// NPV returns the after-tax net present value at a start-year price.
func (pf *ProForma) NPV(price float64) (float64, error) {
	c, err := pf.compile()
	if err != nil {
		return 0, err
	}
	return c.evaluate(price, nil), nil
}

// CashFlows returns the yearly table at a start-year price.
func (pf *ProForma) CashFlows(price float64) ([]YearRow, error) {
	c, err := pf.compile()
	if err != nil {
		return nil, err
	}
	rows := make([]YearRow, c.n)
	c.evaluate(price, rows)
	return rows, nil
}

// SolvePrice finds the break-even start-year price. With monetized tax
// losses NPV is affine in price and the root is exact; otherwise it is
// bracketed around the affine estimate and bisected.
func (pf *ProForma) SolvePrice(ctx context.Context) (Solution, error) {
	c, err := pf.compile()
	if err != nil {
		return Solution{}, err
	}
	slope := c.priceSlope()
	if !(slope > 0) {
		return Solution{}, fmt.Errorf("%w: no revenue over the operating life", ErrNoRoot)
	}

	base := 0.0
	for _, l := range c.lines {
		base += l.value(c.df, c.p.TotalIncomeTaxRate)
	}
	guess := -base / slope

	sol := Solution{Price: guess, Iterations: 1}
	if !c.p.TaxLossesMonetized {
		sol.Price, sol.Iterations, err = c.bisect(ctx, guess)
		if err != nil {
			return Solution{}, err
		}
		sol.BreakdownApproximate = true
	}

	sol.Rows = make([]YearRow, c.n)
	sol.NPV = c.evaluate(sol.Price, sol.Rows)
	sol.Breakdown = c.breakdown(sol.Price)
	return sol, nil
}

func (c *compiled) bisect(ctx context.Context, guess float64) (float64, int, error) {
	step := math.Max(1, math.Abs(guess))
	lo, hi := guess, guess
	iter := 0
	for c.evaluate(lo, nil) > 0 {
		lo -= step
		step *= 2
		if iter++; iter > maxBisect {
			return 0, iter, fmt.Errorf("%w: cannot bracket from below", ErrNoRoot)
		}
	}
	step = math.Max(1, math.Abs(guess))
	for c.evaluate(hi, nil) < 0 {
		hi += step
		step *= 2
		if iter++; iter > maxBisect {
			return 0, iter, fmt.Errorf("%w: cannot bracket from above", ErrNoRoot)
		}
	}

	for i := 0; i < maxBisect; i++ {
		if err := ctx.Err(); err != nil {
			return 0, iter, err
		}
		iter++
		if hi-lo <= relTol*math.Max(1, math.Abs(hi)) {
			break
		}
		mid := lo + (hi-lo)/2
		if c.evaluate(mid, nil) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2, iter, nil
}

// breakdown attributes price to items by their share of discounted after-tax
// cost. Revenue deductions and, when losses are carried forward, the timing
// residual are reported as separate lines so the parts add up to price.
func (c *compiled) breakdown(price float64) []Contribution {
	gross := floats.Dot(c.df, c.revUnit) * (1 - c.p.TotalIncomeTaxRate)
	out := make([]Contribution, 0, len(c.lines)+2)
	sum := 0.0
	for _, l := range c.lines {
		v := -l.value(c.df, c.p.TotalIncomeTaxRate) / gross
		out = append(out, Contribution{Name: l.name, Category: l.category, Price: v})
		sum += v
	}
	if d := c.p.revenueDeductions(); d != 0 {
		v := price * d
		out = append(out, Contribution{Name: "Sales tax, fees and admin", Category: CategoryTaxes, Price: v})
		sum += v
	}
	if !c.p.TaxLossesMonetized {
		out = append(out, Contribution{Name: "Tax loss carry-forward", Category: CategoryTaxes, Price: price - sum})
	}
	return out
}

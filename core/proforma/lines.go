package proforma

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// line is one cost item laid out over the analysis horizon. All slices are
// yearly amounts in nominal USD.
type line struct {
	name     string
	category Category
	expense  []float64 // tax-deductible operating outflow
	capex    []float64 // capital outflow
	dep      []float64 // depreciation deduction
	salvage  []float64 // untaxed terminal inflow
	tax      []float64 // tax paid directly by this item
}

func newLine(name string, c Category, n int) *line {
	return &line{
		name:     name,
		category: c,
		expense:  make([]float64, n),
		capex:    make([]float64, n),
		dep:      make([]float64, n),
		salvage:  make([]float64, n),
		tax:      make([]float64, n),
	}
}

// value is the discounted after-tax cash this line adds to NPV when tax
// effects are realised in the year they arise.
func (l *line) value(df []float64, taxRate float64) float64 {
	return -(1-taxRate)*floats.Dot(df, l.expense) +
		taxRate*floats.Dot(df, l.dep) -
		floats.Dot(df, l.capex) +
		floats.Dot(df, l.salvage) -
		floats.Dot(df, l.tax)
}

// compiled is a ProForma flattened onto a yearly grid.
type compiled struct {
	p          Params
	n, opStart int
	df         []float64
	production []float64
	revUnit    []float64 // revenue per unit of initial price
	lines      []*line
}

func escalation(rate float64, t int) float64 { return math.Pow(1+rate, float64(t)) }

func (pf *ProForma) compile() (*compiled, error) {
	p := pf.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	opStart := p.constructionYears()
	n := opStart + p.OperatingLife
	c := &compiled{
		p:          p,
		n:          n,
		opStart:    opStart,
		df:         make([]float64, n),
		production: make([]float64, n),
		revUnit:    make([]float64, n),
	}
	for t := 0; t < n; t++ {
		c.df[t] = 1 / escalation(p.LeverageAfterTaxNominalDiscountRate, t)
		if t < opStart {
			continue
		}
		k := t - opStart
		ramp := 1.0
		if p.DemandRampup > 0 {
			ramp = math.Min(1, float64(k+1)/(p.DemandRampup+1))
		}
		c.production[t] = p.CapacityPerDay * 365 * p.LongTermUtilization * ramp
		c.revUnit[t] = c.production[t] * escalation(p.Commodity.Escalation, t)
	}

	for _, item := range pf.capital {
		l, err := c.capitalLine(item)
		if err != nil {
			return nil, err
		}
		c.lines = append(c.lines, l)
	}
	if inst := p.InstallationCost; inst.Value != 0 {
		l := newLine("Installation cost", CategoryCapital, n)
		l.capex[0] = inst.Value
		if inst.Depreciable {
			sched, err := Schedule(inst.DeprType, inst.DeprPeriod)
			if err != nil {
				return nil, err
			}
			c.depreciate(l, inst.Value, opStart, sched)
		}
		c.lines = append(c.lines, l)
	}
	if p.NonDepreciableAssets != 0 || p.EndOfProjectSaleNonDepr != 0 {
		l := newLine("Land", CategoryCapital, n)
		l.capex[0] = p.NonDepreciableAssets
		l.salvage[n-1] = p.EndOfProjectSaleNonDepr
		l.tax[n-1] = p.CapitalGainsTaxRate * (p.EndOfProjectSaleNonDepr - p.NonDepreciableAssets)
		c.lines = append(c.lines, l)
	}

	for _, f := range pf.fixed {
		l := newLine(f.Name, CategoryFixed, n)
		for t := opStart; t < n; t++ {
			l.expense[t] = f.Usage * f.Cost * escalation(f.Escalation, t)
		}
		c.lines = append(c.lines, l)
	}
	for _, e := range []struct {
		name string
		v    Escalating
	}{
		{"Maintenance", p.Maintenance},
		{"License and permit", p.LicenseAndPermit},
		{"Rent", p.Rent},
	} {
		if e.v.Value == 0 {
			continue
		}
		l := newLine(e.name, CategoryFixed, n)
		for t := opStart; t < n; t++ {
			l.expense[t] = e.v.Value * escalation(e.v.Escalation, t)
		}
		c.lines = append(c.lines, l)
	}
	if p.PropertyTaxAndInsurance != 0 {
		l := newLine("Property tax and insurance", CategoryFixed, n)
		base := p.PropertyTaxAndInsurance * pf.TotalCapital()
		for t := opStart; t < n; t++ {
			l.expense[t] = base * escalation(p.GeneralInflationRate, t)
		}
		c.lines = append(c.lines, l)
	}

	for _, f := range pf.feedstocks {
		l := newLine(f.Name, CategoryFeedstock, n)
		for t := opStart; t < n; t++ {
			l.expense[t] = f.Usage * f.Cost * escalation(f.Escalation, t) * c.production[t]
		}
		c.lines = append(c.lines, l)
	}
	return c, nil
}

func (c *compiled) capitalLine(item CapitalItem) (*line, error) {
	sched, err := Schedule(item.DeprType, item.DeprPeriod)
	if err != nil {
		return nil, err
	}
	l := newLine(item.Name, CategoryCapital, c.n)
	per := item.Cost / float64(c.opStart)
	for t := 0; t < c.opStart; t++ {
		l.capex[t] = per
	}
	c.depreciate(l, item.Cost, c.opStart, sched)
	for k, frac := range item.Refurb {
		t := c.opStart + k
		if frac == 0 || t >= c.n {
			continue
		}
		spend := item.Cost * frac
		l.capex[t] += spend
		c.depreciate(l, spend, t, sched)
	}
	return l, nil
}

// depreciate spreads basis from year start and, when selling undepreciated
// capital, books the remaining value as salvage in the final year.
func (c *compiled) depreciate(l *line, basis float64, start int, sched []float64) {
	taken := 0.0
	for i, f := range sched {
		t := start + i
		if t >= c.n {
			break
		}
		l.dep[t] += basis * f
		taken += basis * f
	}
	if c.p.SellUndepreciatedCap {
		l.salvage[c.n-1] += basis - taken
	}
}

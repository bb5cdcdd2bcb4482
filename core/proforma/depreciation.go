package proforma

import "fmt"

type DeprType string

const (
	MACRS        DeprType = "MACRS"
	StraightLine DeprType = "Straight line"
)

// MACRS half-year convention, percent of basis per year.
var macrsTables = map[int][]float64{
	3:  {33.33, 44.45, 14.81, 7.41},
	5:  {20.00, 32.00, 19.20, 11.52, 11.52, 5.76},
	7:  {14.29, 24.49, 17.49, 12.49, 8.93, 8.92, 8.93, 4.46},
	10: {10.00, 18.00, 14.40, 11.52, 9.22, 7.37, 6.55, 6.55, 6.56, 6.55, 3.28},
	15: {5.00, 9.50, 8.55, 7.70, 6.93, 6.23, 5.90, 5.90, 5.91, 5.90, 5.91, 5.90, 5.91, 5.90, 5.91, 2.95},
	20: {3.750, 7.219, 6.677, 6.177, 5.713, 5.285, 4.888, 4.522, 4.462, 4.461,
		4.462, 4.461, 4.462, 4.461, 4.462, 4.461, 4.462, 4.461, 4.462, 4.461, 2.231},
}

// Schedule returns the fraction of basis deducted in each year of service.
func Schedule(t DeprType, period int) ([]float64, error) {
	switch t {
	case MACRS:
		tbl, ok := macrsTables[period]
		if !ok {
			return nil, fmt.Errorf("%w: no MACRS table for %d years", ErrInvalidParam, period)
		}
		out := make([]float64, len(tbl))
		for i, pct := range tbl {
			out[i] = pct / 100
		}
		return out, nil
	case StraightLine:
		if period < 1 {
			return nil, fmt.Errorf("%w: straight line period %d", ErrInvalidParam, period)
		}
		out := make([]float64, period)
		for i := range out {
			out[i] = 1 / float64(period)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: depreciation type %q", ErrInvalidParam, string(t))
}

// ParseDeprType accepts the names used in configuration files.
func ParseDeprType(s string) (DeprType, error) {
	switch s {
	case "MACRS", "macrs":
		return MACRS, nil
	case "Straight line", "straight line", "straight-line", "straight_line", "SL":
		return StraightLine, nil
	}
	return "", fmt.Errorf("%w: depreciation type %q", ErrInvalidParam, s)
}

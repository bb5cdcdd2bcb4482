// Package finance holds the closed-form levelized-cost helpers.
package finance

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidParam = errors.New("invalid finance parameter")

// CRF is the capital recovery factor r(1+r)^n / ((1+r)^n − 1). A zero rate
// degenerates to straight 1/n.
func CRF(rate float64, years int) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("%w: lifetime %d years", ErrInvalidParam, years)
	}
	if rate <= -1 || math.IsNaN(rate) {
		return 0, fmt.Errorf("%w: discount rate %v", ErrInvalidParam, rate)
	}
	if rate == 0 {
		return 1 / float64(years), nil
	}
	g := math.Pow(1+rate, float64(years))
	return rate * g / (g - 1), nil
}

// LCOE annualizes capital with the CRF and divides by annual output:
// (capital·CRF + opex) / output. Units follow the arguments.
func LCOE(output, capital, opex, rate float64, years int) (float64, error) {
	if !(output > 0) {
		return 0, fmt.Errorf("%w: annual output %v", ErrInvalidParam, output)
	}
	crf, err := CRF(rate, years)
	if err != nil {
		return 0, err
	}
	return (capital*crf + opex) / output, nil
}

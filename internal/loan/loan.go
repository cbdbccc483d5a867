// Package loan computes fixed monthly payments for an amortised loan.
package loan

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be a positive integer")
	ErrInvalidDuration  = errors.New("duration must be a positive number of years")
	ErrInvalidAPR       = errors.New("APR must be a non-negative number")
)

type Loan struct {
	Principal int     // USD
	Years     int     // duration
	APR       float64 // percent, e.g. 5.5
}

func (that Loan) Validate() error {
	if that.Principal < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPrincipal, that.Principal)
	}

	if that.Years < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, that.Years)
	}

	if math.IsNaN(that.APR) || math.IsInf(that.APR, 0) || that.APR < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAPR, that.APR)
	}

	return nil
}

func (that Loan) Months() int {
	return that.Years * 12
}

// MonthlyPayment - standard annuity formula; a zero rate splits the principal evenly.
func (that Loan) MonthlyPayment() float64 {
	rate := that.APR / 100 / 12
	months := float64(that.Months())
	principal := float64(that.Principal)

	if rate == 0 {
		return principal / months
	}

	return principal * (rate / (1 - math.Pow(1+rate, -months)))
}

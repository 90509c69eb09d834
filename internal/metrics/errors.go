package metrics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDiscountRate is returned for rates <= -1, where discounting is undefined.
	ErrInvalidDiscountRate = errors.New("discount rate must be > -1")
	// ErrNoSolution is returned by IRR when the series has no real root in the searched range.
	ErrNoSolution = errors.New("internal rate of return has no solution")
)

// DomainError carries the offending rate. It unwraps to ErrInvalidDiscountRate.
type DomainError struct {
	Rate float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: got %g", ErrInvalidDiscountRate, e.Rate)
}

func (e *DomainError) Unwrap() error {
	return ErrInvalidDiscountRate
}

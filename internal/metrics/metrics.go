package metrics

import (
	"errors"
	"math"

	"battery-case/internal/model"
)

// Root search bounds for IRR. Rates from -1+MinGrowthFactor up to LinearFrom are
// sampled log-spaced in 1+r (LogSteps points); [LinearFrom, MaxRate] is walked in
// ScanStep increments. Every sign change is refined by bisection.
const (
	MinGrowthFactor = 1e-9
	LinearFrom      = -0.99
	LogSteps        = 300
	MaxRate         = 10.0
	ScanStep        = 0.01
	MaxIterations   = 200
	Tolerance       = 1e-12
	// TieTolerance is how close two |r| must be to count as a tie.
	TieTolerance = 1e-9
)

var rateGrid = buildRateGrid()

func buildRateGrid() []float64 {
	linearSteps := int(math.Round((MaxRate - LinearFrom) / ScanStep))
	grid := make([]float64, 0, LogSteps+linearSteps+1)

	// 1+r from MinGrowthFactor to 1+LinearFrom, geometric.
	lo, hi := math.Log(MinGrowthFactor), math.Log(1+LinearFrom)
	for i := 0; i < LogSteps; i++ {
		g := math.Exp(lo + (hi-lo)*float64(i)/LogSteps)
		grid = append(grid, g-1)
	}
	for i := 0; i <= linearSteps; i++ {
		grid = append(grid, LinearFrom+float64(i)*ScanStep)
	}
	return grid
}

// NPV discounts every amount to period 0: sum a_t / (1+rate)^t.
func NPV(series model.CashFlowSeries, rate float64) (float64, error) {
	if rate <= -1 {
		return 0, &DomainError{Rate: rate}
	}
	return npv(series.Amounts(), rate), nil
}

func npv(amounts []float64, rate float64) float64 {
	sum := 0.0
	for t, a := range amounts {
		sum += a / math.Pow(1+rate, float64(t))
	}
	return sum
}

// IRR finds the rate at which the series' NPV is zero.
//
// Every root in (-1+MinGrowthFactor, MaxRate] is located; when the cash flows change
// sign more than once and several roots exist, the one closest to zero is returned
// (the lower rate wins when |r| ties within TieTolerance). ErrNoSolution is returned
// when the series lacks either an inflow or an outflow, or when no root lies in the range.
func IRR(series model.CashFlowSeries) (float64, error) {
	amounts := series.Amounts()
	if !hasSignChange(amounts) {
		return 0, ErrNoSolution
	}
	f := func(r float64) float64 { return npv(amounts, r) }

	roots := findRoots(f)
	if len(roots) == 0 {
		return 0, ErrNoSolution
	}
	best := roots[0]
	for _, r := range roots[1:] {
		d := math.Abs(r) - math.Abs(best)
		if d < -TieTolerance || (math.Abs(d) <= TieTolerance && r < best) {
			best = r
		}
	}
	return best, nil
}

// Evaluate computes IRR and NPV for a series.
//
// An empty series yields {IRR: 0, NPV: 0} whatever the rate. A rate <= -1 on a
// non-empty series returns a *DomainError. A missing IRR is reported as a nil
// InternalRateOfReturn, not as an error.
func Evaluate(series model.CashFlowSeries, discountRate float64) (model.ReturnReport, error) {
	if len(series) == 0 {
		zero := 0.0
		return model.ReturnReport{InternalRateOfReturn: &zero, NetPresentValue: 0}, nil
	}

	value, err := NPV(series, discountRate)
	if err != nil {
		return model.ReturnReport{}, err
	}

	report := model.ReturnReport{NetPresentValue: value}
	irr, err := IRR(series)
	switch {
	case err == nil:
		report.InternalRateOfReturn = &irr
	case errors.Is(err, ErrNoSolution):
		// leave nil
	default:
		return model.ReturnReport{}, err
	}
	return report, nil
}

func hasSignChange(amounts []float64) bool {
	var pos, neg bool
	for _, a := range amounts {
		if a > 0 {
			pos = true
		} else if a < 0 {
			neg = true
		}
	}
	return pos && neg
}

// findRoots scans the rate grid for sign changes and bisects each bracket.
func findRoots(f func(float64) float64) []float64 {
	var roots []float64

	lo := rateGrid[0]
	flo := f(lo)
	for _, hi := range rateGrid[1:] {
		fhi := f(hi)
		switch {
		case flo == 0:
			roots = append(roots, lo)
		case fhi != 0 && math.Signbit(flo) != math.Signbit(fhi):
			roots = append(roots, bisect(f, lo, hi, flo))
		}
		lo, flo = hi, fhi
	}
	if flo == 0 {
		roots = append(roots, lo)
	}
	return roots
}

// bisect narrows [lo, hi] around the sign change. flo is f(lo).
// Bounded by MaxIterations; the midpoint of the last bracket is returned.
func bisect(f func(float64) float64, lo, hi, flo float64) float64 {
	for i := 0; i < MaxIterations; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if fmid == 0 || (hi-lo)/2 < Tolerance {
			return mid
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

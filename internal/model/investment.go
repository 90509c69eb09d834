package model

// InvestmentParameters defines the physical and economic inputs of a battery investment case.
// Units:
// - CapacityKWh: kWh
// - CRate: charge/discharge rate relative to capacity (fraction)
// - CostPerKWh, GridInvestment, GrossReturnPer100KW: currency (CHF in the UI)
// - PoolerCutPct: percent 0..100
// - DiscountRate: fraction (0.075 = 7.5 %)
type InvestmentParameters struct {
	CapacityKWh         float64
	CRate               float64
	CostPerKWh          float64
	GridInvestment      float64
	GrossReturnPer100KW float64
	PoolerCutPct        float64
	HorizonYears        int
	DiscountRate        float64
}

// CashFlow is one period of a cash-flow series.
// Convention: negative Amount = outflow, positive = inflow.
type CashFlow struct {
	Period int
	Amount float64
}

// CashFlowSeries is ordered by Period, starting at 0 (the initial outlay).
type CashFlowSeries []CashFlow

// Amounts returns the raw amounts in period order.
func (s CashFlowSeries) Amounts() []float64 {
	out := make([]float64, len(s))
	for i, cf := range s {
		out[i] = cf.Amount
	}
	return out
}

// ReturnReport holds the derived investment metrics.
// A nil InternalRateOfReturn means the series has no IRR (no real root).
type ReturnReport struct {
	InternalRateOfReturn *float64
	NetPresentValue      float64
}

// HasIRR reports whether an internal rate of return was found.
func (r ReturnReport) HasIRR() bool {
	return r.InternalRateOfReturn != nil
}

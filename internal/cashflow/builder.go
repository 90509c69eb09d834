package cashflow

import (
	"battery-case/internal/model"

	"gonum.org/v1/gonum/floats"
)

// InitialOutlay is the period-0 amount: capacity cost plus grid connection, as an outflow.
func InitialOutlay(p model.InvestmentParameters) float64 {
	return -(p.CapacityKWh * p.CostPerKWh) - p.GridInvestment
}

// AnnualNetReturn is the recurring yearly return after the pooler's cut.
// The model assumes constant performance: no degradation, no escalation.
func AnnualNetReturn(p model.InvestmentParameters) float64 {
	return p.GrossReturnPer100KW / 100 * p.CRate * p.CapacityKWh * (1 - p.PoolerCutPct/100)
}

// Build turns investment parameters into a cash-flow series of length HorizonYears+1.
// Inputs are not validated here; range policy belongs to the caller (see config.Validate).
// A negative horizon is treated as 0.
func Build(p model.InvestmentParameters) model.CashFlowSeries {
	h := p.HorizonYears
	if h < 0 {
		h = 0
	}
	series := make(model.CashFlowSeries, 0, h+1)
	series = append(series, model.CashFlow{Period: 0, Amount: InitialOutlay(p)})

	annual := AnnualNetReturn(p)
	for t := 1; t <= h; t++ {
		series = append(series, model.CashFlow{Period: t, Amount: annual})
	}
	return series
}

// Cumulative returns the running total of the series amounts.
func Cumulative(series model.CashFlowSeries) []float64 {
	amounts := series.Amounts()
	return floats.CumSum(make([]float64, len(amounts)), amounts)
}

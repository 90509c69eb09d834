package report

import (
	"battery-case/internal/model"

	"github.com/shopspring/decimal"
)

// Currency is the label used for monetary amounts.
const Currency = "CHF"

// Metrics is the display form of a ReturnReport.
// Positive flags drive normal/inverse colouring in the UI.
type Metrics struct {
	IRR         string `json:"irr"`
	NPV         string `json:"npv"`
	IRRPositive bool   `json:"irr_positive"`
	NPVPositive bool   `json:"npv_positive"`
}

// FormatMetrics renders IRR as a percentage with two decimals ("n/a" when absent)
// and NPV as a currency amount.
func FormatMetrics(r model.ReturnReport) Metrics {
	m := Metrics{
		IRR:         "n/a",
		NPV:         FormatMoney(r.NetPresentValue),
		NPVPositive: r.NetPresentValue >= 0,
	}
	if r.InternalRateOfReturn != nil {
		m.IRR = FormatPercent(*r.InternalRateOfReturn)
		m.IRRPositive = *r.InternalRateOfReturn >= 0
	}
	return m
}

// FormatPercent formats a fraction as "12.34 %".
func FormatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + " %"
}

// FormatMoney formats an amount as "CHF 1234.56".
func FormatMoney(amount float64) string {
	return Currency + " " + decimal.NewFromFloat(amount).StringFixed(2)
}

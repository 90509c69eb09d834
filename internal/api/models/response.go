package models

import "battery-case/internal/report"

// EvaluateResponse represents the result of one evaluation
type EvaluateResponse struct {
	ID         string         `json:"id,omitempty"`
	Status     string         `json:"status"`
	Parameters Parameters     `json:"parameters"`
	CashFlows  []CashFlowRow  `json:"cash_flows"`
	Report     ReturnReport   `json:"report"`
	Formatted  report.Metrics `json:"formatted"`
}

// Parameters echoes the resolved inputs
type Parameters struct {
	Name                string  `json:"name,omitempty"`
	CapacityKWh         float64 `json:"capacity_kwh"`
	CRate               float64 `json:"c_rate"`
	CostPerKWh          float64 `json:"cost_per_kwh"`
	GridInvestment      float64 `json:"grid_investment"`
	GrossReturnPer100KW float64 `json:"gross_return_per_100kw"`
	PoolerCutPct        float64 `json:"pooler_cut_pct"`
	DiscountRate        float64 `json:"discount_rate"`
	HorizonYears        int     `json:"horizon_years"`
}

// CashFlowRow represents one period of the series
type CashFlowRow struct {
	Period     int     `json:"period"`
	Amount     float64 `json:"amount"`
	Cumulative float64 `json:"cumulative"`
}

// ReturnReport contains the metrics; IRR is null when there is no solution
type ReturnReport struct {
	InternalRateOfReturn *float64 `json:"internal_rate_of_return"`
	NetPresentValue      float64  `json:"net_present_value"`
}

// ParameterInfo describes one input parameter
type ParameterInfo struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Unit        string  `json:"unit,omitempty"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Step        float64 `json:"step"`
	Default     float64 `json:"default"`
	Description string  `json:"description"`
}

// PresetInfo represents a preset scenario file
type PresetInfo struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	File       string     `json:"file"`
	Parameters Parameters `json:"parameters"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

package models

// EvaluateRequest is the body of POST /api/v1/evaluate.
// Omitted fields take the preset's value, then the default.
type EvaluateRequest struct {
	Preset              string   `json:"preset,omitempty"` // preset id from GET /api/v1/presets
	CapacityKWh         *float64 `json:"capacity_kwh,omitempty"`
	CRate               *float64 `json:"c_rate,omitempty"`
	CostPerKWh          *float64 `json:"cost_per_kwh,omitempty"`
	GridInvestment      *float64 `json:"grid_investment,omitempty"`
	GrossReturnPer100KW *float64 `json:"gross_return_per_100kw,omitempty"`
	PoolerCutPct        *float64 `json:"pooler_cut_pct,omitempty"`
	DiscountRate        *float64 `json:"discount_rate,omitempty"`
	HorizonYears        *int     `json:"horizon_years,omitempty"`
}

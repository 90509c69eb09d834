package config

import (
	"errors"
	"fmt"

	"battery-case/internal/model"
)

// ErrZeroHorizon is returned by callers that need at least one year to evaluate.
var ErrZeroHorizon = errors.New("please choose an evaluation period greater than 0 years")

// ParameterSpec describes the accepted range of one input, mirroring the dashboard sliders.
type ParameterSpec struct {
	Name        string
	Label       string
	Unit        string
	Min         float64
	Max         float64
	Step        float64
	Default     float64
	Description string
}

// Parameters is the catalogue of inputs in display order.
var Parameters = []ParameterSpec{
	{Name: "capacity_kwh", Label: "Battery size", Unit: "kWh", Min: 100, Max: 1500, Step: 1, Default: 800,
		Description: "Usable battery capacity"},
	{Name: "c_rate", Label: "C-rate", Unit: "", Min: 0.25, Max: 1.5, Step: 0.25, Default: 0.25,
		Description: "Charge/discharge rate relative to capacity"},
	{Name: "grid_investment", Label: "Grid investment", Unit: "CHF", Min: 0, Max: 300000, Step: 10000, Default: 0,
		Description: "One-off grid connection cost"},
	{Name: "gross_return_per_100kw", Label: "Return per 100 kW", Unit: "CHF", Min: 5000, Max: 30000, Step: 2500, Default: 12500,
		Description: "Annual gross return per 100 kW of power"},
	{Name: "cost_per_kwh", Label: "Cost per kWh", Unit: "CHF", Min: 100, Max: 800, Step: 50, Default: 250,
		Description: "Capacity cost per kWh"},
	{Name: "pooler_cut_pct", Label: "Pooler cut", Unit: "%", Min: 0, Max: 35, Step: 1, Default: 20,
		Description: "Share of gross revenue kept by the aggregator"},
	{Name: "discount_rate", Label: "Discount rate", Unit: "fraction", Min: 0, Max: 0.15, Step: 0.001, Default: 0.075,
		Description: "Rate used for the net present value"},
	{Name: "horizon_years", Label: "Evaluation period", Unit: "years", Min: 0, Max: 10, Step: 1, Default: 5,
		Description: "Number of years of recurring returns"},
}

// Lookup returns the spec for a parameter name.
func Lookup(name string) (ParameterSpec, bool) {
	for _, p := range Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

// Defaults returns the parameter set the dashboard starts with.
func Defaults() model.InvestmentParameters {
	return model.InvestmentParameters{
		CapacityKWh:         defaultOf("capacity_kwh"),
		CRate:               defaultOf("c_rate"),
		CostPerKWh:          defaultOf("cost_per_kwh"),
		GridInvestment:      defaultOf("grid_investment"),
		GrossReturnPer100KW: defaultOf("gross_return_per_100kw"),
		PoolerCutPct:        defaultOf("pooler_cut_pct"),
		DiscountRate:        defaultOf("discount_rate"),
		HorizonYears:        int(defaultOf("horizon_years")),
	}
}

func defaultOf(name string) float64 {
	p, _ := Lookup(name)
	return p.Default
}

// Validate enforces the parameter ranges. The cash-flow builder itself accepts anything.
func Validate(p model.InvestmentParameters) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"capacity_kwh", p.CapacityKWh},
		{"c_rate", p.CRate},
		{"cost_per_kwh", p.CostPerKWh},
		{"grid_investment", p.GridInvestment},
		{"gross_return_per_100kw", p.GrossReturnPer100KW},
		{"pooler_cut_pct", p.PoolerCutPct},
		{"discount_rate", p.DiscountRate},
		{"horizon_years", float64(p.HorizonYears)},
	}
	for _, c := range checks {
		spec, _ := Lookup(c.name)
		if c.value < spec.Min || c.value > spec.Max {
			return fmt.Errorf("%s must be in [%g, %g], got %g", c.name, spec.Min, spec.Max, c.value)
		}
	}
	return nil
}

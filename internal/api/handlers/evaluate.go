package handlers

import (
	"errors"
	"net/http"

	"battery-case/internal/api/models"
	"battery-case/internal/cashflow"
	"battery-case/internal/config"
	"battery-case/internal/logging"
	"battery-case/internal/metrics"
	"battery-case/internal/model"
	"battery-case/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EvaluateHandler handles evaluation requests
type EvaluateHandler struct {
	presets *PresetHandler
	log     *logging.Logger
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(presets *PresetHandler, log *logging.Logger) *EvaluateHandler {
	return &EvaluateHandler{presets: presets, log: log}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	name, params, ok := h.resolve(c)
	if !ok {
		return
	}

	series := cashflow.Build(params)
	rep, err := metrics.Evaluate(series, params.DiscountRate)
	if err != nil {
		writeMetricsError(c, err)
		return
	}

	resp := models.EvaluateResponse{
		ID:         uuid.NewString(),
		Status:     "ok",
		Parameters: toParameters(name, params),
		CashFlows:  toRows(series),
		Report: models.ReturnReport{
			InternalRateOfReturn: rep.InternalRateOfReturn,
			NetPresentValue:      rep.NetPresentValue,
		},
		Formatted: report.FormatMetrics(rep),
	}

	h.log.Debug().
		Str("id", resp.ID).
		Int("horizon_years", params.HorizonYears).
		Float64("npv", rep.NetPresentValue).
		Bool("has_irr", rep.HasIRR()).
		Msg("evaluated investment case")

	c.JSON(http.StatusOK, resp)
}

// Chart handles POST /api/v1/evaluate/chart
func (h *EvaluateHandler) Chart(c *gin.Context) {
	_, params, ok := h.resolve(c)
	if !ok {
		return
	}

	png, err := report.RenderCashFlowChart(cashflow.Build(params))
	if err != nil {
		h.log.Error().Err(err).Msg("chart render failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CHART_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// resolve binds the request, merges preset and defaults, and validates.
// On failure it writes the error response and returns ok=false.
func (h *EvaluateHandler) resolve(c *gin.Context) (string, model.InvestmentParameters, bool) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return "", model.InvestmentParameters{}, false
	}

	inv := toInvestmentConfig(req)
	if req.Preset != "" {
		base, err := h.presets.Load(req.Preset)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_PRESET",
					Message: err.Error(),
					Details: map[string]interface{}{"preset": req.Preset},
				},
			})
			return "", model.InvestmentParameters{}, false
		}
		inv = config.MergeInvestment(base, inv)
	}

	params := inv.ToModelParams()
	if err := config.Validate(params); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: err.Error(),
			},
		})
		return "", model.InvestmentParameters{}, false
	}
	if params.HorizonYears == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_HORIZON",
				Message: config.ErrZeroHorizon.Error(),
			},
		})
		return "", model.InvestmentParameters{}, false
	}
	return inv.Name, params, true
}

// writeMetricsError maps core evaluation errors to the error envelope.
// Validated requests never carry a rate <= -1; the mapping still covers it.
func writeMetricsError(c *gin.Context, err error) {
	var de *metrics.DomainError
	if errors.As(err, &de) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DISCOUNT_RATE",
				Message: err.Error(),
				Details: map[string]interface{}{"discount_rate": de.Rate},
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "EVALUATION_ERROR",
			Message: err.Error(),
		},
	})
}

func toInvestmentConfig(req models.EvaluateRequest) config.InvestmentConfig {
	return config.InvestmentConfig{
		CapacityKWh:         req.CapacityKWh,
		CRate:               req.CRate,
		CostPerKWh:          req.CostPerKWh,
		GridInvestment:      req.GridInvestment,
		GrossReturnPer100KW: req.GrossReturnPer100KW,
		PoolerCutPct:        req.PoolerCutPct,
		DiscountRate:        req.DiscountRate,
		HorizonYears:        req.HorizonYears,
	}
}

func toParameters(name string, p model.InvestmentParameters) models.Parameters {
	return models.Parameters{
		Name:                name,
		CapacityKWh:         p.CapacityKWh,
		CRate:               p.CRate,
		CostPerKWh:          p.CostPerKWh,
		GridInvestment:      p.GridInvestment,
		GrossReturnPer100KW: p.GrossReturnPer100KW,
		PoolerCutPct:        p.PoolerCutPct,
		DiscountRate:        p.DiscountRate,
		HorizonYears:        p.HorizonYears,
	}
}

func toRows(series model.CashFlowSeries) []models.CashFlowRow {
	cum := cashflow.Cumulative(series)
	rows := make([]models.CashFlowRow, len(series))
	for i, cf := range series {
		rows[i] = models.CashFlowRow{
			Period:     cf.Period,
			Amount:     cf.Amount,
			Cumulative: cum[i],
		}
	}
	return rows
}

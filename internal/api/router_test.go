package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"battery-case/internal/api/models"
	"battery-case/internal/config"
	"battery-case/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	preset := `
investment:
  name: Large site
  capacity_kwh: 1500
  c_rate: 1
  grid_investment: 100000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "large_site.yaml"), []byte(preset), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	cfg := config.ServerConfig{PresetDir: dir}
	return NewRouter(cfg, logging.NewSilent())
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestEvaluate_Defaults(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.CashFlows, 6)
	assert.Equal(t, -200000.0, resp.CashFlows[0].Amount)
	assert.Equal(t, 20000.0, resp.CashFlows[5].Amount)
	assert.Equal(t, -100000.0, resp.CashFlows[5].Cumulative)
	assert.InDelta(t, -119082.30, resp.Report.NetPresentValue, 0.01)
	require.NotNil(t, resp.Report.InternalRateOfReturn)
	assert.InDelta(t, -0.194019, *resp.Report.InternalRateOfReturn, 1e-6)
	assert.Equal(t, "-19.40 %", resp.Formatted.IRR)
	assert.Equal(t, "CHF -119082.30", resp.Formatted.NPV)
	assert.False(t, resp.Formatted.NPVPositive)
}

func TestEvaluate_ProfitableCase(t *testing.T) {
	body := `{"capacity_kwh": 1000, "c_rate": 1.5, "gross_return_per_100kw": 20000, "pooler_cut_pct": 0, "horizon_years": 10}`
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.CashFlows, 11)
	assert.Equal(t, 300000.0, resp.CashFlows[1].Amount)
	assert.Greater(t, resp.Report.NetPresentValue, 0.0)
	require.NotNil(t, resp.Report.InternalRateOfReturn)
	assert.Greater(t, *resp.Report.InternalRateOfReturn, 1.0)
}

func TestEvaluate_WithPreset(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{"preset":"large_site","pooler_cut_pct":0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Large site", resp.Parameters.Name)
	assert.Equal(t, 1500.0, resp.Parameters.CapacityKWh)
	assert.Equal(t, 0.0, resp.Parameters.PoolerCutPct)
	assert.Equal(t, -475000.0, resp.CashFlows[0].Amount)
}

func TestEvaluate_UnknownPreset(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{"preset":"missing"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PRESET")
}

func TestEvaluate_ZeroHorizon(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{"horizon_years":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_HORIZON")
}

func TestEvaluate_OutOfRange(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{"pooler_cut_pct":90}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PARAMETERS")
}

func TestEvaluate_MalformedBody(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate", `{"c_rate":"fast"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestEvaluateChart(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/evaluate/chart", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestListParameters(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/v1/parameters", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Parameters []models.ParameterInfo `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Parameters, len(config.Parameters))
	assert.Equal(t, "capacity_kwh", body.Parameters[0].Name)
	assert.Equal(t, 800.0, body.Parameters[0].Default)
}

func TestListPresets(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/v1/presets", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Presets []models.PresetInfo `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Presets, 1)
	assert.Equal(t, "large_site", body.Presets[0].ID)
	assert.Equal(t, "Large site", body.Presets[0].Name)
	assert.Equal(t, 100000.0, body.Presets[0].Parameters.GridInvestment)
	assert.Equal(t, 250.0, body.Presets[0].Parameters.CostPerKWh)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/evaluate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(config.ServerConfig{PresetDir: t.TempDir(), RateLimitRPS: 0.001, RateBurst: 1}, logging.NewSilent())

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health", "").Code)
	w := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

package report

import (
	"bytes"
	"testing"

	"battery-case/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMetrics(t *testing.T) {
	irr := 0.152382
	m := FormatMetrics(model.ReturnReport{InternalRateOfReturn: &irr, NetPresentValue: 13.7236})

	assert.Equal(t, "15.24 %", m.IRR)
	assert.Equal(t, "CHF 13.72", m.NPV)
	assert.True(t, m.IRRPositive)
	assert.True(t, m.NPVPositive)
}

func TestFormatMetrics_NoIRR(t *testing.T) {
	m := FormatMetrics(model.ReturnReport{NetPresentValue: -200000})

	assert.Equal(t, "n/a", m.IRR)
	assert.False(t, m.IRRPositive)
	assert.Equal(t, "CHF -200000.00", m.NPV)
	assert.False(t, m.NPVPositive)
}

func TestFormatPercent_Negative(t *testing.T) {
	assert.Equal(t, "-19.40 %", FormatPercent(-0.1940185))
}

func TestRenderCashFlowChart(t *testing.T) {
	series := model.CashFlowSeries{
		{Period: 0, Amount: -200000},
		{Period: 1, Amount: 20000},
		{Period: 2, Amount: 20000},
		{Period: 3, Amount: 20000},
	}
	png, err := RenderCashFlowChart(series)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestRenderCashFlowChart_TooShort(t *testing.T) {
	_, err := RenderCashFlowChart(model.CashFlowSeries{{Period: 0, Amount: -1}})
	assert.Error(t, err)
}

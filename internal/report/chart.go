package report

import (
	"bytes"
	"fmt"

	"battery-case/internal/cashflow"
	"battery-case/internal/model"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderCashFlowChart renders a PNG line chart of the series.
// Two series: Annual Cash Flow (blue) and Cumulative Cash Flow (green).
// Returns raw PNG bytes.
func RenderCashFlowChart(series model.CashFlowSeries) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 periods, got %d", len(series))
	}

	xValues := make([]float64, len(series))
	for i, cf := range series {
		xValues[i] = float64(cf.Period)
	}

	annual := chart.ContinuousSeries{
		Name: "Annual Cash Flow",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
			DotColor:    drawing.ColorFromHex("2563eb"),
			DotWidth:    3,
		},
		XValues: xValues,
		YValues: series.Amounts(),
	}

	cumulative := chart.ContinuousSeries{
		Name: "Cumulative Cash Flow",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("16a34a"),
			StrokeWidth: 2.5,
			DotColor:    drawing.ColorFromHex("16a34a"),
			DotWidth:    3,
		},
		XValues: xValues,
		YValues: cashflow.Cumulative(series),
	}

	graph := chart.Chart{
		Title:  "Annual and Cumulative Cash Flow Over Time",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "Years",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Cash Flow (" + Currency + ")",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			annual,
			cumulative,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Package chart renders the soil feature bar chart shown on the results page.
package chart

import (
	"fmt"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorHigh    = drawing.Color{R: 0x2e, G: 0xcc, B: 0x71, A: 255}
	colorMedium  = drawing.Color{R: 0xf1, G: 0xc4, B: 0x0f, A: 255}
	colorLow     = drawing.Color{R: 0xe7, G: 0x4c, B: 0x3c, A: 255}
	colorNeutral = drawing.Color{R: 0x34, G: 0x98, B: 0xdb, A: 255}
)

// TierColor maps a fertility level to its bar color. "high" and "medium" match
// case-insensitively, any other non-empty level is treated as low, and an empty
// level (the aggregate CSV mode) is neutral.
func TierColor(fertilityLevel string) drawing.Color {
	switch strings.ToLower(fertilityLevel) {
	case "high":
		return colorHigh
	case "medium":
		return colorMedium
	case "":
		return colorNeutral
	default:
		return colorLow
	}
}

// RenderBarChart writes a PNG bar chart of the feature values to path,
// overwriting any prior file there. Each bar is labeled with its numeric value.
func RenderBarChart(path string, labels []string, values []float64, fertilityLevel string) error {
	if len(labels) != len(values) || len(labels) == 0 {
		return fmt.Errorf("chart needs matching non-empty labels and values")
	}

	color := TierColor(fertilityLevel)
	bars := make([]chart.Value, len(labels))
	for i := range labels {
		bars[i] = chart.Value{
			Value: values[i],
			Label: fmt.Sprintf("%s (%.1f)", labels[i], values[i]),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		}
	}

	graph := chart.BarChart{
		Title:    "Soil Feature Levels",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Name:  "Value",
			Range: yAxisRange(values),
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}

// yAxisRange pins the axis from zero to the highest value. The renderer
// rejects a zero-width data range, so equal or all-zero values get headroom
// instead of an error.
func yAxisRange(values []float64) *chart.ContinuousRange {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		max = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: max * 1.1}
}

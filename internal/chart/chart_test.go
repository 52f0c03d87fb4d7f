package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierColor(t *testing.T) {
	assert.Equal(t, colorHigh, TierColor("High"))
	assert.Equal(t, colorHigh, TierColor("high"))
	assert.Equal(t, colorMedium, TierColor("MEDIUM"))
	assert.Equal(t, colorLow, TierColor("Low"))
	assert.Equal(t, colorLow, TierColor("anything else"))
	assert.Equal(t, colorNeutral, TierColor(""))
}

func TestRenderBarChartWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")

	labels := []string{"N", "P", "K", "pH", "Temperature", "Moisture"}
	values := []float64{40, 50, 30, 6.5, 25, 60}
	require.NoError(t, RenderBarChart(path, labels, values, "High"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
}

func TestRenderBarChartOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")

	require.NoError(t, RenderBarChart(path, []string{"N"}, []float64{40}, ""))
	first, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, RenderBarChart(path, []string{"N", "P"}, []float64{40, 50}, "Low"))
	second, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotEqual(t, first.Size(), second.Size())
}

func TestRenderBarChartFlatValues(t *testing.T) {
	labels := []string{"N", "P", "K", "pH", "Temperature", "Moisture"}

	tests := []struct {
		name   string
		values []float64
	}{
		{"all zero", []float64{0, 0, 0, 0, 0, 0}},
		{"all equal", []float64{50, 50, 50, 50, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bar.png")
			require.NoError(t, RenderBarChart(path, labels, tt.values, "High"))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
		})
	}
}

func TestRenderBarChartRejectsMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")
	assert.Error(t, RenderBarChart(path, []string{"N"}, nil, ""))
}

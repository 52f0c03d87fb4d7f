package ml

import (
	"math/rand"
	"testing"

	"soiladvisor/internal/apperrors"
	"soiladvisor/internal/models"
	"soiladvisor/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticDataset builds a clearly separable two-class dataset: low-nutrient
// rows labeled lowLabel, high-nutrient rows labeled highLabel.
func syntheticDataset(n int, lowLabel, highLabel string) ([][]float64, []string) {
	rng := rand.New(rand.NewSource(1))
	features := make([][]float64, 0, 2*n)
	labels := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		features = append(features, []float64{
			rng.Float64() * 10, rng.Float64() * 10, rng.Float64() * 10,
			4 + rng.Float64(), 15 + rng.Float64()*2, 20 + rng.Float64()*5,
		})
		labels = append(labels, lowLabel)

		features = append(features, []float64{
			80 + rng.Float64()*10, 80 + rng.Float64()*10, 80 + rng.Float64()*10,
			6.5 + rng.Float64(), 25 + rng.Float64()*2, 60 + rng.Float64()*5,
		})
		labels = append(labels, highLabel)
	}
	return features, labels
}

func trainArtifacts(t *testing.T, dir string) {
	t.Helper()

	features, crops := syntheticDataset(40, "millet", "rice")
	cropReport, err := Train(features, crops, TrainConfig{Trees: 20, TestFraction: 0.2, Seed: 42})
	require.NoError(t, err)
	require.NoError(t, SaveArtifact(dir, CropModelArtifact, cropReport.Forest))
	require.NoError(t, SaveArtifact(dir, CropEncoderArtifact, cropReport.Encoder))

	_, fertility := syntheticDataset(40, "Low", "High")
	fertReport, err := Train(features, fertility, TrainConfig{Trees: 20, TestFraction: 0.2, Seed: 42})
	require.NoError(t, err)
	require.NoError(t, SaveArtifact(dir, FertilityModelArtifact, fertReport.Forest))
	require.NoError(t, SaveArtifact(dir, FertilityEncoderArtifact, fertReport.Encoder))
}

func TestPredictSingleReturnsKnownLabel(t *testing.T) {
	dir := t.TempDir()
	trainArtifacts(t, dir)

	svc := NewService(registry.New(dir))
	require.NoError(t, svc.Warm())

	sample := models.SoilSample{N: 85, P: 85, K: 85, PH: 6.8, Temperature: 26, Moisture: 62}

	crop, err := svc.PredictCrop(sample)
	require.NoError(t, err)
	assert.Contains(t, []string{"millet", "rice"}, crop)

	fertility, err := svc.PredictFertility(sample)
	require.NoError(t, err)
	assert.Contains(t, []string{"Low", "High"}, fertility)
}

func TestPredictBatchLength(t *testing.T) {
	dir := t.TempDir()
	trainArtifacts(t, dir)

	svc := NewService(registry.New(dir))

	samples := []models.SoilSample{
		{N: 5, P: 5, K: 5, PH: 4.5, Temperature: 16, Moisture: 22},
		{N: 85, P: 85, K: 85, PH: 6.8, Temperature: 26, Moisture: 62},
		{N: 40, P: 50, K: 30, PH: 6.5, Temperature: 25, Moisture: 60},
	}

	crops, err := svc.PredictCropBatch(samples)
	require.NoError(t, err)
	require.Len(t, crops, len(samples))
	for _, c := range crops {
		assert.Contains(t, []string{"millet", "rice"}, c)
	}

	fertilities, err := svc.PredictFertilityBatch(samples)
	require.NoError(t, err)
	require.Len(t, fertilities, len(samples))
	for _, f := range fertilities {
		assert.Contains(t, []string{"Low", "High"}, f)
	}
}

func TestPredictModelUnavailable(t *testing.T) {
	svc := NewService(registry.New(t.TempDir()))

	_, err := svc.PredictCrop(models.SoilSample{})
	assert.ErrorIs(t, err, apperrors.ErrModelUnavailable)
}

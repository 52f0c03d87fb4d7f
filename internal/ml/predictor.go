package ml

import (
	"fmt"

	"soiladvisor/internal/apperrors"
	"soiladvisor/internal/models"
	"soiladvisor/internal/registry"

	randomforest "github.com/malaschitz/randomForest"
)

// Artifact names consumed from the model directory. The trainer writes the
// same set.
const (
	CropModelArtifact        = "model_crop.gob"
	CropEncoderArtifact      = "le_crop.gob"
	FertilityModelArtifact   = "model_fertility.gob"
	FertilityEncoderArtifact = "le_fertility.gob"
)

// Predictor exposes single-row and batch prediction for the two independent
// classification tasks.
type Predictor interface {
	PredictCrop(s models.SoilSample) (string, error)
	PredictCropBatch(samples []models.SoilSample) ([]string, error)
	PredictFertility(s models.SoilSample) (string, error)
	PredictFertilityBatch(samples []models.SoilSample) ([]string, error)
}

// Service implements Predictor over artifacts held by a Registry.
type Service struct {
	reg *registry.Registry
}

func NewService(reg *registry.Registry) *Service {
	return &Service{reg: reg}
}

// Warm loads all artifacts eagerly. Callers may ignore the error to keep the
// lazy-loading behavior and fail per request instead.
func (s *Service) Warm() error {
	for _, name := range []string{CropModelArtifact, FertilityModelArtifact} {
		if _, err := s.forest(name); err != nil {
			return err
		}
	}
	for _, name := range []string{CropEncoderArtifact, FertilityEncoderArtifact} {
		if _, err := s.encoder(name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) PredictCrop(sample models.SoilSample) (string, error) {
	return s.predict(CropModelArtifact, CropEncoderArtifact, sample)
}

func (s *Service) PredictCropBatch(samples []models.SoilSample) ([]string, error) {
	return s.predictBatch(CropModelArtifact, CropEncoderArtifact, samples)
}

func (s *Service) PredictFertility(sample models.SoilSample) (string, error) {
	return s.predict(FertilityModelArtifact, FertilityEncoderArtifact, sample)
}

func (s *Service) PredictFertilityBatch(samples []models.SoilSample) ([]string, error) {
	return s.predictBatch(FertilityModelArtifact, FertilityEncoderArtifact, samples)
}

func (s *Service) forest(name string) (*randomforest.Forest, error) {
	v, err := s.reg.Load(name, func() any { return &randomforest.Forest{} })
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrModelUnavailable, err)
	}
	return v.(*randomforest.Forest), nil
}

func (s *Service) encoder(name string) (*LabelEncoder, error) {
	v, err := s.reg.Load(name, func() any { return &LabelEncoder{} })
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrModelUnavailable, err)
	}
	return v.(*LabelEncoder), nil
}

func (s *Service) predict(modelName, encoderName string, sample models.SoilSample) (string, error) {
	forest, err := s.forest(modelName)
	if err != nil {
		return "", err
	}
	enc, err := s.encoder(encoderName)
	if err != nil {
		return "", err
	}
	return enc.InverseTransform(classify(forest, sample.Features()))
}

func (s *Service) predictBatch(modelName, encoderName string, samples []models.SoilSample) ([]string, error) {
	forest, err := s.forest(modelName)
	if err != nil {
		return nil, err
	}
	enc, err := s.encoder(encoderName)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(samples))
	for i, sample := range samples {
		labels[i], err = enc.InverseTransform(classify(forest, sample.Features()))
		if err != nil {
			return nil, err
		}
	}
	return labels, nil
}

// classify returns the class index with the highest vote share.
func classify(forest *randomforest.Forest, features []float64) int {
	votes := forest.Vote(features)
	best := 0
	for i, v := range votes {
		if v > votes[best] {
			best = i
		}
	}
	return best
}

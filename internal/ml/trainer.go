package ml

import (
	"encoding/gob"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	randomforest "github.com/malaschitz/randomForest"
)

// TrainConfig controls one offline training run.
type TrainConfig struct {
	Trees        int
	TestFraction float64
	Seed         int64
}

// TrainReport holds the fitted pair and its held-out evaluation.
type TrainReport struct {
	Forest   *randomforest.Forest
	Encoder  *LabelEncoder
	Accuracy float64
	Report   string
}

// Train fits a random forest on a stratified train split and evaluates it on
// the remainder. The returned forest carries no training data.
func Train(features [][]float64, labels []string, cfg TrainConfig) (*TrainReport, error) {
	if len(features) == 0 || len(features) != len(labels) {
		return nil, errors.New("training data is empty or misaligned")
	}
	if cfg.Trees <= 0 {
		cfg.Trees = 100
	}
	if cfg.TestFraction <= 0 || cfg.TestFraction >= 1 {
		cfg.TestFraction = 0.2
	}

	enc := &LabelEncoder{}
	enc.Fit(labels)

	y := make([]int, len(labels))
	for i, l := range labels {
		cls, err := enc.Transform(l)
		if err != nil {
			return nil, err
		}
		y[i] = cls
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	trainIdx, testIdx := stratifiedSplit(y, cfg.TestFraction, rng)

	xTrain := make([][]float64, len(trainIdx))
	yTrain := make([]int, len(trainIdx))
	for i, idx := range trainIdx {
		xTrain[i] = features[idx]
		yTrain[i] = y[idx]
	}

	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xTrain, Class: yTrain}
	forest.Train(cfg.Trees)

	yTestTrue := make([]int, len(testIdx))
	yTestPred := make([]int, len(testIdx))
	for i, idx := range testIdx {
		yTestTrue[i] = y[idx]
		yTestPred[i] = classify(forest, features[idx])
	}

	// Drop the training set so the serialized artifact stays small.
	forest.Data = randomforest.ForestData{}

	return &TrainReport{
		Forest:   forest,
		Encoder:  enc,
		Accuracy: Accuracy(yTestTrue, yTestPred),
		Report:   ClassificationReport(yTestTrue, yTestPred, enc.Classes),
	}, nil
}

// stratifiedSplit partitions row indices so each class contributes
// testFraction of its rows to the test set, at least one when it can spare one.
func stratifiedSplit(y []int, testFraction float64, rng *rand.Rand) (train, test []int) {
	byClass := make(map[int][]int)
	for i, cls := range y {
		byClass[cls] = append(byClass[cls], i)
	}

	classes := make([]int, 0, len(byClass))
	for cls := range byClass {
		classes = append(classes, cls)
	}
	// Map order is random; iterate classes deterministically for a seeded run.
	for i := 0; i < len(classes); i++ {
		for j := i + 1; j < len(classes); j++ {
			if classes[j] < classes[i] {
				classes[i], classes[j] = classes[j], classes[i]
			}
		}
	}

	for _, cls := range classes {
		idx := byClass[cls]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		nTest := int(float64(len(idx)) * testFraction)
		if nTest < 1 && len(idx) > 1 {
			nTest = 1
		}
		test = append(test, idx[:nTest]...)
		train = append(train, idx[nTest:]...)
	}
	return train, test
}

// SaveArtifact gob-encodes v at dir/name, creating dir if needed.
func SaveArtifact(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encode artifact %s: %w", name, err)
	}
	return nil
}

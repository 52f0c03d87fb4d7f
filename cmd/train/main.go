package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"soiladvisor/internal/dataset"
	"soiladvisor/internal/ml"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

// Columns expected after header normalization.
var featureColumns = []string{"n", "p", "k", "ph", "temperature", "moisture"}

func main() {
	dataPath := flag.String("data", "data/soil_data.csv", "Labeled training dataset")
	outDir := flag.String("out", "models", "Artifact output directory")
	seed := flag.Int64("seed", 42, "Random seed for the train/test split")
	flag.Parse()

	f, err := os.Open(*dataPath)
	if err != nil {
		log.Fatalf("Failed to open dataset: %v", err)
	}
	defer f.Close()

	table, err := dataset.ReadTable(f)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}
	table.NormalizeHeaders()

	required := append(append([]string{}, featureColumns...), "crop", "fertility")
	if err := table.Require(required...); err != nil {
		log.Fatalf("Dataset is missing columns: %v", err)
	}

	features, err := featureMatrix(table)
	if err != nil {
		log.Fatalf("Failed to parse features: %v", err)
	}

	cropLabels, _ := table.Column("crop")
	fertilityLabels, _ := table.Column("fertility")

	tasks := []struct {
		name          string
		labels        []string
		trees         int
		modelArtifact string
		encArtifact   string
	}{
		{"Crop", cropLabels, 200, ml.CropModelArtifact, ml.CropEncoderArtifact},
		{"Fertility", fertilityLabels, 150, ml.FertilityModelArtifact, ml.FertilityEncoderArtifact},
	}

	for _, task := range tasks {
		report, err := ml.Train(features, task.labels, ml.TrainConfig{
			Trees:        task.trees,
			TestFraction: 0.2,
			Seed:         *seed,
		})
		if err != nil {
			log.Fatalf("Failed to train %s model: %v", task.name, err)
		}

		fmt.Printf("%s model accuracy: %.4f\n", task.name, report.Accuracy)
		fmt.Println(report.Report)

		if err := ml.SaveArtifact(*outDir, task.modelArtifact, report.Forest); err != nil {
			log.Fatalf("Failed to save %s model: %v", task.name, err)
		}
		if err := ml.SaveArtifact(*outDir, task.encArtifact, report.Encoder); err != nil {
			log.Fatalf("Failed to save %s encoder: %v", task.name, err)
		}
	}

	log.Printf("Artifacts written to %s", *outDir)
}

func featureMatrix(table *dataset.Table) ([][]float64, error) {
	cols := make([][]float64, len(featureColumns))
	for i, name := range featureColumns {
		vals, err := table.Float64Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = vals
	}

	rows := make([][]float64, table.Len())
	for r := range rows {
		row := make([]float64, len(cols))
		for c := range cols {
			row[c] = cols[c][r]
		}
		rows[r] = row
	}
	return rows, nil
}

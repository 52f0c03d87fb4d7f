package models

import "strings"

// SoilSample is one row of soil measurements, built per request and never persisted.
type SoilSample struct {
	N           float64
	P           float64
	K           float64
	PH          float64
	Temperature float64
	Moisture    float64
}

// Features returns the sample in the column order the classifiers were trained on.
func (s SoilSample) Features() []float64 {
	return []float64{s.N, s.P, s.K, s.PH, s.Temperature, s.Moisture}
}

// ChartInfo carries the labels and values rendered on the results bar chart.
type ChartInfo struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Suggestion is the fertility-tier advice shown on the results page.
type Suggestion struct {
	Icon       string `json:"icon"`
	Level      string `json:"level"`
	Message    string `json:"message"`
	Fertilizer string `json:"fertilizer"`
}

// SuggestionForTier maps a fertility label to its advice bucket.
// "High" and "Medium" match case-insensitively; anything else is treated as low.
func SuggestionForTier(fertility string) Suggestion {
	switch strings.ToLower(fertility) {
	case "high":
		return Suggestion{
			Icon:       "🟢",
			Level:      "High Fertility",
			Message:    "Your soil is rich and nutrient-dense. Maintain balance using organic manure and mild NPK (10:26:26).",
			Fertilizer: "Recommended: Organic compost, 10:26:26 NPK, and controlled urea application.",
		}
	case "medium":
		return Suggestion{
			Icon:       "🟡",
			Level:      "Medium Fertility",
			Message:    "Your soil is moderately fertile. Apply balanced fertilizers before sowing.",
			Fertilizer: "Recommended: 12:32:16 NPK blend or 17:17:17 compound fertilizer.",
		}
	default:
		return Suggestion{
			Icon:       "🔴",
			Level:      "Low Fertility",
			Message:    "Your soil fertility is low. Improve using compost, biofertilizers, and micronutrients.",
			Fertilizer: "Recommended: Organic manure + 20:20:0 NPK + micronutrient mix.",
		}
	}
}

// ResultData is the payload the results page renders. It lives in the result
// store under the session's result token until it expires or is replaced.
type ResultData struct {
	Mode       string              `json:"mode"`
	Input      ChartInfo           `json:"input"`
	Crop       string              `json:"crop"`
	Fertility  string              `json:"fertility"`
	Suggestion *Suggestion         `json:"suggestion,omitempty"`
	File       string              `json:"file,omitempty"`
	Sample     []map[string]string `json:"sample,omitempty"`
	Summary    string              `json:"summary,omitempty"`
	Chart      string              `json:"chart"`
}

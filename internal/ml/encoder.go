package ml

import (
	"fmt"
	"sort"
)

// LabelEncoder maps between integer class indices and human-readable labels.
// Classes are sorted so the mapping is stable across fits of the same label set.
type LabelEncoder struct {
	Classes []string
}

func (le *LabelEncoder) Fit(labels []string) {
	seen := make(map[string]struct{}, len(labels))
	le.Classes = le.Classes[:0]
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		le.Classes = append(le.Classes, l)
	}
	sort.Strings(le.Classes)
}

func (le *LabelEncoder) Transform(label string) (int, error) {
	for i, c := range le.Classes {
		if c == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown label %q", label)
}

func (le *LabelEncoder) InverseTransform(index int) (string, error) {
	if index < 0 || index >= len(le.Classes) {
		return "", fmt.Errorf("class index %d out of range [0,%d)", index, len(le.Classes))
	}
	return le.Classes[index], nil
}

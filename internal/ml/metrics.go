package ml

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// Accuracy is the fraction of predictions matching the true class.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// ClassificationReport formats per-class precision, recall, F1 and support,
// one row per class name.
func ClassificationReport(yTrue, yPred []int, classes []string) string {
	tp := make([]int, len(classes))
	fp := make([]int, len(classes))
	fn := make([]int, len(classes))
	support := make([]int, len(classes))

	for i := range yTrue {
		support[yTrue[i]]++
		if yTrue[i] == yPred[i] {
			tp[yTrue[i]]++
		} else {
			fp[yPred[i]]++
			fn[yTrue[i]]++
		}
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "class\tprecision\trecall\tf1-score\tsupport")
	for i, name := range classes {
		precision := ratio(tp[i], tp[i]+fp[i])
		recall := ratio(tp[i], tp[i]+fn[i])
		f1 := 0.0
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%d\n", name, precision, recall, f1, support[i])
	}
	w.Flush()
	return buf.String()
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

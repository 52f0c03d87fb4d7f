// Package dataset loads uploaded CSVs into an in-memory table and provides the
// column checks and aggregations the dashboard's batch path needs.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"soiladvisor/internal/apperrors"
	"soiladvisor/internal/models"
)

// FeatureColumns are the exact headers the serving paths require. The trainer
// normalizes headers to lowercase instead; both behaviors are deliberate.
var FeatureColumns = []string{"N", "P", "K", "pH", "temperature", "moisture"}

// Table is a fully loaded CSV: a header row plus string cells.
type Table struct {
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// ReadTable parses an entire CSV into memory.
func ReadTable(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	t := &Table{Columns: records[0], Rows: records[1:]}
	t.reindex()
	return t, nil
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		t.index[c] = i
	}
}

// NormalizeHeaders trims and lowercases the column names (trainer behavior).
func (t *Table) NormalizeHeaders() {
	for i, c := range t.Columns {
		t.Columns[i] = strings.ToLower(strings.TrimSpace(c))
	}
	t.reindex()
}

func (t *Table) Len() int { return len(t.Rows) }

// Missing reports which of cols are absent, preserving order.
func (t *Table) Missing(cols ...string) []string {
	var missing []string
	for _, c := range cols {
		if _, ok := t.index[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// Require fails with ErrMissingColumns unless every column is present.
func (t *Table) Require(cols ...string) error {
	if missing := t.Missing(cols...); len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// Column returns the cell values under name.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	vals := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		vals[r] = row[i]
	}
	return vals, true
}

// Float64Column parses the cells under name as floats.
func (t *Table) Float64Column(name string) ([]float64, error) {
	raw, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingColumns, name)
	}
	vals := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s: %q", apperrors.ErrInvalidInput, i+1, name, s)
		}
		vals[i] = v
	}
	return vals, nil
}

// Samples builds one SoilSample per row from the exact-case feature columns.
func (t *Table) Samples() ([]models.SoilSample, error) {
	cols := make(map[string][]float64, len(FeatureColumns))
	for _, name := range FeatureColumns {
		vals, err := t.Float64Column(name)
		if err != nil {
			return nil, err
		}
		cols[name] = vals
	}

	samples := make([]models.SoilSample, t.Len())
	for i := range samples {
		samples[i] = models.SoilSample{
			N:           cols["N"][i],
			P:           cols["P"][i],
			K:           cols["K"][i],
			PH:          cols["pH"][i],
			Temperature: cols["temperature"][i],
			Moisture:    cols["moisture"][i],
		}
	}
	return samples, nil
}

// Means returns the per-feature column means in FeatureColumns order.
func (t *Table) Means() ([]float64, error) {
	means := make([]float64, len(FeatureColumns))
	if t.Len() == 0 {
		return means, nil
	}
	for i, name := range FeatureColumns {
		vals, err := t.Float64Column(name)
		if err != nil {
			return nil, err
		}
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		means[i] = sum / float64(len(vals))
	}
	return means, nil
}

// Mode returns the most frequent label; ties break to the lexicographically
// smallest, matching the aggregation the original results page showed.
func Mode(labels []string) string {
	counts := make(map[string]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}
	best := ""
	bestCount := -1
	for l, n := range counts {
		if n > bestCount || (n == bestCount && l < best) {
			best = l
			bestCount = n
		}
	}
	return best
}

// WritePredictions writes the table augmented with predicted_crop and
// predicted_fertility columns.
func WritePredictions(w io.Writer, t *Table, crops, fertilities []string) error {
	if len(crops) != t.Len() || len(fertilities) != t.Len() {
		return fmt.Errorf("prediction count does not match row count")
	}

	cw := csv.NewWriter(w)
	header := append(append([]string{}, t.Columns...), "predicted_crop", "predicted_fertility")
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		out := append(append([]string{}, row...), crops[i], fertilities[i])
		if err := cw.Write(out); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SampleRecords returns up to n augmented rows as column→value maps for the
// results page preview.
func SampleRecords(t *Table, crops, fertilities []string, n int) []map[string]string {
	if n > t.Len() {
		n = t.Len()
	}
	records := make([]map[string]string, 0, n)
	for i := 0; i < n; i++ {
		rec := make(map[string]string, len(t.Columns)+2)
		for j, c := range t.Columns {
			rec[c] = t.Rows[i][j]
		}
		rec["predicted_crop"] = crops[i]
		rec["predicted_fertility"] = fertilities[i]
		records = append(records, rec)
	}
	return records
}

package reporter

import (
	"encoding/json"
	"io"

	"stylometer/internal/features"
)

type JSONReporter struct {
	w io.Writer
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Report writes the full report, including the named view of the vector for
// readers that do not want to index by position.
func (r *JSONReporter) Report(rep features.Report) error {
	named := make(map[string]float64, features.NumFeatures)
	for i, name := range features.Names() {
		named[name] = rep.Vector[i]
	}
	return r.encode(struct {
		features.Report
		Features map[string]float64 `json:"features"`
	}{rep, named})
}

func (r *JSONReporter) Windows(documentID string, windows []WindowResult) error {
	return r.encode(struct {
		DocumentID    string         `json:"document_id"`
		SchemaVersion int            `json:"schema_version"`
		Names         []string       `json:"names"`
		Windows       []WindowResult `json:"windows"`
	}{documentID, features.SchemaVersion, features.Names(), windows})
}

func (r *JSONReporter) Batch(summary BatchSummary) error {
	return r.encode(struct {
		BatchSummary
		Counts BatchCounts `json:"counts"`
	}{summary, summary.Counts()})
}

func (r *JSONReporter) Schema(fields []features.Field, legacy []string) error {
	return r.encode(struct {
		SchemaVersion       int              `json:"schema_version"`
		Fields              []features.Field `json:"fields"`
		LegacySchemaVersion int              `json:"legacy_schema_version"`
		LegacyNames         []string         `json:"legacy_names"`
	}{features.SchemaVersion, fields, features.LegacySchemaVersion, legacy})
}

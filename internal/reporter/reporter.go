package reporter

import (
	"time"

	"stylometer/internal/chunk"
	"stylometer/internal/features"
)

// Reporter renders extraction results for the CLI.
type Reporter interface {
	Report(r features.Report) error
	Windows(documentID string, windows []WindowResult) error
	Batch(summary BatchSummary) error
	Schema(fields []features.Field, legacy []string) error
}

type WindowResult struct {
	Window chunk.Window    `json:"window"`
	Vector features.Vector `json:"vector"`
	Err    string          `json:"error,omitempty"`
}

type BatchResult struct {
	Source      string          `json:"source"`
	DocumentID  string          `json:"document_id"`
	Fingerprint string          `json:"fingerprint,omitempty"`
	Language    string          `json:"language,omitempty"`
	Cached      bool            `json:"cached"`
	Vector      features.Vector `json:"vector"`
	Err         string          `json:"error,omitempty"`
}

type BatchSummary struct {
	RunID    string        `json:"run_id"`
	Results  []BatchResult `json:"results"`
	Duration time.Duration `json:"duration_ns"`
}

type BatchCounts struct {
	Documents int `json:"documents"`
	Computed  int `json:"computed"`
	Cached    int `json:"cached"`
	Failed    int `json:"failed"`
}

func (s BatchSummary) Counts() BatchCounts {
	c := BatchCounts{Documents: len(s.Results)}
	for _, r := range s.Results {
		switch {
		case r.Err != "":
			c.Failed++
		case r.Cached:
			c.Cached++
		default:
			c.Computed++
		}
	}
	return c
}

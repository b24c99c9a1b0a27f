package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTextfile(t *testing.T) {
	Extractions.WithLabelValues("ok").Inc()
	ExtractionDuration.Observe(0.02)

	path := filepath.Join(t.TempDir(), "stylometer.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	out := string(raw)
	for _, name := range []string{"stylometer_extractions_total", "stylometer_extraction_duration_seconds"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in textfile output", name)
		}
	}
}

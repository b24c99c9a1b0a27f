package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ReportPath returns where the report of a document is archived:
// reports/<name>-<fingerprint prefix>.json.
func ReportPath(root, documentID, fingerprint string) string {
	name := sanitizeName(documentID)
	if len(fingerprint) > 12 {
		fingerprint = fingerprint[:12]
	}
	if fingerprint != "" {
		name += "-" + fingerprint
	}
	return filepath.Join(root, "reports", name+".json")
}

func SaveReport(path string, report any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// OpenSessionLog creates logs/session-<timestamp>.log for appending.
func OpenSessionLog(root string, now time.Time) (*os.File, error) {
	path := filepath.Join(root, "logs", "session-"+now.UTC().Format("20060102-150405")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	return f, nil
}

func sanitizeName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "document"
	}
	return strings.ReplaceAll(base, "..", "")
}

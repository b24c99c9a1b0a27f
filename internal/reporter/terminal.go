package reporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"stylometer/internal/features"
	"stylometer/internal/ui"
)

type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, styles: u.Styles}
}

func (r *TerminalReporter) Report(rep features.Report) error {
	s := r.styles
	title := rep.DocumentID
	if title == "" {
		title = "input"
	}
	fmt.Fprintln(r.w, s.Header.Render(title))
	meta := fmt.Sprintf("  schema v%d  fingerprint %s", rep.SchemaVersion, short(rep.Fingerprint))
	if rep.Language != "" {
		meta += "  language " + rep.Language
	}
	fmt.Fprintln(r.w, s.Subheader.Render(meta))
	if rep.Empty {
		fmt.Fprintln(r.w, s.Warning.Render(s.IconWarning+" no text; every feature is 0"))
	}
	fmt.Fprintln(r.w)

	for _, f := range features.Schema() {
		fmt.Fprintf(r.w, "  %s %s %s\n",
			s.Name.Render(fmt.Sprintf("%-22s", f.Name)),
			s.Value.Render(fmt.Sprintf("%12s", formatValue(rep.Vector[f.Index]))),
			s.Subheader.Render(string(f.Unit)),
		)
	}

	for _, e := range rep.Errors {
		fmt.Fprintln(r.w, s.Warning.Render(fmt.Sprintf("%s %s: %s", s.IconWarning, e.Stage, e.Message)))
	}
	return nil
}

func (r *TerminalReporter) Windows(documentID string, windows []WindowResult) error {
	s := r.styles
	fmt.Fprintln(r.w, s.Header.Render(documentID))
	fmt.Fprintln(r.w, s.Subheader.Render(fmt.Sprintf("  %d windows", len(windows))))
	fmt.Fprintln(r.w)

	cols := []int{features.WordCount, features.TTR, features.AvgSentenceLen, features.Polarity, features.Flesch}
	header := fmt.Sprintf("  %-7s %-13s", "window", "words")
	for _, c := range cols {
		header += fmt.Sprintf(" %18s", features.Names()[c])
	}
	fmt.Fprintln(r.w, s.Subheader.Render(header))

	for _, w := range windows {
		if w.Err != "" {
			fmt.Fprintln(r.w, s.Error.Render(fmt.Sprintf("  %-7d %s %s", w.Window.Index, s.IconError, w.Err)))
			continue
		}
		line := fmt.Sprintf("  %-7d %-13s", w.Window.Index, fmt.Sprintf("%d-%d", w.Window.StartWord, w.Window.EndWord))
		for _, c := range cols {
			line += fmt.Sprintf(" %18s", formatValue(w.Vector[c]))
		}
		fmt.Fprintln(r.w, line)
	}
	return nil
}

func (r *TerminalReporter) Batch(summary BatchSummary) error {
	s := r.styles
	for _, res := range summary.Results {
		switch {
		case res.Err != "":
			fmt.Fprintln(r.w, s.Error.Render(fmt.Sprintf("%s %s: %s", s.IconError, res.Source, res.Err)))
		case res.Cached:
			fmt.Fprintf(r.w, "%s %s %s\n", s.Info.Render(s.IconInfo), res.Source, s.Subheader.Render("(cached)"))
		default:
			fmt.Fprintf(r.w, "%s %s %s\n", s.Success.Render(s.IconSuccess), res.Source,
				s.Subheader.Render(fmt.Sprintf("%s words", formatValue(res.Vector.WordCount()))))
		}
	}

	c := summary.Counts()
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render(strings.Repeat("─", 40)))
	fmt.Fprintf(r.w, "%s %d documents: %d computed, %d cached, %d failed in %s\n",
		s.Header.Render("run "+short(summary.RunID)), c.Documents, c.Computed, c.Cached, c.Failed, summary.Duration.Round(time.Millisecond))
	return nil
}

func (r *TerminalReporter) Schema(fields []features.Field, legacy []string) error {
	s := r.styles
	fmt.Fprintln(r.w, s.Header.Render(fmt.Sprintf("feature schema v%d", features.SchemaVersion)))
	for _, f := range fields {
		bounds := ""
		if f.Bounded {
			bounds = fmt.Sprintf("[%s, %s]", formatValue(f.Min), formatValue(f.Max))
		}
		fmt.Fprintf(r.w, "  %2d  %s %-15s %s\n", f.Index, s.Name.Render(fmt.Sprintf("%-22s", f.Name)), f.Unit, s.Subheader.Render(bounds))
	}
	if len(legacy) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render(fmt.Sprintf("legacy schema v%d", features.LegacySchemaVersion)))
		for i, name := range legacy {
			fmt.Fprintf(r.w, "  %2d  %s\n", i, s.Name.Render(name))
		}
	}
	return nil
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func short(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"stylometer/internal/features"
	"stylometer/internal/ingest"
	"stylometer/internal/nlp"
	"stylometer/internal/pipeline"
	"stylometer/internal/reporter"
	"stylometer/internal/store"
)

var batchNoCache bool

var batchCmd = &cobra.Command{
	Use:   "batch <path>...",
	Short: "Extract and store vectors for many documents",
	Long: `Extract feature vectors for every supported file under the given paths and
store them in the workspace database, keyed by text fingerprint and schema
version. Texts already stored under the current schema are not recomputed.

Examples:
  stylometer batch corpus/
  stylometer batch --workers 8 --no-cache a.txt b.md papers/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "Recompute vectors that are already stored")
	RootCmd.AddCommand(batchCmd)
}

type batchItem struct {
	index int
	path  string
}

func runBatch(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := cmd.Context()

	paths, err := collectDocuments(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported documents under %v", args)
	}

	ex, err := current.extractor()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(current.settings.DBPath), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	st, err := store.Open(current.settings.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.BeginRun(ctx)
	if err != nil {
		return err
	}
	current.log.Info("batch started", "run_id", run.ID, "documents", len(paths), "workers", current.settings.Workers)

	items := make([]batchItem, len(paths))
	results := make([]reporter.BatchResult, len(paths))
	for i, p := range paths {
		items[i] = batchItem{index: i, path: p}
		results[i] = reporter.BatchResult{Source: p, DocumentID: filepath.Base(p)}
	}

	errs := pipeline.Process(ctx, items, current.settings.Workers, func(ctx context.Context, it batchItem) error {
		res := &results[it.index]
		if err := processDocument(ctx, ex, st, run.ID, res); err != nil {
			res.Err = err.Error()
			current.log.Error("document failed", "run_id", run.ID, "source", it.path, "error", err)
			return err
		}
		return nil
	})

	summary := reporter.BatchSummary{RunID: run.ID, Results: results, Duration: time.Since(start)}
	counts := summary.Counts()
	if err := st.FinishRun(context.WithoutCancel(ctx), run.ID, counts.Documents, counts.Failed); err != nil {
		return err
	}
	current.log.Info("batch finished", "run_id", run.ID, "computed", counts.Computed, "cached", counts.Cached, "failed", counts.Failed, "errors", len(errs))
	if err := current.reporter().Batch(summary); err != nil {
		return err
	}
	if counts.Failed > 0 {
		return fmt.Errorf("%d of %d documents failed", counts.Failed, counts.Documents)
	}
	return nil
}

func processDocument(ctx context.Context, ex *features.Extractor, st *store.Store, runID string, res *reporter.BatchResult) error {
	parsed, err := ingest.ParseFile(res.Source)
	if err != nil {
		return err
	}
	res.Fingerprint = features.Fingerprint(parsed.Text)
	if parsed.Text != "" {
		lang := nlp.DetectLanguage(parsed.Text)
		res.Language = lang.Code
		if lang.Foreign() {
			current.log.Warn("text is not English; lexicon features are unreliable", "source", res.Source, "language", lang.Name)
		}
	}

	if !batchNoCache {
		rec, ok, err := st.Lookup(ctx, res.Fingerprint)
		if err != nil {
			return err
		}
		if ok {
			res.Cached = true
			res.Vector = rec.Vector
			return nil
		}
	}

	report, err := ex.Analyze(ctx, features.Input{DocumentID: res.DocumentID, Text: parsed.Text})
	if err != nil {
		return err
	}
	res.Vector = report.Vector
	return st.Save(ctx, store.Record{
		Fingerprint: report.Fingerprint,
		DocumentID:  res.DocumentID,
		Source:      res.Source,
		RunID:       runID,
		Vector:      report.Vector,
		Legacy:      report.Legacy,
	})
}

// collectDocuments expands directories into the supported files beneath them,
// sorted for a stable run order. Explicit file arguments are kept as given.
func collectDocuments(args []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		var found []string
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && ingest.Supported(p) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		sort.Strings(found)
		for _, p := range found {
			add(p)
		}
	}
	return out, nil
}

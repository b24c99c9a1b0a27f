package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stylometer/internal/chunk"
	"stylometer/internal/pipeline"
	"stylometer/internal/reporter"
)

var (
	windowSize   int
	windowStride int
)

var windowsCmd = &cobra.Command{
	Use:   "windows [file|-]",
	Short: "Compute one feature vector per sliding word window",
	Long: `Split a long document into windows of --size words, each starting --stride
words after the previous one, and compute a vector for every window. Style
drift across a manuscript shows up as movement between windows.

Examples:
  stylometer windows novel.pdf
  stylometer windows --size 1000 --stride 1000 --format json thesis.docx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindows,
}

func init() {
	windowsCmd.Flags().IntVar(&windowSize, "size", 0, "Words per window (default from settings)")
	windowsCmd.Flags().IntVar(&windowStride, "stride", 0, "Words between window starts (default from settings)")
	RootCmd.AddCommand(windowsCmd)
}

func runWindows(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	size, stride := current.settings.WindowWords, current.settings.StrideWords
	if windowSize > 0 {
		size = windowSize
	}
	if windowStride > 0 {
		stride = windowStride
	}
	windows := chunk.SlidingWindow(in.Text, size, stride)

	ex, err := current.extractor()
	if err != nil {
		return err
	}

	// Each worker writes only its own slot.
	results := make([]reporter.WindowResult, len(windows))
	for i, w := range windows {
		results[i].Window = w
	}
	errs := pipeline.Process(cmd.Context(), windows, current.settings.Workers, func(ctx context.Context, w chunk.Window) error {
		v, err := ex.Compute(ctx, w.Text)
		if err != nil {
			results[w.Index].Err = err.Error()
			return fmt.Errorf("window %d: %w", w.Index, err)
		}
		results[w.Index].Vector = v
		return nil
	})
	for _, err := range errs {
		current.log.Error("window failed", "document", in.DocumentID, "error", err)
	}

	if err := current.reporter().Windows(in.DocumentID, results); err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d windows failed", len(errs), len(windows))
	}
	return nil
}

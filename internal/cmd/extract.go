package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"stylometer/internal/features"
	"stylometer/internal/ingest"
	"stylometer/internal/nlp"
	"stylometer/internal/workspace"
)

var (
	extractText string
	extractID   string
	extractSave bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file|-]",
	Short: "Compute the feature vector of one document",
	Long: `Compute the feature vector of a .txt, .md, .docx or .pdf file, of stdin
("-"), or of the --text flag.

Examples:
  stylometer extract chapter1.docx
  stylometer extract --text "Hello"
  cat essay.txt | stylometer extract --format json -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Analyze this text instead of a file")
	extractCmd.Flags().StringVar(&extractID, "id", "", "Document id recorded in the report")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "Archive the JSON report in the workspace")
	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if extractID != "" {
		in.DocumentID = extractID
	}

	ex, err := current.extractor()
	if err != nil {
		return err
	}
	report, err := ex.Analyze(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("extract %s: %w", in.DocumentID, err)
	}
	if !report.Empty {
		lang := nlp.DetectLanguage(in.Text)
		report.Language = lang.Code
		if lang.Foreign() {
			current.log.Warn("text is not English; lexicon features are unreliable", "document_id", in.DocumentID, "language", lang.Name)
		}
	}

	if extractSave {
		path := workspace.ReportPath(current.root, report.DocumentID, report.Fingerprint)
		if err := workspace.SaveReport(path, report); err != nil {
			return err
		}
		current.log.Info("report archived", "path", path)
	}
	return current.reporter().Report(report)
}

func readInput(cmd *cobra.Command, args []string) (features.Input, error) {
	switch {
	case cmd.Flags().Changed("text"):
		return features.Input{DocumentID: "text", Text: extractText}, nil
	case len(args) == 0 || args[0] == "-":
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return features.Input{}, fmt.Errorf("read stdin: %w", err)
		}
		return features.Input{DocumentID: "stdin", Text: ingest.Normalize(string(raw))}, nil
	default:
		parsed, err := ingest.ParseFile(args[0])
		if err != nil {
			return features.Input{}, err
		}
		return features.Input{DocumentID: filepath.Base(parsed.SourcePath), Text: parsed.Text}, nil
	}
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stylometer/internal/store"
)

var (
	exportOutput string
	exportRun    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored vectors as CSV",
	Long: `Write every stored vector of the current schema as CSV, one row per
document with the feature names as header.

Examples:
  stylometer export -o vectors.csv
  stylometer export --run 0f8c2a9e-... > run.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVar(&exportRun, "run", "", "Only export vectors stored by this run id")
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(current.settings.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}

	n, err := st.ExportCSV(cmd.Context(), w, exportRun)
	if err != nil {
		return err
	}
	current.log.Info("vectors exported", "rows", n, "run_id", exportRun, "output", exportOutput)
	return nil
}

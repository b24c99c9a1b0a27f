package cmd

import (
	"github.com/spf13/cobra"

	"stylometer/internal/features"
)

var schemaLegacy bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the feature vector layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var legacy []string
		if schemaLegacy {
			legacy = features.LegacyNames()
		}
		return current.reporter().Schema(features.Schema(), legacy)
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaLegacy, "legacy", false, "Also print the ten-slot legacy layout")
	RootCmd.AddCommand(schemaCmd)
}

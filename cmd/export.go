package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved analysis as a standalone HTML document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		store := mustOpenHistory(logger)

		id := parseID(logger, args[0])
		result, ok := store.Get(id)
		if !ok {
			logger.Fatal("no analysis with this id", zap.Int64("id", id))
		}

		path, err := export.WriteDocument(result, flagString(cmd, "output"))
		if err != nil {
			logger.Fatal("exporting document", zap.Error(err))
		}

		fmt.Printf("Documento exportado: %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", ".", "directory for the exported document")
}

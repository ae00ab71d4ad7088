package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/export"
)

var whatsappCmd = &cobra.Command{
	Use:   "whatsapp <id>",
	Short: "Draft the candidate status message and its WhatsApp link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		store := mustOpenHistory(logger)

		id := parseID(logger, args[0])
		result, ok := store.Get(id)
		if !ok {
			logger.Fatal("no analysis with this id", zap.Int64("id", id))
		}

		details := export.Interview{
			Company:  flagString(cmd, "company"),
			Date:     flagString(cmd, "date"),
			Time:     flagString(cmd, "time"),
			Location: flagString(cmd, "location"),
		}
		if details.Company == "" {
			details.Company = config.Company
		}

		fmt.Println(export.DraftMessage(result, details))
		fmt.Printf("\n%s\n", export.WhatsAppLink(result, flagString(cmd, "phone"), details))
	},
}

func init() {
	rootCmd.AddCommand(whatsappCmd)

	whatsappCmd.Flags().StringP("phone", "p", "", "candidate phone number, digits are extracted")
	whatsappCmd.Flags().String("company", "", "company name used in the message")
	whatsappCmd.Flags().String("date", "", "interview date")
	whatsappCmd.Flags().String("time", "", "interview time")
	whatsappCmd.Flags().String("location", "", "interview location or meeting link")
}

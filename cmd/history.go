package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the saved analysis history",
	Run: func(_ *cobra.Command, _ []string) {
		listHistory()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved analysis in full",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		store := mustOpenHistory(logger)

		id := parseID(logger, args[0])
		result, ok := store.Get(id)
		if !ok {
			logger.Fatal("no analysis with this id", zap.Int64("id", id))
		}

		renderResult(os.Stdout, result)
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove one analysis from history",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		store := mustOpenHistory(logger)

		id := parseID(logger, args[0])
		if err := store.Remove(id); err != nil {
			logger.Fatal("removing analysis", zap.Error(err))
		}

		fmt.Printf("%d análise(s) no histórico.\n", store.Len())
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved analyses",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		store := mustOpenHistory(logger)

		if store.Len() == 0 {
			fmt.Println("Histórico vazio.")
			return
		}

		if !flagBool(cmd, "yes") {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Apagar todas as %d análises salvas", store.Len()),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Println("Operação cancelada.")
				return
			}
		}

		if err := store.Clear(); err != nil {
			logger.Fatal("clearing history", zap.Error(err))
		}

		fmt.Println("Histórico apagado.")
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyClearCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func listHistory() {
	logger := newLogger()
	store := mustOpenHistory(logger)

	if store.Len() == 0 {
		fmt.Println("Nenhuma análise salva ainda.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATA\tCANDIDATO\tVAGA\tSCORE\tVEREDITO")
	for _, r := range store.All() {
		renderHistoryLine(w, r)
	}
	w.Flush()
}

func mustOpenHistory(logger *zap.Logger) *history.Store {
	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store, err := openHistory(config, logger)
	if err != nil {
		logger.Fatal("opening history store", zap.Error(err))
	}

	return store
}

func parseID(logger *zap.Logger, arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		logger.Fatal("ids are numeric", zap.String("argument", arg))
	}
	return id
}

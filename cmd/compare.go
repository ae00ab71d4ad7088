package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare <id>...",
	Short: "Compare saved candidates side by side, best score first",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runCompare(args)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(args []string) {
	logger := newLogger()
	store := mustOpenHistory(logger)

	set := compare.New()
	for _, arg := range args {
		id := parseID(logger, arg)

		result, ok := store.Get(id)
		if !ok {
			logger.Warn("skipping unknown id", zap.Int64("id", id))
			continue
		}

		if !set.Add(result) {
			logger.Debug("id already in comparison", zap.Int64("id", id))
		}
	}

	if set.Len() == 0 {
		fmt.Println("Nenhum candidato para comparar.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tCANDIDATO\tVAGA\tSCORE\tVEREDITO")
	for i, r := range set.View() {
		best := ""
		if i == 0 {
			best = "MELHOR"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", best, r.Name, r.Role, r.Score, r.Verdict.Label())
	}
	w.Flush()

	for _, r := range set.View() {
		fmt.Printf("\n— %s (%d/100)\n", r.Name, r.Score)

		if len(r.Subscores) > 0 {
			parts := make([]string, 0, len(r.Subscores))
			for _, s := range r.Subscores {
				parts = append(parts, fmt.Sprintf("%s: %d", s.Label, s.Value))
			}
			fmt.Printf("  Subscores: %s\n", strings.Join(parts, " · "))
		}
		for _, s := range r.Strengths {
			fmt.Printf("  ▲ %s\n", s)
		}
		for _, g := range r.Gaps {
			fmt.Printf("  ▼ %s\n", g)
		}
		for _, b := range r.Blindspots {
			fmt.Printf("  ⚑ %s: %s\n", b.Label, b.Text)
		}
	}
}

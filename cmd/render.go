package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gpereira/lens/internal/analysis"
)

// renderResult prints the full evaluation of a single candidate.
func renderResult(w io.Writer, r analysis.Result) {
	fmt.Fprintf(w, "\n%s — %s\n", r.Name, r.Role)
	fmt.Fprintf(w, "Analisado em %s · id %d\n\n", r.Date, r.ID)

	fmt.Fprintf(w, "Score: %d/100  %s\n", r.Score, r.Verdict.Label())
	fmt.Fprintf(w, "%s\n%s\n", r.Title, r.Summary)

	if len(r.Subscores) > 0 {
		parts := make([]string, 0, len(r.Subscores))
		for _, s := range r.Subscores {
			parts = append(parts, fmt.Sprintf("%s: %d", s.Label, s.Value))
		}
		fmt.Fprintf(w, "\nSubscores: %s\n", strings.Join(parts, " · "))
	}

	renderList(w, "Pontos Fortes", "▲", r.Strengths)
	renderList(w, "Gaps Identificados", "▼", r.Gaps)

	if len(r.Blindspots) > 0 {
		fmt.Fprintf(w, "\nPontos Cegos — O que o CV não mostra\n")
		for _, b := range r.Blindspots {
			fmt.Fprintf(w, "  ⚑ %s: %s\n", b.Label, b.Text)
		}
	}

	if len(r.Questions) > 0 {
		fmt.Fprintf(w, "\nPerguntas para Entrevista\n")
		for i, q := range r.Questions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, q)
		}
	}
}

func renderList(w io.Writer, header, marker string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", header)
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", marker, item)
	}
}

// renderHistoryLine prints the one-line summary used by history listings.
func renderHistoryLine(w io.Writer, r analysis.Result) {
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", r.ID, r.Date, r.Name, r.Role, r.Score, r.Verdict.Label())
}

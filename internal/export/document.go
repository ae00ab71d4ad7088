// Package export renders analysis results into shareable artifacts.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gpereira/lens/internal/analysis"
)

// Score color thresholds: green from 70, amber from 50, red below.
func scoreColor(score int) string {
	switch {
	case score >= 70:
		return "#1a7a50"
	case score >= 50:
		return "#a06010"
	default:
		return "#a02010"
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// DocumentFileName derives the artifact name from the record identity, with
// whitespace mapped to underscores.
func DocumentFileName(r analysis.Result) string {
	name := whitespace.ReplaceAllString(r.Name, "_")
	role := whitespace.ReplaceAllString(r.Role, "_")
	return fmt.Sprintf("Lens_%s_%s.html", name, role)
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html><html><head><meta charset="UTF-8">
<title>Lens — {{.Result.Name}}</title>
<style>
body { font-family: Georgia, serif; max-width: 800px; margin: 0 auto; padding: 3rem 2rem; color: #1a1a1a; }
h1 { font-size: 2rem; margin-bottom: 0.25rem; }
.meta { color: #666; font-size: 0.9rem; margin-bottom: 2rem; font-family: monospace; }
.score-row { display: flex; align-items: center; gap: 2rem; margin-bottom: 2rem; padding: 1.5rem; border: 2px solid #eee; border-radius: 8px; }
.score-big { font-size: 4rem; font-weight: 900; color: {{.ScoreColor}}; line-height: 1; }
.verdict { display: inline-block; padding: 0.3rem 0.8rem; background: #f5f5f5; border-radius: 100px; font-size: 0.85rem; font-family: sans-serif; margin-bottom: 0.5rem; }
.summary { color: #555; line-height: 1.7; font-size: 0.95rem; }
.subscores { display: grid; grid-template-columns: repeat(4,1fr); gap: 1rem; margin-bottom: 2rem; }
.ss { text-align: center; padding: 1rem; border: 1px solid #eee; border-radius: 6px; }
.ss-val { font-size: 1.5rem; font-weight: 900; }
.ss-label { font-size: 0.7rem; font-family: sans-serif; color: #888; text-transform: uppercase; letter-spacing: 0.06em; margin-top: 0.25rem; }
h2 { font-size: 1rem; font-family: sans-serif; text-transform: uppercase; letter-spacing: 0.08em; color: #888; border-bottom: 1px solid #eee; padding-bottom: 0.5rem; margin: 1.5rem 0 0.75rem; }
ul, ol { padding-left: 1.5rem; }
li { margin-bottom: 0.4rem; font-size: 0.9rem; line-height: 1.6; }
.blind-item { padding: 0.75rem 1rem; border: 1px solid #f0e090; background: #fffdf0; border-radius: 4px; margin-bottom: 0.75rem; }
.blind-label { font-size: 0.7rem; font-family: sans-serif; text-transform: uppercase; letter-spacing: 0.06em; color: #a06010; margin-bottom: 0.25rem; }
.blind-text { font-size: 0.87rem; line-height: 1.6; }
.footer { margin-top: 3rem; padding-top: 1rem; border-top: 1px solid #eee; font-size: 0.75rem; color: #aaa; font-family: sans-serif; }
</style>
</head><body>
<h1>{{.Result.Name}}</h1>
<div class="meta">{{.Result.Role}} · Analisado em {{.Result.Date}} · Lens — Análise Inteligente de Currículos</div>
<div class="score-row">
<div class="score-big">{{.Result.Score}}</div>
<div>
<div class="verdict">{{.VerdictLabel}}</div>
<div style="font-size:1.1rem;font-weight:bold;margin-bottom:0.3rem">{{.Result.Title}}</div>
<div class="summary">{{.Result.Summary}}</div>
</div>
</div>
<div class="subscores">{{range .Result.Subscores}}<div class="ss"><div class="ss-val">{{.Value}}</div><div class="ss-label">{{.Label}}</div></div>{{end}}</div>
<h2>Pontos Fortes</h2><ul>{{range .Result.Strengths}}<li>{{.}}</li>{{end}}</ul>
<h2>Gaps Identificados</h2><ul>{{range .Result.Gaps}}<li>{{.}}</li>{{end}}</ul>
<h2>Pontos Cegos — O que o CV não mostra</h2>{{range .Result.Blindspots}}<div class="blind-item"><div class="blind-label">⚑ {{.Label}}</div><div class="blind-text">{{.Text}}</div></div>{{end}}
<h2>Perguntas para Entrevista</h2><ol>{{range .Result.Questions}}<li>{{.}}</li>{{end}}</ol>
<div class="footer">Gerado por Lens · Análise Inteligente de Currículos</div>
</body></html>
`))

type documentView struct {
	Result       analysis.Result
	VerdictLabel string
	ScoreColor   template.CSS
}

// RenderDocument produces the self-contained HTML artifact. Rendering is
// deterministic: the same record always yields byte-identical output.
func RenderDocument(r analysis.Result) ([]byte, error) {
	var buf bytes.Buffer
	view := documentView{
		Result:       r,
		VerdictLabel: r.Verdict.Label(),
		ScoreColor:   template.CSS(scoreColor(r.Score)),
	}
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDocument renders the artifact into dir and returns its path.
func WriteDocument(r analysis.Result, dir string) (string, error) {
	data, err := RenderDocument(r)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, DocumentFileName(r))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}

	return path, nil
}

package analysis

import (
	"strings"

	_ "embed"
)

//go:embed prompt.md
var promptTemplate string

// Character limits keep the request bounded. Truncation is a plain prefix
// cut, no summarization.
const (
	maxResumeChars  = 6000
	maxJobDescChars = 2000
)

// ComposePrompt builds the evaluation prompt from the candidate identity, the
// extracted résumé text and the job description. Pure string construction:
// empty inputs yield a valid, low-information prompt.
func ComposePrompt(name, role, resumeText, jobDescription string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "CANDIDATO: {{NAME}}\nVAGA: {{ROLE}}\n\nCURRÍCULO:\n{{RESUME}}\n\nDESCRIÇÃO DA VAGA:\n{{JOB_DESCRIPTION}}"
	}

	prompt := strings.ReplaceAll(template, "{{NAME}}", name)
	prompt = strings.ReplaceAll(prompt, "{{ROLE}}", role)
	prompt = strings.ReplaceAll(prompt, "{{RESUME}}", truncateRunes(resumeText, maxResumeChars))
	prompt = strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", truncateRunes(jobDescription, maxJobDescChars))

	return prompt
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

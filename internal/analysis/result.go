package analysis

import (
	"errors"
	"strings"
)

// ErrAnalysisFailed marks responses from the analysis service that carried no
// content or content that does not parse against the declared schema.
var ErrAnalysisFailed = errors.New("analysis failed")

// Verdict is the categorical hiring recommendation.
type Verdict string

const (
	VerdictGo    Verdict = "GO"
	VerdictMaybe Verdict = "MAYBE"
	VerdictNo    Verdict = "NO"
)

// Placeholder identity values used when the recruiter leaves the fields empty.
const (
	DefaultCandidateName = "Candidato"
	DefaultRoleTitle     = "Vaga"
)

// ParseVerdict maps an upstream verdict string to one of the three known
// values. Anything unrecognized is treated as MAYBE so that a misbehaving
// model can never produce an unrenderable record.
func ParseVerdict(s string) Verdict {
	switch Verdict(strings.ToUpper(strings.TrimSpace(s))) {
	case VerdictGo:
		return VerdictGo
	case VerdictNo:
		return VerdictNo
	default:
		return VerdictMaybe
	}
}

// Label returns the display label for the verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictGo:
		return "✓ Avançar"
	case VerdictNo:
		return "✕ Não Recomendado"
	default:
		return "◎ Avaliar com Atenção"
	}
}

// Subscore is a named sub-dimension of the overall evaluation.
type Subscore struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Blindspot is an inferred risk or unknown the résumé does not state directly.
type Blindspot struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Payload is the schema-constrained evaluation returned by the analysis
// service. It carries everything a Result has except the identity fields,
// which are assigned locally at normalization time.
type Payload struct {
	Score      int         `json:"score"`
	Verdict    string      `json:"verdict"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	Subscores  []Subscore  `json:"subscores"`
	Strengths  []string    `json:"strengths"`
	Gaps       []string    `json:"gaps"`
	Blindspots []Blindspot `json:"blindspots"`
	Questions  []string    `json:"questions"`
}

// Result is the canonical analysis record. It is created exactly once by the
// normalizer and is read-only afterwards.
type Result struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Role       string      `json:"role"`
	Date       string      `json:"date"`
	Score      int         `json:"score"`
	Verdict    Verdict     `json:"verdict"`
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	Subscores  []Subscore  `json:"subscores"`
	Strengths  []string    `json:"strengths"`
	Gaps       []string    `json:"gaps"`
	Blindspots []Blindspot `json:"blindspots"`
	Questions  []string    `json:"questions"`
}

// DefaultIdentity substitutes the placeholder name and role for blank input.
func DefaultIdentity(name, role string) (string, string) {
	if name = strings.TrimSpace(name); name == "" {
		name = DefaultCandidateName
	}
	if role = strings.TrimSpace(role); role == "" {
		role = DefaultRoleTitle
	}
	return name, role
}

package analysis

import (
	"testing"
	"time"
)

func testPayload() *Payload {
	return &Payload{
		Score:   82,
		Verdict: "GO",
		Title:   "Forte aderência técnica",
		Summary: "Perfil sênior com experiência direta na stack.",
		Subscores: []Subscore{
			{Label: "Técnico", Value: 90},
			{Label: "Comunicação", Value: 70},
		},
		Strengths:  []string{"Go", "Kubernetes"},
		Gaps:       []string{"Sem experiência com mensageria"},
		Blindspots: []Blindspot{{Label: "Liderança", Text: "O CV não menciona gestão de pessoas."}},
		Questions:  []string{"Como você estrutura um serviço novo?"},
	}
}

func TestNormalizeCopiesIdentityFromCaller(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	r := n.Normalize(testPayload(), "Mariana Silva", "Gerente de Produto")

	if r.Name != "Mariana Silva" || r.Role != "Gerente de Produto" {
		t.Fatalf("unexpected identity: %q / %q", r.Name, r.Role)
	}

	if r.Score != 82 || r.Verdict != VerdictGo {
		t.Fatalf("unexpected evaluation: %d / %s", r.Score, r.Verdict)
	}

	if r.Date == "" {
		t.Fatal("expected date to be stamped")
	}
}

func TestNormalizeStampsLocalDate(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	n.now = func() time.Time { return time.Date(2026, time.May, 12, 15, 4, 5, 0, time.Local) }

	r := n.Normalize(testPayload(), "A", "B")

	if r.Date != "12/05/2026" {
		t.Fatalf("unexpected date: %q", r.Date)
	}
}

func TestNormalizeClampsScores(t *testing.T) {
	t.Parallel()

	p := testPayload()
	p.Score = 250
	p.Subscores = []Subscore{
		{Label: "baixo", Value: -5},
		{Label: "alto", Value: 140},
	}

	r := NewNormalizer().Normalize(p, "A", "B")

	if r.Score != 100 {
		t.Fatalf("expected score clamped to 100, got %d", r.Score)
	}
	if r.Subscores[0].Value != 0 || r.Subscores[1].Value != 100 {
		t.Fatalf("expected subscores clamped, got %+v", r.Subscores)
	}
}

func TestNormalizeDefaultsUnknownVerdict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect Verdict
	}{
		{"GO", VerdictGo},
		{" no ", VerdictNo},
		{"maybe", VerdictMaybe},
		{"STRONG HIRE", VerdictMaybe},
		{"", VerdictMaybe},
	}

	for _, tt := range tests {
		p := testPayload()
		p.Verdict = tt.input
		if r := NewNormalizer().Normalize(p, "A", "B"); r.Verdict != tt.expect {
			t.Fatalf("verdict %q: expected %s, got %s", tt.input, tt.expect, r.Verdict)
		}
	}
}

func TestNormalizeNeverProducesNilSequences(t *testing.T) {
	t.Parallel()

	r := NewNormalizer().Normalize(&Payload{Verdict: "GO"}, "A", "B")

	if r.Subscores == nil || r.Strengths == nil || r.Gaps == nil || r.Blindspots == nil || r.Questions == nil {
		t.Fatalf("expected all sequences present, got %+v", r)
	}
}

func TestNormalizeAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	// Freeze the clock so every id would collide without the bump.
	n.now = func() time.Time { return time.UnixMilli(1700000000000) }

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		r := n.Normalize(testPayload(), "A", "B")
		if seen[r.ID] {
			t.Fatalf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestDefaultIdentity(t *testing.T) {
	t.Parallel()

	name, role := DefaultIdentity("  ", "")
	if name != DefaultCandidateName || role != DefaultRoleTitle {
		t.Fatalf("expected placeholders, got %q / %q", name, role)
	}

	name, role = DefaultIdentity(" João ", "Dev")
	if name != "João" || role != "Dev" {
		t.Fatalf("expected trimmed input, got %q / %q", name, role)
	}
}

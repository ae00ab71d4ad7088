package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/gpereira/lens/internal/analysis"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	lastSchema *genai.Schema
}

func (s *stubGenerator) GenerateJSON(_ context.Context, prompt string, schema *genai.Schema) (string, error) {
	s.lastPrompt = prompt
	s.lastSchema = schema
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string { return "stub-model" }

const validResponse = `{
	"score": 82,
	"verdict": "GO",
	"title": "Forte aderência",
	"summary": "Perfil sênior.",
	"subscores": [{"label": "Técnico", "value": 90}],
	"strengths": ["Go"],
	"gaps": ["Mensageria"],
	"blindspots": [{"label": "Escala", "text": "Sem menção a alto volume."}],
	"questions": ["Como você projeta um serviço novo?"]
}`

func TestAnalyzerParsesValidResponse(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: validResponse}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	payload, err := analyzer.Analyze(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.Score != 82 || payload.Verdict != "GO" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Subscores) != 1 || payload.Subscores[0].Value != 90 {
		t.Fatalf("unexpected subscores: %+v", payload.Subscores)
	}
	if len(payload.Blindspots) != 1 || payload.Blindspots[0].Label != "Escala" {
		t.Fatalf("unexpected blindspots: %+v", payload.Blindspots)
	}

	if stub.lastPrompt != "prompt" {
		t.Fatalf("unexpected prompt sent: %q", stub.lastPrompt)
	}
}

func TestAnalyzerDeclaresRequiredSchemaFields(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: validResponse}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	if _, err := analyzer.Analyze(context.Background(), "prompt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stub.lastSchema == nil {
		t.Fatal("expected a response schema to be sent")
	}
	if got := len(stub.lastSchema.Required); got != 9 {
		t.Fatalf("expected 9 required fields, got %d", got)
	}
	for _, field := range []string{"score", "verdict", "title", "summary", "subscores", "strengths", "gaps", "blindspots", "questions"} {
		if _, ok := stub.lastSchema.Properties[field]; !ok {
			t.Fatalf("schema is missing %q", field)
		}
	}
}

func TestAnalyzerStripsCodeFences(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "```json\n" + validResponse + "\n```"}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	payload, err := analyzer.Analyze(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Score != 82 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestAnalyzerToleratesWeaklyTypedNumbers(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: `{"score": "82", "verdict": "GO", "title": "t", "summary": "s",
		"subscores": [], "strengths": [], "gaps": [], "blindspots": [], "questions": []}`}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	payload, err := analyzer.Analyze(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Score != 82 {
		t.Fatalf("expected string score coerced to 82, got %d", payload.Score)
	}
}

func TestAnalyzerFailsOnMalformedResponse(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "desculpe, não consegui analisar"}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	_, err := analyzer.Analyze(context.Background(), "prompt")
	if !errors.Is(err, analysis.ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestAnalyzerFailsOnGeneratorError(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{err: errors.New("gemini api returned empty response")}
	analyzer := NewAnalyzer(stub, zap.NewNop(), 0)

	_, err := analyzer.Analyze(context.Background(), "prompt")
	if !errors.Is(err, analysis.ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected underlying message to be carried, got %v", err)
	}
}

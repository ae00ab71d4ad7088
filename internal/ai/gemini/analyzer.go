package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/gpereira/lens/internal/analysis"
	"github.com/gpereira/lens/internal/util"
)

type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	Model() string
}

// Analyzer evaluates a composed prompt through Gemini and parses the
// schema-constrained response into an analysis payload.
type Analyzer struct {
	generator jsonGenerator
	logger    *zap.Logger
	maxLogLen int
}

const defaultMaxLogLength = 200

func NewAnalyzer(generator jsonGenerator, logger *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// resultSchema declares the required response shape: the full record minus
// the identity fields, which are assigned locally after the call.
var resultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":   {Type: genai.TypeInteger, Description: "Score from 0 to 100"},
		"verdict": {Type: genai.TypeString, Description: "GO, MAYBE, or NO"},
		"title":   {Type: genai.TypeString, Description: "Short evaluation phrase"},
		"summary": {Type: genai.TypeString, Description: "2-3 sentences executive summary"},
		"subscores": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"label": {Type: genai.TypeString},
					"value": {Type: genai.TypeInteger},
				},
			},
		},
		"strengths": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"gaps":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"blindspots": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"label": {Type: genai.TypeString},
					"text":  {Type: genai.TypeString},
				},
			},
		},
		"questions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"score", "verdict", "title", "summary", "subscores", "strengths", "gaps", "blindspots", "questions"},
}

// Analyze performs a single request against the model. Failures, including
// unparseable responses, are reported as analysis.ErrAnalysisFailed; there is
// no automatic retry, every retry is a fresh user-triggered run.
func (a *Analyzer) Analyze(ctx context.Context, prompt string) (*analysis.Payload, error) {
	a.logger.Debug("gemini analyze request",
		zap.String("model", a.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateJSON(ctx, prompt, resultSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", analysis.ErrAnalysisFailed, err)
	}

	a.logger.Debug("gemini analyze response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, a.maxLogLen)),
	)

	payload, err := parsePayload(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", analysis.ErrAnalysisFailed, err)
	}

	return payload, nil
}

// parsePayload decodes the model output into the payload type. The JSON is
// first read into a generic map and then decoded weakly typed, so that a
// score arriving as "82" or 82.0 still lands in the integer field.
func parsePayload(raw string) (*analysis.Payload, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var payload analysis.Payload
	cfg := &mapstructure.DecoderConfig{
		Result:           &payload,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build payload decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	return &payload, nil
}

// extractJSON strips markdown code fences some models wrap around the body
// even when asked for raw JSON.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

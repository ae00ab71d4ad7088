// Package pipeline drives a single analysis from raw inputs to a persisted
// record: extract, compose, analyze, normalize, append.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/gpereira/lens/internal/analysis"
)

var (
	// ErrValidation is returned when required inputs are missing. Validation
	// happens before any external call so a bad request costs nothing.
	ErrValidation = errors.New("validation failed")
	// ErrAnalysisInFlight is returned when a run is triggered while another
	// one has not settled yet.
	ErrAnalysisInFlight = errors.New("an analysis is already in progress")
)

// Analyzer is the external completion service contract: one prompt in, one
// schema-shaped payload or failure out. Implementations must not retry.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (*analysis.Payload, error)
}

// Extractor turns uploaded file bytes into plain text.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// Appender receives the finished record. Satisfied by *history.Store.
type Appender interface {
	Append(r analysis.Result) error
}

// Deps aggregates the collaborators a pipeline needs.
type Deps struct {
	Extractor  Extractor
	Analyzer   Analyzer
	History    Appender
	Normalizer *analysis.Normalizer
	Logger     *zap.Logger
}

// Request carries the recruiter's inputs for one analysis.
type Request struct {
	CandidateName  string
	RoleTitle      string
	ResumeFileName string
	ResumeData     []byte
	JobDescription string
}

// Pipeline runs analyses sequentially. Progress, when set, is invoked as
// stages complete; it must be fast and must not block.
type Pipeline struct {
	deps     Deps
	Progress func(analysis.Stage)

	inFlight atomic.Bool
}

func New(deps Deps) *Pipeline {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Normalizer == nil {
		deps.Normalizer = analysis.NewNormalizer()
	}
	return &Pipeline{deps: deps}
}

// Run executes one full analysis. Each stage completes before the next one
// starts: extraction finishes before the prompt is composed, and the service
// call settles before normalization. A second Run while one is in flight is
// rejected with ErrAnalysisInFlight rather than queued.
func (p *Pipeline) Run(ctx context.Context, req Request) (analysis.Result, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return analysis.Result{}, ErrAnalysisInFlight
	}
	defer p.inFlight.Store(false)

	if err := validate(req); err != nil {
		return analysis.Result{}, err
	}

	name, role := analysis.DefaultIdentity(req.CandidateName, req.RoleTitle)

	p.advance(analysis.StageReading)
	text, err := p.deps.Extractor.Extract(req.ResumeFileName, req.ResumeData)
	if err != nil {
		return analysis.Result{}, err
	}
	p.deps.Logger.Debug("resume text extracted",
		zap.String("file", req.ResumeFileName),
		zap.Int("characters", len(text)),
	)

	p.advance(analysis.StageComparing)
	prompt := analysis.ComposePrompt(name, role, text, req.JobDescription)

	// The blindspot stage has no completion signal of its own; it fires
	// right before the model call so the interim status text still cycles.
	p.advance(analysis.StageBlindspots)
	p.advance(analysis.StageGenerating)

	payload, err := p.deps.Analyzer.Analyze(ctx, prompt)
	if err != nil {
		return analysis.Result{}, err
	}

	result := p.deps.Normalizer.Normalize(payload, name, role)

	if err := p.deps.History.Append(result); err != nil {
		return analysis.Result{}, fmt.Errorf("saving analysis to history: %w", err)
	}

	p.deps.Logger.Info("analysis complete",
		zap.Int64("id", result.ID),
		zap.String("candidate", result.Name),
		zap.Int("score", result.Score),
		zap.String("verdict", string(result.Verdict)),
	)
	p.advance(analysis.StageDone)

	return result, nil
}

func validate(req Request) error {
	if len(req.ResumeData) == 0 {
		return fmt.Errorf("%w: a resume PDF is required", ErrValidation)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return fmt.Errorf("%w: a job description is required", ErrValidation)
	}
	return nil
}

func (p *Pipeline) advance(stage analysis.Stage) {
	if p.Progress != nil {
		p.Progress(stage)
	}
}

package plan

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sessionarchitect/sessionarchitect/internal/config"
	"github.com/sessionarchitect/sessionarchitect/internal/llm"
)

// ErrEmptyPlan reports that the generation call succeeded but the
// response contained no parsable sections. It is a logical outcome, not
// a service failure; callers can tell bad content apart from a down
// service by checking for this error versus *llm.GenerationError.
var ErrEmptyPlan = errors.New("generated plan contained no sections")

// Request describes one session plan generation. Transient: created per
// submission, never persisted by this package.
type Request struct {
	// Scenario is the clinician's free-text description of the client
	// situation. Passed to the model verbatim.
	Scenario string
	// Modality is a free-text therapeutic modality label (CBT, ACT, ...).
	Modality string
	Style    Style
	Lens     Lens
}

// Result carries one generated plan in all three forms: the raw model
// output (kept for the note-generation step and the history store), the
// parsed sections, and the rendered HTML.
type Result struct {
	RawText  string
	Sections []Section
	HTML     string
}

// Planner runs the generation pipeline: compose, call the generation
// service, parse, render. One blocking outbound call per invocation,
// no background work, no shared mutable state.
type Planner struct {
	client llm.Client
	cfg    config.OpenAIConfig
	logger *slog.Logger
}

// NewPlanner creates a Planner using the given generation client and
// sampling configuration.
func NewPlanner(client llm.Client, cfg config.OpenAIConfig, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "planner"),
	}
}

// GeneratePlan produces a structured session plan for req. A transport
// or service failure surfaces as *llm.GenerationError; a response with
// zero parsable sections returns ErrEmptyPlan with the raw text still
// populated in the result so callers can log or inspect it.
func (p *Planner) GeneratePlan(ctx context.Context, req Request) (*Result, error) {
	system, user := ComposePlanPrompt(req.Scenario, req.Modality, req.Style, req.Lens)

	raw, err := p.client.Complete(ctx, llm.CompletionRequest{
		System:      system,
		User:        user,
		Model:       p.cfg.Model,
		Temperature: p.cfg.PlanTemperature,
		MaxTokens:   p.cfg.PlanMaxTokens,
	})
	if err != nil {
		p.logger.Error("plan generation failed",
			"modality", req.Modality,
			"lens", req.Lens.String(),
			"error", err,
		)
		return nil, err
	}

	sections := ParseSections(raw)
	if len(sections) == 0 {
		p.logger.Warn("plan response had no sections", "raw_len", len(raw))
		return &Result{RawText: raw}, ErrEmptyPlan
	}

	p.logger.Info("plan generated",
		"modality", req.Modality,
		"lens", req.Lens.String(),
		"style", req.Style.String(),
		"sections", len(sections),
	)

	return &Result{
		RawText:  raw,
		Sections: sections,
		HTML:     RenderPlan(sections),
	}, nil
}

// GenerateNote produces a DAP or SOAP progress note from a previously
// generated plan's raw text, returning rendered HTML.
func (p *Planner) GenerateNote(ctx context.Context, planText string, kind NoteKind) (string, error) {
	system, user := ComposeNotePrompt(planText, kind)

	raw, err := p.client.Complete(ctx, llm.CompletionRequest{
		System:      system,
		User:        user,
		Model:       p.cfg.Model,
		Temperature: p.cfg.NoteTemperature,
		MaxTokens:   p.cfg.NoteMaxTokens,
	})
	if err != nil {
		p.logger.Error("note generation failed", "kind", kind.String(), "error", err)
		return "", err
	}

	p.logger.Info("note generated", "kind", kind.String(), "raw_len", len(raw))
	return RenderNote(raw), nil
}

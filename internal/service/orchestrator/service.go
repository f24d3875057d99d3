// Package orchestrator drives one submission through dispatch, disaggregation,
// translation and export.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zhouzirui/cm-assistant/backend/internal/analysis/sections"
	"github.com/zhouzirui/cm-assistant/backend/internal/config"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/answer"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/language"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/ai"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/document"
	"github.com/zhouzirui/cm-assistant/backend/internal/service/translate"
)

var (
	ErrEmptyQuestion = errors.New("question is required")
	ErrNoPersonas    = errors.New("at least one persona is required")
)

// Gateway obtains raw persona answers from the model.
type Gateway interface {
	Ask(ctx context.Context, systemInstruction, question string) ai.Reply
	AskCombined(ctx context.Context, question string, personas []persona.Persona) ai.Reply
}

// Translator converts an answer into the target language.
type Translator interface {
	Translate(ctx context.Context, text, targetCode string) translate.Result
}

// Assembler renders an answer set as a downloadable document.
type Assembler interface {
	Build(set *answer.Set, order []string) (document.Artifact, error)
}

// Options wires the orchestrator's collaborators.
type Options struct {
	Personas    persona.Registry
	Languages   *language.Directory
	Gateway     Gateway
	Translator  Translator
	Assembler   Assembler
	Mode        config.DispatchMode
	Concurrency int
}

// Service runs submissions. It holds no per-submission state.
type Service struct {
	personas    persona.Registry
	languages   *language.Directory
	gateway     Gateway
	translator  Translator
	assembler   Assembler
	mode        config.DispatchMode
	concurrency int
}

// NewService validates opts and returns a Service.
func NewService(opts Options) (*Service, error) {
	switch {
	case opts.Personas == nil:
		return nil, fmt.Errorf("persona registry is required")
	case opts.Languages == nil:
		return nil, fmt.Errorf("language directory is required")
	case opts.Gateway == nil:
		return nil, fmt.Errorf("model gateway is required")
	case opts.Translator == nil:
		return nil, fmt.Errorf("translator is required")
	}

	assembler := opts.Assembler
	if assembler == nil {
		assembler = document.NewBuilder()
	}
	mode := opts.Mode
	if mode == "" {
		mode = config.ModeIndividual
	}
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		personas:    opts.Personas,
		languages:   opts.Languages,
		gateway:     opts.Gateway,
		translator:  opts.Translator,
		assembler:   assembler,
		mode:        mode,
		concurrency: concurrency,
	}, nil
}

// Mode returns the default dispatch mode.
func (s *Service) Mode() config.DispatchMode {
	return s.mode
}

// Outcome is the completed answer set for one submission.
type Outcome struct {
	ID       string
	Query    answer.Query
	Language language.Language
	Mode     config.DispatchMode
	Answers  *answer.Set
}

type runOptions struct {
	mode config.DispatchMode
}

// RunOption tunes a single Run.
type RunOption func(*runOptions)

// WithMode overrides the dispatch mode for one submission.
func WithMode(mode config.DispatchMode) RunOption {
	return func(o *runOptions) {
		if mode != "" {
			o.mode = mode
		}
	}
}

// draft is a persona's answer before translation.
type draft struct {
	persona persona.Persona
	text    string
	failure answer.Failure
	detail  string
}

// Run answers q. Only validation problems are returned as errors; every
// downstream failure is recorded on the affected persona's entry.
func (s *Service) Run(ctx context.Context, q answer.Query, opts ...RunOption) (*Outcome, error) {
	ro := runOptions{mode: s.mode}
	for _, opt := range opts {
		opt(&ro)
	}

	q = q.Normalized()
	if q.Question == "" {
		return nil, ErrEmptyQuestion
	}
	if len(q.Personas) == 0 {
		return nil, ErrNoPersonas
	}

	lang, err := s.languages.Lookup(q.Language)
	if err != nil {
		return nil, err
	}

	selected := make([]persona.Persona, 0, len(q.Personas))
	for _, id := range q.Personas {
		p, err := s.personas.Lookup(id)
		if err != nil {
			return nil, err
		}
		selected = append(selected, p)
	}

	outcome := &Outcome{
		ID:       uuid.NewString(),
		Query:    q,
		Language: lang,
		Mode:     ro.mode,
	}
	start := time.Now()
	log.Printf("[orchestrator] submission=%s mode=%s language=%s personas=%d", outcome.ID, ro.mode, lang.Code, len(selected))

	var drafts []draft
	switch ro.mode {
	case config.ModeCombined:
		drafts = s.dispatchCombined(ctx, q.Question, selected)
	default:
		drafts = s.dispatchIndividual(ctx, q.Question, selected)
	}

	s.translateAll(ctx, drafts, lang.Code)

	outcome.Answers = answer.NewSet(len(drafts))
	failures := 0
	for _, d := range drafts {
		if d.failure != answer.FailureNone {
			failures++
		}
		outcome.Answers.Put(answer.Entry{
			PersonaID: d.persona.ID,
			Label:     d.persona.Heading(),
			Icon:      d.persona.Icon,
			StyleKey:  d.persona.StyleKey,
			Text:      d.text,
			Failure:   d.failure,
			Detail:    d.detail,
		})
	}

	log.Printf("[orchestrator] submission=%s done answers=%d failed=%d took=%s",
		outcome.ID, outcome.Answers.Len(), failures, time.Since(start).Round(time.Millisecond))
	return outcome, nil
}

// Export runs q and renders the answers as a document in selection order.
func (s *Service) Export(ctx context.Context, q answer.Query, opts ...RunOption) (*Outcome, document.Artifact, error) {
	outcome, err := s.Run(ctx, q, opts...)
	if err != nil {
		return nil, document.Artifact{}, err
	}
	artifact, err := s.assembler.Build(outcome.Answers, outcome.Query.Personas)
	if err != nil {
		return outcome, document.Artifact{}, fmt.Errorf("building document: %w", err)
	}
	return outcome, artifact, nil
}

func (s *Service) dispatchIndividual(ctx context.Context, question string, selected []persona.Persona) []draft {
	drafts := make([]draft, len(selected))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, p := range selected {
		g.Go(func() error {
			reply := s.gateway.Ask(ctx, p.Instruction, question)
			drafts[i] = draftFromReply(p, reply)
			return nil
		})
	}
	_ = g.Wait()

	return drafts
}

func (s *Service) dispatchCombined(ctx context.Context, question string, selected []persona.Persona) []draft {
	drafts := make([]draft, len(selected))

	reply := s.gateway.AskCombined(ctx, question, selected)
	if reply.Failed() {
		for i, p := range selected {
			drafts[i] = draftFromReply(p, reply)
		}
		return drafts
	}

	ids := make([]string, len(selected))
	for i, p := range selected {
		ids[i] = p.ID
	}

	for i, section := range sections.ParseOrdered(reply.Text, ids) {
		d := draft{persona: selected[i], text: section.Body}
		if !section.Found {
			d.failure = answer.FailureMissing
			d.detail = "persona section missing from combined reply"
			log.Printf("[orchestrator] combined reply has no section for %q", section.PersonaID)
		}
		drafts[i] = d
	}
	return drafts
}

func (s *Service) translateAll(ctx context.Context, drafts []draft, target string) {
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range drafts {
		g.Go(func() error {
			d := &drafts[i]
			res := s.translator.Translate(ctx, d.text, target)
			d.text = res.Text
			if res.Failed() {
				if d.failure == answer.FailureNone {
					d.failure = answer.FailureTranslation
				}
				d.detail = joinDetail(d.detail, res.Err.Error())
			}
			return nil
		})
	}
	_ = g.Wait()
}

func draftFromReply(p persona.Persona, reply ai.Reply) draft {
	d := draft{persona: p, text: reply.Text}
	if reply.Failed() {
		d.failure = answer.FailureGateway
		d.detail = reply.Err.Error()
	}
	return d
}

func joinDetail(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "; ")
}

// Package service contains the correction workflows
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"redpen/internal/core/corrector"
	"redpen/internal/core/normalize"
	"redpen/internal/core/reconcile"
	perr "redpen/internal/platform/errors"
	"redpen/internal/services/api/correct/domain"
)

// Service defines the service contract for correct
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	rules    corrector.Corrector
	remote   corrector.Corrector // nil when no remote engine is configured
	norm     *normalize.Normalizer
	sessions *sessionGate
}

// New creates a new correct service. remote may be nil
func New(rules corrector.Corrector, remote corrector.Corrector) *Svc {
	if rules == nil {
		panic("correct.Service requires a non nil rule engine")
	}
	return &Svc{
		rules:    rules,
		remote:   remote,
		norm:     normalize.New(),
		sessions: newSessionGate(),
	}
}

// OpenSession creates a fresh idle session
func (s *Svc) OpenSession(context.Context) (domain.SessionInfo, error) {
	return domain.SessionInfo{SessionID: s.sessions.open(), State: StateIdle}, nil
}

// Correct runs the selected engine and reconciles its edits against the
// original text
func (s *Svc) Correct(ctx context.Context, in domain.CorrectionInput) (domain.CorrectionResult, error) {
	res, _, err := s.run(ctx, in)
	return res, err
}

// CorrectDetailed is Correct plus the rendered segment view
func (s *Svc) CorrectDetailed(ctx context.Context, in domain.CorrectionInput) (domain.DetailedResult, error) {
	res, located, err := s.run(ctx, in)
	if err != nil {
		return domain.DetailedResult{}, err
	}

	out := domain.DetailedResult{CorrectionResult: res}
	for _, seg := range reconcile.Project(res.Original, located) {
		ds := domain.Segment{Kind: seg.Kind, Text: seg.Text}
		if seg.Edit != nil {
			c := toDTO(*seg.Edit)
			ds.Correction = &c
		}
		out.Segments = append(out.Segments, ds)
	}
	for _, e := range reconcile.Unresolved(located) {
		out.Unresolved = append(out.Unresolved, toDTO(e))
	}
	return out, nil
}

// Analyze reports rule findings and simple shape statistics without
// returning a rewritten text
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalysisResult, error) {
	text := s.norm.Normalize(in.Text)

	res, err := s.rules.Correct(ctx, text, corrector.ModeProofreading)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	located := reconcile.Locate(text, toEdits(res.Corrections))
	issues := make([]domain.Correction, 0, len(located))
	for _, e := range located {
		issues = append(issues, toDTO(e))
	}

	return domain.AnalysisResult{
		CharCount:     utf8.RuneCountInString(text),
		WordCount:     len(strings.Fields(text)),
		SentenceCount: countSentences(text),
		IssueCount:    len(issues),
		Issues:        issues,
	}, nil
}

// run is the shared submit flow: gate the session, normalize, pick the
// engine, locate the returned edits
func (s *Svc) run(ctx context.Context, in domain.CorrectionInput) (domain.CorrectionResult, []reconcile.Edit, error) {
	if err := s.sessions.begin(in.SessionID); err != nil {
		return domain.CorrectionResult{}, nil, err
	}
	defer s.sessions.end(in.SessionID)

	mode := in.Mode
	if mode == "" {
		mode = corrector.ModeProofreading
	}

	engine, name, err := s.pick(in.Engine)
	if err != nil {
		return domain.CorrectionResult{}, nil, err
	}

	text := s.norm.Normalize(in.Text)

	res, err := engine.Correct(ctx, text, mode)
	if err != nil {
		return domain.CorrectionResult{}, nil, err
	}

	located := reconcile.Locate(text, toEdits(res.Corrections))

	out := domain.CorrectionResult{
		Original:       text,
		Corrected:      res.Corrected,
		HasCorrections: len(located) > 0,
		Mode:           mode,
		Engine:         name,
		Corrections:    make([]domain.Correction, 0, len(located)),
		Statistics: domain.Statistics{
			OriginalLength:  utf8.RuneCountInString(text),
			CorrectedLength: utf8.RuneCountInString(res.Corrected),
			NumCorrections:  len(located),
		},
	}
	for _, e := range located {
		out.Corrections = append(out.Corrections, toDTO(e))
	}
	return out, located, nil
}

// pick resolves the engine choice, defaulting to the rule engine
func (s *Svc) pick(engine string) (corrector.Corrector, string, error) {
	switch engine {
	case "", domain.EngineRules:
		return s.rules, domain.EngineRules, nil
	case domain.EngineRemote:
		if s.remote == nil {
			return nil, "", perr.Unavailablef("remote corrector is not configured")
		}
		return s.remote, domain.EngineRemote, nil
	default:
		return nil, "", perr.InvalidArgf("unknown engine %q", engine)
	}
}

// toEdits converts engine corrections into locator input, synthesizing a
// missing explanation as "<original> → <corrected>"
func toEdits(in []corrector.Correction) []reconcile.Edit {
	out := make([]reconcile.Edit, 0, len(in))
	for _, c := range in {
		expl := c.Explanation
		if expl == "" {
			expl = c.Original + " → " + c.Corrected
		}
		out = append(out, reconcile.Edit{
			Category:    c.Category,
			Fragment:    c.Original,
			Replacement: c.Corrected,
			Explanation: expl,
		})
	}
	return out
}

func toDTO(e reconcile.Edit) domain.Correction {
	return domain.Correction{
		Type:        e.Category,
		Original:    e.Fragment,
		Corrected:   e.Replacement,
		Explanation: e.Explanation,
		Start:       e.Start,
		End:         e.End,
		Resolved:    e.Resolved,
	}
}

// countSentences counts terminal punctuation runs, with a floor of one for
// non empty text
func countSentences(s string) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	n := 0
	prevTerminal := false
	for _, r := range s {
		terminal := r == '.' || r == '!' || r == '?'
		if terminal && !prevTerminal {
			n++
		}
		prevTerminal = terminal
	}
	if n == 0 {
		n = 1
	}
	return n
}

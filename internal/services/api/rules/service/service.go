// Package service exposes read only views over the compiled rulepack
package service

import (
	"context"

	"redpen/internal/core/rulepack"
	"redpen/internal/services/api/rules/domain"
)

// Service defines the service contract for rules
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	pack *rulepack.Pack
}

// New creates a new rules service
func New(pack *rulepack.Pack) *Svc {
	if pack == nil {
		panic("rules.Service requires a non nil rulepack")
	}
	return &Svc{pack: pack}
}

// Info returns pack version and rule counts
func (s *Svc) Info(context.Context) (domain.PackInfo, error) {
	return domain.PackInfo{
		Version:          s.pack.Version,
		SpellingCount:    len(s.pack.Spelling),
		SpacingCount:     len(s.pack.Spacing),
		PunctuationCount: len(s.pack.Punctuation),
		Meta:             s.pack.Meta,
	}, nil
}

// Spelling lists the literal replacement pairs
func (s *Svc) Spelling(context.Context) ([]domain.SpellingRule, error) {
	out := make([]domain.SpellingRule, 0, len(s.pack.Spelling))
	for _, r := range s.pack.Spelling {
		out = append(out, domain.SpellingRule{Wrong: r.Wrong, Right: r.Right, Note: r.Note})
	}
	return out, nil
}

// Spacing lists the spacing pattern rules
func (s *Svc) Spacing(context.Context) ([]domain.PatternRule, error) {
	return patternRules(s.pack.Spacing), nil
}

// Punctuation lists the punctuation pattern rules
func (s *Svc) Punctuation(context.Context) ([]domain.PatternRule, error) {
	return patternRules(s.pack.Punctuation), nil
}

func patternRules(in []rulepack.RegexRule) []domain.PatternRule {
	out := make([]domain.PatternRule, 0, len(in))
	for _, r := range in {
		out = append(out, domain.PatternRule{ID: r.ID, Pattern: r.Pattern, Replace: r.Replace, Note: r.Note})
	}
	return out
}

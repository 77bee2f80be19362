package module

import (
	"context"

	rulesdom "redpen/internal/services/api/rules/domain"
	rulessvc "redpen/internal/services/api/rules/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptRulesPort adapts the rules service to the domain port interface
type adaptRulesPort struct{ svc rulessvc.Service }

// Info implements the domain ServicePort interface
func (a adaptRulesPort) Info(ctx context.Context) (rulesdom.PackInfo, error) {
	return a.svc.Info(ctx)
}

// Spelling implements the domain ServicePort interface
func (a adaptRulesPort) Spelling(ctx context.Context) ([]rulesdom.SpellingRule, error) {
	return a.svc.Spelling(ctx)
}

// Spacing implements the domain ServicePort interface
func (a adaptRulesPort) Spacing(ctx context.Context) ([]rulesdom.PatternRule, error) {
	return a.svc.Spacing(ctx)
}

// Punctuation implements the domain ServicePort interface
func (a adaptRulesPort) Punctuation(ctx context.Context) ([]rulesdom.PatternRule, error) {
	return a.svc.Punctuation(ctx)
}

package domain

import "context"

// ServicePort defines the service contract for rules
type ServicePort interface {
	Info(ctx context.Context) (PackInfo, error)
	Spelling(ctx context.Context) ([]SpellingRule, error)
	Spacing(ctx context.Context) ([]PatternRule, error)
	Punctuation(ctx context.Context) ([]PatternRule, error)
}

// Package corrector defines the correction engine contract and the local
// rule-based engine built on the embedded rulepack
package corrector

import (
	"context"
)

// Correction modes, increasing levels of intervention
const (
	ModeProofreading = "proofreading"
	ModeCopyediting  = "copyediting"
	ModeRewriting    = "rewriting"
)

// ValidMode reports whether m is one of the supported modes
func ValidMode(m string) bool {
	switch m {
	case ModeProofreading, ModeCopyediting, ModeRewriting:
		return true
	}
	return false
}

// Correction is a single change an engine made or proposed
type Correction struct {
	Category    string
	Original    string
	Corrected   string
	Explanation string
}

// Result is the full outcome of one engine run
type Result struct {
	Original    string
	Corrected   string
	Corrections []Correction
}

// Corrector is implemented by the rule engine and by remote adapters
type Corrector interface {
	Correct(ctx context.Context, text, mode string) (Result, error)
}

package module

import (
	"context"

	"redpen/internal/core/corrector"
	correctdom "redpen/internal/services/api/correct/domain"
	correctsvc "redpen/internal/services/api/correct/service"
)

// Ports are the injectable dependencies of the correct module.
// Remote is optional; without it only the rule engine is available
type Ports struct {
	Remote corrector.Corrector
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCorrectPort adapts the correct service to the domain port interface
type adaptCorrectPort struct{ svc correctsvc.Service }

// Correct implements the domain ServicePort interface
func (a adaptCorrectPort) Correct(ctx context.Context, in correctdom.CorrectionInput) (correctdom.CorrectionResult, error) {
	return a.svc.Correct(ctx, in)
}

// CorrectDetailed implements the domain ServicePort interface
func (a adaptCorrectPort) CorrectDetailed(ctx context.Context, in correctdom.CorrectionInput) (correctdom.DetailedResult, error) {
	return a.svc.CorrectDetailed(ctx, in)
}

// Analyze implements the domain ServicePort interface
func (a adaptCorrectPort) Analyze(ctx context.Context, in correctdom.AnalyzeInput) (correctdom.AnalysisResult, error) {
	return a.svc.Analyze(ctx, in)
}

// OpenSession implements the domain ServicePort interface
func (a adaptCorrectPort) OpenSession(ctx context.Context) (correctdom.SessionInfo, error) {
	return a.svc.OpenSession(ctx)
}

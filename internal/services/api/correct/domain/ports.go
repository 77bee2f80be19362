package domain

import "context"

// ServicePort defines the service contract for correct
type ServicePort interface {
	Correct(ctx context.Context, in CorrectionInput) (CorrectionResult, error)
	CorrectDetailed(ctx context.Context, in CorrectionInput) (DetailedResult, error)
	Analyze(ctx context.Context, in AnalyzeInput) (AnalysisResult, error)
	OpenSession(ctx context.Context) (SessionInfo, error)
}

package symptomcheck

import (
	"context"

	"github.com/clinician-ai/portal-service/internal/auth"
)

// ServiceInterface defines the contract for the symptom-analysis pipeline
type ServiceInterface interface {
	Analyze(ctx context.Context, principal *auth.Principal, req AnalysisRequest) (*AnalysisResult, error)
	ListChecks(ctx context.Context, principal *auth.Principal, limit int) ([]PastCheck, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)

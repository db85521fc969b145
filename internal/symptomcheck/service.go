package symptomcheck

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/clinician-ai/portal-service/internal/auth"
	"github.com/clinician-ai/portal-service/internal/llm"
	"github.com/clinician-ai/portal-service/internal/messaging"
)

// pastChecksLimit caps how many prior checks are fed back into the prompt.
const pastChecksLimit = 5

// MetricsRecorder interface for recording pipeline metrics
type MetricsRecorder interface {
	RecordSymptomCheck(ctx context.Context, outcome string, authenticated bool)
	RecordFallback(ctx context.Context)
	RecordPersistFailure(ctx context.Context)
}

type Service struct {
	repo      RepositoryInterface
	gateway   llm.Completer
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
}

// NewService creates the analysis service. publisher and metrics may be nil;
// both are best-effort concerns.
func NewService(repo RepositoryInterface, gateway llm.Completer, publisher messaging.PublisherInterface, metrics MetricsRecorder) *Service {
	return &Service{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Analyze runs the full pipeline for one request: load context (best-effort),
// compose prompts, call the gateway, interpret the reply, persist the record
// for authenticated callers (best-effort), publish an event (best-effort).
//
// Only gateway failures propagate as errors. Context-loading and persistence
// failures are logged and swallowed so the caller still gets an analysis.
// principal is nil for anonymous callers.
func (s *Service) Analyze(ctx context.Context, principal *auth.Principal, req AnalysisRequest) (*AnalysisResult, error) {
	if strings.TrimSpace(req.Symptoms) == "" {
		return nil, ErrMissingSymptoms
	}

	var snapshot *HistorySnapshot
	var past []PastCheck
	if principal != nil {
		var err error
		snapshot, err = s.repo.GetHistorySnapshot(ctx, principal.UserID)
		if err != nil {
			log.Printf("Warning: medical history lookup failed, proceeding without: %v", err)
			snapshot = nil
		}
		past, err = s.repo.ListRecentChecks(ctx, principal.UserID, pastChecksLimit)
		if err != nil {
			log.Printf("Warning: past checks lookup failed, proceeding without: %v", err)
			past = nil
		}
	}

	systemPrompt, userPrompt := ComposePrompts(req, snapshot, past)

	reply, err := s.gateway.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordSymptomCheck(ctx, "gateway_error", principal != nil)
		}
		return nil, err
	}

	analysis, usedFallback := Interpret(reply)
	if usedFallback {
		log.Printf("Warning: could not parse model reply, serving fallback analysis")
		if s.metrics != nil {
			s.metrics.RecordFallback(ctx)
		}
	}

	// The analysis is final at this point. Everything below is best-effort
	// and must not change what the caller receives.
	if principal != nil {
		s.persist(ctx, principal.UserID, req, analysis)
	}
	s.publishCompleted(ctx, principal, analysis, usedFallback)

	if s.metrics != nil {
		outcome := "ok"
		if usedFallback {
			outcome = "fallback"
		}
		s.metrics.RecordSymptomCheck(ctx, outcome, principal != nil)
	}

	return &analysis, nil
}

// ListChecks returns the caller's recent symptom-check history.
func (s *Service) ListChecks(ctx context.Context, principal *auth.Principal, limit int) ([]PastCheck, error) {
	if limit <= 0 || limit > 50 {
		limit = pastChecksLimit
	}
	return s.repo.ListRecentChecks(ctx, principal.UserID, limit)
}

func (s *Service) persist(ctx context.Context, userID string, req AnalysisRequest, analysis AnalysisResult) {
	conditions := make([]string, 0, len(analysis.Conditions))
	for _, c := range analysis.Conditions {
		conditions = append(conditions, c.Name)
	}

	err := s.repo.InsertCheck(ctx, Record{
		UserID:               userID,
		Symptoms:             req.Symptoms,
		Duration:             req.Duration,
		Severity:             req.Severity,
		AgeRange:             req.Age,
		Analysis:             analysis,
		ConditionsIdentified: conditions,
		SeverityLevel:        analysis.Severity,
		IsEmergency:          analysis.IsEmergency,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to save symptom check for user %s: %v", userID, err)
		if s.metrics != nil {
			s.metrics.RecordPersistFailure(ctx)
		}
	}
}

func (s *Service) publishCompleted(ctx context.Context, principal *auth.Principal, analysis AnalysisResult, usedFallback bool) {
	if s.publisher == nil {
		return
	}

	conditions := make([]string, 0, len(analysis.Conditions))
	for _, c := range analysis.Conditions {
		conditions = append(conditions, c.Name)
	}

	userID := ""
	if principal != nil {
		userID = principal.UserID
	}

	event := messaging.SymptomCheckCompletedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventSymptomCheckCompleted),
		Data: messaging.SymptomCheckCompletedData{
			UserID:        userID,
			SeverityLevel: analysis.Severity,
			IsEmergency:   analysis.IsEmergency,
			Conditions:    conditions,
			Fallback:      usedFallback,
			CompletedAt:   time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventSymptomCheckCompleted, event); err != nil {
		log.Printf("Warning: failed to publish symptom_check.completed event: %v", err)
	}
}

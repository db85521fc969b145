package prescription

import (
	"context"
	"log"
	"strings"

	"github.com/clinician-ai/portal-service/internal/messaging"
	"github.com/clinician-ai/portal-service/internal/pagination"
)

// MetricsRecorder abstracts prescription metrics
type MetricsRecorder interface {
	RecordPrescriptionOperation(ctx context.Context, operation string)
}

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics MetricsRecorder) *Service {
	return &Service{repo: repo, publisher: publisher, metrics: metrics}
}

// Create validates and stores a prescription issued by the doctor
func (s *Service) Create(ctx context.Context, doctorID string, req CreatePrescriptionRequest) (*PrescriptionResponse, error) {
	if strings.TrimSpace(req.PatientID) == "" || strings.TrimSpace(req.PatientName) == "" {
		return nil, ErrMissingPatient
	}
	if strings.TrimSpace(req.Diagnosis) == "" {
		return nil, ErrMissingDiagnosis
	}
	if req.PatientAge < 0 || req.PatientAge > 150 {
		return nil, ErrInvalidAge
	}
	if len(req.Medicines) == 0 {
		return nil, ErrNoMedicines
	}
	for _, m := range req.Medicines {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Dosage) == "" {
			return nil, ErrInvalidMedicine
		}
	}

	created, err := s.repo.Create(ctx, doctorID, req)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordPrescriptionOperation(ctx, "create")
	}
	s.publishCreated(ctx, created)
	return created, nil
}

// Get returns a prescription visible to the requesting user.
// Only the issuing doctor and the patient may read it.
func (s *Service) Get(ctx context.Context, userID, id string) (*PrescriptionResponse, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if p.DoctorID != userID && p.PatientID != userID {
		return nil, ErrNotAuthorized
	}
	return p, nil
}

// ListForPatient returns the patient's prescriptions, newest first
func (s *Service) ListForPatient(ctx context.Context, patientID string, params pagination.Params) ([]PrescriptionResponse, pagination.Meta, error) {
	prescriptions, total, err := s.repo.ListByPatient(ctx, patientID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return prescriptions, params.CalculateMeta(total), nil
}

// ListForDoctor returns prescriptions issued by the doctor, newest first
func (s *Service) ListForDoctor(ctx context.Context, doctorID string, params pagination.Params) ([]PrescriptionResponse, pagination.Meta, error) {
	prescriptions, total, err := s.repo.ListByDoctor(ctx, doctorID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return prescriptions, params.CalculateMeta(total), nil
}

// Verify returns the public authenticity view for a prescription id.
// Unknown ids yield a non-nil response with Valid=false.
func (s *Service) Verify(ctx context.Context, id string) (*VerificationResponse, error) {
	v, err := s.repo.GetVerification(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return &VerificationResponse{Valid: false}, nil
	}
	return v, nil
}

func (s *Service) publishCreated(ctx context.Context, p *PrescriptionResponse) {
	if s.publisher == nil {
		return
	}
	event := messaging.PrescriptionCreatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventPrescriptionCreated),
		Data: messaging.PrescriptionCreatedData{
			PrescriptionID: p.ID,
			DoctorID:       p.DoctorID,
			PatientID:      p.PatientID,
			Diagnosis:      p.Diagnosis,
			CreatedAt:      p.CreatedAt,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventPrescriptionCreated, event); err != nil {
		log.Printf("Warning: failed to publish prescription created event: %v", err)
	}
}

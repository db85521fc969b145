package prescription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinician-ai/portal-service/internal/messaging"
	"github.com/clinician-ai/portal-service/internal/testutil"
)

// mockRepository implements RepositoryInterface for testing
type mockRepository struct {
	createFunc          func(ctx context.Context, doctorID string, req CreatePrescriptionRequest) (*PrescriptionResponse, error)
	getFunc             func(ctx context.Context, id string) (*PrescriptionResponse, error)
	listByPatientFunc   func(ctx context.Context, patientID string, limit, offset int) ([]PrescriptionResponse, int, error)
	listByDoctorFunc    func(ctx context.Context, doctorID string, limit, offset int) ([]PrescriptionResponse, int, error)
	getVerificationFunc func(ctx context.Context, id string) (*VerificationResponse, error)
}

func (m *mockRepository) Create(ctx context.Context, doctorID string, req CreatePrescriptionRequest) (*PrescriptionResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, doctorID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Get(ctx context.Context, id string) (*PrescriptionResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]PrescriptionResponse, int, error) {
	if m.listByPatientFunc != nil {
		return m.listByPatientFunc(ctx, patientID, limit, offset)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) ListByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]PrescriptionResponse, int, error) {
	if m.listByDoctorFunc != nil {
		return m.listByDoctorFunc(ctx, doctorID, limit, offset)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) GetVerification(ctx context.Context, id string) (*VerificationResponse, error) {
	if m.getVerificationFunc != nil {
		return m.getVerificationFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func validPrescription() CreatePrescriptionRequest {
	return CreatePrescriptionRequest{
		PatientID:   "patient-1",
		PatientName: "Jane Roe",
		PatientAge:  34,
		Diagnosis:   "Acute bronchitis",
		Medicines: []Medicine{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days"},
		},
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, doctorID string, req CreatePrescriptionRequest) (*PrescriptionResponse, error) {
			return &PrescriptionResponse{
				ID:               "rx-1",
				DoctorID:         doctorID,
				PatientID:        req.PatientID,
				Diagnosis:        req.Diagnosis,
				Medicines:        req.Medicines,
				PrescriptionDate: time.Now(),
			}, nil
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(repo, publisher, nil)

	rx, err := service.Create(context.Background(), "doctor-1", validPrescription())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if rx.DoctorID != "doctor-1" {
		t.Errorf("Expected doctor-1, got %s", rx.DoctorID)
	}

	publisher.AssertEventPublished(t, messaging.EventPrescriptionCreated)
}

func TestCreate_Validation(t *testing.T) {
	service := NewService(&mockRepository{}, nil, nil)

	cases := []struct {
		name     string
		mutate   func(*CreatePrescriptionRequest)
		expected error
	}{
		{"missing patient", func(r *CreatePrescriptionRequest) { r.PatientID = "" }, ErrMissingPatient},
		{"missing diagnosis", func(r *CreatePrescriptionRequest) { r.Diagnosis = "  " }, ErrMissingDiagnosis},
		{"no medicines", func(r *CreatePrescriptionRequest) { r.Medicines = nil }, ErrNoMedicines},
		{"medicine without dosage", func(r *CreatePrescriptionRequest) { r.Medicines[0].Dosage = "" }, ErrInvalidMedicine},
		{"negative age", func(r *CreatePrescriptionRequest) { r.PatientAge = -1 }, ErrInvalidAge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPrescription()
			tc.mutate(&req)

			_, err := service.Create(context.Background(), "doctor-1", req)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestGet_Visibility(t *testing.T) {
	repo := &mockRepository{
		getFunc: func(ctx context.Context, id string) (*PrescriptionResponse, error) {
			return &PrescriptionResponse{ID: id, DoctorID: "doctor-1", PatientID: "patient-1"}, nil
		},
	}

	service := NewService(repo, nil, nil)

	if _, err := service.Get(context.Background(), "doctor-1", "rx-1"); err != nil {
		t.Errorf("Issuing doctor should see the prescription: %v", err)
	}
	if _, err := service.Get(context.Background(), "patient-1", "rx-1"); err != nil {
		t.Errorf("Patient should see the prescription: %v", err)
	}
	if _, err := service.Get(context.Background(), "stranger", "rx-1"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Expected ErrNotAuthorized for a third party, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockRepository{
		getFunc: func(ctx context.Context, id string) (*PrescriptionResponse, error) {
			return nil, nil
		},
	}

	service := NewService(repo, nil, nil)

	if _, err := service.Get(context.Background(), "doctor-1", "rx-missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestVerify_UnknownIDIsInvalidNotError(t *testing.T) {
	repo := &mockRepository{
		getVerificationFunc: func(ctx context.Context, id string) (*VerificationResponse, error) {
			return nil, nil
		},
	}

	service := NewService(repo, nil, nil)

	v, err := service.Verify(context.Background(), "rx-unknown")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if v.Valid {
		t.Error("Unknown id must verify as invalid")
	}
}

func TestVerify_KnownID(t *testing.T) {
	repo := &mockRepository{
		getVerificationFunc: func(ctx context.Context, id string) (*VerificationResponse, error) {
			return &VerificationResponse{
				Valid:          true,
				PrescriptionID: id,
				DoctorName:     "Dr. Okafor",
				Specialization: "Pulmonology",
			}, nil
		},
	}

	service := NewService(repo, nil, nil)

	v, err := service.Verify(context.Background(), "rx-1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !v.Valid || v.DoctorName != "Dr. Okafor" {
		t.Errorf("Unexpected verification: %+v", v)
	}
}

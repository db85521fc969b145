package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinician-ai/portal-service/internal/messaging"
	"github.com/clinician-ai/portal-service/internal/pagination"
	"github.com/clinician-ai/portal-service/internal/testutil"
)

// mockRepository implements RepositoryInterface for testing
type mockRepository struct {
	createFunc        func(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error)
	getFunc           func(ctx context.Context, id string) (*AppointmentResponse, error)
	listByPatientFunc func(ctx context.Context, patientID string, limit, offset int) ([]AppointmentResponse, int, error)
	listByDoctorFunc  func(ctx context.Context, doctorID string, limit, offset int) ([]AppointmentResponse, int, error)
	updateFunc        func(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
}

func (m *mockRepository) Create(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, patientID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Get(ctx context.Context, id string) (*AppointmentResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]AppointmentResponse, int, error) {
	if m.listByPatientFunc != nil {
		return m.listByPatientFunc(ctx, patientID, limit, offset)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) ListByDoctor(ctx context.Context, doctorID string, limit, offset int) ([]AppointmentResponse, int, error) {
	if m.listByDoctorFunc != nil {
		return m.listByDoctorFunc(ctx, doctorID, limit, offset)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) Update(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func validBooking() BookAppointmentRequest {
	return BookAppointmentRequest{
		DoctorID:        "doctor-1",
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "Checkup",
	}
}

func TestBook_Success(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error) {
			return &AppointmentResponse{
				ID:        "appt-1",
				PatientID: patientID,
				DoctorID:  req.DoctorID,
				Reason:    req.Reason,
				Status:    StatusPending,
			}, nil
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(repo, publisher, nil)

	appt, err := service.Book(context.Background(), "patient-1", validBooking())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if appt.Status != StatusPending {
		t.Errorf("Expected pending status, got %s", appt.Status)
	}

	publisher.AssertEventPublished(t, messaging.EventAppointmentBooked)
}

func TestBook_Validation(t *testing.T) {
	service := NewService(&mockRepository{}, nil, nil)

	cases := []struct {
		name     string
		mutate   func(*BookAppointmentRequest)
		expected error
	}{
		{"missing reason", func(r *BookAppointmentRequest) { r.Reason = "" }, ErrMissingReason},
		{"missing date", func(r *BookAppointmentRequest) { r.AppointmentDate = time.Time{} }, ErrMissingDate},
		{"past date", func(r *BookAppointmentRequest) { r.AppointmentDate = time.Now().Add(-time.Hour) }, ErrPastDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBooking()
			tc.mutate(&req)

			_, err := service.Book(context.Background(), "patient-1", req)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestBook_PublishFailureIsSwallowed(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, patientID string, req BookAppointmentRequest) (*AppointmentResponse, error) {
			return &AppointmentResponse{ID: "appt-1", Status: StatusPending}, nil
		},
	}

	service := NewService(repo, failingPublisher{}, nil)

	if _, err := service.Book(context.Background(), "patient-1", validBooking()); err != nil {
		t.Fatalf("Publish failure must not fail the booking, got: %v", err)
	}
}

type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	return errors.New("broker down")
}

func (failingPublisher) Close() error { return nil }

func TestUpdate_OnlyAssignedDoctor(t *testing.T) {
	repo := &mockRepository{
		getFunc: func(ctx context.Context, id string) (*AppointmentResponse, error) {
			return &AppointmentResponse{ID: id, DoctorID: "doctor-1", Status: StatusPending}, nil
		},
	}

	service := NewService(repo, nil, nil)

	status := StatusConfirmed
	_, err := service.Update(context.Background(), "doctor-2", "appt-1", UpdateAppointmentRequest{Status: &status})
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("Expected ErrNotOwner, got %v", err)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	service := NewService(&mockRepository{}, nil, nil)

	status := "rescheduled"
	_, err := service.Update(context.Background(), "doctor-1", "appt-1", UpdateAppointmentRequest{Status: &status})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdate_StatusChangePublishesEvent(t *testing.T) {
	status := StatusConfirmed
	repo := &mockRepository{
		getFunc: func(ctx context.Context, id string) (*AppointmentResponse, error) {
			return &AppointmentResponse{ID: id, PatientID: "patient-1", DoctorID: "doctor-1", Status: StatusPending}, nil
		},
		updateFunc: func(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
			return &AppointmentResponse{ID: id, PatientID: "patient-1", DoctorID: "doctor-1", Status: status}, nil
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(repo, publisher, nil)

	if _, err := service.Update(context.Background(), "doctor-1", "appt-1", UpdateAppointmentRequest{Status: &status}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	publisher.AssertEventPublished(t, messaging.EventAppointmentUpdated)
}

func TestUpdate_NotesOnlyDoesNotPublish(t *testing.T) {
	repo := &mockRepository{
		getFunc: func(ctx context.Context, id string) (*AppointmentResponse, error) {
			return &AppointmentResponse{ID: id, DoctorID: "doctor-1", Status: StatusConfirmed}, nil
		},
		updateFunc: func(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
			return &AppointmentResponse{ID: id, DoctorID: "doctor-1", Status: StatusConfirmed}, nil
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(repo, publisher, nil)

	notes := "Patient responding well"
	if _, err := service.Update(context.Background(), "doctor-1", "appt-1", UpdateAppointmentRequest{Notes: &notes}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	publisher.AssertEventNotPublished(t, messaging.EventAppointmentUpdated)
}

func TestListForPatient_Pagination(t *testing.T) {
	repo := &mockRepository{
		listByPatientFunc: func(ctx context.Context, patientID string, limit, offset int) ([]AppointmentResponse, int, error) {
			if limit != 10 || offset != 10 {
				t.Errorf("Expected limit 10 offset 10, got %d/%d", limit, offset)
			}
			return []AppointmentResponse{{ID: "a1"}}, 25, nil
		},
	}

	service := NewService(repo, nil, nil)

	resp, err := service.ListForPatient(context.Background(), "patient-1", pagination.Params{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Pagination.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", resp.Pagination.TotalPages)
	}
	if !resp.Pagination.HasNext || !resp.Pagination.HasPrevious {
		t.Errorf("Page 2 of 3 should have next and previous: %+v", resp.Pagination)
	}
}

package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clinician-ai/portal-service/internal/appointment"
	"github.com/clinician-ai/portal-service/internal/auth"
	"github.com/clinician-ai/portal-service/internal/doctor"
	"github.com/clinician-ai/portal-service/internal/llm"
	"github.com/clinician-ai/portal-service/internal/medhistory"
	"github.com/clinician-ai/portal-service/internal/messaging"
	"github.com/clinician-ai/portal-service/internal/prescription"
	"github.com/clinician-ai/portal-service/internal/profile"
	"github.com/clinician-ai/portal-service/internal/supportchat"
	"github.com/clinician-ai/portal-service/internal/symptomcheck"
	"github.com/clinician-ai/portal-service/internal/telemetry"
)

// SetupRouter initializes all routes for the application.
// gateway, publisher and metrics may be nil; the affected features degrade gracefully.
func SetupRouter(db *sql.DB, verifier *auth.Verifier, perms auth.Permissions, gateway llm.Completer, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *mux.Router {
	// A nil *telemetry.Metrics must stay a nil interface inside the services,
	// so each conversion is guarded explicitly.
	var (
		checkMetrics symptomcheck.MetricsRecorder
		apptMetrics  appointment.MetricsRecorder
		rxMetrics    prescription.MetricsRecorder
		authMetrics  auth.MetricsRecorder
	)
	if metrics != nil {
		checkMetrics = metrics
		apptMetrics = metrics
		rxMetrics = metrics
		authMetrics = metrics
	}

	// Initialize symptom check components
	checkRepo := symptomcheck.NewRepository(db)
	checkService := symptomcheck.NewService(checkRepo, gateway, publisher, checkMetrics)
	checkHandler := symptomcheck.NewHandler(checkService)

	// Initialize profile components
	profileRepo := profile.NewRepository(db)
	profileService := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileService)

	// Initialize medical history components
	historyRepo := medhistory.NewRepository(db)
	historyService := medhistory.NewService(historyRepo)
	historyHandler := medhistory.NewHandler(historyService)

	// Initialize appointment components
	apptRepo := appointment.NewRepository(db)
	apptService := appointment.NewService(apptRepo, publisher, apptMetrics)
	apptHandler := appointment.NewHandler(apptService)

	// Initialize prescription components
	rxRepo := prescription.NewRepository(db)
	rxService := prescription.NewService(rxRepo, publisher, rxMetrics)
	rxHandler := prescription.NewHandler(rxService)

	// Initialize doctor directory components
	doctorRepo := doctor.NewRepository(db)
	doctorService := doctor.NewService(doctorRepo)
	doctorHandler := doctor.NewHandler(doctorService)

	// Initialize support chat components
	chatService := supportchat.NewService(gateway)
	chatHandler := supportchat.NewHandler(chatService)

	authn := auth.MiddlewareWithMetrics(verifier, authMetrics)

	r := mux.NewRouter()

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"portal-service"}`))
	}).Methods("GET")

	// Symptom checker. Analysis works for anonymous callers too; a valid
	// bearer token additionally enables personalization and persistence.
	r.Handle("/api/symptom-checks",
		auth.OptionalMiddleware(verifier)(
			http.HandlerFunc(checkHandler.Analyze),
		),
	).Methods("POST")

	r.Handle("/api/symptom-checks",
		authn(
			http.HandlerFunc(checkHandler.ListChecks),
		),
	).Methods("GET")

	// Profile routes
	r.Handle("/api/profile",
		authn(
			auth.RequirePermission("profile:view", perms)(
				http.HandlerFunc(profileHandler.GetMyProfile),
			),
		),
	).Methods("GET")

	r.Handle("/api/profile",
		authn(
			auth.RequirePermission("profile:update", perms)(
				http.HandlerFunc(profileHandler.UpdateMyProfile),
			),
		),
	).Methods("PUT")

	// Medical history routes (patient-owned)
	r.Handle("/api/medical-history",
		authn(
			auth.RequirePermission("medical_history:view", perms)(
				http.HandlerFunc(historyHandler.GetMyHistory),
			),
		),
	).Methods("GET")

	r.Handle("/api/medical-history",
		authn(
			auth.RequirePermission("medical_history:update", perms)(
				http.HandlerFunc(historyHandler.UpdateMyHistory),
			),
		),
	).Methods("PUT")

	// Appointment routes (patients book, doctors update)
	r.Handle("/api/appointments",
		authn(
			auth.RequirePermission("appointment:create", perms)(
				http.HandlerFunc(apptHandler.Book),
			),
		),
	).Methods("POST")

	r.Handle("/api/appointments",
		authn(
			auth.RequirePermission("appointment:view", perms)(
				http.HandlerFunc(apptHandler.List),
			),
		),
	).Methods("GET")

	r.Handle("/api/appointments/{id}",
		authn(
			auth.RequirePermission("appointment:update", perms)(
				http.HandlerFunc(apptHandler.Update),
			),
		),
	).Methods("PATCH")

	// Prescription routes (doctors create, both sides view)
	r.Handle("/api/prescriptions",
		authn(
			auth.RequirePermission("prescription:create", perms)(
				http.HandlerFunc(rxHandler.Create),
			),
		),
	).Methods("POST")

	r.Handle("/api/prescriptions",
		authn(
			auth.RequirePermission("prescription:view", perms)(
				http.HandlerFunc(rxHandler.List),
			),
		),
	).Methods("GET")

	r.Handle("/api/prescriptions/{id}",
		authn(
			auth.RequirePermission("prescription:view", perms)(
				http.HandlerFunc(rxHandler.Get),
			),
		),
	).Methods("GET")

	// Public prescription verification for pharmacies
	r.HandleFunc("/api/verify/{id}", rxHandler.Verify).Methods("GET")

	// Doctor directory, visible to any signed-in user
	r.Handle("/api/doctors",
		authn(
			http.HandlerFunc(doctorHandler.List),
		),
	).Methods("GET")

	// Support chat
	r.Handle("/api/support-chat",
		authn(
			http.HandlerFunc(chatHandler.Chat),
		),
	).Methods("POST")

	return r
}

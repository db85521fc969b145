//go:build integration

package e2e

import (
	"crypto/rsa"
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/clinician-ai/portal-service/internal/auth"
	httpserver "github.com/clinician-ai/portal-service/internal/http"
	"github.com/clinician-ai/portal-service/internal/testutil"
)

// TestServer represents a complete E2E test environment
type TestServer struct {
	Server        *httptest.Server
	DB            *sql.DB
	MockPublisher *testutil.MockPublisher
	MockGateway   *testutil.MockGateway
	Verifier      *auth.Verifier
	PrivateKey    *rsa.PrivateKey
}

// SetupE2ETest creates a complete test environment:
// real PostgreSQL, real HTTP server with all routes, in-memory RabbitMQ
// publisher and a scripted AI gateway.
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	db := testutil.SetupTestDB(t)

	mockPublisher := testutil.NewMockPublisher()
	mockGateway := testutil.NewMockGateway("")

	perms, err := auth.LoadPermissions("../../permissions.yml")
	if err != nil {
		t.Fatalf("Failed to load permissions: %v", err)
	}

	verifier, privateKey := testutil.CreateTestVerifier(t)

	router := httpserver.SetupRouter(db, verifier, perms, mockGateway, mockPublisher, nil)

	server := httptest.NewServer(router)

	return &TestServer{
		Server:        server,
		DB:            db,
		MockPublisher: mockPublisher,
		MockGateway:   mockGateway,
		Verifier:      verifier,
		PrivateKey:    privateKey,
	}
}

// Cleanup cleans up all test resources
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()

	ts.Server.Close()
	testutil.CleanupTestDB(t, ts.DB)
	ts.DB.Close()
}

// PatientClient returns an HTTP client authenticated as the given patient
func (ts *TestServer) PatientClient(t *testing.T, userID string) *testutil.HTTPTestClient {
	t.Helper()
	token := testutil.GeneratePatientToken(t, ts.PrivateKey, userID)
	return testutil.NewHTTPTestClient(ts.Server.URL, token)
}

// DoctorClient returns an HTTP client authenticated as the given doctor
func (ts *TestServer) DoctorClient(t *testing.T, userID string) *testutil.HTTPTestClient {
	t.Helper()
	token := testutil.GenerateDoctorToken(t, ts.PrivateKey, userID)
	return testutil.NewHTTPTestClient(ts.Server.URL, token)
}

// AnonymousClient returns an HTTP client with no bearer token
func (ts *TestServer) AnonymousClient() *testutil.HTTPTestClient {
	return testutil.NewHTTPTestClient(ts.Server.URL, "")
}

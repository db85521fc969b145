//go:build integration

package e2e

import (
	"net/http"
	"testing"

	"github.com/clinician-ai/portal-service/internal/messaging"
	"github.com/clinician-ai/portal-service/internal/symptomcheck"
	"github.com/clinician-ai/portal-service/internal/testutil"
)

const analysisReply = "```json\n" + `{
  "conditions": [{"name": "Tension headache", "likelihood": "High", "description": "Stress-related headache"}],
  "severity": "Mild",
  "isEmergency": false,
  "recommendations": ["Rest", "Hydrate"],
  "specialists": ["General Practitioner"],
  "whenToSeekCare": "If symptoms persist beyond a week",
  "disclaimer": "This is not a medical diagnosis."
}` + "\n```"

func TestSymptomCheckFlow_Authenticated(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	ts.MockGateway.Reply = analysisReply
	client := ts.PatientClient(t, "patient-e2e-1")

	resp := client.POST(t, "/api/symptom-checks", map[string]string{
		"symptoms": "headache for two days",
		"duration": "2 days",
		"severity": "mild",
		"age":      "25-35",
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result symptomcheck.AnalysisResult
	testutil.DecodeJSON(t, resp, &result)

	if len(result.Conditions) != 1 || result.Conditions[0].Name != "Tension headache" {
		t.Errorf("unexpected conditions: %+v", result.Conditions)
	}
	if result.Severity != symptomcheck.SeverityMild {
		t.Errorf("expected Mild severity, got %s", result.Severity)
	}

	// Persisted for the signed-in patient
	var count int
	if err := ts.DB.QueryRow("SELECT COUNT(*) FROM symptom_checks WHERE user_id = $1", "patient-e2e-1").Scan(&count); err != nil {
		t.Fatalf("failed to count checks: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 persisted check, got %d", count)
	}

	ts.MockPublisher.AssertEventPublished(t, messaging.EventSymptomCheckCompleted)

	// The check shows up in the patient's history listing
	listResp := client.GET(t, "/api/symptom-checks")
	testutil.AssertStatusCode(t, listResp, http.StatusOK)

	var list symptomcheck.CheckListResponse
	testutil.DecodeJSON(t, listResp, &list)
	if list.Total != 1 {
		t.Errorf("expected 1 check in history, got %d", list.Total)
	}
}

func TestSymptomCheckFlow_Anonymous(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	ts.MockGateway.Reply = analysisReply
	client := ts.AnonymousClient()

	resp := client.POST(t, "/api/symptom-checks", map[string]string{
		"symptoms": "sore throat",
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result symptomcheck.AnalysisResult
	testutil.DecodeJSON(t, resp, &result)
	if result.Severity != symptomcheck.SeverityMild {
		t.Errorf("expected Mild severity, got %s", result.Severity)
	}

	// Nothing persisted for anonymous callers
	var count int
	if err := ts.DB.QueryRow("SELECT COUNT(*) FROM symptom_checks").Scan(&count); err != nil {
		t.Fatalf("failed to count checks: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no persisted checks, got %d", count)
	}
}

func TestSymptomCheck_MissingSymptoms(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	client := ts.AnonymousClient()

	resp := client.POST(t, "/api/symptom-checks", map[string]string{
		"symptoms": "   ",
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestSymptomCheck_MalformedReplyFallsBack(t *testing.T) {
	ts := SetupE2ETest(t)
	defer ts.Cleanup(t)

	ts.MockGateway.Reply = "I'm sorry, I can't produce JSON today."
	client := ts.AnonymousClient()

	resp := client.POST(t, "/api/symptom-checks", map[string]string{
		"symptoms": "dizziness",
	})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result symptomcheck.AnalysisResult
	testutil.DecodeJSON(t, resp, &result)

	if len(result.Conditions) != 1 || result.Conditions[0].Name != "Unable to analyze" {
		t.Errorf("expected fallback conditions, got %+v", result.Conditions)
	}
	if result.Severity != symptomcheck.SeverityModerate || result.IsEmergency {
		t.Errorf("fallback should be Moderate and not an emergency, got %s/%v", result.Severity, result.IsEmergency)
	}
}

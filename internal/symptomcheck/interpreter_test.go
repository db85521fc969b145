package symptomcheck

import (
	"reflect"
	"testing"
)

const goodAnalysisJSON = `{
  "conditions": [{"name": "Migraine", "likelihood": "High", "description": "Recurrent throbbing headache"}],
  "severity": "Moderate",
  "isEmergency": false,
  "recommendations": ["Rest in a dark room"],
  "specialists": ["Neurologist"],
  "whenToSeekCare": "Within 24-48 hours",
  "disclaimer": "Not a diagnosis."
}`

// TestInterpret_FenceVariants verifies the three extraction paths yield the
// same result: labeled fence, bare fence, raw JSON.
func TestInterpret_FenceVariants(t *testing.T) {
	variants := map[string]string{
		"json fence": "Here is my analysis:\n```json\n" + goodAnalysisJSON + "\n```\nTake care!",
		"bare fence": "```\n" + goodAnalysisJSON + "\n```",
		"raw":        goodAnalysisJSON,
	}

	for name, raw := range variants {
		t.Run(name, func(t *testing.T) {
			result, usedFallback := Interpret(raw)
			if usedFallback {
				t.Fatal("Expected parse to succeed, got fallback")
			}
			if len(result.Conditions) != 1 || result.Conditions[0].Name != "Migraine" {
				t.Errorf("Unexpected conditions: %+v", result.Conditions)
			}
			if result.Severity != SeverityModerate {
				t.Errorf("Expected Moderate, got %s", result.Severity)
			}
		})
	}
}

// TestInterpret_PrefersLabeledFence checks that a ```json block wins over an
// earlier bare fence.
func TestInterpret_PrefersLabeledFence(t *testing.T) {
	raw := "```\nnot json at all\n```\n```json\n" + goodAnalysisJSON + "\n```"

	result, usedFallback := Interpret(raw)
	if usedFallback {
		t.Fatal("Expected parse to succeed, got fallback")
	}
	if result.Conditions[0].Name != "Migraine" {
		t.Errorf("Expected labeled fence content, got %+v", result.Conditions)
	}
}

func TestInterpret_MalformedReturnsFallback(t *testing.T) {
	cases := map[string]string{
		"prose":            "I cannot provide an analysis right now.",
		"truncated json":   `{"conditions": [{"name": "Flu"`,
		"empty":            "",
		"fence with prose": "```json\nnot actually json\n```",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			result, usedFallback := Interpret(raw)
			if !usedFallback {
				t.Fatal("Expected fallback")
			}
			if !reflect.DeepEqual(result, FallbackResult()) {
				t.Errorf("Fallback result mismatch: %+v", result)
			}
		})
	}
}

// TestInterpret_ShapeValidation checks that structurally valid JSON with an
// unusable shape still degrades to the fallback.
func TestInterpret_ShapeValidation(t *testing.T) {
	cases := map[string]string{
		"unknown severity": `{"conditions": [{"name": "Flu"}], "severity": "Catastrophic"}`,
		"no conditions":    `{"conditions": [], "severity": "Mild"}`,
		"unnamed condition": `{"conditions": [{"likelihood": "High"}], "severity": "Mild"}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			result, usedFallback := Interpret(raw)
			if !usedFallback {
				t.Fatalf("Expected fallback, got %+v", result)
			}
		})
	}
}

// TestInterpret_EmergencyForcesFlag verifies Emergency severity always sets
// the emergency flag, even when the model left it false.
func TestInterpret_EmergencyForcesFlag(t *testing.T) {
	raw := `{
		"conditions": [{"name": "Myocardial infarction", "likelihood": "High", "description": "Heart attack"}],
		"severity": "Emergency",
		"isEmergency": false,
		"recommendations": ["Call emergency services"],
		"specialists": ["Cardiologist"],
		"whenToSeekCare": "Immediately",
		"disclaimer": "Not a diagnosis."
	}`

	result, usedFallback := Interpret(raw)
	if usedFallback {
		t.Fatal("Expected parse to succeed, got fallback")
	}
	if !result.IsEmergency {
		t.Error("Emergency severity must imply isEmergency=true")
	}
}

func TestFallbackResult_Contents(t *testing.T) {
	fb := FallbackResult()

	if len(fb.Conditions) != 1 || fb.Conditions[0].Name != "Unable to analyze" {
		t.Errorf("Unexpected fallback conditions: %+v", fb.Conditions)
	}
	if fb.Conditions[0].Likelihood != "Unknown" {
		t.Errorf("Expected Unknown likelihood, got %s", fb.Conditions[0].Likelihood)
	}
	if fb.Severity != SeverityModerate {
		t.Errorf("Expected Moderate severity, got %s", fb.Severity)
	}
	if fb.IsEmergency {
		t.Error("Fallback must not flag an emergency")
	}
	if len(fb.Recommendations) != 3 {
		t.Errorf("Expected 3 recommendations, got %d", len(fb.Recommendations))
	}
	if len(fb.Specialists) != 1 || fb.Specialists[0] != "General Practitioner" {
		t.Errorf("Unexpected specialists: %+v", fb.Specialists)
	}
	if fb.WhenToSeekCare != "Within 24-48 hours" {
		t.Errorf("Unexpected whenToSeekCare: %s", fb.WhenToSeekCare)
	}
}

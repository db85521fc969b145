package symptomcheck

import (
	"strings"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestComposePrompts_AnonymousOmitsHistory(t *testing.T) {
	req := AnalysisRequest{Symptoms: "headache"}

	system, user := ComposePrompts(req, nil, nil)

	if strings.Contains(system, "PATIENT MEDICAL HISTORY") {
		t.Error("Anonymous prompt must not contain a medical history block")
	}
	if strings.Contains(system, "PAST SYMPTOM CHECKS") {
		t.Error("Anonymous prompt must not contain a past checks block")
	}
	if !strings.Contains(user, "Symptoms: headache") {
		t.Errorf("User prompt missing symptoms: %s", user)
	}
}

func TestComposePrompts_NotSpecifiedSubstitution(t *testing.T) {
	req := AnalysisRequest{Symptoms: "cough"}

	_, user := ComposePrompts(req, nil, nil)

	for _, want := range []string{
		"Duration: Not specified",
		"Severity (patient-reported): Not specified",
		"Patient age range: Not specified",
	} {
		if !strings.Contains(user, want) {
			t.Errorf("User prompt missing %q:\n%s", want, user)
		}
	}
}

func TestComposePrompts_HistoryBlock(t *testing.T) {
	req := AnalysisRequest{Symptoms: "chest pain"}
	snapshot := &HistorySnapshot{
		ChronicConditions:  []string{"Hypertension", "Type 2 Diabetes"},
		Allergies:          []string{"Penicillin"},
		CurrentMedications: []string{"Metformin"},
		BloodType:          "O+",
		HeightCm:           floatPtr(180),
		WeightKg:           floatPtr(81),
	}

	system, _ := ComposePrompts(req, snapshot, nil)

	if !strings.Contains(system, "PATIENT MEDICAL HISTORY (Use this to provide more personalized analysis):") {
		t.Error("Missing medical history header")
	}
	if !strings.Contains(system, "Chronic Conditions: Hypertension, Type 2 Diabetes") {
		t.Error("Chronic conditions should be comma-joined")
	}
	if !strings.Contains(system, "Allergies: Penicillin") {
		t.Error("Missing allergies line")
	}
	if !strings.Contains(system, "Past Surgeries: None reported") {
		t.Error("Empty list should render as None reported")
	}
	if !strings.Contains(system, "Smoking Status: Unknown") {
		t.Error("Empty scalar should render as Unknown")
	}
	// 81 kg at 1.80 m
	if !strings.Contains(system, "BMI Category: 25.0") {
		t.Errorf("Expected BMI 25.0 in prompt:\n%s", system)
	}
}

func TestComposePrompts_BMIUnknownWithoutMeasurements(t *testing.T) {
	snapshot := &HistorySnapshot{HeightCm: floatPtr(170)}

	system, _ := ComposePrompts(AnalysisRequest{Symptoms: "fatigue"}, snapshot, nil)

	if !strings.Contains(system, "BMI Category: Unknown") {
		t.Error("BMI without weight should be Unknown")
	}
}

func TestComposePrompts_PastChecksNumberedWithDates(t *testing.T) {
	past := []PastCheck{
		{
			Symptoms:             "fever",
			ConditionsIdentified: []string{"Influenza", "Common cold"},
			SeverityLevel:        "Moderate",
			CreatedAt:            time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			Symptoms:      "fatigue",
			SeverityLevel: "Mild",
			CreatedAt:     time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	system, _ := ComposePrompts(AnalysisRequest{Symptoms: "fever again"}, nil, past)

	if !strings.Contains(system, "PAST SYMPTOM CHECKS (Recent history):") {
		t.Error("Missing past checks header")
	}
	if !strings.Contains(system, "1. 2026-03-14:") {
		t.Error("First check should be numbered with its date")
	}
	if !strings.Contains(system, "2. 2026-02-01:") {
		t.Error("Second check should be numbered with its date")
	}
	if !strings.Contains(system, "Identified: Influenza, Common cold") {
		t.Error("Identified conditions should be comma-joined")
	}
	if !strings.Contains(system, "Identified: N/A") {
		t.Error("Missing conditions should render as N/A")
	}
}

func TestComposePrompts_Deterministic(t *testing.T) {
	req := AnalysisRequest{Symptoms: "nausea", Duration: "3 days", Severity: "moderate", Age: "45-55"}
	snapshot := &HistorySnapshot{ChronicConditions: []string{"Asthma"}}
	past := []PastCheck{{Symptoms: "wheezing", SeverityLevel: "Mild", CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)}}

	s1, u1 := ComposePrompts(req, snapshot, past)
	s2, u2 := ComposePrompts(req, snapshot, past)

	if s1 != s2 || u1 != u2 {
		t.Error("Identical inputs must produce identical prompts")
	}
}

package symptomcheck

import (
	"fmt"
	"strings"
)

// ComposePrompts renders the system and user prompts for one analysis. It is
// a pure function: identical inputs always yield identical prompts. snapshot
// may be nil and past may be empty for anonymous callers.
func ComposePrompts(req AnalysisRequest, snapshot *HistorySnapshot, past []PastCheck) (systemPrompt, userPrompt string) {
	var b strings.Builder
	b.WriteString(roleFraming)
	b.WriteString("\n")

	if snapshot != nil {
		b.WriteString("\n")
		b.WriteString(historyBlock(snapshot))
	}

	if len(past) > 0 {
		b.WriteString("\n")
		b.WriteString(pastChecksBlock(past))
	}

	b.WriteString("\n")
	b.WriteString(knowledgeBase)

	userPrompt = fmt.Sprintf(`Please analyze these symptoms:

Symptoms: %s
Duration: %s
Severity (patient-reported): %s
Patient age range: %s

Provide your analysis in the specified JSON format.`,
		req.Symptoms,
		orNotSpecified(req.Duration),
		orNotSpecified(req.Severity),
		orNotSpecified(req.Age),
	)

	return b.String(), userPrompt
}

func historyBlock(s *HistorySnapshot) string {
	var b strings.Builder
	b.WriteString("PATIENT MEDICAL HISTORY (Use this to provide more personalized analysis):\n")
	fmt.Fprintf(&b, "- Chronic Conditions: %s\n", joinOrNone(s.ChronicConditions))
	fmt.Fprintf(&b, "- Allergies: %s\n", joinOrNone(s.Allergies))
	fmt.Fprintf(&b, "- Current Medications: %s\n", joinOrNone(s.CurrentMedications))
	fmt.Fprintf(&b, "- Past Surgeries: %s\n", joinOrNone(s.PastSurgeries))
	fmt.Fprintf(&b, "- Blood Type: %s\n", orUnknown(s.BloodType))
	fmt.Fprintf(&b, "- Smoking Status: %s\n", orUnknown(s.SmokingStatus))
	fmt.Fprintf(&b, "- BMI Category: %s\n", bmiValue(s.HeightCm, s.WeightKg))
	b.WriteString(`
IMPORTANT: Consider the patient's medical history when analyzing symptoms. Be extra cautious with:
- Patients with chronic conditions that might be related to symptoms
- Potential drug interactions with current medications
- Allergies that might affect treatment recommendations
`)
	return b.String()
}

func pastChecksBlock(past []PastCheck) string {
	var b strings.Builder
	b.WriteString("PAST SYMPTOM CHECKS (Recent history):\n")
	for i, check := range past {
		fmt.Fprintf(&b, "%d. %s:\n", i+1, check.CreatedAt.Format("2006-01-02"))
		fmt.Fprintf(&b, "   - Symptoms: %s\n", check.Symptoms)
		fmt.Fprintf(&b, "   - Identified: %s\n", joinOrNA(check.ConditionsIdentified))
		fmt.Fprintf(&b, "   - Severity: %s\n", check.SeverityLevel)
	}
	b.WriteString(`
IMPORTANT: Consider patterns in the patient's symptom history. Look for:
- Recurring symptoms that might indicate chronic conditions
- Progressive worsening that requires immediate attention
- Related symptoms across multiple checks
`)
	return b.String()
}

// bmiValue computes weight_kg / (height_cm/100)^2 rounded to one decimal,
// "Unknown" when either measurement is absent.
func bmiValue(heightCm, weightKg *float64) string {
	if heightCm == nil || weightKg == nil || *heightCm == 0 {
		return "Unknown"
	}
	h := *heightCm / 100
	return fmt.Sprintf("%.1f", *weightKg/(h*h))
}

func joinOrNone(vals []string) string {
	if len(vals) == 0 {
		return "None reported"
	}
	return strings.Join(vals, ", ")
}

func joinOrNA(vals []string) string {
	if len(vals) == 0 {
		return "N/A"
	}
	return strings.Join(vals, ", ")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

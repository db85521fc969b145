package symptomcheck

import (
	"encoding/json"
	"regexp"
)

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*\n(.*?)\n```")
	bareFenceRe = regexp.MustCompile("(?s)```\\s*\n(.*?)\n```")
)

var validSeverities = map[string]bool{
	SeverityMild:      true,
	SeverityModerate:  true,
	SeveritySevere:    true,
	SeverityEmergency: true,
}

// Interpret turns the gateway's raw text reply into an AnalysisResult. It
// never fails: replies that cannot be parsed, or that parse but do not
// satisfy the result shape, degrade to the fixed fallback. The second return
// value reports whether the fallback was used.
func Interpret(raw string) (AnalysisResult, bool) {
	candidate := extractJSON(raw)

	var result AnalysisResult
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return FallbackResult(), true
	}
	if !validate(result) {
		return FallbackResult(), true
	}

	// Severity "Emergency" always implies the emergency flag, regardless of
	// what the model set.
	if result.Severity == SeverityEmergency {
		result.IsEmergency = true
	}

	return result, false
}

// extractJSON locates the JSON candidate in the reply: a ```json fenced
// block first, then an unlabeled fence, then the whole text.
func extractJSON(raw string) string {
	if m := jsonFenceRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := bareFenceRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

// validate checks the shape the frontend depends on: a recognized severity
// tier and at least one named condition. Field types are already enforced by
// unmarshalling into the typed struct.
func validate(r AnalysisResult) bool {
	if !validSeverities[r.Severity] {
		return false
	}
	if len(r.Conditions) == 0 {
		return false
	}
	for _, c := range r.Conditions {
		if c.Name == "" {
			return false
		}
	}
	return true
}

// FallbackResult is the fixed safe default served when the model's reply is
// unusable. It always satisfies the AnalysisResult shape so rendering never
// breaks downstream.
func FallbackResult() AnalysisResult {
	return AnalysisResult{
		Conditions: []Condition{
			{
				Name:        "Unable to analyze",
				Likelihood:  "Unknown",
				Description: "Please consult a healthcare provider for proper evaluation",
			},
		},
		Severity:    SeverityModerate,
		IsEmergency: false,
		Recommendations: []string{
			"Consult with a healthcare provider for accurate diagnosis",
			"Monitor your symptoms closely",
			"Seek immediate care if symptoms worsen",
		},
		Specialists:    []string{"General Practitioner"},
		WhenToSeekCare: "Within 24-48 hours",
		Disclaimer:     "This is not a medical diagnosis. Please consult with a qualified healthcare professional.",
	}
}

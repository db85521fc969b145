package symptomcheck

import "time"

// Severity tiers the analysis can assign.
const (
	SeverityMild      = "Mild"
	SeverityModerate  = "Moderate"
	SeveritySevere    = "Severe"
	SeverityEmergency = "Emergency"
)

// AnalysisRequest is the symptom-analysis input. Only Symptoms is required;
// the other fields render as "Not specified" when absent.
type AnalysisRequest struct {
	Symptoms string `json:"symptoms"`
	Duration string `json:"duration,omitempty"`
	Severity string `json:"severity,omitempty"`
	Age      string `json:"age,omitempty"`
}

// Condition is a single candidate condition in an analysis.
type Condition struct {
	Name        string `json:"name"`
	Likelihood  string `json:"likelihood"`
	Description string `json:"description"`
}

// AnalysisResult is the pipeline's output contract. The frontend renders it
// directly, so every path through the pipeline must produce a value of this
// shape - genuine or fallback.
type AnalysisResult struct {
	Conditions      []Condition `json:"conditions"`
	Severity        string      `json:"severity"`
	IsEmergency     bool        `json:"isEmergency"`
	Recommendations []string    `json:"recommendations"`
	Specialists     []string    `json:"specialists"`
	WhenToSeekCare  string      `json:"whenToSeekCare"`
	Disclaimer      string      `json:"disclaimer"`
}

// HistorySnapshot is a read-only view of the patient's medical history used
// to personalize the prompt. The pipeline never mutates it.
type HistorySnapshot struct {
	ChronicConditions  []string
	Allergies          []string
	CurrentMedications []string
	PastSurgeries      []string
	BloodType          string
	SmokingStatus      string
	HeightCm           *float64
	WeightKg           *float64
}

// PastCheck is one prior symptom check, read-only input to the prompt.
type PastCheck struct {
	Symptoms             string    `json:"symptoms"`
	ConditionsIdentified []string  `json:"conditions_identified"`
	SeverityLevel        string    `json:"severity_level"`
	CreatedAt            time.Time `json:"created_at"`
}

// Record is the persisted form of a completed check: the original request
// fields, the full analysis, and the derived scalar/array columns. Rows are
// append-only; nothing in this service updates or deletes them.
type Record struct {
	UserID               string
	Symptoms             string
	Duration             string
	Severity             string
	AgeRange             string
	Analysis             AnalysisResult
	ConditionsIdentified []string
	SeverityLevel        string
	IsEmergency          bool
}

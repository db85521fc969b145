package medhistory

import "time"

// UpdateHistoryRequest represents the patient's self-reported medical history
type UpdateHistoryRequest struct {
	ChronicConditions  []string `json:"chronic_conditions"`
	Allergies          []string `json:"allergies"`
	CurrentMedications []string `json:"current_medications"`
	PastSurgeries      []string `json:"past_surgeries"`
	FamilyHistory      []string `json:"family_history"`
	BloodType          string   `json:"blood_type"`
	SmokingStatus      string   `json:"smoking_status"`
	AlcoholConsumption string   `json:"alcohol_consumption"`
	ExerciseFrequency  string   `json:"exercise_frequency"`
	HeightCm           *float64 `json:"height_cm"`
	WeightKg           *float64 `json:"weight_kg"`
}

// HistoryResponse represents the medical history returned to clients
type HistoryResponse struct {
	ID                 string     `json:"id"`
	PatientID          string     `json:"patient_id"`
	ChronicConditions  []string   `json:"chronic_conditions"`
	Allergies          []string   `json:"allergies"`
	CurrentMedications []string   `json:"current_medications"`
	PastSurgeries      []string   `json:"past_surgeries"`
	FamilyHistory      []string   `json:"family_history"`
	BloodType          string     `json:"blood_type,omitempty"`
	SmokingStatus      string     `json:"smoking_status,omitempty"`
	AlcoholConsumption string     `json:"alcohol_consumption,omitempty"`
	ExerciseFrequency  string     `json:"exercise_frequency,omitempty"`
	HeightCm           *float64   `json:"height_cm,omitempty"`
	WeightKg           *float64   `json:"weight_kg,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

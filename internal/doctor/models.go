package doctor

// DoctorResponse represents a verified doctor shown in the directory
type DoctorResponse struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name"`
	Specialization    string `json:"specialization"`
	LicenseNumber     string `json:"license_number"`
	YearsOfExperience int    `json:"years_of_experience"`
	Verified          bool   `json:"verified"`
}

// DoctorListResponse wraps the doctor directory listing
type DoctorListResponse struct {
	Success bool             `json:"success"`
	Doctors []DoctorResponse `json:"doctors"`
}

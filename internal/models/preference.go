// internal/models/preference.go
package models

// JobPreference is the seeker's stored filter. Every change is pushed to the
// server; the client never derives it on its own.
type JobPreference struct {
	Sectors       []string    `json:"sectors,omitempty"`
	Salary        SalaryRange `json:"salary"`
	Availability  string      `json:"availability,omitempty"`
	CareerLevel   string      `json:"careerLevel,omitempty"`
	JobType       string      `json:"jobType,omitempty"`
	CandidateType string      `json:"candidateType,omitempty"`
	Locations     []Location  `json:"locations,omitempty"`
}

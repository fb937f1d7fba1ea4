// internal/models/job.go
package models

import "time"

// Job is a listing as returned for one page of results. Optional fields are
// pointers or nil slices; absence is meaningful to the matching rules.
type Job struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Skills        StringList   `json:"skills,omitempty"`
	JobType       string       `json:"jobType"`
	Category      string       `json:"category,omitempty"`
	CareerLevel   string       `json:"careerLevel,omitempty"`
	CandidateType string       `json:"candidateType,omitempty"`
	Salary        *SalaryRange `json:"salary,omitempty"`
	Location      Location     `json:"location"`
	Company       *Company     `json:"company,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// Sector is inherited from the owning company.
func (j Job) Sector() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Sector
}

// CompanyName returns the owning company's display name, or "" when unknown.
func (j Job) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}

// SalaryRange is a non-negative range; To is open when nil.
type SalaryRange struct {
	From *float64 `json:"from,omitempty"`
	To   *float64 `json:"to,omitempty"`
}

// Valid reports whether both bounds are non-negative and From <= To.
func (s SalaryRange) Valid() bool {
	if s.From != nil && *s.From < 0 {
		return false
	}
	if s.To != nil && *s.To < 0 {
		return false
	}
	if s.From != nil && s.To != nil && *s.From > *s.To {
		return false
	}
	return true
}

// Location is free text on every level.
type Location struct {
	Country  string `json:"country,omitempty"`
	Province string `json:"province,omitempty"`
	City     string `json:"city,omitempty"`
}

// Float returns a pointer to v, for building salary ranges.
func Float(v float64) *float64 {
	return &v
}

// Package matching decides which jobs of an already-fetched page are shown,
// and in which order.
package matching

import (
	"sort"
	"strings"

	"jobmarket-client/internal/models"
)

// FilterCriteria is the user's current filter input. The zero value selects everything.
type FilterCriteria struct {
	Tags     []string `json:"tags,omitempty"`
	Search   string   `json:"search,omitempty"`
	Location string   `json:"location,omitempty"`
}

// IsEmpty reports whether no group is active.
func (c FilterCriteria) IsEmpty() bool {
	return len(c.Tags) == 0 && strings.TrimSpace(c.Search) == "" && strings.TrimSpace(c.Location) == ""
}

// Compose returns the jobs that pass every active group, most recent first.
// Within the tag group a single matching tag is enough. jobs is not modified,
// and jobs with missing optional fields simply fail the terms that need them.
func Compose(jobs []models.Job, criteria FilterCriteria) []models.Job {
	tags := normalizeTags(criteria.Tags)
	search := strings.ToLower(strings.TrimSpace(criteria.Search))
	location := strings.ToLower(strings.TrimSpace(criteria.Location))

	visible := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !matchesTags(job, tags) {
			continue
		}
		if !matchesSearch(job, search) {
			continue
		}
		if !matchesLocation(job, location) {
			continue
		}
		visible = append(visible, job)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	return visible
}

type tag struct {
	text   string
	bucket *SalaryBucket
}

func normalizeTags(raw []string) []tag {
	tags := make([]tag, 0, len(raw))
	for _, r := range raw {
		t := strings.TrimSpace(r)
		if t == "" {
			continue
		}
		nt := tag{text: strings.ToLower(t)}
		if b, err := ParseBucket(t); err == nil {
			nt.bucket = &b
		}
		tags = append(tags, nt)
	}
	return tags
}

func matchesTags(job models.Job, tags []tag) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if t.bucket != nil && job.Salary != nil && job.Salary.From != nil && t.bucket.Contains(*job.Salary.From) {
			return true
		}
		if tagEqualsField(job, t.text) {
			return true
		}
	}
	return false
}

func tagEqualsField(job models.Job, t string) bool {
	for _, s := range job.Skills {
		if strings.ToLower(strings.TrimSpace(s)) == t {
			return true
		}
	}
	for _, field := range []string{job.JobType, job.Category, job.Sector(), job.CareerLevel, job.CandidateType} {
		if field != "" && strings.ToLower(strings.TrimSpace(field)) == t {
			return true
		}
	}
	return false
}

func matchesSearch(job models.Job, term string) bool {
	if term == "" {
		return true
	}
	return contains(job.Title, term) || contains(job.CompanyName(), term)
}

func matchesLocation(job models.Job, term string) bool {
	if term == "" {
		return true
	}
	return contains(job.Location.City, term) ||
		contains(job.Location.Province, term) ||
		contains(job.Location.Country, term)
}

// contains is a case-insensitive substring test; term is already lower-cased.
func contains(field, term string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), term)
}

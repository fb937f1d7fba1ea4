package matching

import (
	"testing"
	"time"

	"jobmarket-client/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func at(hours int) time.Time {
	return baseTime.Add(time.Duration(hours) * time.Hour)
}

func createJob(id, title, jobType string, salaryFrom float64, created time.Time) models.Job {
	return models.Job{
		ID:        id,
		Title:     title,
		JobType:   jobType,
		Salary:    &models.SalaryRange{From: models.Float(salaryFrom)},
		CreatedAt: created,
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

// scenarioJobs are jobs A, B and C of the end-to-end listing scenario.
func scenarioJobs() []models.Job {
	a := createJob("A", "Backend Engineer", "full-time", 20000, at(2))
	b := createJob("B", "Designer", "part-time", 16000, at(3))
	c := createJob("C", "Backend Intern", "full-time", 12000, at(1))
	c.Skills = []string{"design"}
	return []models.Job{a, b, c}
}

// ==========================
// Composer Tests
// ==========================

func TestCompose_Purity(t *testing.T) {
	jobs := scenarioJobs()
	snapshot := make([]models.Job, len(jobs))
	copy(snapshot, jobs)

	criteria := FilterCriteria{Tags: []string{"full-time", "design"}, Search: "e"}

	first := Compose(jobs, criteria)
	second := Compose(jobs, criteria)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, jobs, "input must not be reordered or modified")
}

func TestCompose_EmptyCriteriaSortsByRecency(t *testing.T) {
	got := Compose(scenarioJobs(), FilterCriteria{})
	assert.Equal(t, []string{"B", "A", "C"}, ids(got))
	assert.True(t, FilterCriteria{Search: "   "}.IsEmpty())
}

func TestCompose_StableForEqualTimestamps(t *testing.T) {
	jobs := []models.Job{
		{ID: "x", CreatedAt: at(1)},
		{ID: "y", CreatedAt: at(1)},
		{ID: "z", CreatedAt: at(2)},
	}
	assert.Equal(t, []string{"z", "x", "y"}, ids(Compose(jobs, FilterCriteria{})))
}

func TestCompose_TagOrSemantics(t *testing.T) {
	designer := models.Job{ID: "d", Skills: []string{"design"}, JobType: "full-time", CreatedAt: at(1)}
	remote := models.Job{ID: "r", JobType: "remote", CreatedAt: at(2)}
	other := models.Job{ID: "o", JobType: "contract", CreatedAt: at(3)}

	got := Compose([]models.Job{designer, remote, other}, FilterCriteria{Tags: []string{"design", "remote"}})
	assert.Equal(t, []string{"r", "d"}, ids(got))
}

func TestCompose_TagFields(t *testing.T) {
	job := models.Job{
		ID:            "j",
		Skills:        []string{"Go", "Kubernetes"},
		JobType:       "Full-Time",
		Category:      "Engineering",
		CareerLevel:   "Senior",
		CandidateType: "Experienced",
		Company:       &models.Company{Name: "Acme", Sector: "Fintech"},
		CreatedAt:     at(1),
	}

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "skill case insensitive", tag: "kubernetes", want: true},
		{name: "job type", tag: "full-time", want: true},
		{name: "category", tag: "ENGINEERING", want: true},
		{name: "sector from company", tag: "fintech", want: true},
		{name: "career level", tag: "senior", want: true},
		{name: "candidate type", tag: "experienced", want: true},
		{name: "partial tag is not equality", tag: "kube", want: false},
		{name: "unrelated", tag: "part-time", want: false},
		{name: "blank tag ignored", tag: "  ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose([]models.Job{job}, FilterCriteria{Tags: []string{tt.tag}})
			assert.Equal(t, tt.want, len(got) == 1)
		})
	}
}

func TestCompose_SalaryBucketInclusivity(t *testing.T) {
	boundary := createJob("edge", "Analyst", "contract", 25000, at(1))
	above := createJob("above", "Analyst", "contract", 25001, at(2))
	jobs := []models.Job{boundary, above}

	tests := []struct {
		name   string
		bucket string
		want   []string
	}{
		{name: "lower adjacent bucket includes boundary", bucket: "15000-25000", want: []string{"edge"}},
		{name: "upper adjacent bucket includes boundary", bucket: "25000-35000", want: []string{"above", "edge"}},
		{name: "next bucket excludes both", bucket: "35000-45000", want: []string{}},
		{name: "open ended", bucket: "25000+", want: []string{"above", "edge"}},
		{name: "bucket outside configured list still applies", bucket: "25000-25000", want: []string{"edge"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(jobs, FilterCriteria{Tags: []string{tt.bucket}})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCompose_ConjunctiveGroups(t *testing.T) {
	jobs := []models.Job{
		{
			ID: "all", Title: "Go Developer", JobType: "full-time", CreatedAt: at(1),
			Location: models.Location{City: "Toronto", Province: "Ontario", Country: "Canada"},
		},
		{
			ID: "tag-only", Title: "Accountant", JobType: "full-time", CreatedAt: at(2),
			Location: models.Location{City: "Toronto"},
		},
		{
			ID: "wrong-place", Title: "Go Developer", JobType: "full-time", CreatedAt: at(3),
			Location: models.Location{City: "Lagos", Country: "Nigeria"},
		},
	}

	got := Compose(jobs, FilterCriteria{Tags: []string{"full-time"}, Search: "go", Location: "ONTARIO"})
	assert.Equal(t, []string{"all"}, ids(got))

	got = Compose(jobs, FilterCriteria{Location: "can"})
	assert.Equal(t, []string{"all"}, ids(got))
}

func TestCompose_SearchMatchesCompanyName(t *testing.T) {
	jobs := []models.Job{
		{ID: "1", Title: "Engineer", Company: &models.Company{Name: "Northwind Traders"}, CreatedAt: at(1)},
		{ID: "2", Title: "Engineer", CreatedAt: at(2)},
	}
	assert.Equal(t, []string{"1"}, ids(Compose(jobs, FilterCriteria{Search: "  northWIND "})))
}

func TestCompose_PartialDataTolerance(t *testing.T) {
	jobs := []models.Job{
		{ID: "no-skills", JobType: "full-time", CreatedAt: at(1)},
		{ID: "nothing", CreatedAt: at(2)},
		{ID: "nil-from", Salary: &models.SalaryRange{To: models.Float(30000)}, CreatedAt: at(3)},
	}

	require.NotPanics(t, func() {
		got := Compose(jobs, FilterCriteria{Tags: []string{"design", "full-time", "0-45000"}, Search: "", Location: ""})
		assert.Equal(t, []string{"no-skills"}, ids(got))
	})

	require.NotPanics(t, func() {
		got := Compose(jobs, FilterCriteria{Search: "x", Location: "y"})
		assert.Empty(t, got)
	})

	assert.NotNil(t, Compose(nil, FilterCriteria{}))
}

func TestCompose_EndToEndScenario(t *testing.T) {
	got := Compose(scenarioJobs(), FilterCriteria{Tags: []string{"full-time"}, Search: "backend"})
	assert.Equal(t, []string{"A", "C"}, ids(got))
}

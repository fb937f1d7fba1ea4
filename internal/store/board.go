package store

import (
	"context"
	"sync"

	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/metrics"
	"jobmarket-client/internal/matching"
	"jobmarket-client/internal/models"
)

// BoardKind selects which page a JobBoard filters.
type BoardKind string

const (
	BoardAll         BoardKind = "all"
	BoardBestMatched BoardKind = "best_matched"
)

// BoardOptions tunes a JobBoard.
type BoardOptions struct {
	Buckets                  []matching.SalaryBucket
	ResetFiltersOnPageChange bool
}

// JobBoard is the job-listing screen model: one fetched page plus the
// user's ephemeral filter criteria. The best-matched board also writes
// salary and location edits back to the stored preference.
type JobBoard struct {
	kind   BoardKind
	jobs   *Jobs
	prefs  *Preferences
	opts   BoardOptions
	logger logger.Logger

	mu       sync.Mutex
	criteria matching.FilterCriteria
}

// NewJobBoard builds the all-jobs screen.
func NewJobBoard(jobs *Jobs, opts BoardOptions, log logger.Logger) *JobBoard {
	return newBoard(BoardAll, jobs, nil, opts, log)
}

// NewBestMatchedBoard builds the preference-based screen.
func NewBestMatchedBoard(jobs *Jobs, prefs *Preferences, opts BoardOptions, log logger.Logger) *JobBoard {
	return newBoard(BoardBestMatched, jobs, prefs, opts, log)
}

func newBoard(kind BoardKind, jobs *Jobs, prefs *Preferences, opts BoardOptions, log logger.Logger) *JobBoard {
	if len(opts.Buckets) == 0 {
		opts.Buckets = matching.DefaultBuckets
	}
	return &JobBoard{
		kind:   kind,
		jobs:   jobs,
		prefs:  prefs,
		opts:   opts,
		logger: log.WithFields(map[string]interface{}{"component": "job_board", "board": string(kind)}),
	}
}

func (b *JobBoard) Kind() BoardKind {
	return b.kind
}

// Buckets are the salary filters offered on this board.
func (b *JobBoard) Buckets() []matching.SalaryBucket {
	return b.opts.Buckets
}

func (b *JobBoard) source() *Container[[]models.Job] {
	if b.kind == BoardBestMatched {
		return b.jobs.BestMatched
	}
	return b.jobs.List
}

// Load fetches the first page. The best-matched board first reads the stored
// preference and seeds its criteria from it.
func (b *JobBoard) Load(ctx context.Context) error {
	if b.kind == BoardBestMatched && b.prefs != nil {
		st, err := b.prefs.Fetch(ctx)
		if err != nil {
			b.logger.Warn("job preference unavailable, starting with empty filters", map[string]interface{}{"error": err.Error()})
		} else if st.Data != nil {
			b.mu.Lock()
			b.criteria = matching.CriteriaFromPreference(*st.Data, b.opts.Buckets)
			b.mu.Unlock()
		}
	}
	return b.fetch(ctx, 1)
}

// ChangePage fetches another server page. Criteria are cleared first when
// the board is configured to do so.
func (b *JobBoard) ChangePage(ctx context.Context, page int) error {
	if b.opts.ResetFiltersOnPageChange {
		b.mu.Lock()
		b.criteria = matching.FilterCriteria{}
		b.mu.Unlock()
	}
	return b.fetch(ctx, page)
}

func (b *JobBoard) fetch(ctx context.Context, page int) error {
	var err error
	if b.kind == BoardBestMatched {
		_, err = b.jobs.FetchBestMatched(ctx, page)
	} else {
		_, err = b.jobs.FetchPage(ctx, page)
	}
	return err
}

func (b *JobBoard) Criteria() matching.FilterCriteria {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyCriteria(b.criteria)
}

// SetCriteria replaces the criteria. On the best-matched board salary and
// location edits are also pushed to the stored preference; a failed push is
// recorded by the preferences container and returned, the local criteria
// stay applied.
func (b *JobBoard) SetCriteria(ctx context.Context, next matching.FilterCriteria) error {
	b.mu.Lock()
	prev := b.criteria
	b.criteria = copyCriteria(next)
	b.mu.Unlock()

	if b.kind != BoardBestMatched || b.prefs == nil {
		return nil
	}
	_, err := b.prefs.ApplyFilterChange(ctx, prev, next)
	return err
}

// ToggleTag selects tag if absent and deselects it otherwise.
func (b *JobBoard) ToggleTag(ctx context.Context, tag string) error {
	next := b.Criteria()
	for i, t := range next.Tags {
		if t == tag {
			next.Tags = append(next.Tags[:i], next.Tags[i+1:]...)
			return b.SetCriteria(ctx, next)
		}
	}
	next.Tags = append(next.Tags, tag)
	return b.SetCriteria(ctx, next)
}

// Visible composes the held page with the current criteria.
func (b *JobBoard) Visible() []models.Job {
	page := b.source().Snapshot().Data
	visible := matching.Compose(page, b.Criteria())
	metrics.ComposerVisibleJobs.WithLabelValues(string(b.kind)).Set(float64(len(visible)))
	return visible
}

// State is the underlying page container's state.
func (b *JobBoard) State() State[[]models.Job] {
	return b.source().Snapshot()
}

func copyCriteria(c matching.FilterCriteria) matching.FilterCriteria {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return out
}

// Reset clears the criteria. The page itself lives in the Jobs containers.
func (b *JobBoard) Reset() {
	b.mu.Lock()
	b.criteria = matching.FilterCriteria{}
	b.mu.Unlock()
}

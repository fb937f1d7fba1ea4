package store

import (
	"context"

	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/models"
)

// Jobs mirrors the all-jobs page, the best-matched page and the job being viewed.
type Jobs struct {
	List        *Container[[]models.Job]
	BestMatched *Container[[]models.Job]
	Detail      *Container[*models.Job]

	api      JobsAPI
	pageSize int
}

func NewJobs(client JobsAPI, pageSize int, log logger.Logger) *Jobs {
	return &Jobs{
		List:        NewContainer[[]models.Job]("jobs", log),
		BestMatched: NewContainer[[]models.Job]("jobs_best_matched", log),
		Detail:      NewContainer[*models.Job]("job_detail", log),
		api:         client,
		pageSize:    pageSize,
	}
}

func (j *Jobs) FetchPage(ctx context.Context, page int) (State[[]models.Job], error) {
	return j.List.Run(ctx, func(ctx context.Context) (Result[[]models.Job], error) {
		p, err := j.api.ListJobs(ctx, listParams(page, j.pageSize))
		if err != nil {
			return Result[[]models.Job]{}, err
		}
		return pageResult(p), nil
	})
}

func (j *Jobs) FetchBestMatched(ctx context.Context, page int) (State[[]models.Job], error) {
	return j.BestMatched.Run(ctx, func(ctx context.Context) (Result[[]models.Job], error) {
		p, err := j.api.ListBestMatchedJobs(ctx, listParams(page, j.pageSize))
		if err != nil {
			return Result[[]models.Job]{}, err
		}
		return pageResult(p), nil
	})
}

func (j *Jobs) FetchJob(ctx context.Context, id string) (State[*models.Job], error) {
	return j.Detail.Run(ctx, func(ctx context.Context) (Result[*models.Job], error) {
		job, err := j.api.GetJob(ctx, id)
		if err != nil {
			return Result[*models.Job]{}, err
		}
		return Result[*models.Job]{Data: job}, nil
	})
}

func (j *Jobs) Reset() {
	j.List.Reset()
	j.BestMatched.Reset()
	j.Detail.Reset()
}

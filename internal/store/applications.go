package store

import (
	"context"

	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/validation"
	"jobmarket-client/internal/models"
)

type Applications struct {
	List   *Container[[]models.Application]
	Submit *Container[*models.Application]

	api      ApplicationsAPI
	pageSize int
}

func NewApplications(client ApplicationsAPI, pageSize int, log logger.Logger) *Applications {
	return &Applications{
		List:     NewContainer[[]models.Application]("applications", log),
		Submit:   NewContainer[*models.Application]("application_submit", log),
		api:      client,
		pageSize: pageSize,
	}
}

func (a *Applications) FetchPage(ctx context.Context, page int) (State[[]models.Application], error) {
	return a.List.Run(ctx, func(ctx context.Context) (Result[[]models.Application], error) {
		p, err := a.api.ListApplications(ctx, listParams(page, a.pageSize))
		if err != nil {
			return Result[[]models.Application]{}, err
		}
		return pageResult(p), nil
	})
}

// Apply submits an application. On success it is added to the held list so
// HasApplied reflects it before the next FetchPage.
func (a *Applications) Apply(ctx context.Context, jobID string, req models.ApplicationRequest) (State[*models.Application], error) {
	st, err := a.Submit.Run(ctx, func(ctx context.Context) (Result[*models.Application], error) {
		if err := validation.Check(validation.FormApplication, req); err != nil {
			return Result[*models.Application]{}, err
		}

		app, err := a.api.ApplyToJob(ctx, jobID, req)
		if err != nil {
			return Result[*models.Application]{}, err
		}
		return Result[*models.Application]{Data: app}, nil
	})
	if err != nil || st.Data == nil {
		return st, err
	}

	submitted := *st.Data
	if submitted.JobID == "" {
		submitted.JobID = jobID
	}
	a.List.Mutate(func(list []models.Application) []models.Application {
		out := make([]models.Application, 0, len(list)+1)
		for _, app := range list {
			if submitted.ID == "" || app.ID != submitted.ID {
				out = append(out, app)
			}
		}
		return append(out, submitted)
	})
	return st, nil
}

// HasApplied reports whether the held page contains an application for jobID.
func (a *Applications) HasApplied(jobID string) bool {
	for _, app := range a.List.Snapshot().Data {
		if app.JobID == jobID {
			return true
		}
	}
	return false
}

func (a *Applications) Reset() {
	a.List.Reset()
	a.Submit.Reset()
}

package store

import (
	"context"

	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/validation"
	"jobmarket-client/internal/matching"
	"jobmarket-client/internal/models"
)

// Preferences mirrors the seeker's stored job preference. Every change is
// written to the server straight away.
type Preferences struct {
	*Container[*models.JobPreference]

	api    PreferencesAPI
	logger logger.Logger
}

func NewPreferences(client PreferencesAPI, log logger.Logger) *Preferences {
	return &Preferences{
		Container: NewContainer[*models.JobPreference]("job_preferences", log),
		api:       client,
		logger:    log.WithFields(map[string]interface{}{"component": "preferences"}),
	}
}

func (p *Preferences) Fetch(ctx context.Context) (State[*models.JobPreference], error) {
	return p.Run(ctx, func(ctx context.Context) (Result[*models.JobPreference], error) {
		pref, err := p.api.GetPreferences(ctx)
		if err != nil {
			return Result[*models.JobPreference]{}, err
		}
		return Result[*models.JobPreference]{Data: pref}, nil
	})
}

func (p *Preferences) Save(ctx context.Context, pref models.JobPreference) (State[*models.JobPreference], error) {
	return p.Run(ctx, func(ctx context.Context) (Result[*models.JobPreference], error) {
		if err := validatePreference(pref); err != nil {
			return Result[*models.JobPreference]{}, err
		}

		saved, err := p.api.UpdatePreferences(ctx, pref)
		if err != nil {
			return Result[*models.JobPreference]{}, err
		}
		return Result[*models.JobPreference]{Data: saved}, nil
	})
}

// ApplyFilterChange pushes salary and location edits made on the
// best-matched screen. Other changes stay local; pushed reports which happened.
func (p *Preferences) ApplyFilterChange(ctx context.Context, prev, next matching.FilterCriteria) (pushed bool, err error) {
	change := matching.Diff(prev, next)
	if !change.Pushable() {
		return false, nil
	}

	var current models.JobPreference
	if held := p.Snapshot().Data; held != nil {
		current = *held
	}

	p.logger.Debug("pushing filter change to job preference", map[string]interface{}{
		"location": next.Location,
	})

	_, err = p.Save(ctx, matching.ApplyToPreference(current, next, change))
	return err == nil, err
}

func validatePreference(pref models.JobPreference) error {
	fields, err := validation.Validate(validation.FormPreference, pref)
	if err != nil {
		return err
	}
	if !pref.Salary.Valid() {
		fields = append(fields, apperrors.FieldError{Path: "salary", Message: "minimum must not exceed maximum"})
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

package store

import (
	"context"

	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/validation"
	"jobmarket-client/internal/models"
)

type Profile struct {
	Profile *Container[*models.Profile]
	Upload  *Container[*models.UploadResult]

	api ProfileAPI
}

func NewProfile(client ProfileAPI, log logger.Logger) *Profile {
	return &Profile{
		Profile: NewContainer[*models.Profile]("profile", log),
		Upload:  NewContainer[*models.UploadResult]("profile_upload", log),
		api:     client,
	}
}

func (p *Profile) Fetch(ctx context.Context) (State[*models.Profile], error) {
	return p.Profile.Run(ctx, func(ctx context.Context) (Result[*models.Profile], error) {
		profile, err := p.api.GetProfile(ctx)
		if err != nil {
			return Result[*models.Profile]{}, err
		}
		return Result[*models.Profile]{Data: profile}, nil
	})
}

func (p *Profile) Save(ctx context.Context, profile models.Profile) (State[*models.Profile], error) {
	return p.Profile.Run(ctx, func(ctx context.Context) (Result[*models.Profile], error) {
		if err := validation.Check(validation.FormProfile, profile); err != nil {
			return Result[*models.Profile]{}, err
		}

		saved, err := p.api.UpdateProfile(ctx, profile)
		if err != nil {
			return Result[*models.Profile]{}, err
		}
		return Result[*models.Profile]{Data: saved}, nil
	})
}

func (p *Profile) UploadResume(ctx context.Context, f models.Upload) (State[*models.UploadResult], error) {
	return p.upload(ctx, f, p.api.UploadResume, func(profile *models.Profile, url string) {
		profile.ResumeURL = url
	})
}

func (p *Profile) UploadAvatar(ctx context.Context, f models.Upload) (State[*models.UploadResult], error) {
	return p.upload(ctx, f, p.api.UploadAvatar, func(profile *models.Profile, url string) {
		profile.AvatarURL = url
	})
}

func (p *Profile) upload(
	ctx context.Context,
	f models.Upload,
	send func(context.Context, models.Upload) (*models.UploadResult, error),
	apply func(*models.Profile, string),
) (State[*models.UploadResult], error) {
	st, err := p.Upload.Run(ctx, func(ctx context.Context) (Result[*models.UploadResult], error) {
		if len(f.Data) == 0 {
			return Result[*models.UploadResult]{}, apperrors.NewValidationError([]apperrors.FieldError{
				{Path: "file", Message: "is empty"},
			})
		}

		res, err := send(ctx, f)
		if err != nil {
			return Result[*models.UploadResult]{}, err
		}
		return Result[*models.UploadResult]{Data: res}, nil
	})
	if err != nil || st.Data == nil {
		return st, err
	}

	url := st.Data.URL
	p.Profile.Mutate(func(profile *models.Profile) *models.Profile {
		if profile == nil {
			return nil
		}
		updated := *profile
		apply(&updated, url)
		return &updated
	})
	return st, nil
}

func (p *Profile) Reset() {
	p.Profile.Reset()
	p.Upload.Reset()
}

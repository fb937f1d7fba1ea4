package store

import (
	"context"

	"jobmarket-client/internal/api"
	"jobmarket-client/internal/models"
)

// The containers depend on these slices of the API client so tests can
// substitute fakes.

type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
}

type JobsAPI interface {
	ListJobs(ctx context.Context, p api.ListParams) (*models.Page[models.Job], error)
	ListBestMatchedJobs(ctx context.Context, p api.ListParams) (*models.Page[models.Job], error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
}

type CompaniesAPI interface {
	ListCompanies(ctx context.Context, p api.ListParams) (*models.Page[models.Company], error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	Subscribe(ctx context.Context, req models.SubscriptionRequest) (*models.Subscription, error)
}

type ProfileAPI interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) (*models.Profile, error)
	UploadResume(ctx context.Context, f models.Upload) (*models.UploadResult, error)
	UploadAvatar(ctx context.Context, f models.Upload) (*models.UploadResult, error)
}

type NotificationsAPI interface {
	ListNotifications(ctx context.Context, p api.ListParams) (*models.Page[models.Notification], error)
	MarkNotificationRead(ctx context.Context, id string) (*models.Notification, error)
}

type MessagesAPI interface {
	ListConversations(ctx context.Context, p api.ListParams) (*models.Page[models.Conversation], error)
	ListMessages(ctx context.Context, conversationID string, p api.ListParams) (*models.Page[models.Message], error)
	SendMessage(ctx context.Context, conversationID string, req models.MessageRequest) (*models.Message, error)
}

type PreferencesAPI interface {
	GetPreferences(ctx context.Context) (*models.JobPreference, error)
	UpdatePreferences(ctx context.Context, pref models.JobPreference) (*models.JobPreference, error)
}

type ApplicationsAPI interface {
	ListApplications(ctx context.Context, p api.ListParams) (*models.Page[models.Application], error)
	ApplyToJob(ctx context.Context, jobID string, req models.ApplicationRequest) (*models.Application, error)
}

var (
	_ AuthAPI          = (*api.Client)(nil)
	_ JobsAPI          = (*api.Client)(nil)
	_ CompaniesAPI     = (*api.Client)(nil)
	_ ProfileAPI       = (*api.Client)(nil)
	_ NotificationsAPI = (*api.Client)(nil)
	_ MessagesAPI      = (*api.Client)(nil)
	_ PreferencesAPI   = (*api.Client)(nil)
	_ ApplicationsAPI  = (*api.Client)(nil)
)

func pageResult[T any](page *models.Page[T]) Result[[]T] {
	p := page.Pagination
	return Result[[]T]{Data: page.Data, Page: &p}
}

func listParams(page, limit int) api.ListParams {
	if page < 1 {
		page = 1
	}
	return api.ListParams{Page: page, Limit: limit}
}

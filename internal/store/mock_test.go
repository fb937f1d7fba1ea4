package store

import (
	"context"

	"jobmarket-client/internal/api"
	"jobmarket-client/internal/models"

	"github.com/stretchr/testify/mock"
)

// mockAPI stands in for the API client in container tests.
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	args := m.Called(ctx, creds)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAPI) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockAPI) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAPI) ListJobs(ctx context.Context, p api.ListParams) (*models.Page[models.Job], error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*models.Page[models.Job])
	return page, args.Error(1)
}

func (m *mockAPI) ListBestMatchedJobs(ctx context.Context, p api.ListParams) (*models.Page[models.Job], error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*models.Page[models.Job])
	return page, args.Error(1)
}

func (m *mockAPI) GetJob(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *mockAPI) ListCompanies(ctx context.Context, p api.ListParams) (*models.Page[models.Company], error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*models.Page[models.Company])
	return page, args.Error(1)
}

func (m *mockAPI) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	args := m.Called(ctx, id)
	company, _ := args.Get(0).(*models.Company)
	return company, args.Error(1)
}

func (m *mockAPI) ListPlans(ctx context.Context) ([]models.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]models.Plan)
	return plans, args.Error(1)
}

func (m *mockAPI) Subscribe(ctx context.Context, req models.SubscriptionRequest) (*models.Subscription, error) {
	args := m.Called(ctx, req)
	sub, _ := args.Get(0).(*models.Subscription)
	return sub, args.Error(1)
}

func (m *mockAPI) GetProfile(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func (m *mockAPI) UpdateProfile(ctx context.Context, p models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*models.Profile)
	return out, args.Error(1)
}

func (m *mockAPI) UploadResume(ctx context.Context, f models.Upload) (*models.UploadResult, error) {
	args := m.Called(ctx, f)
	res, _ := args.Get(0).(*models.UploadResult)
	return res, args.Error(1)
}

func (m *mockAPI) UploadAvatar(ctx context.Context, f models.Upload) (*models.UploadResult, error) {
	args := m.Called(ctx, f)
	res, _ := args.Get(0).(*models.UploadResult)
	return res, args.Error(1)
}

func (m *mockAPI) ListNotifications(ctx context.Context, p api.ListParams) (*models.Page[models.Notification], error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*models.Page[models.Notification])
	return page, args.Error(1)
}

func (m *mockAPI) MarkNotificationRead(ctx context.Context, id string) (*models.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*models.Notification)
	return n, args.Error(1)
}

func (m *mockAPI) ListConversations(ctx context.Context, p api.ListParams) (*models.Page[models.Conversation], error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*models.Page[models.Conversation])
	return page, args.Error(1)
}

func (m *mockAPI) ListMessages(ctx context.Context, conversationID string, p api.ListParams) (*models.Page[models.Message], error) {
	args := m.Called(ctx, conversationID, p)
	page, _ := args.Get(0).(*models.Page[models.Message])
	return page, args.Error(1)
}

func (m *mockAPI) SendMessage(ctx context.Context, conversationID string, req models.MessageRequest) (*models.Message, error) {
	args := m.Called(ctx, conversationID, req)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *mockAPI) GetPreferences(ctx context.Context) (*models.JobPreference, error) {
	args := m.Called(ctx)
	pref, _ := args.Get(0).(*models.JobPreference)
	return pref, args.Error(1)
}

func (m *mockAPI) UpdatePreferences(ctx context.Context, pref models.JobPreference) (*models.JobPreference, error) {
	args := m.Called(ctx, pref)
	out, _ := args.Get(0).(*models.JobPreference)
	return out, args.Error(1)
}

func (m *mockAPI) ListApplications(ctx context.Context, p api.ListParams) (*models.Page[models.Application], error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*models.Page[models.Application])
	return page, args.Error(1)
}

func (m *mockAPI) ApplyToJob(ctx context.Context, jobID string, req models.ApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, jobID, req)
	app, _ := args.Get(0).(*models.Application)
	return app, args.Error(1)
}

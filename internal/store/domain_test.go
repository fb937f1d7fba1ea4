package store

import (
	"context"
	"net/http"
	"testing"
	"time"

	"jobmarket-client/internal/api"
	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/common/config"
	apphttp "jobmarket-client/internal/common/http"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/matching"
	"jobmarket-client/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Jobs
// ==========================

func TestJobs_FetchJob(t *testing.T) {
	client := new(mockAPI)
	client.On("GetJob", mock.Anything, "j-1").Return(&models.Job{ID: "j-1", Title: "SRE"}, nil)
	client.On("GetJob", mock.Anything, "missing").Return(nil, apperrors.NewMessageError(http.StatusNotFound, "Job not found"))

	jobs := NewJobs(client, 10, logger.NewNoOpLogger())

	st, err := jobs.FetchJob(context.Background(), "j-1")
	require.NoError(t, err)
	assert.Equal(t, "SRE", st.Data.Title)

	st, err = jobs.FetchJob(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Job not found", st.Err)
	assert.Equal(t, "SRE", st.Data.Title)
}

func TestJobs_PageFloorsAtOne(t *testing.T) {
	client := new(mockAPI)
	client.On("ListBestMatchedJobs", mock.Anything, api.ListParams{Page: 1, Limit: 5}).
		Return(&models.Page[models.Job]{Pagination: models.Pagination{CurrentPage: 1}}, nil)

	_, err := NewJobs(client, 5, logger.NewNoOpLogger()).FetchBestMatched(context.Background(), 0)
	require.NoError(t, err)
	client.AssertExpectations(t)
}

// ==========================
// Companies
// ==========================

func TestCompanies(t *testing.T) {
	ctx := context.Background()
	client := new(mockAPI)
	client.On("ListCompanies", mock.Anything, api.ListParams{Page: 2, Limit: 10}).Return(&models.Page[models.Company]{
		Data:       []models.Company{{ID: "c1", Name: "Acme"}},
		Pagination: models.Pagination{CurrentPage: 2, TotalPages: 2},
	}, nil)
	client.On("GetCompany", mock.Anything, "c1").Return(&models.Company{ID: "c1", Name: "Acme"}, nil)
	client.On("ListPlans", mock.Anything).Return([]models.Plan{{ID: "basic"}, {ID: "pro"}}, nil)
	client.On("Subscribe", mock.Anything, models.SubscriptionRequest{PlanID: "pro"}).
		Return(&models.Subscription{CompanyID: "c1", Plan: models.Plan{ID: "pro", Name: "Pro"}, Status: "active"}, nil)

	companies := NewCompanies(client, 10, logger.NewNoOpLogger())

	list, err := companies.FetchPage(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list.Data, 1)
	assert.Equal(t, 2, list.Page.CurrentPage)

	_, err = companies.FetchCompany(ctx, "c1")
	require.NoError(t, err)

	plans, err := companies.FetchPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, plans.Data, 2)

	sub, err := companies.Subscribe(ctx, "pro")
	require.NoError(t, err)
	assert.Equal(t, "active", sub.Data.Status)
	require.NotNil(t, companies.Detail.Snapshot().Data.Plan)
	assert.Equal(t, "Pro", companies.Detail.Snapshot().Data.Plan.Name)

	st, err := companies.Subscribe(ctx, "")
	require.Error(t, err)
	require.Len(t, st.Fields, 1)
	assert.Equal(t, "planId", st.Fields[0].Path)
	client.AssertNumberOfCalls(t, "Subscribe", 1)

	companies.Reset()
	assert.Equal(t, StatusIdle, companies.Plans.Snapshot().Status)
}

// ==========================
// Profile
// ==========================

func TestProfile(t *testing.T) {
	ctx := context.Background()
	profile := models.Profile{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	resume := models.Upload{FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}

	client := new(mockAPI)
	client.On("GetProfile", mock.Anything).Return(&profile, nil)
	client.On("UpdateProfile", mock.Anything, mock.Anything).Return(func() *models.Profile {
		saved := profile
		saved.Headline = "Engineer"
		return &saved
	}(), nil)
	client.On("UploadResume", mock.Anything, resume).Return(&models.UploadResult{URL: "https://cdn.test/cv.pdf"}, nil)
	client.On("UploadAvatar", mock.Anything, mock.Anything).Return(&models.UploadResult{URL: "https://cdn.test/a.png"}, nil)

	p := NewProfile(client, logger.NewNoOpLogger())

	_, err := p.Fetch(ctx)
	require.NoError(t, err)

	edited := profile
	edited.Headline = "Engineer"
	saved, err := p.Save(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", saved.Data.Headline)

	_, err = p.UploadResume(ctx, resume)
	require.NoError(t, err)
	_, err = p.UploadAvatar(ctx, models.Upload{FileName: "a.png", Data: []byte{1}})
	require.NoError(t, err)

	held := p.Profile.Snapshot().Data
	assert.Equal(t, "https://cdn.test/cv.pdf", held.ResumeURL)
	assert.Equal(t, "https://cdn.test/a.png", held.AvatarURL)
	assert.Equal(t, "Engineer", held.Headline)
}

func TestProfile_ClientSideValidation(t *testing.T) {
	client := new(mockAPI)
	p := NewProfile(client, logger.NewNoOpLogger())

	st, err := p.Save(context.Background(), models.Profile{FirstName: "", LastName: "Doe", Email: "bad"})
	require.Error(t, err)
	assert.Equal(t, StatusFailed, st.Status)
	assert.Len(t, st.Fields, 2)

	up, err := p.UploadResume(context.Background(), models.Upload{FileName: "empty.pdf"})
	require.Error(t, err)
	assert.Equal(t, "file: is empty", up.Err)

	client.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "UploadResume", mock.Anything, mock.Anything)
}

// ==========================
// Notifications
// ==========================

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	client := new(mockAPI)
	client.On("ListNotifications", mock.Anything, api.ListParams{Page: 1, Limit: 20}).Return(&models.Page[models.Notification]{
		Data: []models.Notification{{ID: "n1"}, {ID: "n2"}, {ID: "n3", Read: true}},
	}, nil)
	client.On("MarkNotificationRead", mock.Anything, "n2").Return(&models.Notification{ID: "n2", Read: true}, nil)
	client.On("MarkNotificationRead", mock.Anything, "n1").Return(nil, apperrors.NewNetworkError(assert.AnError))

	n := NewNotifications(client, 20, logger.NewNoOpLogger())
	_, err := n.FetchPage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Unread())

	_, err = n.MarkRead(ctx, "n2")
	require.NoError(t, err)
	assert.Equal(t, 1, n.Unread())

	st, err := n.MarkRead(ctx, "n1")
	require.Error(t, err)
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, 1, n.Unread())
}

// ==========================
// Messages
// ==========================

func TestMessages(t *testing.T) {
	ctx := context.Background()
	client := new(mockAPI)
	client.On("ListConversations", mock.Anything, mock.Anything).Return(&models.Page[models.Conversation]{
		Data: []models.Conversation{{ID: "conv-1", UnreadCount: 2}},
	}, nil)
	client.On("ListMessages", mock.Anything, "conv-1", api.ListParams{Page: 1, Limit: 50}).Return(&models.Page[models.Message]{
		Data: []models.Message{{ID: "m1", Body: "Hello"}},
	}, nil)
	client.On("SendMessage", mock.Anything, "conv-1", models.MessageRequest{Body: "Hi there"}).
		Return(&models.Message{ID: "m2", ConversationID: "conv-1", Body: "Hi there", CreatedAt: time.Now()}, nil)
	client.On("SendMessage", mock.Anything, "conv-2", mock.Anything).
		Return(&models.Message{ID: "m3", ConversationID: "conv-2", Body: "Elsewhere"}, nil)

	m := NewMessages(client, 50, logger.NewNoOpLogger())

	convs, err := m.FetchConversations(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, convs.Data, 1)

	_, err = m.FetchMessages(ctx, "conv-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "conv-1", m.OpenConversation())

	_, err = m.Send(ctx, "conv-1", "Hi there")
	require.NoError(t, err)
	_, err = m.Send(ctx, "conv-2", "Elsewhere")
	require.NoError(t, err)

	thread := m.Thread.Snapshot().Data
	require.Len(t, thread, 2)
	assert.Equal(t, "m2", thread[1].ID)

	st, err := m.Send(ctx, "conv-1", "")
	require.Error(t, err)
	require.Len(t, st.Fields, 1)
	assert.Equal(t, "body", st.Fields[0].Path)
	client.AssertNumberOfCalls(t, "SendMessage", 2)

	m.Reset()
	assert.Empty(t, m.OpenConversation())
}

// ==========================
// Applications
// ==========================

func TestApplications(t *testing.T) {
	ctx := context.Background()
	client := new(mockAPI)
	client.On("ApplyToJob", mock.Anything, "j-1", models.ApplicationRequest{CoverLetter: "Keen"}).
		Return(&models.Application{ID: "app-1", JobID: "j-1", Status: models.ApplicationPending}, nil)
	client.On("ListApplications", mock.Anything, mock.Anything).Return(&models.Page[models.Application]{
		Data: []models.Application{{ID: "app-1", JobID: "j-1"}},
	}, nil)

	a := NewApplications(client, 10, logger.NewNoOpLogger())

	st, err := a.Apply(ctx, "j-1", models.ApplicationRequest{CoverLetter: "Keen"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, st.Data.Status)
	assert.True(t, a.HasApplied("j-1"))
	assert.Len(t, a.List.Snapshot().Data, 1)

	_, err = a.FetchPage(ctx, 1)
	require.NoError(t, err)
	assert.True(t, a.HasApplied("j-1"))
	assert.False(t, a.HasApplied("j-2"))

	long := make([]byte, 5001)
	for i := range long {
		long[i] = 'x'
	}
	st, err = a.Apply(ctx, "j-2", models.ApplicationRequest{CoverLetter: string(long)})
	require.Error(t, err)
	assert.Equal(t, "coverLetter", st.Fields[0].Path)
	client.AssertNumberOfCalls(t, "ApplyToJob", 1)
	assert.Len(t, a.List.Snapshot().Data, 1)
}

func TestApplications_ApplyMergesIntoHeldList(t *testing.T) {
	ctx := context.Background()
	client := new(mockAPI)
	client.On("ListApplications", mock.Anything, mock.Anything).Return(&models.Page[models.Application]{
		Data: []models.Application{{ID: "app-1", JobID: "j-1"}},
	}, nil)
	client.On("ApplyToJob", mock.Anything, "j-2", mock.Anything).
		Return(&models.Application{ID: "app-2", Status: models.ApplicationPending}, nil)
	client.On("ApplyToJob", mock.Anything, "j-1", mock.Anything).
		Return(&models.Application{ID: "app-1", JobID: "j-1", Status: models.ApplicationReviewed}, nil)

	a := NewApplications(client, 10, logger.NewNoOpLogger())
	_, err := a.FetchPage(ctx, 1)
	require.NoError(t, err)

	_, err = a.Apply(ctx, "j-2", models.ApplicationRequest{})
	require.NoError(t, err)
	assert.True(t, a.HasApplied("j-2"))

	_, err = a.Apply(ctx, "j-1", models.ApplicationRequest{})
	require.NoError(t, err)

	held := a.List.Snapshot().Data
	require.Len(t, held, 2)
	assert.Equal(t, "app-2", held[0].ID)
	assert.Equal(t, models.ApplicationReviewed, held[1].Status)
	assert.Equal(t, StatusSucceeded, a.List.Snapshot().Status)
}

// ==========================
// Preferences
// ==========================

func TestPreferences_SaveValidation(t *testing.T) {
	client := new(mockAPI)
	p := NewPreferences(client, logger.NewNoOpLogger())

	st, err := p.Save(context.Background(), models.JobPreference{
		Salary: models.SalaryRange{From: models.Float(50000), To: models.Float(10000)},
	})
	require.Error(t, err)
	assert.Equal(t, "salary: minimum must not exceed maximum", st.Err)
	client.AssertNotCalled(t, "UpdatePreferences", mock.Anything, mock.Anything)
}

func TestPreferences_ApplyFilterChange(t *testing.T) {
	ctx := context.Background()
	client := new(mockAPI)
	client.On("UpdatePreferences", mock.Anything, mock.Anything).Return(&models.JobPreference{}, nil)

	p := NewPreferences(client, logger.NewNoOpLogger())

	pushed, err := p.ApplyFilterChange(ctx,
		matching.FilterCriteria{Tags: []string{"remote"}},
		matching.FilterCriteria{Tags: []string{"remote", "contract"}, Search: "go"},
	)
	require.NoError(t, err)
	assert.False(t, pushed)
	client.AssertNotCalled(t, "UpdatePreferences", mock.Anything, mock.Anything)

	pushed, err = p.ApplyFilterChange(ctx,
		matching.FilterCriteria{},
		matching.FilterCriteria{Tags: []string{"45000+"}},
	)
	require.NoError(t, err)
	assert.True(t, pushed)
	client.AssertCalled(t, "UpdatePreferences", mock.Anything, models.JobPreference{
		Salary: models.SalaryRange{From: models.Float(45000)},
	})
}

// ==========================
// Store wiring
// ==========================

func TestNew(t *testing.T) {
	cfg := &config.Config{
		API:      config.APIConfig{BaseURL: "http://localhost:1", PageSize: 10},
		Matching: config.MatchingConfig{SalaryBuckets: config.DefaultSalaryBuckets, ResetFiltersOnPageChange: true},
	}
	sess := newTestSession()
	client := api.NewClient(cfg.API.BaseURL, apphttp.NewClient(0, nil), sess, logger.NewNoOpLogger())

	s, err := New(client, sess, cfg, logger.NewNoOpLogger())
	require.NoError(t, err)
	assert.Equal(t, BoardAll, s.AllJobs.Kind())
	assert.Equal(t, BoardBestMatched, s.BestMatched.Kind())
	assert.Len(t, s.AllJobs.Buckets(), 5)

	cfg.Matching.SalaryBuckets = []string{"nonsense"}
	_, err = New(client, sess, cfg, logger.NewNoOpLogger())
	assert.Error(t, err)
}

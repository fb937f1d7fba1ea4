package store

import (
	"jobmarket-client/internal/api"
	"jobmarket-client/internal/common/config"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/matching"
	"jobmarket-client/internal/session"
)

// Store wires every container to one API client and session context.
type Store struct {
	Auth          *Auth
	Jobs          *Jobs
	Companies     *Companies
	Profile       *Profile
	Notifications *Notifications
	Messages      *Messages
	Preferences   *Preferences
	Applications  *Applications

	AllJobs     *JobBoard
	BestMatched *JobBoard
}

// New builds the containers. Signing out resets all of them.
func New(client *api.Client, sess session.Context, cfg *config.Config, log logger.Logger) (*Store, error) {
	buckets, err := matching.ParseBuckets(cfg.Matching.SalaryBuckets)
	if err != nil {
		return nil, err
	}

	pageSize := cfg.API.PageSize
	s := &Store{
		Auth:          NewAuth(client, sess, log),
		Jobs:          NewJobs(client, pageSize, log),
		Companies:     NewCompanies(client, pageSize, log),
		Profile:       NewProfile(client, log),
		Notifications: NewNotifications(client, pageSize, log),
		Messages:      NewMessages(client, pageSize, log),
		Preferences:   NewPreferences(client, log),
		Applications:  NewApplications(client, pageSize, log),
	}

	opts := BoardOptions{Buckets: buckets, ResetFiltersOnPageChange: cfg.Matching.ResetFiltersOnPageChange}
	s.AllJobs = NewJobBoard(s.Jobs, opts, log)
	s.BestMatched = NewBestMatchedBoard(s.Jobs, s.Preferences, opts, log)

	s.Auth.ResetOnSignOut(
		s.Jobs,
		s.Companies,
		s.Profile,
		s.Notifications,
		s.Messages,
		s.Preferences,
		s.Applications,
		s.AllJobs,
		s.BestMatched,
	)

	return s, nil
}

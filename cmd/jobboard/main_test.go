package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmarket-client/internal/common/config"
)

func createTestConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "jobboard-test"},
		API:      config.APIConfig{BaseURL: "http://127.0.0.1:1", PageSize: 10},
		Session:  config.SessionConfig{Backend: config.BackendMemory, KeyPrefix: "test"},
		Logging:  config.LoggingConfig{Level: "error", Format: "json"},
		Matching: config.MatchingConfig{SalaryBuckets: config.DefaultSalaryBuckets},
	}
}

func TestExecute(t *testing.T) {
	sessionRetryDelay = time.Millisecond
	t.Cleanup(func() { sessionRetryDelay = time.Second })

	mr := miniredis.RunT(t)
	deadRedis := mr.Addr()
	mr.Close()

	tests := []struct {
		name    string
		cmd     string
		load    func() (*config.Config, error)
		wantErr string
		wantOut string
	}{
		{
			name:    "config failure is returned",
			cmd:     "whoami",
			load:    func() (*config.Config, error) { return nil, errors.New("api.base_url is required") },
			wantErr: "config load failed: api.base_url is required",
		},
		{
			name: "unreachable session store is returned",
			cmd:  "whoami",
			load: func() (*config.Config, error) {
				cfg := createTestConfig()
				cfg.Session.Backend = config.BackendRedis
				cfg.Database.Redis.Address = deadRedis
				return cfg, nil
			},
			wantErr: "session store initialization failed after 3 attempts",
		},
		{
			name: "bad salary bucket is returned",
			cmd:  "whoami",
			load: func() (*config.Config, error) {
				cfg := createTestConfig()
				cfg.Matching.SalaryBuckets = []string{"lots"}
				return cfg, nil
			},
			wantErr: "store init failed",
		},
		{
			name:    "unknown command",
			cmd:     "dance",
			load:    func() (*config.Config, error) { return createTestConfig(), nil },
			wantErr: "unknown command",
		},
		{
			name:    "whoami without a session",
			cmd:     "whoami",
			load:    func() (*config.Config, error) { return createTestConfig(), nil },
			wantOut: `"SignedIn": false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := execute(tt.cmd, nil, tt.load, &out)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

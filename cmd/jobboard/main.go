// cmd/jobboard/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobmarket-client/internal/api"
	"jobmarket-client/internal/common/config"
	apphttp "jobmarket-client/internal/common/http"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/observability"
	"jobmarket-client/internal/session"
	"jobmarket-client/internal/store"
)

// app is everything a subcommand needs.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	store *store.Store
	out   *json.Encoder
}

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// sessionRetryDelay is the first backoff step when opening the session store.
var sessionRetryDelay = time.Second

func main() {
	if len(os.Args) < 2 || os.Args[1] == "help" {
		help()
		os.Exit(1)
	}

	if err := execute(os.Args[1], os.Args[2:], config.Load, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute wires the client and runs one command. Every failure is returned
// so deferred cleanup runs before the process exits.
func execute(cmd string, args []string, load func() (*config.Config, error), stdout io.Writer) error {
	cfg, err := load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"app":         cfg.App.Name,
		"environment": cfg.App.Environment,
	})

	obs, err := observability.New(cfg.App.Name, prometheus.DefaultRegisterer)
	if err != nil {
		zapLog.Warn("observability disabled", zap.Error(err))
	}
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Address, zapLog)
	}

	ctx := context.Background()

	var (
		sess      *session.Manager
		closeSess func() error
	)
	err = retryWithBackoff(func() error {
		var err error
		sess, closeSess, err = session.Open(ctx, cfg, log)
		return err
	}, 3, sessionRetryDelay, zapLog, "session store initialization")
	if err != nil {
		zapLog.Error("session store unavailable", zap.Error(err))
		return err
	}
	defer func() {
		if err := closeSess(); err != nil {
			zapLog.Warn("closing session store", zap.Error(err))
		}
	}()

	transport := apphttp.NewClient(config.GetDuration(cfg.API.Timeout), obs)
	client := api.NewClient(cfg.API.BaseURL, transport, sess, log)

	s, err := store.New(client, sess, cfg, log)
	if err != nil {
		zapLog.Error("store init failed", zap.Error(err))
		return fmt.Errorf("store init failed: %w", err)
	}

	a := &app{cfg: cfg, log: log, store: s, out: json.NewEncoder(stdout)}
	a.out.SetIndent("", "  ")

	return a.run(ctx, cmd, args)
}

func serveMetrics(addr string, zapLog *zap.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.Handle("/metrics", promhttp.Handler())

	zapLog.Info("Metrics server listening", zap.String("address", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		zapLog.Error("Metrics server failed", zap.Error(err))
	}
}

func help() {
	fmt.Println(`Usage: jobboard <command> [flags]

Account:
  signin         --email --password --role [--remember]
  register       --name --email --password --role [--company]
  signout
  whoami
  refresh

Jobs:
  jobs           [--page] [--tags a,b] [--search] [--location] [--matched]
  job            --id
  apply          --job [--cover-letter] [--resume-url]
  applications   [--page]
  preferences

Companies:
  companies      [--page]
  company        --id
  plans
  subscribe      --plan

Profile:
  profile
  upload         --kind resume|avatar --file

Inbox:
  notifications  [--page]
  read           --id
  conversations  [--page]
  messages       --conversation [--page]
  send           --conversation --body
  watch          [--interval]`)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/matching"
	"jobmarket-client/internal/models"
	"jobmarket-client/internal/store"
)

var errUsage = errors.New("USAGE")

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "signin":
		return a.signIn(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "signout":
		return a.store.Auth.SignOut(ctx)
	case "whoami":
		st, err := a.store.Auth.Resume(ctx)
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	case "refresh":
		st, err := a.store.Auth.Refresh(ctx)
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	case "jobs":
		return a.jobs(ctx, args)
	case "job":
		return a.job(ctx, args)
	case "apply":
		return a.apply(ctx, args)
	case "applications":
		return a.pageCommand(ctx, "applications", args, func(page int) (interface{}, error) {
			st, err := a.store.Applications.FetchPage(ctx, page)
			return listing(st.Data, st.Page), err
		})
	case "preferences":
		return a.signedIn(ctx, func() error {
			st, err := a.store.Preferences.Fetch(ctx)
			if err != nil {
				return readable(err)
			}
			return a.print(st.Data)
		})
	case "companies":
		return a.pageCommand(ctx, "companies", args, func(page int) (interface{}, error) {
			st, err := a.store.Companies.FetchPage(ctx, page)
			return listing(st.Data, st.Page), err
		})
	case "company":
		return a.company(ctx, args)
	case "plans":
		return a.signedIn(ctx, func() error {
			st, err := a.store.Companies.FetchPlans(ctx)
			if err != nil {
				return readable(err)
			}
			return a.print(st.Data)
		})
	case "subscribe":
		return a.subscribe(ctx, args)
	case "profile":
		return a.signedIn(ctx, func() error {
			st, err := a.store.Profile.Fetch(ctx)
			if err != nil {
				return readable(err)
			}
			return a.print(st.Data)
		})
	case "upload":
		return a.upload(ctx, args)
	case "notifications":
		return a.pageCommand(ctx, "notifications", args, func(page int) (interface{}, error) {
			st, err := a.store.Notifications.FetchPage(ctx, page)
			return listing(st.Data, st.Page), err
		})
	case "read":
		return a.markRead(ctx, args)
	case "conversations":
		return a.pageCommand(ctx, "conversations", args, func(page int) (interface{}, error) {
			st, err := a.store.Messages.FetchConversations(ctx, page)
			return listing(st.Data, st.Page), err
		})
	case "messages":
		return a.messages(ctx, args)
	case "send":
		return a.send(ctx, args)
	case "watch":
		return a.watch(ctx, args)
	default:
		help()
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// ==========================
// Account
// ==========================

func (a *app) signIn(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signin", flag.ContinueOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	role := fs.String("role", string(models.RoleJobSeeker), "job_seeker or company")
	remember := fs.Bool("remember", false, "Store credentials for the next sign-in")
	if err := fs.Parse(args); err != nil {
		return err
	}

	creds := models.Credentials{Email: *email, Password: *password, Role: models.Role(*role)}
	if creds.Email == "" && creds.Password == "" {
		stored, err := a.store.Auth.RememberedCredentials(ctx, creds.Role)
		if err != nil {
			return readable(err)
		}
		if stored != nil {
			creds = *stored
		}
	}

	st, err := a.store.Auth.SignIn(ctx, creds, *remember)
	if err != nil {
		return readable(err)
	}
	return a.print(st.Data)
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	role := fs.String("role", string(models.RoleJobSeeker), "job_seeker or company")
	company := fs.String("company", "", "Company name (company accounts)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := a.store.Auth.Register(ctx, models.RegisterRequest{
		Name:        *name,
		Email:       *email,
		Password:    *password,
		Role:        models.Role(*role),
		CompanyName: *company,
	})
	if err != nil {
		return readable(err)
	}
	return a.print(st.Data)
}

// ==========================
// Jobs
// ==========================

func (a *app) jobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	page := fs.Int("page", 1, "Server page")
	tags := fs.String("tags", "", "Comma separated tags, salary buckets included")
	search := fs.String("search", "", "Title or company search")
	location := fs.String("location", "", "City, province or country")
	matched := fs.Bool("matched", false, "Use the best-matched board")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.signedIn(ctx, func() error {
		board := a.store.AllJobs
		if *matched {
			board = a.store.BestMatched
		}

		if err := board.Load(ctx); err != nil {
			return readable(err)
		}
		if *page > 1 {
			if err := board.ChangePage(ctx, *page); err != nil {
				return readable(err)
			}
		}

		criteria := mergeCriteria(board.Criteria(), splitList(*tags), *search, *location)
		if err := board.SetCriteria(ctx, criteria); err != nil {
			a.log.Warn("preference update failed", map[string]interface{}{"error": apperrors.Message(err)})
		}

		return a.print(map[string]interface{}{
			"board":    board.Kind(),
			"criteria": board.Criteria(),
			"buckets":  bucketKeys(board.Buckets()),
			"page":     board.State().Page,
			"jobs":     board.Visible(),
		})
	})
}

func (a *app) job(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("job", flag.ContinueOnError)
	id := fs.String("id", "", "Job ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: --id is required", errUsage)
	}

	return a.signedIn(ctx, func() error {
		st, err := a.store.Jobs.FetchJob(ctx, *id)
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	})
}

func (a *app) apply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	jobID := fs.String("job", "", "Job ID")
	cover := fs.String("cover-letter", "", "Cover letter")
	resume := fs.String("resume-url", "", "Resume URL, defaults to the profile resume")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID == "" {
		return fmt.Errorf("%w: --job is required", errUsage)
	}

	return a.signedIn(ctx, func() error {
		st, err := a.store.Applications.Apply(ctx, *jobID, models.ApplicationRequest{
			CoverLetter: *cover,
			ResumeURL:   *resume,
		})
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	})
}

// ==========================
// Companies
// ==========================

func (a *app) company(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("company", flag.ContinueOnError)
	id := fs.String("id", "", "Company ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: --id is required", errUsage)
	}

	return a.signedIn(ctx, func() error {
		st, err := a.store.Companies.FetchCompany(ctx, *id)
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	})
}

func (a *app) subscribe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("subscribe", flag.ContinueOnError)
	plan := fs.String("plan", "", "Plan ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.signedIn(ctx, func() error {
		st, err := a.store.Companies.Subscribe(ctx, *plan)
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	})
}

// ==========================
// Profile
// ==========================

func (a *app) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	kind := fs.String("kind", "resume", "resume or avatar")
	path := fs.String("file", "", "File to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := readUpload(*path)
	if err != nil {
		return err
	}

	return a.signedIn(ctx, func() error {
		var st store.State[*models.UploadResult]
		switch *kind {
		case "resume":
			st, err = a.store.Profile.UploadResume(ctx, f)
		case "avatar":
			st, err = a.store.Profile.UploadAvatar(ctx, f)
		default:
			return fmt.Errorf("%w: --kind must be resume or avatar", errUsage)
		}
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	})
}

// ==========================
// Inbox
// ==========================

func (a *app) markRead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("read", flag.ContinueOnError)
	id := fs.String("id", "", "Notification ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("%w: --id is required", errUsage)
	}

	return a.signedIn(ctx, func() error {
		st, err := a.store.Notifications.MarkRead(ctx, *id)
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	})
}

func (a *app) messages(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("messages", flag.ContinueOnError)
	conversation := fs.String("conversation", "", "Conversation ID")
	page := fs.Int("page", 1, "Server page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *conversation == "" {
		return fmt.Errorf("%w: --conversation is required", errUsage)
	}

	return a.signedIn(ctx, func() error {
		st, err := a.store.Messages.FetchMessages(ctx, *conversation, *page)
		if err != nil {
			return readable(err)
		}
		return a.print(listing(st.Data, st.Page))
	})
}

func (a *app) send(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	conversation := fs.String("conversation", "", "Conversation ID")
	body := fs.String("body", "", "Message text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *conversation == "" {
		return fmt.Errorf("%w: --conversation is required", errUsage)
	}

	return a.signedIn(ctx, func() error {
		st, err := a.store.Messages.Send(ctx, *conversation, *body)
		if err != nil {
			return readable(err)
		}
		return a.print(st.Data)
	})
}

// watch polls notifications until interrupted.
func (a *app) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	interval := fs.Duration("interval", 30*time.Second, "Poll interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.signedIn(ctx, func() error {
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()

		for {
			if _, err := a.store.Notifications.FetchPage(ctx, 1); err != nil && !errors.Is(err, store.ErrSuperseded) {
				a.log.Warn("notification poll failed", map[string]interface{}{"error": apperrors.Message(err)})
			} else {
				a.log.Info("notifications polled", map[string]interface{}{"unread": a.store.Notifications.Unread()})
			}

			select {
			case <-ctx.Done():
				a.log.Info("watch stopped", nil)
				return nil
			case <-ticker.C:
			}
		}
	})
}

// ==========================
// Helpers
// ==========================

// signedIn resumes the persisted session and runs fn when someone is signed in.
func (a *app) signedIn(ctx context.Context, fn func() error) error {
	st, err := a.store.Auth.Resume(ctx)
	if err != nil {
		return readable(err)
	}
	if !st.Data.SignedIn {
		return readable(apperrors.NewNotAuthenticatedError())
	}
	return fn()
}

func (a *app) pageCommand(ctx context.Context, name string, args []string, fetch func(page int) (interface{}, error)) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	page := fs.Int("page", 1, "Server page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.signedIn(ctx, func() error {
		out, err := fetch(*page)
		if err != nil {
			return readable(err)
		}
		return a.print(out)
	})
}

func (a *app) print(v interface{}) error {
	return a.out.Encode(v)
}

func listing[T any](data []T, page *models.Pagination) map[string]interface{} {
	return map[string]interface{}{
		"data":       data,
		"pagination": page,
	}
}

// readable replaces err with the line a screen would show.
func readable(err error) error {
	if fields := apperrors.Fields(err); len(fields) > 0 {
		return fmt.Errorf("%s", apperrors.Message(err))
	}
	return fmt.Errorf("%s: %w", apperrors.Message(err), err)
}

func bucketKeys(buckets []matching.SalaryBucket) []string {
	keys := make([]string, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
	}
	return keys
}

package store

import (
	"context"

	apperrors "jobmarket-client/internal/common/errors"
	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/validation"
	"jobmarket-client/internal/models"
	"jobmarket-client/internal/session"
)

// Account is what the auth container mirrors.
type Account struct {
	SignedIn bool
	UserID   string
	Role     models.Role
	User     *models.User
}

// Auth signs users in and out and keeps the session context in step.
type Auth struct {
	*Container[Account]

	api       AuthAPI
	session   session.Context
	logger    logger.Logger
	onSignOut []Resetter
}

func NewAuth(client AuthAPI, sess session.Context, log logger.Logger) *Auth {
	return &Auth{
		Container: NewContainer[Account]("auth", log),
		api:       client,
		session:   sess,
		logger:    log.WithFields(map[string]interface{}{"component": "auth"}),
	}
}

// ResetOnSignOut registers containers that are cleared when the user signs out.
func (a *Auth) ResetOnSignOut(r ...Resetter) {
	a.onSignOut = append(a.onSignOut, r...)
}

// SignIn validates the form, authenticates, stores the session and, when
// remember is set, keeps the credentials for the role.
func (a *Auth) SignIn(ctx context.Context, creds models.Credentials, remember bool) (State[Account], error) {
	return a.Run(ctx, func(ctx context.Context) (Result[Account], error) {
		if err := validation.Check(validation.FormSignIn, creds); err != nil {
			return Result[Account]{}, err
		}

		resp, err := a.api.Login(ctx, creds)
		if err != nil {
			return Result[Account]{}, err
		}

		account, err := a.storeSession(ctx, resp, creds.Role)
		if err != nil {
			return Result[Account]{}, err
		}

		if remember {
			if err := a.session.Remember(ctx, creds); err != nil {
				a.logger.Warn("failed to remember credentials", map[string]interface{}{"error": err.Error()})
			}
		}
		return Result[Account]{Data: account}, nil
	})
}

func (a *Auth) Register(ctx context.Context, req models.RegisterRequest) (State[Account], error) {
	return a.Run(ctx, func(ctx context.Context) (Result[Account], error) {
		if err := validation.Check(validation.FormRegister, req); err != nil {
			return Result[Account]{}, err
		}

		resp, err := a.api.Register(ctx, req)
		if err != nil {
			return Result[Account]{}, err
		}

		account, err := a.storeSession(ctx, resp, req.Role)
		if err != nil {
			return Result[Account]{}, err
		}
		return Result[Account]{Data: account}, nil
	})
}

// Resume restores a persisted session at start-up. No request is sent.
func (a *Auth) Resume(ctx context.Context) (State[Account], error) {
	return a.Run(ctx, func(ctx context.Context) (Result[Account], error) {
		s, err := a.session.GetSession(ctx)
		if err != nil {
			return Result[Account]{}, err
		}
		if s.IsZero() {
			return Result[Account]{Data: Account{}}, nil
		}
		return Result[Account]{Data: Account{SignedIn: true, UserID: s.UserID, Role: s.Role}}, nil
	})
}

// Refresh exchanges the stored refresh token for new tokens.
func (a *Auth) Refresh(ctx context.Context) (State[Account], error) {
	return a.Run(ctx, func(ctx context.Context) (Result[Account], error) {
		s, err := a.session.GetSession(ctx)
		if err != nil {
			return Result[Account]{}, err
		}
		if s.IsZero() || s.RefreshToken == "" {
			return Result[Account]{}, apperrors.NewNotAuthenticatedError()
		}

		resp, err := a.api.Refresh(ctx, s.RefreshToken)
		if err != nil {
			return Result[Account]{}, err
		}
		if resp.RefreshToken == "" {
			resp.RefreshToken = s.RefreshToken
		}
		if resp.User.ID == "" {
			resp.User.ID = s.UserID
		}

		account, err := a.storeSession(ctx, resp, s.Role)
		if err != nil {
			return Result[Account]{}, err
		}
		return Result[Account]{Data: account}, nil
	})
}

// SignOut tells the server, then clears the session context and every
// registered container whatever the server answered.
func (a *Auth) SignOut(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.logger.Warn("logout request failed, clearing local session anyway", map[string]interface{}{"error": err.Error()})
	}

	if err := a.session.ClearSession(ctx); err != nil {
		return err
	}

	for _, r := range a.onSignOut {
		r.Reset()
	}
	a.Reset()
	return nil
}

// RememberedCredentials returns what remember-me stored for role, or nil.
func (a *Auth) RememberedCredentials(ctx context.Context, role models.Role) (*models.Credentials, error) {
	return a.session.Recall(ctx, role)
}

func (a *Auth) storeSession(ctx context.Context, resp *models.AuthResponse, fallbackRole models.Role) (Account, error) {
	role := resp.User.Role
	if role == "" {
		role = fallbackRole
	}

	s := models.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		Role:         role,
	}
	if err := a.session.SetSession(ctx, s); err != nil {
		return Account{}, err
	}

	user := resp.User
	user.Role = role
	return Account{SignedIn: true, UserID: user.ID, Role: role, User: &user}, nil
}

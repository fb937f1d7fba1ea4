// internal/models/session.go
package models

// Session is the persisted sign-in state.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	UserID       string `json:"userId"`
	Role         Role   `json:"role"`
}

// IsZero reports whether no session is held.
func (s Session) IsZero() bool {
	return s.AccessToken == ""
}

package account

import (
	"net/mail"
	"strings"

	"roamtable/internal/session"
	dErrors "roamtable/pkg/domain-errors"
)

// LoginRequest is the credentials payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	if r == nil {
		return
	}
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

func (r *LoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	r.Normalize()
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

// loginResponse is what the backend returns on a successful login.
type loginResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Profile is the authenticated user's account view.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Points is the server-computed loyalty summary. The client only displays
// these values; all computation stays on the backend.
type Points struct {
	Balance    int `json:"balance"`
	StreakDays int `json:"streak_days"`
}

// Referral is the user's invite code and its usage count.
type Referral struct {
	Code         string `json:"code"`
	URL          string `json:"url,omitempty"`
	InvitedCount int    `json:"invited_count"`
}

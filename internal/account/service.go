// Package account owns the session lifecycle: login writes the token and
// user record to the session store as one atomic unit, logout clears it.
// Expiry in between is detected reactively by the gateway, not here.
package account

import (
	"context"
	"log/slog"
	"net/http"

	"roamtable/internal/gateway"
	"roamtable/internal/session"
	dErrors "roamtable/pkg/domain-errors"
)

type Service struct {
	fetch    gateway.Fetcher
	sessions session.Store
	log      *slog.Logger
}

// New creates an account service over the given fetcher and session store.
func New(fetch gateway.Fetcher, sessions session.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{fetch: fetch, sessions: sessions, log: log}
}

// Login exchanges credentials for a bearer token and persists the session.
// The login call itself goes out unauthenticated; a stale local token must
// not be attached to it.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*session.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := s.fetch.FetchWithAuth(ctx, "/auth/login", gateway.FetchOptions{
		Method:   http.MethodPost,
		Body:     req,
		SkipAuth: true,
	})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var payload loginResponse
	if err := res.Decode(&payload); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode login response")
	}

	sess := &session.Session{Token: payload.Token, User: payload.User}
	if !sess.Valid() {
		return nil, dErrors.New(dErrors.CodeInternal, "login response missing token or user")
	}

	if err := s.sessions.Set(sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "persist session")
	}

	s.log.InfoContext(ctx, "logged in", "user_id", sess.User.ID, "role", sess.User.Role)
	return sess, nil
}

// Logout tells the backend to revoke the token, then clears the local
// session. The local clear happens regardless of the remote outcome: a dead
// backend must not trap the user in a broken session.
func (s *Service) Logout(ctx context.Context) error {
	res := s.fetch.FetchWithAuth(ctx, "/auth/logout", gateway.FetchOptions{
		Method: http.MethodPost,
	})
	if res.Err != "" {
		s.log.WarnContext(ctx, "remote logout failed, clearing local session anyway",
			"status", res.Status,
			"error", res.Err,
		)
	}
	if err := s.sessions.Clear(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "clear session")
	}
	return nil
}

// Current returns the locally persisted session, or nil when anonymous.
// No network call is made.
func (s *Service) Current() (*session.Session, error) {
	sess, err := s.sessions.Get()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "read session")
	}
	return sess, nil
}

// Profile fetches the authenticated user's account record.
func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	res := s.fetch.FetchWithAuth(ctx, "/users/me", gateway.FetchOptions{})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var profile Profile
	if err := res.Decode(&profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode profile")
	}
	return &profile, nil
}

// Points fetches the server-computed loyalty summary.
func (s *Service) Points(ctx context.Context) (*Points, error) {
	res := s.fetch.FetchWithAuth(ctx, "/users/me/points", gateway.FetchOptions{})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var points Points
	if err := res.Decode(&points); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode points")
	}
	return &points, nil
}

// Referral fetches the user's invite code.
func (s *Service) Referral(ctx context.Context) (*Referral, error) {
	res := s.fetch.FetchWithAuth(ctx, "/users/me/referral", gateway.FetchOptions{})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var referral Referral
	if err := res.Decode(&referral); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode referral")
	}
	return &referral, nil
}

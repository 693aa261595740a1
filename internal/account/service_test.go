package account

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"roamtable/internal/gateway"
	"roamtable/internal/gateway/mocks"
	"roamtable/internal/session"
	dErrors "roamtable/pkg/domain-errors"
)

type AccountServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fetcher *mocks.MockFetcher
	store   session.Store
	service *Service
}

func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.store = session.NewInMemoryStore()
	s.service = New(s.fetcher, s.store, nil)
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) TestLoginPersistsSession() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/auth/login", gomock.Cond(func(opts gateway.FetchOptions) bool {
			// Login must never carry a stale token.
			return opts.Method == http.MethodPost && opts.SkipAuth
		})).
		Return(gateway.Result{
			Data:   []byte(`{"token":"abc123","user":{"id":"user-1","email":"jane@example.com","role":"user"}}`),
			Status: http.StatusOK,
		})

	sess, err := s.service.Login(context.Background(), &LoginRequest{
		Email:    "Jane@Example.com",
		Password: "hunter2",
	})

	s.Require().NoError(err)
	s.Equal("abc123", sess.Token)
	s.Equal("user-1", sess.User.ID)

	stored, err := s.store.Get()
	s.Require().NoError(err)
	s.Equal(sess, stored)
}

func (s *AccountServiceSuite) TestLoginBadCredentials() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/auth/login", gomock.Any()).
		Return(gateway.Result{Status: http.StatusUnauthorized, Err: "invalid credentials", SessionExpired: true})

	_, err := s.service.Login(context.Background(), &LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	s.Error(err)

	stored, storeErr := s.store.Get()
	s.Require().NoError(storeErr)
	s.Nil(stored, "failed login must not persist a session")
}

func (s *AccountServiceSuite) TestLoginValidation() {
	tests := []struct {
		name string
		req  *LoginRequest
	}{
		{"nil request", nil},
		{"missing email", &LoginRequest{Password: "hunter2"}},
		{"bad email", &LoginRequest{Email: "not-an-email", Password: "hunter2"}},
		{"missing password", &LoginRequest{Email: "jane@example.com"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Login(context.Background(), tt.req)
			s.Error(err)
		})
	}
}

func (s *AccountServiceSuite) TestLoginIncompleteResponse() {
	// A token without a user must not become an authenticated session.
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/auth/login", gomock.Any()).
		Return(gateway.Result{Data: []byte(`{"token":"abc123"}`), Status: http.StatusOK})

	_, err := s.service.Login(context.Background(), &LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter2",
	})

	s.True(dErrors.HasCode(err, dErrors.CodeInternal))

	stored, storeErr := s.store.Get()
	s.Require().NoError(storeErr)
	s.Nil(stored)
}

func (s *AccountServiceSuite) seedSession() {
	s.Require().NoError(s.store.Set(&session.Session{
		Token: "abc123",
		User:  session.User{ID: "user-1", Email: "jane@example.com", Role: "user"},
	}))
}

func (s *AccountServiceSuite) TestLogoutClearsLocally() {
	s.seedSession()
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/auth/logout", gateway.FetchOptions{Method: http.MethodPost}).
		Return(gateway.Result{Status: http.StatusNoContent})

	s.Require().NoError(s.service.Logout(context.Background()))

	stored, err := s.store.Get()
	s.Require().NoError(err)
	s.Nil(stored)
}

func (s *AccountServiceSuite) TestLogoutClearsEvenWhenRemoteFails() {
	s.seedSession()
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/auth/logout", gomock.Any()).
		Return(gateway.Result{Status: 0, Err: "connection refused"})

	s.Require().NoError(s.service.Logout(context.Background()))

	stored, err := s.store.Get()
	s.Require().NoError(err)
	s.Nil(stored, "local session must clear even if the backend is down")
}

func (s *AccountServiceSuite) TestProfile() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/users/me", gateway.FetchOptions{}).
		Return(gateway.Result{
			Data:   []byte(`{"id":"user-1","email":"jane@example.com","role":"user","name":"Jane Doe"}`),
			Status: http.StatusOK,
		})

	profile, err := s.service.Profile(context.Background())

	s.Require().NoError(err)
	s.Equal("Jane Doe", profile.Name)
}

func (s *AccountServiceSuite) TestPointsAndReferral() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/users/me/points", gateway.FetchOptions{}).
		Return(gateway.Result{Data: []byte(`{"balance":420,"streak_days":7}`), Status: http.StatusOK})
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/users/me/referral", gateway.FetchOptions{}).
		Return(gateway.Result{Data: []byte(`{"code":"JANE20","invited_count":3}`), Status: http.StatusOK})

	points, err := s.service.Points(context.Background())
	s.Require().NoError(err)
	s.Equal(420, points.Balance)
	s.Equal(7, points.StreakDays)

	referral, err := s.service.Referral(context.Background())
	s.Require().NoError(err)
	s.Equal("JANE20", referral.Code)
}

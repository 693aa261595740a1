package session

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) validSession() *Session {
	return &Session{
		Token: "abc123",
		User: User{
			ID:    "user-1",
			Email: "jane.doe@example.com",
			Role:  "user",
		},
	}
}

func (s *InMemoryStoreSuite) TestGetEmpty() {
	sess, err := s.store.Get()
	s.Require().NoError(err)
	s.Nil(sess)
}

func (s *InMemoryStoreSuite) TestSetAndGet() {
	want := s.validSession()
	s.Require().NoError(s.store.Set(want))

	got, err := s.store.Get()
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *InMemoryStoreSuite) TestGetReturnsCopy() {
	s.Require().NoError(s.store.Set(s.validSession()))

	first, err := s.store.Get()
	s.Require().NoError(err)
	first.Token = "mutated"

	second, err := s.store.Get()
	s.Require().NoError(err)
	s.Equal("abc123", second.Token)
}

func (s *InMemoryStoreSuite) TestClearIdempotent() {
	s.Require().NoError(s.store.Set(s.validSession()))

	s.Require().NoError(s.store.Clear())
	s.Require().NoError(s.store.Clear())

	sess, err := s.store.Get()
	s.Require().NoError(err)
	s.Nil(sess)
}

func (s *InMemoryStoreSuite) TestPartialRecordReadsAsAnonymous() {
	// Token without user fails closed.
	s.Require().NoError(s.store.Set(&Session{Token: "abc123"}))

	sess, err := s.store.Get()
	s.Require().NoError(err)
	s.Nil(sess)
	s.Empty(Token(s.store))
}

func (s *InMemoryStoreSuite) TestTokenHelper() {
	s.Empty(Token(s.store))

	s.Require().NoError(s.store.Set(s.validSession()))
	s.Equal("abc123", Token(s.store))
}

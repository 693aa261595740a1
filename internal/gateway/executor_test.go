package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	. "roamtable/internal/gateway"
	"roamtable/internal/gateway/mocks"
	"roamtable/internal/session"
)

func newTestStore(t *testing.T, token string) session.Store {
	t.Helper()
	store := session.NewInMemoryStore()
	if token != "" {
		require.NoError(t, store.Set(&session.Session{
			Token: token,
			User:  session.User{ID: "user-1", Email: "jane@example.com", Role: "user"},
		}))
	}
	return store
}

func newTestExecutor(t *testing.T, baseURL, token string) *Executor {
	t.Helper()
	return NewExecutor(Config{
		BaseURL:  baseURL,
		Sessions: newTestStore(t, token),
	})
}

func TestFetchAttachesBearerToken(t *testing.T) {
	// Token present, auth not skipped, no body: Authorization is exact,
	// no Content-Type is added.
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	exec := newTestExecutor(t, srv.URL, "abc123")
	res := exec.Fetch(context.Background(), "/restaurants", FetchOptions{})

	require.True(t, res.OK())
	assert.Equal(t, "Bearer abc123", got.Header.Get("Authorization"))
	assert.Empty(t, got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
}

func TestFetchSkipAuthSuppressesToken(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	exec := newTestExecutor(t, srv.URL, "abc123")
	res := exec.Fetch(context.Background(), "/locations", FetchOptions{SkipAuth: true})

	require.True(t, res.OK())
	assert.Empty(t, got.Header.Get("Authorization"))
}

func TestFetchProceedsWithoutToken(t *testing.T) {
	// Anonymous call still goes out; it does not fail locally.
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	exec := newTestExecutor(t, srv.URL, "")
	res := exec.Fetch(context.Background(), "/locations", FetchOptions{})

	require.True(t, res.OK())
	assert.Empty(t, got.Header.Get("Authorization"))
}

func TestFetchBodyDefaultsContentType(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"b-1"}`))
	}))
	defer srv.Close()

	exec := newTestExecutor(t, srv.URL, "abc123")
	res := exec.Fetch(context.Background(), "/bookings", FetchOptions{
		Method: http.MethodPost,
		Body:   map[string]any{"party_size": 2},
	})

	require.True(t, res.OK())
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
}

func TestFetchCallerContentTypeWins(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	exec := newTestExecutor(t, srv.URL, "abc123")
	res := exec.Fetch(context.Background(), "/import", FetchOptions{
		Method:  http.MethodPost,
		Body:    map[string]any{"raw": true},
		Headers: map[string]string{"Content-Type": "application/vnd.roamtable+json"},
	})

	require.True(t, res.OK())
	assert.Equal(t, "application/vnd.roamtable+json", got.Header.Get("Content-Type"))
}

func TestFetchSuccessWithJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "x", "name": "Test"}`))
	}))
	defer srv.Close()

	exec := newTestExecutor(t, srv.URL, "abc123")
	res := exec.Fetch(context.Background(), "/restaurants/x", FetchOptions{})

	assert.Equal(t, http.StatusOK, res.Status)
	assert.False(t, res.SessionExpired)
	assert.Empty(t, res.Err)

	var payload struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, res.Decode(&payload))
	assert.Equal(t, "x", payload.ID)
	assert.Equal(t, "Test", payload.Name)
}

func TestFetchSuccessWithEmptyBody(t *testing.T) {
	// 2xx with no usable body is success with no data, not an error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	exec := newTestExecutor(t, srv.URL, "abc123")
	res := exec.Fetch(context.Background(), "/bookings/b-1", FetchOptions{Method: http.MethodDelete})

	assert.True(t, res.OK())
	assert.Nil(t, res.Data)
	assert.Empty(t, res.Err)
}

func TestFetchErrorBodyMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"message field", http.StatusUnprocessableEntity, `{"message": "party size too large"}`, "party size too large"},
		{"error field fallback", http.StatusBadRequest, `{"error": "missing slug"}`, "missing slug"},
		{"json without message", http.StatusInternalServerError, `{"oops": true}`, "request failed"},
		{"non-json body", http.StatusInternalServerError, `<html>Internal Server Error</html>`, "request failed"},
		{"empty body", http.StatusBadGateway, ``, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			exec := newTestExecutor(t, srv.URL, "abc123")
			res := exec.Fetch(context.Background(), "/anything", FetchOptions{})

			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.wantErr, res.Err)
			assert.Nil(t, res.Data)
			assert.False(t, res.SessionExpired)
		})
	}
}

func TestFetchClassifiesExpiry(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message": "Forbidden"}`))
		}))

		exec := newTestExecutor(t, srv.URL, "abc123")
		res := exec.Fetch(context.Background(), "/admin/posts", FetchOptions{})

		assert.True(t, res.SessionExpired, "status %d", status)
		assert.Equal(t, "Forbidden", res.Err)
		srv.Close()
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mocks.NewMockDoer(ctrl)
	doer.EXPECT().Do(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	exec := NewExecutor(Config{
		BaseURL:    "http://api.invalid",
		Sessions:   newTestStore(t, "abc123"),
		HTTPClient: doer,
	})

	res := exec.Fetch(context.Background(), "/restaurants", FetchOptions{})

	assert.Equal(t, 0, res.Status)
	assert.Equal(t, "dial tcp: connection refused", res.Err)
	assert.False(t, res.SessionExpired)
	assert.Nil(t, res.Data)
}

func TestFetchUnmarshalableBodyIsLocalFailure(t *testing.T) {
	exec := newTestExecutor(t, "http://api.invalid", "abc123")

	res := exec.Fetch(context.Background(), "/restaurants", FetchOptions{
		Method: http.MethodPost,
		Body:   make(chan int), // not JSON-marshalable
	})

	assert.Equal(t, 0, res.Status)
	assert.Contains(t, res.Err, "encode request body")
}

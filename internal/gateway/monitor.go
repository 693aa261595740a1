package gateway

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"roamtable/internal/session"
)

// Navigator abstracts whatever can move the user to another screen: a
// browser shell, a TUI router, or a test fake. Injected so redirects are
// testable without real navigation.
type Navigator interface {
	Navigate(route string)
}

// IsExpired reports whether a status code means the backend no longer
// accepts the current session. Pure function, no side effects.
func IsExpired(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// Monitor tears down the local session once the backend stops accepting it.
type Monitor struct {
	sessions session.Store
	log      *slog.Logger
}

// NewMonitor creates a Monitor over the given session store.
func NewMonitor(sessions session.Store, log *slog.Logger) *Monitor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Monitor{sessions: sessions, log: log}
}

// Teardown clears the session store. It always succeeds from the caller's
// point of view; a failed clear is logged and swallowed because there is
// nothing useful a caller can do with it mid-redirect.
func (m *Monitor) Teardown() {
	if err := m.sessions.Clear(); err != nil {
		m.log.Warn("failed to clear session on teardown", "error", err)
	}
}

// RedirectToLogin tears down the session, then sends the navigator to the
// login route with an expired=true flag and, if given, a human-readable
// message as a query parameter.
func (m *Monitor) RedirectToLogin(nav Navigator, loginRoute, message string) {
	m.Teardown()

	q := url.Values{}
	q.Set("expired", "true")
	if message != "" {
		q.Set("message", message)
	}

	sep := "?"
	if strings.Contains(loginRoute, "?") {
		sep = "&"
	}
	nav.Navigate(loginRoute + sep + q.Encode())
}

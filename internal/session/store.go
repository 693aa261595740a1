// Package session holds the client's single source of truth for the current
// session's credentials. The store is an injected dependency rather than a
// process-wide global so tests can substitute an in-memory fake and so
// independent sessions (admin vs. end-user) don't collide.
package session

// Error Contract:
// All store methods follow this error pattern:
// - Get returns (nil, nil) when no valid session is present (anonymous)
// - Clear is idempotent; clearing an empty store is a no-op, never an error
// - Infrastructure failures (disk I/O) are returned wrapped with context

// Store is the persistence boundary for the current session.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the current session, or nil when anonymous.
	// Partial or corrupt records read as anonymous.
	Get() (*Session, error)

	// Set replaces the current session as a single atomic record.
	Set(s *Session) error

	// Clear removes the session. Idempotent.
	Clear() error
}

// Token resolves the bearer token from a store, or "" when anonymous.
// Read failures also resolve to "": an outgoing request proceeds
// unauthenticated rather than failing locally.
func Token(store Store) string {
	s, err := store.Get()
	if err != nil || !s.Valid() {
		return ""
	}
	return s.Token
}

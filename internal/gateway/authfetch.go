package gateway

import "context"

// DefaultExpiredMessage is shown to the user when a request detects that the
// backend stopped accepting the session.
const DefaultExpiredMessage = "Your session has expired. Please sign in again."

// Fetcher is the single call surface UI-level code depends on.
type Fetcher interface {
	FetchWithAuth(ctx context.Context, path string, opts FetchOptions) Result
}

// AuthFetcher binds the executor and session monitor to a navigation handle,
// so callers get automatic expiry handling from a single call site. The
// login route is fixed per instance: build one AuthFetcher per
// authentication realm (end-user vs. admin) with its own route.
type AuthFetcher struct {
	exec       *Executor
	monitor    *Monitor
	nav        Navigator
	loginRoute string
}

// AuthFetcherOption configures an AuthFetcher.
type AuthFetcherOption func(*AuthFetcher)

// WithLoginRoute overrides the route users are sent to on session expiry.
func WithLoginRoute(route string) AuthFetcherOption {
	return func(f *AuthFetcher) {
		f.loginRoute = route
	}
}

// NewAuthFetcher binds exec and monitor to nav.
func NewAuthFetcher(exec *Executor, monitor *Monitor, nav Navigator, opts ...AuthFetcherOption) *AuthFetcher {
	f := &AuthFetcher{
		exec:       exec,
		monitor:    monitor,
		nav:        nav,
		loginRoute: "/login",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchWithAuth delegates to the executor and, when the result is classified
// as session-expired, performs the teardown-and-redirect side effect before
// returning. The caller still receives the raw result and may also react to
// its error. Only this path redirects; calling the Executor directly never
// does.
func (f *AuthFetcher) FetchWithAuth(ctx context.Context, path string, opts FetchOptions) Result {
	res := f.exec.Fetch(ctx, path, opts)
	if res.SessionExpired {
		f.monitor.RedirectToLogin(f.nav, f.loginRoute, DefaultExpiredMessage)
	}
	return res
}

var _ Fetcher = (*AuthFetcher)(nil)

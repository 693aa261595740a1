package gateway

// FetchOptions configures a single gateway request. The zero value is a
// plain authenticated GET.
type FetchOptions struct {
	// Method is the HTTP method; empty means GET.
	Method string

	// Body, when non-nil, is JSON-marshaled into the request body.
	Body any

	// Headers are caller-supplied headers. They are applied after the
	// gateway's own Authorization/Content-Type defaults, so an explicit
	// caller header always wins.
	Headers map[string]string

	// SkipAuth suppresses attaching the bearer token, for endpoints that
	// must be called unauthenticated (public listing reads, login itself).
	SkipAuth bool
}

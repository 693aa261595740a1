// Package mockapi is an in-process stand-in for the RoamTable backend. It
// serves the same routes and error shapes the real API does, backed by
// seeded in-memory data, so the client stack can be exercised end to end
// without a deployed environment.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// DefaultSigningKey signs tokens when the caller does not provide one.
// It is a development convenience, nothing more.
const DefaultSigningKey = "roamtable-mock-signing-key"

// Server holds the mock backend state and its token service.
type Server struct {
	store  *store
	tokens *tokenService
	log    *slog.Logger
	now    func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithSigningKey overrides the HS256 signing key.
func WithSigningKey(key string) Option {
	return func(s *Server) { s.tokens = newTokenService(key, s.tokens.ttl) }
}

// WithTokenTTL overrides the issued-token lifetime. Short TTLs are handy
// for forcing expiry in tests.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.tokens.ttl = ttl }
}

// WithClock overrides the time source used when issuing tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a mock backend with seeded directory, catalog and blog data
// and two accounts: jane@example.com/hunter2 and admin@roamtable.dev/letmein.
func New(log *slog.Logger, opts ...Option) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		store:  seedStore(),
		tokens: newTokenService(DefaultSigningKey, time.Hour),
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with all mock routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/logout", s.handleLogout)

	r.Get("/restaurants", s.handleListRestaurants)
	r.Get("/restaurants/{slug}", s.handleGetRestaurant)
	r.Get("/locations", s.handleListLocations)

	r.Get("/sim/providers", s.handleListProviders)
	r.Get("/sim/packages", s.handleListPackages)

	r.Get("/blog/posts", s.handleListPosts)
	r.Get("/blog/posts/{slug}", s.handleGetPost)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/users/me", s.handleProfile)
		r.Get("/users/me/points", s.handlePoints)
		r.Get("/users/me/referral", s.handleReferral)

		r.Post("/bookings", s.handleCreateBooking)
		r.Get("/bookings", s.handleListBookings)
		r.Delete("/bookings/{id}", s.handleCancelBooking)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth, s.requireAdmin)

		r.Post("/admin/restaurants", s.handleCreateRestaurant)
		r.Put("/admin/restaurants/{id}", s.handleUpdateRestaurant)
		r.Delete("/admin/restaurants/{id}", s.handleDeleteRestaurant)

		r.Post("/admin/blog/posts", s.handleCreatePost)
		r.Put("/admin/blog/posts/{id}", s.handleUpdatePost)
		r.Delete("/admin/blog/posts/{id}", s.handleDeletePost)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError emits the backend's error envelope. The client surfaces the
// message field verbatim.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

package mockapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const claimsKey contextKey = "claims"

func claimsFrom(ctx context.Context) *accessClaims {
	claims, _ := ctx.Value(claimsKey).(*accessClaims)
	return claims
}

// requireAuth rejects requests without a live bearer token. Missing,
// malformed, expired and revoked tokens all come back as 401 with a JSON
// message body, matching the production API.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		claims, err := s.tokens.verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "token expired or invalid")
			return
		}
		if s.store.isRevoked(claims.ID) {
			writeError(w, http.StatusUnauthorized, "token revoked")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin sits behind requireAuth and gates the admin surface.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())
		if claims == nil || claims.Role != "admin" {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

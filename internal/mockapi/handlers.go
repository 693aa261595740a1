package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mssola/useragent"
	"golang.org/x/crypto/bcrypt"

	"roamtable/internal/blog"
	"roamtable/internal/booking"
	"roamtable/internal/directory"
	"roamtable/internal/session"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u := s.store.findUser(payload.Email)
	if u == nil || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(payload.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.tokens.issue(u.ID, u.Email, u.Role, s.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	ua := useragent.New(r.UserAgent())
	browser, _ := ua.Browser()
	s.log.Info("login",
		"user_id", u.ID,
		"role", u.Role,
		"os", ua.OS(),
		"browser", browser,
		"mobile", ua.Mobile(),
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  sessionUser(u),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Logout revokes whatever token came in but never fails: a client with
	// a dead token still deserves a clean exit.
	if token, ok := bearerToken(r); ok {
		if claims, err := s.tokens.verify(token); err == nil {
			s.store.revokeToken(claims.ID)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func bearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return token, ok && token != ""
}

func sessionUser(u *user) session.User {
	out := session.User{ID: u.ID, Email: u.Email, Role: u.Role}
	if u.Role == "admin" {
		out.Permissions = map[string]bool{
			"manage_directory": true,
			"manage_blog":      true,
		}
	}
	return out
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unknown user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"role":       u.Role,
		"created_at": u.CreatedAt.Format("2006-01-02"),
	})
}

func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unknown user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"balance":     u.Points,
		"streak_days": u.StreakDays,
	})
}

func (s *Server) handleReferral(w http.ResponseWriter, r *http.Request) {
	u := s.currentUser(r)
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unknown user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"code":          u.ReferralCode,
		"url":           "https://roamtable.example/r/" + u.ReferralCode,
		"invited_count": 3,
	})
}

func (s *Server) currentUser(r *http.Request) *user {
	claims := claimsFrom(r.Context())
	if claims == nil {
		return nil
	}
	return s.store.userByID(claims.Subject)
}

func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out := s.store.listRestaurants(q.Get("location_id"), q.Get("cuisine"), q.Get("search"))
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := s.store.restaurantBySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (s *Server) handleListLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listLocations())
}

func (s *Server) handleCreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req directory.UpsertRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	restaurant, _ := s.store.upsertRestaurant("", &req)
	writeJSON(w, http.StatusCreated, restaurant)
}

func (s *Server) handleUpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req directory.UpsertRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	restaurant, ok := s.store.upsertRestaurant(chi.URLParam(r, "id"), &req)
	if !ok {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (s *Server) handleDeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if !s.store.deleteRestaurant(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListProviders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listProviders())
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.store.listPackages(q.Get("provider_id"), q.Get("country")))
}

func (s *Server) handleListPosts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listPosts())
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.store.postBySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req blog.UpsertPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	post, _ := s.store.upsertPost("", &req, s.now())
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var req blog.UpsertPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	post, ok := s.store.upsertPost(chi.URLParam(r, "id"), &req, s.now())
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if !s.store.deletePost(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req booking.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, ok := s.store.restaurantByID(req.RestaurantID); !ok {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}

	b := s.store.createBooking(claims.Subject, &req)
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	writeJSON(w, http.StatusOK, s.store.listBookings(claims.Subject))
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	if status, msg := s.store.cancelBooking(claims.Subject, chi.URLParam(r, "id")); status != 0 {
		writeError(w, status, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

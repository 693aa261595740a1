package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"roamtable/internal/blog"
	"roamtable/internal/booking"
	"roamtable/internal/directory"
	"roamtable/internal/esim"
)

type user struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash []byte
	Points       int
	StreakDays   int
	ReferralCode string
	CreatedAt    time.Time
}

// store is the mock backend's in-memory state. Reads of the seeded catalog
// are lock-free; bookings and revoked tokens mutate under the mutex.
type store struct {
	mu          sync.RWMutex
	users       map[string]*user
	restaurants []directory.Restaurant
	locations   []directory.Location
	providers   []esim.Provider
	packages    []esim.Package
	posts       []blog.Post
	bookings    map[string]*booking.Booking
	revoked     map[string]bool
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("hash seed password: %v", err))
	}
	return hash
}

func seedStore() *store {
	published := time.Date(2026, 5, 14, 9, 0, 0, 0, time.UTC)

	return &store{
		users: map[string]*user{
			"jane@example.com": {
				ID:           "user-1",
				Email:        "jane@example.com",
				Name:         "Jane Doe",
				Role:         "user",
				PasswordHash: mustHash("hunter2"),
				Points:       420,
				StreakDays:   7,
				ReferralCode: "JANE20",
				CreatedAt:    time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC),
			},
			"admin@roamtable.dev": {
				ID:           "user-2",
				Email:        "admin@roamtable.dev",
				Name:         "Site Admin",
				Role:         "admin",
				PasswordHash: mustHash("letmein"),
				ReferralCode: "ADMIN0",
				CreatedAt:    time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC),
			},
		},
		restaurants: []directory.Restaurant{
			{
				ID:         "r-1",
				Name:       "Som Tam House",
				Slug:       "som-tam-house",
				Cuisine:    []string{"thai"},
				LocationID: "loc-1",
				Address:    "12 Sukhumvit Soi 4, Bangkok",
				Rating:     4.6,
				PriceRange: "$$",
			},
			{
				ID:         "r-2",
				Name:       "Trattoria Lucia",
				Slug:       "trattoria-lucia",
				Cuisine:    []string{"italian"},
				LocationID: "loc-2",
				Address:    "Via Roma 3, Florence",
				Rating:     4.8,
				PriceRange: "$$$",
			},
			{
				ID:         "r-3",
				Name:       "Banh Mi Corner",
				Slug:       "banh-mi-corner",
				Cuisine:    []string{"vietnamese", "street-food"},
				LocationID: "loc-1",
				Address:    "88 Charoen Krung Rd, Bangkok",
				Rating:     4.3,
				PriceRange: "$",
			},
		},
		locations: []directory.Location{
			{ID: "loc-1", Name: "Bangkok", Slug: "bangkok", Country: "TH", City: "Bangkok", RestaurantCount: 2},
			{ID: "loc-2", Name: "Florence", Slug: "florence", Country: "IT", City: "Florence", RestaurantCount: 1},
		},
		providers: []esim.Provider{
			{ID: "p-1", Name: "Nomad Cell", Countries: []string{"TH", "VN", "IT"}},
			{ID: "p-2", Name: "Globetrotter SIM", Countries: []string{"IT", "FR", "ES"}},
		},
		packages: []esim.Package{
			{ID: "pkg-1", ProviderID: "p-1", Name: "Asia 5GB", DataAmountMB: 5120, ValidityDays: 30, PriceCents: 1900, Currency: "USD", Countries: []string{"TH", "VN"}},
			{ID: "pkg-2", ProviderID: "p-2", Name: "Europe 10GB", DataAmountMB: 10240, ValidityDays: 30, PriceCents: 2900, Currency: "USD", Countries: []string{"IT", "FR", "ES"}},
		},
		posts: []blog.Post{
			{
				ID:          "post-1",
				Slug:        "eating-your-way-through-bangkok",
				Title:       "Eating Your Way Through Bangkok",
				Excerpt:     "Street stalls, night markets and where the locals actually queue.",
				Content:     "Start at Or Tor Kor market before the tour buses arrive...",
				Author:      "Jane Doe",
				Tags:        []string{"thailand", "street-food"},
				PublishedAt: &published,
			},
		},
		bookings: map[string]*booking.Booking{},
		revoked:  map[string]bool{},
	}
}

func (s *store) findUser(email string) *user {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[email]
}

func (s *store) userByID(id string) *user {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *store) revokeToken(jti string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = true
}

func (s *store) isRevoked(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revoked[jti]
}

func (s *store) listRestaurants(locationID, cuisine, search string) []directory.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]directory.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if locationID != "" && r.LocationID != locationID {
			continue
		}
		if cuisine != "" && !contains(r.Cuisine, cuisine) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *store) restaurantByID(id string) (directory.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return directory.Restaurant{}, false
}

func (s *store) restaurantBySlug(slug string) (directory.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.restaurants {
		if r.Slug == slug {
			return r, true
		}
	}
	return directory.Restaurant{}, false
}

func (s *store) upsertRestaurant(id string, req *directory.UpsertRestaurantRequest) (directory.Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := directory.Restaurant{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		LocationID:  req.LocationID,
		Address:     req.Address,
		PriceRange:  req.PriceRange,
		Images:      req.Images,
	}
	if id == "" {
		r.ID = uuid.NewString()
		s.restaurants = append(s.restaurants, r)
		return r, true
	}
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			r.Rating = s.restaurants[i].Rating
			s.restaurants[i] = r
			return r, true
		}
	}
	return directory.Restaurant{}, false
}

func (s *store) deleteRestaurant(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			s.restaurants = append(s.restaurants[:i], s.restaurants[i+1:]...)
			return true
		}
	}
	return false
}

func (s *store) listPackages(providerID, country string) []esim.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]esim.Package, 0, len(s.packages))
	for _, p := range s.packages {
		if providerID != "" && p.ProviderID != providerID {
			continue
		}
		if country != "" && !contains(p.Countries, country) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *store) listLocations() []directory.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]directory.Location(nil), s.locations...)
}

func (s *store) listProviders() []esim.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]esim.Provider(nil), s.providers...)
}

func (s *store) listPosts() []blog.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]blog.Post(nil), s.posts...)
}

func (s *store) postBySlug(slug string) (blog.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return blog.Post{}, false
}

func (s *store) upsertPost(id string, req *blog.UpsertPostRequest, now time.Time) (blog.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := blog.Post{
		ID:      id,
		Slug:    req.Slug,
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if id == "" {
		p.ID = uuid.NewString()
		p.PublishedAt = &now
		s.posts = append(s.posts, p)
		return p, true
	}
	for i := range s.posts {
		if s.posts[i].ID == id {
			p.Author = s.posts[i].Author
			p.PublishedAt = s.posts[i].PublishedAt
			s.posts[i] = p
			return p, true
		}
	}
	return blog.Post{}, false
}

func (s *store) deletePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *store) createBooking(userID string, req *booking.CreateBookingRequest) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &booking.Booking{
		ID:           uuid.NewString(),
		RestaurantID: req.RestaurantID,
		UserID:       userID,
		PartySize:    req.PartySize,
		At:           req.At,
		Status:       booking.StatusPending,
		Notes:        req.Notes,
	}
	s.bookings[b.ID] = b
	return b
}

func (s *store) listBookings(userID string) []booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out
}

func (s *store) cancelBooking(userID, id string) (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return 404, "booking not found"
	}
	if b.Status == booking.StatusCancelled {
		return 409, "booking already cancelled"
	}
	b.Status = booking.StatusCancelled
	return 0, ""
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

func matchesSearch(r directory.Restaurant, search string) bool {
	return containsFold(r.Name, search) || containsFold(r.Description, search)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

package directory

import (
	"net/url"
	"strconv"
	"strings"

	dErrors "roamtable/pkg/domain-errors"
)

// Restaurant is a directory entry as the backend returns it.
type Restaurant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Cuisine     []string `json:"cuisine,omitempty"`
	LocationID  string   `json:"location_id"`
	Address     string   `json:"address,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// Location is a destination grouping restaurants.
type Location struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Country         string `json:"country"`
	City            string `json:"city,omitempty"`
	RestaurantCount int    `json:"restaurant_count,omitempty"`
}

// RestaurantFilter narrows a restaurant listing. Zero value lists everything.
type RestaurantFilter struct {
	LocationID string
	Cuisine    string
	Search     string
	Page       int
	PerPage    int
}

func (f RestaurantFilter) query() url.Values {
	q := url.Values{}
	if f.LocationID != "" {
		q.Set("location_id", f.LocationID)
	}
	if f.Cuisine != "" {
		q.Set("cuisine", f.Cuisine)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}

// UpsertRestaurantRequest is the admin write payload for creating or
// updating a restaurant.
type UpsertRestaurantRequest struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Cuisine     []string `json:"cuisine,omitempty"`
	LocationID  string   `json:"location_id"`
	Address     string   `json:"address,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// Normalize trims free-text input for stable validation.
func (r *UpsertRestaurantRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Slug = strings.TrimSpace(strings.ToLower(r.Slug))
	r.Address = strings.TrimSpace(r.Address)
}

func (r *UpsertRestaurantRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	r.Normalize()
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.Slug == "" {
		return dErrors.New(dErrors.CodeValidation, "slug is required")
	}
	if r.LocationID == "" {
		return dErrors.New(dErrors.CodeValidation, "location_id is required")
	}
	return nil
}

// Package directory exposes the restaurant/destination catalog. Listing
// reads are public and go out unauthenticated; admin writes ride the
// authenticated gateway and inherit its expiry handling.
package directory

import (
	"context"
	"log/slog"
	"net/http"

	"roamtable/internal/gateway"
	dErrors "roamtable/pkg/domain-errors"
)

type Service struct {
	fetch gateway.Fetcher
	log   *slog.Logger
}

// New creates a directory service over the given fetcher.
func New(fetch gateway.Fetcher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{fetch: fetch, log: log}
}

// ListRestaurants returns directory entries matching the filter.
func (s *Service) ListRestaurants(ctx context.Context, filter RestaurantFilter) ([]Restaurant, error) {
	path := "/restaurants"
	if q := filter.query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	res := s.fetch.FetchWithAuth(ctx, path, gateway.FetchOptions{SkipAuth: true})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var restaurants []Restaurant
	if res.Data == nil {
		return restaurants, nil
	}
	if err := res.Decode(&restaurants); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode restaurants")
	}
	return restaurants, nil
}

// GetRestaurant returns one entry by slug.
func (s *Service) GetRestaurant(ctx context.Context, slug string) (*Restaurant, error) {
	if slug == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "slug is required")
	}

	res := s.fetch.FetchWithAuth(ctx, "/restaurants/"+slug, gateway.FetchOptions{SkipAuth: true})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var restaurant Restaurant
	if err := res.Decode(&restaurant); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode restaurant")
	}
	return &restaurant, nil
}

// ListLocations returns all destinations.
func (s *Service) ListLocations(ctx context.Context) ([]Location, error) {
	res := s.fetch.FetchWithAuth(ctx, "/locations", gateway.FetchOptions{SkipAuth: true})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var locations []Location
	if res.Data == nil {
		return locations, nil
	}
	if err := res.Decode(&locations); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode locations")
	}
	return locations, nil
}

// CreateRestaurant adds a directory entry. Admin only; the backend enforces
// the permission, this layer just carries the token.
func (s *Service) CreateRestaurant(ctx context.Context, req *UpsertRestaurantRequest) (*Restaurant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := s.fetch.FetchWithAuth(ctx, "/admin/restaurants", gateway.FetchOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var restaurant Restaurant
	if err := res.Decode(&restaurant); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode restaurant")
	}
	s.log.InfoContext(ctx, "restaurant created", "slug", restaurant.Slug)
	return &restaurant, nil
}

// UpdateRestaurant replaces a directory entry.
func (s *Service) UpdateRestaurant(ctx context.Context, id string, req *UpsertRestaurantRequest) (*Restaurant, error) {
	if id == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := s.fetch.FetchWithAuth(ctx, "/admin/restaurants/"+id, gateway.FetchOptions{
		Method: http.MethodPut,
		Body:   req,
	})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var restaurant Restaurant
	if err := res.Decode(&restaurant); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode restaurant")
	}
	return &restaurant, nil
}

// DeleteRestaurant removes a directory entry.
func (s *Service) DeleteRestaurant(ctx context.Context, id string) error {
	if id == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}

	res := s.fetch.FetchWithAuth(ctx, "/admin/restaurants/"+id, gateway.FetchOptions{
		Method: http.MethodDelete,
	})
	return gateway.AsError(res)
}

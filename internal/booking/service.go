// Package booking manages the authenticated user's table reservations.
// Every call carries the bearer token; an expired session redirects to login
// via the gateway before the error surfaces here.
package booking

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

// New creates a booking service over the given fetcher.
func New(fetch gateway.Fetcher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{fetch: fetch, log: log}
}

// Create reserves a table for the authenticated user.
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := s.fetch.FetchWithAuth(ctx, "/bookings", gateway.FetchOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var booking Booking
	if err := res.Decode(&booking); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode booking")
	}
	s.log.InfoContext(ctx, "booking created",
		"booking_id", booking.ID,
		"restaurant_id", booking.RestaurantID,
	)
	return &booking, nil
}

// ListMine returns the authenticated user's reservations.
func (s *Service) ListMine(ctx context.Context) ([]Booking, error) {
	res := s.fetch.FetchWithAuth(ctx, "/bookings", gateway.FetchOptions{})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var bookings []Booking
	if res.Data == nil {
		return bookings, nil
	}
	if err := res.Decode(&bookings); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode bookings")
	}
	return bookings, nil
}

// Cancel withdraws a reservation.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}

	res := s.fetch.FetchWithAuth(ctx, "/bookings/"+id, gateway.FetchOptions{
		Method: http.MethodDelete,
	})
	return gateway.AsError(res)
}

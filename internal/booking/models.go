package booking

import (
	"strings"
	"time"

	dErrors "roamtable/pkg/domain-errors"
)

// Booking statuses as the backend reports them.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a table reservation owned by the authenticated user.
type Booking struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	UserID       string    `json:"user_id"`
	PartySize    int       `json:"party_size"`
	At           time.Time `json:"at"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
}

// CreateBookingRequest is the payload for reserving a table.
type CreateBookingRequest struct {
	RestaurantID string    `json:"restaurant_id"`
	PartySize    int       `json:"party_size"`
	At           time.Time `json:"at"`
	Notes        string    `json:"notes,omitempty"`
}

func (r *CreateBookingRequest) Normalize() {
	if r == nil {
		return
	}
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *CreateBookingRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	r.Normalize()
	if r.RestaurantID == "" {
		return dErrors.New(dErrors.CodeValidation, "restaurant_id is required")
	}
	if r.PartySize < 1 {
		return dErrors.New(dErrors.CodeValidation, "party_size must be at least 1")
	}
	if r.PartySize > 20 {
		return dErrors.New(dErrors.CodeValidation, "party_size must be 20 or less")
	}
	if r.At.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "at is required")
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"roamtable/internal/booking"
)

func bookingsCmd(build appBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage your table reservations",
	}
	cmd.AddCommand(bookingsListCmd(build), bookingsCreateCmd(build), bookingsCancelCmd(build))
	return cmd
}

func bookingsListCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your bookings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			bookings, err := a.bookings.ListMine(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(bookings)
		},
	}
}

func bookingsCreateCmd(build appBuilder) *cobra.Command {
	var (
		restaurantID string
		partySize    int
		at           string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Reserve a table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			when, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("parse --at (want RFC3339, e.g. 2026-09-12T19:30:00Z): %w", err)
			}

			b, err := a.bookings.Create(cmd.Context(), &booking.CreateBookingRequest{
				RestaurantID: restaurantID,
				PartySize:    partySize,
				At:           when,
				Notes:        notes,
			})
			if err != nil {
				return err
			}
			return printJSON(b)
		},
	}

	cmd.Flags().StringVar(&restaurantID, "restaurant", "", "Restaurant ID")
	cmd.Flags().IntVar(&partySize, "party", 2, "Party size")
	cmd.Flags().StringVar(&at, "at", "", "Reservation time (RFC3339)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes for the restaurant")
	_ = cmd.MarkFlagRequired("restaurant")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func bookingsCancelCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			if err := a.bookings.Cancel(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Booking cancelled.")
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"roamtable/internal/directory"
)

func restaurantsCmd(build appBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Browse the restaurant directory",
	}
	cmd.AddCommand(restaurantsListCmd(build), restaurantsGetCmd(build))
	return cmd
}

func restaurantsListCmd(build appBuilder) *cobra.Command {
	var filter directory.RestaurantFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			restaurants, err := a.dir.ListRestaurants(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(restaurants)
		},
	}

	cmd.Flags().StringVar(&filter.LocationID, "location", "", "Filter by location ID")
	cmd.Flags().StringVar(&filter.Cuisine, "cuisine", "", "Filter by cuisine")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Free-text search")
	cmd.Flags().IntVar(&filter.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&filter.PerPage, "per-page", 0, "Results per page")

	return cmd
}

func restaurantsGetCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one restaurant by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			restaurant, err := a.dir.GetRestaurant(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(restaurant)
		},
	}
}

func locationsCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List destinations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			locations, err := a.dir.ListLocations(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(locations)
		},
	}
}

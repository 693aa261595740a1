package main

import (
	"github.com/spf13/cobra"

	"roamtable/internal/esim"
)

func providersCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List eSIM providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			providers, err := a.esim.ListProviders(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(providers)
		},
	}
}

func packagesCmd(build appBuilder) *cobra.Command {
	var filter esim.PackageFilter

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List eSIM data packages, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			packages, err := a.esim.ListPackages(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(packages)
		},
	}

	cmd.Flags().StringVar(&filter.ProviderID, "provider", "", "Filter by provider ID")
	cmd.Flags().StringVar(&filter.Country, "country", "", "Filter by country code")
	cmd.Flags().IntVar(&filter.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&filter.PerPage, "per-page", 0, "Results per page")

	return cmd
}

func catalogCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Fetch providers and packages together",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			catalog, err := a.esim.FetchCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(catalog)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
)

func profileCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your account profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			profile, err := a.accounts.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(profile)
		},
	}
}

func pointsCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "points",
		Short: "Show your loyalty points balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			points, err := a.accounts.Points(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(points)
		},
	}
}

func referralCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "referral",
		Short: "Show your referral code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			referral, err := a.accounts.Referral(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(referral)
		},
	}
}

package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"roamtable/internal/account"
)

func loginCmd(build appBuilder) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}

			sess, err := a.accounts.Login(cmd.Context(), &account.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Signed in as %s (%s)\n", sess.User.Email, sess.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func logoutCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and clear the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			if err := a.accounts.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func whoamiCmd(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the locally persisted session, without a network call",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			sess, err := a.accounts.Current()
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			return printJSON(sess.User)
		},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roamtable/internal/account"
	"roamtable/internal/blog"
	"roamtable/internal/booking"
	"roamtable/internal/directory"
	"roamtable/internal/esim"
	"roamtable/internal/gateway"
	"roamtable/internal/platform/config"
	"roamtable/internal/platform/logger"
	"roamtable/internal/platform/metrics"
	"roamtable/internal/platform/tracer"
	"roamtable/internal/session"
)

const appName = "roamtable"

// app wires the full client stack: file-backed session store, gateway
// executor, session monitor, and one service per backend surface.
type app struct {
	cfg      config.Client
	sessions session.Store
	accounts *account.Service
	dir      *directory.Service
	esim     *esim.Service
	blog     *blog.Service
	bookings *booking.Service
}

func newApp(configPath string, admin bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New()
	sessions := session.NewFileStore(cfg.SessionFile)

	exec := gateway.NewExecutor(gateway.Config{
		BaseURL:  cfg.APIBaseURL,
		Sessions: sessions,
		Logger:   log,
		Tracer:   tracer.NewNoop(),
		Metrics:  metrics.New(),
	})
	monitor := gateway.NewMonitor(sessions, log)

	loginRoute := cfg.LoginRoute
	if admin {
		loginRoute = cfg.AdminLoginRoute
	}
	fetch := gateway.NewAuthFetcher(exec, monitor, &terminalNavigator{}, gateway.WithLoginRoute(loginRoute))

	return &app{
		cfg:      cfg,
		sessions: sessions,
		accounts: account.New(fetch, sessions, log),
		dir:      directory.New(fetch, log),
		esim:     esim.New(fetch, log),
		blog:     blog.New(fetch, log),
		bookings: booking.New(fetch, log),
	}, nil
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		admin      bool
	)

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "RoamTable API client",
		Long:          "Command-line client for the RoamTable travel platform: restaurant directory, eSIM catalog, blog, bookings and account.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().BoolVar(&admin, "admin", false, "Use the admin sign-in realm on session expiry")

	build := func() (*app, error) { return newApp(configPath, admin) }

	cmd.AddCommand(
		loginCmd(build),
		logoutCmd(build),
		whoamiCmd(build),
		restaurantsCmd(build),
		locationsCmd(build),
		providersCmd(build),
		packagesCmd(build),
		catalogCmd(build),
		blogCmd(build),
		bookingsCmd(build),
		profileCmd(build),
		pointsCmd(build),
		referralCmd(build),
	)

	return cmd
}

type appBuilder func() (*app, error)

// printJSON writes v to stdout as indented JSON. All command output goes
// through here so it stays pipeable.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// terminalNavigator is the CLI's stand-in for a browser redirect: it cannot
// move the user anywhere, so it tells them where to go.
type terminalNavigator struct{}

func (terminalNavigator) Navigate(route string) {
	fmt.Fprintf(os.Stderr, "Session expired. Sign in again: %s login  (web: %s)\n", appName, route)
}

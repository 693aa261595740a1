package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default login routes for the two authentication realms the backend exposes.
const (
	DefaultLoginRoute      = "/login"
	DefaultAdminLoginRoute = "/admin/login"
)

// Client captures everything the API client layer needs to talk to the
// RoamTable backend: where it lives and where to send users when a session
// is no longer accepted.
type Client struct {
	APIBaseURL      string `yaml:"api_base_url"`
	LoginRoute      string `yaml:"login_route"`
	AdminLoginRoute string `yaml:"admin_login_route"`
	SessionFile     string `yaml:"session_file"`
}

// FromEnv builds a Client config from environment variables so main stays lean.
func FromEnv() Client {
	cfg := fromEnv()
	cfg.applyDefaults()
	return cfg
}

// Load reads an optional YAML config file and overlays environment variables
// on top of it. Env wins so a file checked into a dotfiles repo can still be
// overridden per shell.
func Load(path string) (Client, error) {
	var cfg Client
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Client{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Client{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	cfg.merge(fromEnv())
	cfg.applyDefaults()
	return cfg, nil
}

func fromEnv() Client {
	return Client{
		APIBaseURL:      os.Getenv("ROAMTABLE_API_URL"),
		LoginRoute:      os.Getenv("ROAMTABLE_LOGIN_ROUTE"),
		AdminLoginRoute: os.Getenv("ROAMTABLE_ADMIN_LOGIN_ROUTE"),
		SessionFile:     os.Getenv("ROAMTABLE_SESSION_FILE"),
	}
}

// merge overlays non-empty fields from other onto cfg.
func (c *Client) merge(other Client) {
	if other.APIBaseURL != "" {
		c.APIBaseURL = other.APIBaseURL
	}
	if other.LoginRoute != "" {
		c.LoginRoute = other.LoginRoute
	}
	if other.AdminLoginRoute != "" {
		c.AdminLoginRoute = other.AdminLoginRoute
	}
	if other.SessionFile != "" {
		c.SessionFile = other.SessionFile
	}
}

func (c *Client) applyDefaults() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:8080"
	}
	if c.LoginRoute == "" {
		c.LoginRoute = DefaultLoginRoute
	}
	if c.AdminLoginRoute == "" {
		c.AdminLoginRoute = DefaultAdminLoginRoute
	}
	if c.SessionFile == "" {
		c.SessionFile = defaultSessionFile()
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".roamtable-session.json")
	}
	return filepath.Join(dir, "roamtable", "session.json")
}

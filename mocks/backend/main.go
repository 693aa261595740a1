// Mock RoamTable backend for local development and integration tests.
// Serves the seeded in-memory API from internal/mockapi on PORT (8080).
package main

import (
	"net/http"
	"os"
	"time"

	"roamtable/internal/mockapi"
	"roamtable/internal/platform/logger"
)

const defaultPort = "8080"

func main() {
	log := logger.New()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	opts := []mockapi.Option{}
	if key := os.Getenv("SIGNING_KEY"); key != "" {
		opts = append(opts, mockapi.WithSigningKey(key))
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Error("invalid TOKEN_TTL", "value", ttl, "error", err)
			os.Exit(1)
		}
		opts = append(opts, mockapi.WithTokenTTL(d))
	}

	server := mockapi.New(log, opts...)

	log.Info("mock backend listening", "port", port)
	if err := http.ListenAndServe(":"+port, server.Router()); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"encuestas/config"
	"encuestas/internal/auth"
	"encuestas/internal/service"
)

// Connectivity check: verifies the configured API base URL and token by
// running a user search, the cheapest authenticated endpoint.
func main() {
	cfg := config.Load()

	if cfg.AuthToken == "" {
		logrus.Warn("AUTH_TOKEN not set, requests will be unauthenticated")
	} else if auth.Expired(cfg.AuthToken, time.Now()) {
		logrus.Warn("AUTH_TOKEN is an expired JWT, log in again to obtain a fresh one")
	}

	client := service.NewClient(cfg, auth.NewStatic(cfg.AuthToken))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	users, err := client.SearchUsers(ctx, "ab")
	if err != nil {
		logrus.WithError(err).Fatalf("cannot reach survey API at %s", cfg.APIBaseURL)
	}

	fmt.Printf("API %s reachable, search returned %d users\n", cfg.APIBaseURL, len(users))
	os.Exit(0)
}

// Package main provides the bookmarks client: a cobra command tree over the
// REST API plus an interactive browser (the browse command).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bookmarks/internal/adapter"
	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-bookmarks-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app := &cli{
		cfg:        cfg,
		newAdapter: adapter.NewHTTPBookmarkAdapter,
		buildInfo:  models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)),
		logger:     log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = newRootCommand(app).ExecuteContext(ctx); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-bookmarks/internal/adapter"
	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/models"
)

type adapterFactory func(config.ClientAdapter, config.ClientApp, *logger.Logger) (adapter.BookmarkAdapter, error)

// cli holds what every command needs. The adapter is created lazily in the
// root's PersistentPreRunE once flags have been applied to cfg.
type cli struct {
	cfg        *config.ClientConfig
	newAdapter adapterFactory
	adapter    adapter.BookmarkAdapter
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger

	address string
	token   string
	timeout time.Duration
	output  string
}

func newRootCommand(app *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "bookmarks",
		Short: "Client for the go-bookmarks server",
		Long: `bookmarks talks to a go-bookmarks server over its REST API.

Connection settings come from .env, the environment (ADAPTER_ADDRESS,
ADAPTER_REQUEST_TIMEOUT, APP_API_TOKEN) or the CONFIG JSON file; the flags
below override them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.connect,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&app.address, "address", "a", "", "server address (default "+config.DefaultAdapterAddress+")")
	flags.StringVarP(&app.token, "token", "t", "", "API token")
	flags.DurationVar(&app.timeout, "timeout", 0, "request timeout (default "+config.DefaultAdapterRequestTimeout.String()+")")
	flags.StringVarP(&app.output, "output", "o", outputTable, "output format: table, json or yaml")

	root.AddCommand(
		newListCommand(app),
		newGetCommand(app),
		newAddCommand(app),
		newUpdateCommand(app),
		newDeleteCommand(app),
		newBrowseCommand(app),
		newVersionCommand(app),
	)

	return root
}

func (c *cli) connect(cmd *cobra.Command, _ []string) error {
	if c.adapter != nil {
		return nil
	}

	if err := c.cfg.Override(c.address, c.token, c.timeout); err != nil {
		return err
	}

	bookmarkAdapter, err := c.newAdapter(c.cfg.Adapter, c.cfg.App, c.logger)
	if err != nil {
		return fmt.Errorf("create adapter: %w", err)
	}
	c.adapter = bookmarkAdapter

	c.logger.Debug().
		Str("command", cmd.Name()).
		Str("address", c.cfg.Adapter.HTTPAddress).
		Msg("adapter ready")
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid bookmark id %q", arg)
	}
	return id, nil
}

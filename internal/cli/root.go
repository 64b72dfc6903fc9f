// Package cli implements the tutorials command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spachava753/tutorials/internal/catalog"
	"github.com/spachava753/tutorials/internal/config"
	"github.com/spachava753/tutorials/internal/ghclient"
	"github.com/spachava753/tutorials/internal/improvecode"
	"github.com/spachava753/tutorials/internal/tutorials"
)

// app holds what every subcommand needs, built once before the command runs.
type app struct {
	configPath string

	cfg      config.Config
	client   *http.Client
	resolver *improvecode.Resolver
	catalog  *catalog.Catalog
}

// NewRootCommand returns the tutorials root command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tutorials",
		Short:         "Inspect the tutorial catalog and resolve improve-this-code links",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to tutorials.yaml")

	root.AddCommand(
		newListCommand(a),
		newResolveCommand(a),
		newVerifyCommand(a),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a.cfg = config.DefaultConfig()
	if a.configPath != "" {
		cfg, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(a.cfg.LogLevel),
	})))

	a.client = ghclient.NewHTTPClient(ctx, a.cfg.GitHub)
	a.resolver = &improvecode.Resolver{
		APIBaseURL: a.cfg.GitHub.APIURL,
		WebBaseURL: a.cfg.GitHub.WebURL,
	}

	c, err := tutorials.NewCatalog(a.resolver.Resolve)
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	extra, err := a.loadCatalogs(ctx)
	if err != nil {
		return err
	}
	for i, entries := range extra {
		if err := catalog.RegisterEntries(c, entries, a.resolver.Resolve); err != nil {
			return fmt.Errorf("catalogs[%d]: %w", i, err)
		}
	}

	slog.Debug("catalog ready", "tutorials", c.Len())
	a.catalog = c
	return nil
}

// loadCatalogs fetches the extra catalog listings in parallel, keeping
// config order in the result.
func (a *app) loadCatalogs(ctx context.Context) ([][]catalog.Entry, error) {
	listings := make([][]catalog.Entry, len(a.cfg.Catalogs))

	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range a.cfg.Catalogs {
		g.Go(func() error {
			var entries []catalog.Entry
			var err error
			if ref.Path != nil && *ref.Path != "" {
				slog.Debug("loading catalog", "path", *ref.Path)
				entries, err = catalog.LoadFromPath(*ref.Path)
			} else {
				slog.Debug("loading catalog", "url", *ref.URL)
				entries, err = catalog.LoadFromURL(ctx, a.client, *ref.URL)
			}
			if err != nil {
				return fmt.Errorf("catalogs[%d]: %w", i, err)
			}
			listings[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

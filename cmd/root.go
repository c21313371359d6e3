// Package cmd implements the destino CLI commands using Cobra.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
	"github.com/joaoalves07/SE-Destino-de-viagem/internal/config"
	"github.com/joaoalves07/SE-Destino-de-viagem/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagCatalog string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:          "destino [catalog.json]",
	Short:        "destino — travel destination recommender",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `destino asks for your budget tier, group size, climate and activities,
then lists the catalog destinations that match, best first.

Without a subcommand it starts the interactive session (same as 'destino recommend').`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setupLogging,
	RunE:              runRecommend,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to the destinations JSON catalog")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging on stderr")
	addSessionFlags(rootCmd)
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging attaches the configured zerolog logger to the command context.
func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if v, err := config.GetConfigValue(config.EnvLogLevel); err == nil && v != "" {
		level = v
	}
	format := cfg.LogFormat
	if v, err := config.GetConfigValue(config.EnvLogFormat); err == nil && v != "" {
		format = v
	}
	if flagDebug {
		level = "debug"
	}
	logger := logging.New(level, format, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

// loadCatalog resolves the catalog path from args, flags, env and config,
// then loads it.
func loadCatalog(ctx context.Context, args []string) (*catalog.Catalog, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	explicit := flagCatalog
	if len(args) > 0 {
		explicit = args[0]
	}
	path, err := config.ResolveCatalogPath(explicit, cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := catalog.Load(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w\nPass a catalog path or run 'destino init --sample'.", err)
		}
		return nil, nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("using catalog")
	return c, cfg, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/joaoalves07/SE-Destino-de-viagem/internal/catalog"
	"github.com/joaoalves07/SE-Destino-de-viagem/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagInitSample bool
	flagInitForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.destino with a default config and .env template",
	Long: `Initialize ~/.destino/destino.yaml and ~/.destino/.env.

  destino init            config and .env only
  destino init --sample   also write a small sample catalog at the configured catalog path`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitSample, "sample", false, "Write a sample catalog")
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing sample catalog")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	// ── 1. Resolve ~/.destino ─────────────────────────────────────────────────
	dir, err := config.DestinoDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK(w, "", fmt.Sprintf("destino directory ready: %s", dir))

	// ── 2. Write destino.yaml if missing ──────────────────────────────────────
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		printOK(w, "", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip(w, "", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 3. .env template ──────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	printOK(w, "", fmt.Sprintf("Environment file ready: %s", envPath))

	if !flagInitSample {
		return nil
	}

	// ── 4. Sample catalog ─────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, err := config.ResolveCatalogPath(flagCatalog, cfg)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !flagInitForce {
		printSkip(w, "", fmt.Sprintf("Catalog already exists: %s (use --force to overwrite)", path))
		return nil
	}
	if err := catalog.Save(cmd.Context(), path, catalog.Sample()); err != nil {
		return err
	}
	printOK(w, "", fmt.Sprintf("Sample catalog written: %s", path))
	return nil
}

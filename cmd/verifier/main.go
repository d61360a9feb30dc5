package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/adapters/idealpostcodes"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/config"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/service"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/registry"
	"github.com/spf13/cobra"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "verifier",
	Short: "UK address standardization and geocoding via Ideal Postcodes",
	Long: `
verifier standardizes and geocodes UK location records against the Ideal
Postcodes address search API, either one-shot from the command line or as a
small HTTP service for a host address-verification pipeline.
`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = Version
	rootCmd.AddCommand(newServeCmd(), newVerifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the registry holding the verifier.
func setup() (*config.Config, *slog.Logger, *registry.Registry, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	client, err := idealpostcodes.NewClient(cfg.IdealPostcodes, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create lookup client: %w", err)
	}

	catalog, err := cfg.Host.Catalog()
	if err != nil {
		logger.Warn("could not determine host catalog, lookups will be untagged", "error", err)
	}
	tags := service.BuildTags(cfg.Host.Version, catalog)

	reg := registry.New()
	if err := reg.Register(service.NewAddressVerifier(client, tags, logger)); err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, reg, nil
}

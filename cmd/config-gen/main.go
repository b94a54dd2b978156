package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/rjs-config-gen/internal/app"
	"github.com/MKhiriev/rjs-config-gen/internal/config"
	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "config-gen <target-url> [flags]",
		Short: "Proxy that records RequireJS traffic and generates optimizer configs",
		Long: `config-gen sits in front of a site that loads its scripts with RequireJS.
It injects a small loader shim into every HTML page, captures the live
require.config() of the browser, records every request, and serves an
optimizer build config synthesized from all of it.

Examples:
  # Proxy a local shop on the default address
  config-gen http://example.com

  # Add a static build config and reuse a request log from a prior session
  config-gen http://example.com --config config.yml --seed seed.json

  # Write the request log on exit
  config-gen http://example.com -a 127.0.0.1:9000 --seed-out seed.json`,
		Version:       models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, args)
		},
	}

	flags = config.RegisterFlags(cmd.Flags())

	return cmd
}

func run(flags *config.Flags, args []string) error {
	cfg, err := config.GetStructuredConfig(flags, args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("config-gen", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	a, err := app.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}

	if err = a.Run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

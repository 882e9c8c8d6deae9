package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/impact-atlas/pkg/server"
	"github.com/de-tools/impact-atlas/pkg/services/config"
	"github.com/de-tools/impact-atlas/pkg/services/dashboard"
	"github.com/de-tools/impact-atlas/pkg/services/dataset"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Impact Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "impact-atlas.yaml",
		"Path to the impact-atlas config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := config.NewRegistry(cfg.Dataset.Profiles)
	if err != nil {
		return fmt.Errorf("failed to load dataset profiles: %w", err)
	}

	profiles, _ := registry.GetProfiles(ctx)
	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following dataset profiles: %v", profiles)

	// The dataset is loaded exactly once; everything downstream treats it
	// as read-only.
	ds, err := dataset.Open(ctx, registry, cfg.Dataset.Profile)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info().
		Int("records", ds.Len()).
		Str("profile", cfg.Dataset.Profile).
		Msg("dataset loaded")

	explorer := dashboard.NewExplorer(ds, dashboard.Settings{
		DefaultCountries:  cfg.Defaults.Countries,
		DefaultIndustries: cfg.Defaults.Industries,
	})

	host := cfg.Server.Host
	port := cfg.Server.Port
	if envHost := os.Getenv("SERVER_HOST"); envHost != "" {
		host = envHost
	}
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Explorer: explorer,
		},
	})

	return webAPI.Start()
}

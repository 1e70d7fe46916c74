package main

import (
	"fmt"
	"net"
	"os"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/server"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/services/analysis"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the analysis web server for DeltaOptima",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the analysis config file (model name, API key)")

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

	cfg := analysis.DefaultConfig()
	if cfgPath != "" {
		var err error
		cfg, err = analysis.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load analysis config: %w", err)
		}
	}

	analyzer, err := analysis.NewGeminiAnalyzer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	logger.Info().Msgf("Using model `%s`.", cfg.Model)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Analyzer: analyzer,
		},
	})

	return webAPI.Start()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorgan/talentmatch/internal/logger"
	"github.com/jmorgan/talentmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume analysis, communication scoring, job matching, and taxonomy endpoints.`,
	RunE:  runServe,
}

var (
	serveAddr    string
	serveLogJSON bool
	serveVerbose bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default \":8080\")")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON-encoded logs")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	log, err := logger.New(serveLogJSON || cfg.LogJSON, serveVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Addr:         cfg.Addr(),
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
		Store:        store,
		Extractor:    buildExtractor(cfg, store),
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

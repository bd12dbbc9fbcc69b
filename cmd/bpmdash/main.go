package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/bpmdash/internal/api"
	"github.com/h0rv/bpmdash/internal/auth"
	"github.com/h0rv/bpmdash/internal/config"
	"github.com/h0rv/bpmdash/internal/logging"
	"github.com/h0rv/bpmdash/internal/metrics"
	"github.com/h0rv/bpmdash/internal/prefs"
	"github.com/h0rv/bpmdash/internal/store"
	"github.com/h0rv/bpmdash/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// CLI flags
	configFlag   string
	endpointFlag string
	logFileFlag  string
	sampleFlag   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bpmdash",
		Short: "Terminal dashboard for business process metrics",
		Long: `bpmdash is a terminal dashboard for production request cycle metrics.

It shows completed PRCs by part and by location, defect occurrences by code
and the location hierarchy. Each chart can be switched between bar, line,
area and pie, and the choice is remembered.

Data source:
  Set api.endpoint in the config file or BPMDASH_API_ENDPOINT to read from the
  metrics API. Without an endpoint the built-in sample data is shown.

Authentication:
  1. Token file: api.token_file in the config file
  2. Environment variable: Set BPMDASH_TOKEN`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath(), "Config file path.")
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "Metrics API endpoint. Overrides the config file.")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Write logs to this file. Overrides the config file.")
	rootCmd.PersistentFlags().BoolVar(&sampleFlag, "sample", false, "Use the built-in sample data even if an endpoint is configured.")

	rootCmd.AddCommand(newExportCmd(), newPrefsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is everything a command needs, built from config and flags.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	prefs  *prefs.ChartTypeStore
}

func setup() (*env, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if endpointFlag != "" {
		cfg.API.Endpoint = endpointFlag
	}
	if logFileFlag != "" {
		cfg.Logging.File = logFileFlag
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, err
	}

	backend := prefs.NewFileBackend(cfg.Storage.PreferencesPath)
	return &env{
		cfg:    cfg,
		logger: logger,
		prefs:  prefs.New(backend, logger),
	}, nil
}

// source picks the API client when an endpoint is configured and the sample
// data otherwise.
func (e *env) source() (metrics.Source, error) {
	if sampleFlag || e.cfg.API.Endpoint == "" {
		e.logger.Info("Using sample data")
		return metrics.SampleSource{}, nil
	}

	token, err := auth.GetToken(e.cfg.API.TokenFile)
	if err != nil {
		if !errors.Is(err, auth.ErrNoToken) {
			return nil, err
		}
		e.logger.Warn("No API token, sending unauthenticated requests", zap.Error(err))
	}

	timeout, err := e.cfg.API.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	client, err := api.New(e.cfg.API.Endpoint, token, api.WithTimeout(timeout), api.WithLogger(e.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

func run(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	if err := prefs.CheckKeys(prefs.KeyParts, prefs.KeyLocation, prefs.KeyDefect); err != nil {
		return err
	}

	source, err := e.source()
	if err != nil {
		return err
	}

	// Create store
	s := store.New(e.logger)

	// Create app model
	app := tui.NewAppModel(context.Background(), source, s, e.prefs, tui.DashboardOptions{
		ChartHeight: e.cfg.Dashboard.ChartHeight,
		Roles:       e.cfg.Dashboard.Roles,
		Logger:      e.logger,
	})

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

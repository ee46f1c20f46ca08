package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/herodex/herodex/pkg/api"
	"github.com/herodex/herodex/pkg/catalog"
	"github.com/herodex/herodex/pkg/config"
	"github.com/herodex/herodex/pkg/logging"
	"github.com/herodex/herodex/pkg/metrics"
	"github.com/herodex/herodex/pkg/query"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 15 * time.Second

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	port       int
	configFile string
	dataset    string
	staticDir  string
	logLevel   string
	logFormat  string
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog server (foreground)",
	Example: `  # Serve a dataset with defaults
  herodex serve --dataset characters.json

  # Custom port and a config file
  herodex serve --config herodex.yaml --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(&serveFlagVals)
	},
}

func initServeCmd() {
	rootCmd.AddCommand(serveCmd)

	f := &serveFlagVals
	serveCmd.Flags().IntVarP(&f.port, "port", "p", 0, "HTTP server port")
	serveCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to server configuration file")
	serveCmd.Flags().StringVarP(&f.dataset, "dataset", "d", "", "Path to the character dataset (JSON or YAML)")
	serveCmd.Flags().StringVar(&f.staticDir, "static-dir", "", "Directory with a frontend to serve at /")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")
}

func runServe(f *serveFlags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	if cfg.Dataset == "" {
		return fmt.Errorf("no dataset configured; pass --dataset or set it in the config file")
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	collection, err := catalog.LoadFromFile(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	log.Info("dataset loaded", "path", cfg.Dataset, "records", len(collection))

	server := api.New(query.NewEngine(collection), cfg,
		api.WithLogger(log),
		api.WithMetrics(metrics.New(cfg.MetricsCollectors)),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}

// loadConfig merges the config file (when given) with flag overrides.
func loadConfig(f *serveFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		loaded, err := config.LoadFromFile(f.configFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if f.port != 0 {
		cfg.Port = f.port
	}
	if f.dataset != "" {
		cfg.Dataset = f.dataset
	}
	if f.staticDir != "" {
		cfg.StaticDir = f.staticDir
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	return cfg, nil
}

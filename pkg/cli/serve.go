package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudstub/cloudstub/pkg/config"
	"github.com/cloudstub/cloudstub/pkg/logging"
	"github.com/cloudstub/cloudstub/pkg/server"
	"github.com/spf13/cobra"
)

var (
	serveHost      string
	servePort      int
	serveConfig    string
	serveLogLevel  string
	serveLogFormat string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock platform API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Interface to bind (default 127.0.0.1)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a YAML config file")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format: text or json")
	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig layers the config sources: defaults, then file, then
// environment, then flags.
func resolveServeConfig() (*config.Config, error) {
	cfg := config.Default()
	if serveConfig != "" {
		loaded, err := config.LoadFile(serveConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	config.LoadEnv(cfg)

	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveLogLevel != "" {
		cfg.LogLevel = serveLogLevel
	}
	if serveLogFormat != "" {
		cfg.LogFormat = serveLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveServeConfig()
	if err != nil {
		return err
	}

	// The mock-mode switch: when disabled, clients are expected to talk
	// to a live upstream instead. Starting the stub would shadow it.
	if !cfg.Enabled {
		return fmt.Errorf("mock mode is disabled in configuration; not starting")
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	srv := server.New(cfg, server.WithLogger(log), server.WithVersion(Version))
	if err := srv.Start(); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

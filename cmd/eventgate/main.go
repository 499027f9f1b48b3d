package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/config"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	pkgconfig "github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

const (
	banner = `
╔═══════════════════════════════════════════╗
║         QuorumEventGate v%s            ║
║   Trusted Blockchain Event Publisher      ║
╚═══════════════════════════════════════════╝
`
)

var (
	version = "1.0.0"
	commit  = "dev"

	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eventgate",
	Short: "QuorumEventGate - validated blockchain event publisher",
	Long: `QuorumEventGate follows a Quorum chain block by block, validates every log
against a trust store of known contracts and publishes the accepted events to
a message bus. Progress is checkpointed per log so a restart never skips or
republishes an event.`,
	Version: version,
	RunE:    runEventGate,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reflector := &jsonschema.Reflector{FieldNameTag: "json", RequiredFromJSONSchemaTags: true}
		schema := reflector.Reflect(&pkgconfig.Config{})

		encoded, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return err
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configuration file without starting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := config.LoadFromFile(configPath); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", configPath)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.AddCommand(schemaCmd, checkCmd)
}

func runEventGate(_ *cobra.Command, _ []string) error {
	fmt.Printf(banner, version)

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	log := logger.NewComponentLoggerFromConfig(common.ComponentEventService, cfg.Logging)
	logger.SetDefaultLogger(log)
	defer func() { _ = log.Close() }()

	app, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	return app.run(ctx)
}

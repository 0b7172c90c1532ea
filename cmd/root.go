// Package cmd implements the fintrack CLI commands.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X .../cmd.version=v1.2.3".
var version = ""

var (
	flagEnvFile string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:               "fintrack",
	Short:             "Personal expense tracker",
	Long:              "Record expenses in an interactive form, see totals and the per-category split, and export to CSV or SQLite.",
	Version:           buildVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	RunE:              runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with FINTRACK_* overrides")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

// initRuntime loads the dotenv file and starts the file logger before any command runs.
func initRuntime(cmd *cobra.Command, _ []string) error {
	if flagEnvFile != "" {
		if err := godotenv.Load(flagEnvFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading %s: %w", flagEnvFile, err)
		}
	}

	// A broken config file should not lock the user out of the app
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  warning: %v, using defaults\n", cfgErr)
		cfg = config.DefaultConfig()
	}

	if err := logger.Init(cfg.Log.File, cfg.Log.Debug || flagDebug); err != nil {
		return err
	}
	logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("version", cmd.Root().Version))
	if cfgErr != nil {
		logger.Warn("config unreadable, using defaults", zap.String("path", config.Path()), zap.Error(cfgErr))
	}
	return nil
}

// loadConfig returns the effective config, falling back to defaults when the
// file cannot be read.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config unreadable, using defaults", zap.Error(err))
		return config.DefaultConfig()
	}
	return cfg
}

func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

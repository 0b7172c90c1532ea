package cmd

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/config"

	"github.com/spf13/cobra"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&flagConfigFormat, "format", "f", "", "Print the raw config as toml or yaml")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if flagConfigFormat != "" {
		s, err := config.Render(cfg, flagConfigFormat)
		if err != nil {
			return err
		}
		fmt.Fprint(out, s)
		return nil
	}

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Fprintf(out, "    Date layout:     %s\n", cfg.General.DateLayout)
	fmt.Fprintf(out, "    Categories:      %v\n", cfg.General.Categories)
	fmt.Fprintf(out, "    Export path:     %s\n", cfg.General.ExportPath)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	if cfg.Log.File != "" {
		fmt.Fprintf(out, "    File:  %s\n", cfg.Log.File)
	} else {
		fmt.Fprintln(out, "    File:  not configured")
	}
	fmt.Fprintf(out, "    Debug: %v\n", cfg.Log.Debug)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `fintrack setup` to reconfigure.")
	return nil
}

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codecleanup/internal/config"
	"codecleanup/internal/driver"
)

// loadConfig reads --config, or searches upwards from start for .codecleanup.toml.
func loadConfig(cmd *cobra.Command, start string) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	if start == driver.StdinPath {
		start = "."
	}
	return config.Discover(start)
}

// applyConfigColor lets output.color from the config file stand in for an
// unset --color flag.
func applyConfigColor(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Output.Color == "" || cmd.Root().PersistentFlags().Changed("color") {
		return nil
	}
	if err := cmd.Root().PersistentFlags().Set("color", cfg.Output.Color); err != nil {
		return fmt.Errorf("failed to apply output.color: %w", err)
	}
	return setupColor(cmd)
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

func quiet(cmd *cobra.Command) bool {
	q, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && q
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	if quiet(cmd) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.New(color.FgYellow, color.Bold).Sprint("warning:"), fmt.Sprintf(format, args...))
}

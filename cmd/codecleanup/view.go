package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"codecleanup/internal/driver"
	"codecleanup/internal/engine"
	"codecleanup/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] <file.vb>",
	Short: "Browse the report next to the source; enter jumps to the finding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}
		enable, err := cmd.Flags().GetStringSlice("enable")
		if err != nil {
			return fmt.Errorf("failed to get enable flag: %w", err)
		}
		disable, err := cmd.Flags().GetStringSlice("disable")
		if err != nil {
			return fmt.Errorf("failed to get disable flag: %w", err)
		}
		reg, err := cfg.Registry(enable, disable)
		if err != nil {
			return err
		}
		maxDiag, err := maxDiagnostics(cmd)
		if err != nil {
			return err
		}

		sess, err := driver.Analyze(cmd.Context(), engine.New(reg, cfg.Engine.Jobs), []string{args[0]}, driver.Options{
			MaxDiagnostics: maxDiag,
			Jobs:           1,
			Stdin:          cmd.InOrStdin(),
		})
		if err != nil {
			return err
		}
		res := sess.Results[0]
		file := sess.FileSet.Get(res.FileID)

		viewer := ui.NewViewer(file.Path, res.Report, file.Content)
		program := tea.NewProgram(viewer, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
		if _, err := program.Run(); err != nil {
			return err
		}
		if res.Report.Status == engine.StatusParseFailed {
			return errParseFailed
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().StringSlice("enable", nil, "enable rules by id or code (repeatable)")
	viewCmd.Flags().StringSlice("disable", nil, "disable rules by id or code (repeatable)")
}

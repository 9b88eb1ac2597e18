package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"codecleanup/internal/rules"
)

type ruleRow struct {
	Code        string `json:"code"`
	ID          string `json:"id"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

var rulesCmd = &cobra.Command{
	Use:   "rules [flags] [dir]",
	Short: "List every rule with its code and whether it is enabled",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := "."
		if len(args) == 1 {
			start = args[0]
		}
		cfg, err := loadConfig(cmd, start)
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
		active, err := cfg.Registry(enable, disable)
		if err != nil {
			return err
		}
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}

		rows := ruleRows(rules.Default(cfg.RuleThresholds()), active)
		switch strings.ToLower(format) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		case "text":
			return printRuleTable(cmd.OutOrStdout(), rows, useColor(cmd, os.Stdout))
		default:
			return fmt.Errorf("unsupported format %q (must be text or json)", format)
		}
	},
}

func init() {
	rulesCmd.Flags().String("format", "text", "output format (text|json)")
	rulesCmd.Flags().StringSlice("enable", nil, "enable rules by id or code (repeatable)")
	rulesCmd.Flags().StringSlice("disable", nil, "disable rules by id or code (repeatable)")
}

// ruleRows lists all rules of full in report order and marks those present in active.
func ruleRows(full, active *rules.Registry) []ruleRow {
	var rows []ruleRow
	for _, r := range full.Rules() {
		_, on := active.Lookup(r.ID())
		rows = append(rows, ruleRow{
			Code:        r.Code().ID(),
			ID:          r.ID(),
			Category:    r.Category(),
			Severity:    r.Severity().String(),
			Enabled:     on,
			Description: r.Description(),
		})
	}
	return rows
}

func printRuleTable(w io.Writer, rows []ruleRow, colored bool) error {
	header := lipgloss.NewStyle().Bold(true)
	on := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	if !colored {
		header, on, off = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	category := ""
	for i := 0; i < len(rows); {
		category = rows[i].Category
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, header.Render(category))

		// tabwriter выравнивает колонки; цвет только в последней, чтобы escape-коды не сбивали ширину
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for ; i < len(rows) && rows[i].Category == category; i++ {
			r := rows[i]
			state := off.Render("off")
			if r.Enabled {
				state = on.Render("on")
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", r.Code, r.ID, r.Severity, r.Description, state)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

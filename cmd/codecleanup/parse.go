package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codecleanup/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.vb",
	Short: "Parse a VB.NET source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showDialect, err := cmd.Flags().GetBool("dialect")
		if err != nil {
			return fmt.Errorf("failed to get dialect flag: %w", err)
		}
		maxDiag, err := maxDiagnostics(cmd)
		if err != nil {
			return err
		}

		result, err := driver.Parse(cmd.Context(), args[0], maxDiag)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		if err := printDiagnostics(cmd, result.Result.Bag, result.FileSet); err != nil {
			return err
		}
		if showDialect {
			printDialect(cmd, result.Evidence)
		}

		tree := result.Result.Tree
		if !tree.Empty() {
			if err := tree.Dump(cmd.OutOrStdout(), tree.Root); err != nil {
				return err
			}
		}
		if result.Result.Errors > 0 {
			return errParseFailed
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().Bool("dialect", false, "print the language guess to stderr")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codecleanup/internal/diag"
	"codecleanup/internal/dialect"
	"codecleanup/internal/diagfmt"
	"codecleanup/internal/driver"
	"codecleanup/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.vb",
	Short: "Tokenize a VB.NET source file",
	Long:  `Tokenize breaks down a VB.NET source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("dialect", false, "print the language guess to stderr")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showDialect, err := cmd.Flags().GetBool("dialect")
	if err != nil {
		return fmt.Errorf("failed to get dialect flag: %w", err)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if showDialect {
		printDialect(cmd, result.Evidence)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// printDiagnostics выводит диагностику в stderr, если есть
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 || quiet(cmd) {
		return nil
	}
	bag.Sort()
	return diagfmt.Pretty(cmd.ErrOrStderr(), bag.Items(), fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}

func printDialect(cmd *cobra.Command, ev *dialect.Evidence) {
	c := dialect.Classifier{}.Classify(ev)
	fmt.Fprintf(cmd.ErrOrStderr(), "dialect: %s (score %d of %d, confidence %.2f, %d signals)\n",
		c.Kind, c.Score, c.TotalScore, c.Confidence, c.ObservedSignals)
	if c.LooksForeign() {
		warnf(cmd, "input looks like %s, analyze would skip it", c.Kind)
	}
}

package main

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codecleanup/internal/driver"
	"codecleanup/internal/nav"
	"codecleanup/internal/source"
)

var gotoCmd = &cobra.Command{
	Use:   "goto <file.vb> <report line>",
	Short: "Print the source line a report line points at",
	Long: `goto takes one line of an analyze report ("Line: 47, Warning: ...")
and prints the source line it refers to. Lines without a "Line: N," prefix
are rejected.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := source.NewFileSet()
		id, err := driver.Load(fs, args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		file := fs.Get(id)

		text := strings.Join(args[1:], " ")
		cursor := &lineCursor{}
		if !nav.Navigate(cursor, text) {
			return fmt.Errorf("no line number in %q", text)
		}
		if cursor.line > file.LineCount() {
			return fmt.Errorf("%s has %d lines, report points at line %d", args[0], file.LineCount(), cursor.line)
		}
		n, err := safecast.Conv[uint32](cursor.line)
		if err != nil {
			return fmt.Errorf("line %d out of range: %w", cursor.line, err)
		}
		loc := color.New(color.Bold).Sprintf("%s:%d:", file.Path, cursor.line)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", loc, file.GetLine(n))
		return nil
	},
}

// lineCursor is the headless nav.Viewer behind goto.
type lineCursor struct {
	line int
}

func (c *lineCursor) ScrollToLine(line int) { c.line = line }
func (c *lineCursor) SelectLine(line int)   { c.line = line }

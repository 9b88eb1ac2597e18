package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"codecleanup/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowHash bool
	versionShowDate bool
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show codecleanup build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		showHash := versionShowHash || versionShowFull
		showDate := versionShowDate || versionShowFull

		switch strings.ToLower(versionFormat) {
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), showHash, showDate)
		case "pretty":
			return renderVersionPretty(cmd.OutOrStdout(), showHash, showDate)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func renderVersionPretty(w io.Writer, showHash, showDate bool) error {
	if showHash && showDate {
		return version.Print(w)
	}
	if _, err := fmt.Fprintf(w, "codecleanup %s\n", version.Colorized()); err != nil {
		return err
	}
	if showHash {
		fmt.Fprintf(w, "commit: %s\n", orUnknown(version.GitCommit))
	}
	if showDate {
		fmt.Fprintf(w, "built:  %s\n", orUnknown(version.BuildDate))
	}
	return nil
}

func renderVersionJSON(w io.Writer, showHash, showDate bool) error {
	payload := versionPayload{Tool: "codecleanup", Version: version.Version}
	if showHash {
		payload.GitCommit = version.GitCommit
	}
	if showDate {
		payload.BuildDate = version.BuildDate
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

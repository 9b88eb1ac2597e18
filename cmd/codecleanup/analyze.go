package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codecleanup/internal/config"
	"codecleanup/internal/diagfmt"
	"codecleanup/internal/driver"
	"codecleanup/internal/engine"
	"codecleanup/internal/observ"
	"codecleanup/internal/version"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <file.vb|dir|->...",
	Short: "Analyze VB.NET sources and print the findings report",
	Long: `Analyze parses each input and runs the enabled rules over it.
Directories are searched recursively for *.vb files; "-" reads standard input.
The process exits with status 1 when an input could not be parsed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "", "output format (text|json|sarif); default from config or text")
	analyzeCmd.Flags().StringSlice("enable", nil, "enable rules by id or code (repeatable)")
	analyzeCmd.Flags().StringSlice("disable", nil, "disable rules by id or code (repeatable)")
	analyzeCmd.Flags().Int("jobs", 0, "files analysed in parallel (0 = config or GOMAXPROCS)")
	analyzeCmd.Flags().Bool("no-cache", false, "do not read or write the report cache")
	analyzeCmd.Flags().Bool("clear-cache", false, "drop every cached report before running")
	analyzeCmd.Flags().String("ui", "off", "show a progress view on stderr (auto|on|off)")
	analyzeCmd.Flags().String("path-mode", "auto", "path display for diagnostics (auto|absolute|relative|basename)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	timer := observ.NewTimer()

	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if err := applyConfigColor(cmd, cfg); err != nil {
		return err
	}

	format, err := outputFormat(cmd, cfg)
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

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = cfg.Engine.Jobs
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	paths, err := driver.ExpandInputs(args)
	if err != nil {
		return err
	}

	eng := engine.New(reg, jobs)
	opts := driver.Options{
		MaxDiagnostics: maxDiag,
		Jobs:           jobs,
		CacheSalt:      fmt.Sprintf("%+v", cfg.RuleThresholds()),
		Timer:          timer,
		Stdin:          cmd.InOrStdin(),
	}
	opts.Cache, err = openCache(cmd, cfg)
	if err != nil {
		return err
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	var sess *driver.Session
	if shouldUseTUI(mode) && !quiet(cmd) {
		sess, err = runAnalyzeWithUI(ctx, "analyze", eng, paths, opts)
	} else {
		sess, err = driver.Analyze(ctx, eng, paths, opts)
	}
	if err != nil {
		return err
	}

	pathModeValue, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode := diagfmt.ParsePathMode(pathModeValue)

	// фронтенд-диагностика всегда идёт в stderr
	if diags := sess.Diagnostics(); len(diags) > 0 && !quiet(cmd) {
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), diags, sess.FileSet, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stderr),
			PathMode: pathMode,
		}); err != nil {
			return err
		}
	}

	renderIdx := timer.Begin("render")
	out := cmd.OutOrStdout()
	reports := sess.Reports()
	switch format {
	case "json":
		err = diagfmt.JSON(out, reports, sess.FileSet, diagfmt.JSONOpts{PathMode: pathMode, IncludeDiagnostics: true})
	case "sarif":
		err = diagfmt.Sarif(out, reports, reg, diagfmt.SarifRunMeta{
			ToolName:    "codecleanup",
			ToolVersion: version.Version,
		})
	default:
		err = diagfmt.Text(out, reports, diagfmt.TextOpts{Color: useColor(cmd, os.Stdout), Headers: true})
	}
	timer.End(renderIdx, format)
	if err != nil {
		return err
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if sess.Failed() {
		return errParseFailed
	}
	return nil
}

func outputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}
	format = strings.ToLower(format)
	switch format {
	case "":
		return "text", nil
	case "text", "json", "sarif":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be text, json or sarif)", format)
	}
}

// openCache returns nil when caching is off. A cache that cannot be opened
// is reported and skipped; the run itself does not depend on it.
func openCache(cmd *cobra.Command, cfg *config.Config) (*driver.DiskCache, error) {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if noCache || !cfg.CacheEnabled() {
		return nil, nil
	}
	cache, err := driver.OpenDiskCache("codecleanup")
	if err != nil {
		warnf(cmd, "report cache disabled: %v", err)
		return nil, nil
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			warnf(cmd, "failed to clear report cache: %v", err)
		}
	}
	return cache, nil
}

// Package config reads .codecleanup.toml.
//
//	[rules]
//	enable  = ["short-select-case"]
//	disable = ["VB1801"]
//
//	[thresholds]
//	summary_min_length       = 10
//	select_case_min_branches = 5
//	member_access_repeat     = 3
//
//	[output]
//	format = "text"   # text | json | sarif
//	color  = "auto"   # auto | on | off
//
//	[engine]
//	jobs  = 0         # 0 = GOMAXPROCS
//	cache = true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"codecleanup/internal/rules"
)

// FileName is looked up from the analysed path towards the filesystem root.
const FileName = ".codecleanup.toml"

var (
	// ErrUnknownKey reports a key the configuration does not define.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidValue reports a value outside the allowed set.
	ErrInvalidValue = errors.New("invalid configuration value")
)

type Rules struct {
	Enable  []string `toml:"enable"`
	Disable []string `toml:"disable"`
}

type Thresholds struct {
	SummaryMinLength      int `toml:"summary_min_length"`
	SelectCaseMinBranches int `toml:"select_case_min_branches"`
	MemberAccessRepeat    int `toml:"member_access_repeat"`
}

type Output struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type Engine struct {
	Jobs  int   `toml:"jobs"`
	Cache *bool `toml:"cache"`
}

// Config is the decoded file. Zero values mean "use the default".
type Config struct {
	// Path is where the config was read from; empty for defaults.
	Path       string     `toml:"-"`
	Rules      Rules      `toml:"rules"`
	Thresholds Thresholds `toml:"thresholds"`
	Output     Output     `toml:"output"`
	Engine     Engine     `toml:"engine"`
}

var (
	formats = []string{"", "text", "json", "sarif"}
	colors  = []string{"", "auto", "on", "off"}
)

// Find walks up from start looking for FileName.
func Find(start string) (path string, ok bool, err error) {
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes the file at path and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the nearest config above start, or returns the defaults.
func Discover(start string) (*Config, error) {
	path, ok, err := Find(start)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Config{}, nil
	}
	return Load(path)
}

// Parse decodes TOML text. Unknown keys and unknown rule ids are errors.
func Parse(text string) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerations and rule ids against the default registry.
func (c *Config) Validate() error {
	if !slices.Contains(formats, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("%w: output.format %q (expected text|json|sarif)", ErrInvalidValue, c.Output.Format)
	}
	if !slices.Contains(colors, strings.ToLower(c.Output.Color)) {
		return fmt.Errorf("%w: output.color %q (expected auto|on|off)", ErrInvalidValue, c.Output.Color)
	}
	if c.Engine.Jobs < 0 {
		return fmt.Errorf("%w: engine.jobs must not be negative", ErrInvalidValue)
	}
	reg := rules.DefaultRegistry()
	for _, id := range slices.Concat(c.Rules.Enable, c.Rules.Disable) {
		if _, ok := reg.Lookup(id); !ok {
			return fmt.Errorf("%w: %q", rules.ErrUnknownRule, id)
		}
	}
	return nil
}

// RuleThresholds converts to the rules package form; zeros fall back to defaults there.
func (c *Config) RuleThresholds() rules.Thresholds {
	return rules.Thresholds{
		SummaryMinLength:      c.Thresholds.SummaryMinLength,
		SelectCaseMinBranches: c.Thresholds.SelectCaseMinBranches,
		MemberAccessRepeat:    c.Thresholds.MemberAccessRepeat,
	}
}

// Registry builds the filtered rule set. Command-line lists are appended
// to the file's lists, so a flag can disable what the file enables.
func (c *Config) Registry(enable, disable []string) (*rules.Registry, error) {
	sel := rules.Selection{
		Enable:  slices.Concat(c.Rules.Enable, enable),
		Disable: slices.Concat(c.Rules.Disable, disable),
	}
	return rules.Default(c.RuleThresholds()).Filter(sel)
}

// CacheEnabled defaults to true.
func (c *Config) CacheEnabled() bool {
	return c.Engine.Cache == nil || *c.Engine.Cache
}

// Package config provides configuration types, defaults, discovery and
// persistence for wrapfield.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/wrapfield/internal/log"
)

// EnvPrefix is the prefix for environment overrides, e.g. WRAPFIELD_WIDTH.
const EnvPrefix = "WRAPFIELD"

// Config holds all user-tunable settings.
type Config struct {
	Width       int           `mapstructure:"width"`  // 0 = terminal width
	Height      int           `mapstructure:"height"` // 0 = terminal height
	Padding     int           `mapstructure:"padding"`
	Placeholder string        `mapstructure:"placeholder"`
	ScrollStep  int           `mapstructure:"scroll_step"`  // rows per wheel notch
	BlinkPeriod time.Duration `mapstructure:"blink_period"` // 0 disables blinking
	LogPath     string        `mapstructure:"log_path"`
	LogLevel    string        `mapstructure:"log_level"` // debug, info, warn or error
	Debug       bool          `mapstructure:"debug"`
	Theme       ThemeConfig   `mapstructure:"theme"`
}

// ThemeConfig holds colors as "#RRGGBB", "#RGB" or an ANSI index 0-255.
// Empty means the terminal default.
type ThemeConfig struct {
	Text        string `mapstructure:"text"`
	Cursor      string `mapstructure:"cursor"`
	Border      string `mapstructure:"border"`
	Placeholder string `mapstructure:"placeholder"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Padding:     1,
		ScrollStep:  3,
		BlinkPeriod: 530 * time.Millisecond,
		LogPath:     "wrapfield.log",
		LogLevel:    "debug",
		Theme: ThemeConfig{
			Cursor:      "212",
			Border:      "240",
			Placeholder: "243",
		},
	}
}

// SetDefaults registers every key with v so that environment overrides and
// Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("padding", d.Padding)
	v.SetDefault("placeholder", d.Placeholder)
	v.SetDefault("scroll_step", d.ScrollStep)
	v.SetDefault("blink_period", d.BlinkPeriod)
	v.SetDefault("log_path", d.LogPath)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("theme.text", d.Theme.Text)
	v.SetDefault("theme.cursor", d.Theme.Cursor)
	v.SetDefault("theme.border", d.Theme.Border)
	v.SetDefault("theme.placeholder", d.Theme.Placeholder)
}

// Load applies defaults and environment overrides to v, decodes it and
// validates the result. Reading a config file is left to the caller.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var (
	ErrNegative   = errors.New("must not be negative")
	ErrScrollStep = errors.New("must be at least 1")
	ErrColor      = errors.New("must be #RGB, #RRGGBB or an ANSI index 0-255")
	ErrLogLevel   = errors.New("must be debug, info, warn or error")
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks field ranges and color syntax.
func (c Config) Validate() error {
	ints := []struct {
		name string
		v    int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"padding", c.Padding},
	}
	for _, f := range ints {
		if f.v < 0 {
			return fmt.Errorf("%s %d: %w", f.name, f.v, ErrNegative)
		}
	}
	if c.ScrollStep < 1 {
		return fmt.Errorf("scroll_step %d: %w", c.ScrollStep, ErrScrollStep)
	}
	if c.BlinkPeriod < 0 {
		return fmt.Errorf("blink_period %s: %w", c.BlinkPeriod, ErrNegative)
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrLogLevel)
	}
	return ValidateTheme(c.Theme)
}

// ValidateTheme checks every non-empty theme color.
func ValidateTheme(t ThemeConfig) error {
	colors := []struct{ name, v string }{
		{"text", t.Text},
		{"cursor", t.Cursor},
		{"border", t.Border},
		{"placeholder", t.Placeholder},
	}
	for _, c := range colors {
		if c.v == "" || hexColor.MatchString(c.v) {
			continue
		}
		if n, err := strconv.Atoi(c.v); err == nil && n >= 0 && n <= 255 {
			continue
		}
		return fmt.Errorf("theme.%s %q: %w", c.name, c.v, ErrColor)
	}
	return nil
}

// LocalConfigPath is the per-project config location, relative to the
// working directory.
const LocalConfigPath = ".wrapfield/config.yaml"

// UserConfigPath returns ~/.config/wrapfield/config.yaml under home.
func UserConfigPath(home string) string {
	return filepath.Join(home, ".config", "wrapfield", "config.yaml")
}

// FindConfig resolves the config file to read. Lookup order:
//  1. explicit (the --config flag), even if it does not exist yet
//  2. .wrapfield/config.yaml under workDir
//  3. ~/.config/wrapfield/config.yaml under homeDir
//
// It returns "" when nothing is found.
func FindConfig(explicit, workDir, homeDir string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{filepath.Join(workDir, LocalConfigPath)}
	if homeDir != "" {
		candidates = append(candidates, UserConfigPath(homeDir))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			log.Debug(log.CatConfig, "Found config file", "path", p)
			return p
		}
	}
	return ""
}

// WriteDefaultConfig writes Defaults() as YAML to configPath, creating parent
// directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := Marshal(Defaults())
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// Marshal encodes cfg in the on-disk YAML layout.
func Marshal(cfg Config) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(fileLayout(cfg)); err != nil {
		return nil, fmt.Errorf("building config document: %w", err)
	}
	doc := yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "wrapfield configuration",
		Content:     []*yaml.Node{&root},
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()
	return buf.Bytes(), nil
}

type fileTheme struct {
	Text        string `yaml:"text"`
	Cursor      string `yaml:"cursor"`
	Border      string `yaml:"border"`
	Placeholder string `yaml:"placeholder"`
}

type fileConfig struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	Padding     int       `yaml:"padding"`
	Placeholder string    `yaml:"placeholder"`
	ScrollStep  int       `yaml:"scroll_step"`
	BlinkPeriod string    `yaml:"blink_period"`
	LogPath     string    `yaml:"log_path"`
	LogLevel    string    `yaml:"log_level"`
	Debug       bool      `yaml:"debug"`
	Theme       fileTheme `yaml:"theme"`
}

// fileLayout writes durations as strings so the file stays hand-editable.
func fileLayout(c Config) fileConfig {
	return fileConfig{
		Width:       c.Width,
		Height:      c.Height,
		Padding:     c.Padding,
		Placeholder: c.Placeholder,
		ScrollStep:  c.ScrollStep,
		BlinkPeriod: c.BlinkPeriod.String(),
		LogPath:     c.LogPath,
		LogLevel:    c.LogLevel,
		Debug:       c.Debug,
		Theme:       fileTheme(c.Theme),
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.ScrollStep)
	require.Equal(t, 530*time.Millisecond, cfg.BlinkPeriod)
	require.Equal(t, 1, cfg.Padding)
}

func TestValidate_RejectsNegativeSizes(t *testing.T) {
	cfg := Defaults()
	cfg.Padding = -1
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrNegative)
	require.Contains(t, err.Error(), "padding -1")
}

func TestValidate_ScrollStep(t *testing.T) {
	cfg := Defaults()
	cfg.ScrollStep = 0
	require.ErrorIs(t, cfg.Validate(), ErrScrollStep)
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.LogLevel = "warn"
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "loud"
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrLogLevel)
	require.Contains(t, err.Error(), `log_level "loud"`)
}

func TestValidateTheme(t *testing.T) {
	valid := []string{"", "#fff", "#10B981", "0", "255"}
	for _, c := range valid {
		require.NoError(t, ValidateTheme(ThemeConfig{Cursor: c}), "color %q", c)
	}

	invalid := []string{"red", "#12", "256", "-1", "#GGGGGG"}
	for _, c := range invalid {
		err := ValidateTheme(ThemeConfig{Border: c})
		require.ErrorIs(t, err, ErrColor, "color %q", c)
		require.Contains(t, err.Error(), "theme.border")
	}
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	v := viper.New()
	v.Set("width", 40)
	v.Set("blink_period", "250ms")
	v.Set("theme.cursor", "#ff0000")

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Width)
	require.Equal(t, 250*time.Millisecond, cfg.BlinkPeriod)
	require.Equal(t, "#ff0000", cfg.Theme.Cursor)
	require.Equal(t, Defaults().ScrollStep, cfg.ScrollStep)
	require.Equal(t, Defaults().Theme.Border, cfg.Theme.Border)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("WRAPFIELD_SCROLL_STEP", "5")
	t.Setenv("WRAPFIELD_THEME_TEXT", "81")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, 5, cfg.ScrollStep)
	require.Equal(t, "81", cfg.Theme.Text)
}

func TestLoad_LogLevelFromEnvironment(t *testing.T) {
	t.Setenv("WRAPFIELD_LOG_LEVEL", "error")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_InvalidValue(t *testing.T) {
	v := viper.New()
	v.Set("scroll_step", 0)
	_, err := Load(v)
	require.ErrorIs(t, err, ErrScrollStep)
}

func TestWriteDefaultConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# wrapfield configuration")
	require.Contains(t, string(data), "blink_period: 530ms")
	require.Contains(t, string(data), "log_level: debug")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestFindConfig(t *testing.T) {
	work := t.TempDir()
	home := t.TempDir()

	require.Equal(t, "explicit.yaml", FindConfig("explicit.yaml", work, home))
	require.Equal(t, "", FindConfig("", work, home))

	userPath := UserConfigPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0o750))
	require.NoError(t, os.WriteFile(userPath, []byte("width: 10\n"), 0o600))
	require.Equal(t, userPath, FindConfig("", work, home))

	localPath := filepath.Join(work, LocalConfigPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(localPath), 0o750))
	require.NoError(t, os.WriteFile(localPath, []byte("width: 20\n"), 0o600))
	require.Equal(t, localPath, FindConfig("", work, home))
}

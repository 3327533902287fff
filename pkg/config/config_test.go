package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-merlin/pkg/aircraft"
	"github.com/opd-ai/go-merlin/pkg/control"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "merlin.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Merlin", cfg.Window.Title)
	assert.Equal(t, 1200, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, RendererEngo, cfg.Renderer)
	assert.Equal(t, "Gripen-E", cfg.Aircraft)
	assert.Equal(t, AirbrakeHold, cfg.Controls.AirbrakeMode)
	assert.Equal(t, 1.0, cfg.Controls.ThrottleStep)
	assert.Equal(t, 30.0, cfg.Flight.EdgeMargin)
	assert.Equal(t, 30, cfg.Display.FPSSmoothingFrames)
	assert.NoError(t, cfg.Validate())

	v, err := cfg.Variant()
	require.NoError(t, err)
	assert.Equal(t, aircraft.GripenE, v)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	d := DefaultConfig()
	assert.Equal(t, d.Window, cfg.Window)
	assert.Equal(t, d.Aircraft, cfg.Aircraft)
	assert.Equal(t, d.Controls.AirbrakeMode, cfg.Controls.AirbrakeMode)
	assert.Equal(t, d.Logging, cfg.Logging)

	b, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, control.DefaultBindings(), b)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `{
		"aircraft": "F-16",
		"renderer": "terminal",
		"window": {"width": 640},
		"controls": {
			"airbrakeMode": "toggle",
			"bindings": {"airbrake": ["B"]}
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "F-16", cfg.Aircraft)
	assert.Equal(t, RendererTerminal, cfg.Renderer)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, AirbrakeToggle, cfg.Controls.AirbrakeMode)

	b, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, b[control.Airbrake])
	assert.Equal(t, []string{"W", "ArrowUp"}, b[control.ThrottleUp])
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("MERLIN_AIRCRAFT", "f16")
	t.Setenv("MERLIN_CONTROLS_AIRBRAKEMODE", "toggle")
	t.Setenv("MERLIN_WINDOW_FULLSCREEN", "true")

	path := writeConfig(t, `{"aircraft": "Gripen-E"}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "f16", cfg.Aircraft)
	assert.Equal(t, AirbrakeToggle, cfg.Controls.AirbrakeMode)
	assert.True(t, cfg.Window.Fullscreen)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"renderer": "vulkan"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid renderer")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		errMsg string
	}{
		{"window", func(c *GameConfig) { c.Window.Height = 0 }, "invalid window size"},
		{"aircraft", func(c *GameConfig) { c.Aircraft = "Spitfire" }, "invalid aircraft"},
		{"airbrake", func(c *GameConfig) { c.Controls.AirbrakeMode = "sticky" }, "invalid airbrake mode"},
		{"throttle_step", func(c *GameConfig) { c.Controls.ThrottleStep = 0 }, "throttle step"},
		{"bindings", func(c *GameConfig) { c.Controls.Bindings = map[string][]string{"eject": {"E"}} }, "invalid binding"},
		{"edge_margin", func(c *GameConfig) { c.Flight.EdgeMargin = -1 }, "edge margin"},
		{"fps", func(c *GameConfig) { c.Display.FPSSmoothingFrames = 0 }, "fps smoothing"},
		{"log_level", func(c *GameConfig) { c.Logging.Level = "chatty" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_UnpopulatedVariantParses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Aircraft = "X-47B"
	assert.NoError(t, cfg.Validate(), "resolution errors surface when the player is built")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	cfg := DefaultConfig()
	cfg.Aircraft = "F-16"
	cfg.Flight.EdgeMargin = 12

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "F-16", loaded.Aircraft)
	assert.Equal(t, 12.0, loaded.Flight.EdgeMargin)
}

func TestSaveConfig_BadPath(t *testing.T) {
	err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "missing", "dir", "cfg.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
}

func TestLoadEnvFile(t *testing.T) {
	const key = "MERLIN_TEST_DOTENV_VALUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o644))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoggerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.File = "merlin.log"

	opts := cfg.LoggerOptions()
	assert.Equal(t, "merlin.log", opts.File)
	assert.Equal(t, 10, opts.MaxSizeMB)
	assert.Equal(t, 3, opts.MaxBackups)
}

func TestValidate_NullRenderer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Renderer = RendererNull
	assert.NoError(t, cfg.Validate())
}

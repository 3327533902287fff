// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/opd-ai/go-merlin/pkg/aircraft"
	"github.com/opd-ai/go-merlin/pkg/control"
	"github.com/opd-ai/go-merlin/pkg/logging"
)

// EnvPrefix is prepended to every environment override, for example
// MERLIN_AIRCRAFT or MERLIN_CONTROLS_AIRBRAKEMODE.
const EnvPrefix = "MERLIN"

// Renderer names accepted in GameConfig.Renderer.
const (
	RendererEngo     = "engo"
	RendererTerminal = "terminal"
	// RendererNull runs the flight model headless and only logs frames.
	RendererNull = "null"
)

// Airbrake modes accepted in ControlsConfig.AirbrakeMode.
const (
	AirbrakeHold   = "hold"
	AirbrakeToggle = "toggle"
)

// GameConfig contains the settings of one flight session
type GameConfig struct {
	Window   WindowConfig   `json:"window" mapstructure:"window"`
	Renderer string         `json:"renderer" mapstructure:"renderer"`
	Aircraft string         `json:"aircraft" mapstructure:"aircraft"`
	Controls ControlsConfig `json:"controls" mapstructure:"controls"`
	Flight   FlightConfig   `json:"flight" mapstructure:"flight"`
	Display  DisplayConfig  `json:"display" mapstructure:"display"`
	Assets   AssetsConfig   `json:"assets" mapstructure:"assets"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// WindowConfig contains window settings for the graphical front end
type WindowConfig struct {
	Title      string `json:"title" mapstructure:"title"`
	Width      int    `json:"width" mapstructure:"width"`
	Height     int    `json:"height" mapstructure:"height"`
	Fullscreen bool   `json:"fullscreen" mapstructure:"fullscreen"`
}

// ControlsConfig contains input settings
type ControlsConfig struct {
	AirbrakeMode string              `json:"airbrakeMode" mapstructure:"airbrakeMode"`
	ThrottleStep float64             `json:"throttleStep" mapstructure:"throttleStep"`
	Bindings     map[string][]string `json:"bindings" mapstructure:"bindings"`
}

// FlightConfig contains flight model settings that are not per aircraft
type FlightConfig struct {
	EdgeMargin float64 `json:"edgeMargin" mapstructure:"edgeMargin"`
}

// DisplayConfig contains HUD settings
type DisplayConfig struct {
	FPSSmoothingFrames int `json:"fpsSmoothingFrames" mapstructure:"fpsSmoothingFrames"`
}

// AssetsConfig locates sprite and font files
type AssetsConfig struct {
	Root string `json:"root" mapstructure:"root"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level      string `json:"level" mapstructure:"level"`
	File       string `json:"file" mapstructure:"file"`
	MaxSizeMB  int    `json:"maxSizeMB" mapstructure:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" mapstructure:"maxBackups"`
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  "Merlin",
			Width:  1200,
			Height: 800,
		},
		Renderer: RendererEngo,
		Aircraft: aircraft.GripenE.String(),
		Controls: ControlsConfig{
			AirbrakeMode: AirbrakeHold,
			ThrottleStep: 1.0,
			Bindings:     control.DefaultBindings().Raw(),
		},
		Flight: FlightConfig{
			EdgeMargin: 30,
		},
		Display: DisplayConfig{
			FPSSmoothingFrames: 30,
		},
		Assets: AssetsConfig{
			Root: "assets",
		},
		Logging: LoggingConfig{
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadConfig builds the configuration from defaults, the optional JSON file
// at path, a .env file in the working directory and MERLIN_* environment
// variables, in increasing order of precedence. An empty path skips the
// file.
func LoadConfig(path string) (*GameConfig, error) {
	if err := LoadEnvFile(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config GameConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return logging.WrapError(err, "failed to load env file %s", path)
	}
	return nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.fullscreen", d.Window.Fullscreen)

	v.SetDefault("renderer", d.Renderer)
	v.SetDefault("aircraft", d.Aircraft)

	v.SetDefault("controls.airbrakeMode", d.Controls.AirbrakeMode)
	v.SetDefault("controls.throttleStep", d.Controls.ThrottleStep)
	for action, keys := range d.Controls.Bindings {
		v.SetDefault("controls.bindings."+action, keys)
	}

	v.SetDefault("flight.edgeMargin", d.Flight.EdgeMargin)
	v.SetDefault("display.fpsSmoothingFrames", d.Display.FPSSmoothingFrames)
	v.SetDefault("assets.root", d.Assets.Root)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.maxSizeMB", d.Logging.MaxSizeMB)
	v.SetDefault("logging.maxBackups", d.Logging.MaxBackups)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Validate reports the first invalid setting.
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Renderer {
	case RendererEngo, RendererTerminal, RendererNull:
	default:
		return fmt.Errorf("invalid renderer %q: want %q, %q or %q", c.Renderer, RendererEngo, RendererTerminal, RendererNull)
	}

	if _, err := c.Variant(); err != nil {
		return fmt.Errorf("invalid aircraft: %w", err)
	}

	switch c.Controls.AirbrakeMode {
	case AirbrakeHold, AirbrakeToggle:
	default:
		return fmt.Errorf("invalid airbrake mode %q: want %q or %q", c.Controls.AirbrakeMode, AirbrakeHold, AirbrakeToggle)
	}

	if c.Controls.ThrottleStep <= 0 {
		return fmt.Errorf("throttle step must be positive, got %v", c.Controls.ThrottleStep)
	}

	if _, err := c.Bindings(); err != nil {
		return err
	}

	if c.Flight.EdgeMargin < 0 {
		return fmt.Errorf("edge margin must not be negative, got %v", c.Flight.EdgeMargin)
	}

	if c.Display.FPSSmoothingFrames < 1 {
		return fmt.Errorf("fps smoothing needs at least one frame, got %d", c.Display.FPSSmoothingFrames)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	return nil
}

// Variant parses the configured aircraft tag.
func (c *GameConfig) Variant() (aircraft.Variant, error) {
	return aircraft.ParseVariant(c.Aircraft)
}

// Bindings parses the configured key bindings on top of the defaults.
func (c *GameConfig) Bindings() (control.Bindings, error) {
	return control.ParseBindings(c.Controls.Bindings)
}

// LoggerOptions converts the logging section for logging.NewLoggerWithOptions.
func (c *GameConfig) LoggerOptions() logging.Options {
	return logging.Options{
		Level:      c.Logging.Level,
		File:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
	}
}

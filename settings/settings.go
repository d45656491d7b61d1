// Package settings loads the chartkit configuration from environment
// variables, with optional .env file support.
package settings

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the configuration of the chartkit tools. Values come from
// the environment, callers receive an explicit value and no global state is
// mutated.
type Settings struct {
	// BitwiseAPIKey authenticates calls to the Bitwise API.
	BitwiseAPIKey string
	// ExportFormat is the default chart export format ("svg" or "png").
	ExportFormat string
	// ExportScale multiplies the chart dimensions on export.
	ExportScale int
	// ChartWidth and ChartHeight are the default chart dimensions in pixels.
	ChartWidth  int
	ChartHeight int
	// FontDir overrides the per-OS user font directory.
	FontDir string
}

// Defaults returns the settings used when the environment sets nothing.
func Defaults() Settings {
	return Settings{
		ExportFormat: "svg",
		ExportScale:  2,
		ChartWidth:   1200,
		ChartHeight:  800,
	}
}

// Load reads settings from the environment. If envFile is not empty, the
// file is loaded first (without overriding variables already set, godotenv's
// behavior). A missing envFile is not an error when it is the conventional
// ".env".
func Load(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if envFile != ".env" || !os.IsNotExist(err) {
				return Settings{}, fmt.Errorf("cannot load %s: %w", envFile, err)
			}
		}
	}

	s := Defaults()
	s.BitwiseAPIKey = os.Getenv("BITWISE_API_KEY")
	s.FontDir = os.Getenv("CHARTKIT_FONT_DIR")
	if v := os.Getenv("CHARTKIT_EXPORT_FORMAT"); v != "" {
		s.ExportFormat = v
	}

	var err error
	if s.ExportScale, err = intVar("CHARTKIT_EXPORT_SCALE", s.ExportScale); err != nil {
		return Settings{}, err
	}
	if s.ChartWidth, err = intVar("CHARTKIT_CHART_WIDTH", s.ChartWidth); err != nil {
		return Settings{}, err
	}
	if s.ChartHeight, err = intVar("CHARTKIT_CHART_HEIGHT", s.ChartHeight); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func intVar(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", name, v, err)
	}
	return n, nil
}

// EnvTemplate is a commented .env template listing every variable Load
// understands.
const EnvTemplate = `# chartkit environment variables
# Copy this file to .env and fill in your values.

# Bitwise API key for crypto and index data
BITWISE_API_KEY=

# Default export format: svg or png
CHARTKIT_EXPORT_FORMAT=svg

# Scale factor applied to chart dimensions on export
CHARTKIT_EXPORT_SCALE=2

# Default chart dimensions in pixels
CHARTKIT_CHART_WIDTH=1200
CHARTKIT_CHART_HEIGHT=800

# Override the user font directory
CHARTKIT_FONT_DIR=
`

// WriteEnvTemplate writes EnvTemplate to path, refusing to overwrite an
// existing file.
func WriteEnvTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(EnvTemplate), 0644)
}

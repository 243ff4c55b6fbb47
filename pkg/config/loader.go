package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/util"
	"gopkg.in/yaml.v3"
)

const defaultCityPrefix = "Zürich"
const defaultPlotFormat = "png"
const defaultPlotWidth = 8.0
const defaultPlotHeight = 5.0

// Load reads a YAML configuration file. An empty path returns an empty configuration so
// everything can be supplied through flags instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("lines", len(config.Lines)).Msg("Loaded config")

	return config, nil
}

// Validate fills in defaults and validates the configuration
func (c *Config) Validate() error {
	if c.Dataset.Format == "" {
		c.Dataset.Format = DatasetFormatCSV
	}

	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}

	if c.CityPrefix == "" {
		c.CityPrefix = defaultCityPrefix
	}
	if c.Plot.Format == "" {
		c.Plot.Format = defaultPlotFormat
	}
	if c.Plot.Width == 0 {
		c.Plot.Width = defaultPlotWidth
	}
	if c.Plot.Height == 0 {
		c.Plot.Height = defaultPlotHeight
	}
	if c.Plot.OutputDirectory == "" {
		c.Plot.OutputDirectory = "."
	}

	lineIDs := c.LineIDs()
	if len(util.RemoveDuplicateStrings(lineIDs, []string{})) != len(lineIDs) {
		return fmt.Errorf("lines must not be configured more than once")
	}

	return nil
}

package config

type DatasetFormat string

const (
	DatasetFormatCSV     DatasetFormat = "csv"
	DatasetFormatSQLite  DatasetFormat = "sqlite"
	DatasetFormatMongoDB DatasetFormat = "mongodb"
)

// DatasetConfig describes where the observation table and stop metadata are read from
type DatasetConfig struct {
	Format       DatasetFormat `yaml:"format" validate:"omitempty,oneof=csv sqlite mongodb"`
	Observations string        `yaml:"observations" validate:"required_if=Format csv"`
	Stops        string        `yaml:"stops"`
	SQLite       string        `yaml:"sqlite" validate:"required_if=Format sqlite"`
	Filter       string        `yaml:"filter"`
}

// LineConfig associates a line with the colour it is drawn in
type LineConfig struct {
	ID     string `yaml:"id" validate:"required"`
	Colour string `yaml:"colour" validate:"omitempty,hexcolor"`
}

type PlotConfig struct {
	OutputDirectory string  `yaml:"output_directory"`
	Width           float64 `yaml:"width" validate:"gte=0"`
	Height          float64 `yaml:"height" validate:"gte=0"`
	Format          string  `yaml:"format" validate:"omitempty,oneof=png svg pdf eps jpg"`
}

type Config struct {
	CityPrefix            string        `yaml:"city_prefix"`
	AverageBothDirections bool          `yaml:"average_both_directions"`
	Dataset               DatasetConfig `yaml:"dataset"`
	Lines                 []LineConfig  `yaml:"lines" validate:"dive"`
	Plot                  PlotConfig    `yaml:"plot"`
}

// LineIDs returns the configured lines in configuration order
func (c *Config) LineIDs() []string {
	lines := []string{}
	for _, line := range c.Lines {
		lines = append(lines, line.ID)
	}
	return lines
}

// LineColours maps each configured line to its hex colour
func (c *Config) LineColours() map[string]string {
	colours := map[string]string{}
	for _, line := range c.Lines {
		colours[line.ID] = line.Colour
	}
	return colours
}

package config

import (
	"github.com/urfave/cli/v2"
)

// Flags are the dataset & configuration flags shared by every command that reads the dataset
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML configuration file",
			EnvVars: []string{"PUNCTUALITY_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "dataset format: csv, sqlite or mongodb",
		},
		&cli.StringFlag{
			Name:  "observations",
			Usage: "observations csv file",
		},
		&cli.StringFlag{
			Name:  "stops",
			Usage: "stop metadata csv file (halt_kurz, halt_lang)",
		},
		&cli.StringFlag{
			Name:  "sqlite",
			Usage: "SQLite database containing observations & stops tables",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "expression selecting the observations to analyse",
		},
		&cli.BoolFlag{
			Name:  "average-both-directions",
			Usage: "average line measures over both directions instead of the first one only",
		},
	}
}

// FromCLI loads the configuration file named by --config and applies flag overrides
func FromCLI(c *cli.Context) (*Config, error) {
	config, err := Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("format") {
		config.Dataset.Format = DatasetFormat(c.String("format"))
	}
	if c.IsSet("observations") {
		config.Dataset.Observations = c.String("observations")
	}
	if c.IsSet("stops") {
		config.Dataset.Stops = c.String("stops")
	}
	if c.IsSet("sqlite") {
		config.Dataset.SQLite = c.String("sqlite")
		if !c.IsSet("format") {
			config.Dataset.Format = DatasetFormatSQLite
		}
	}
	if c.IsSet("filter") {
		config.Dataset.Filter = c.String("filter")
	}
	if c.IsSet("average-both-directions") {
		config.AverageBothDirections = c.Bool("average-both-directions")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

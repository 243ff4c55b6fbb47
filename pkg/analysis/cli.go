package analysis

import (
	"fmt"

	"github.com/travigo/punctuality/pkg/config"
	"github.com/travigo/punctuality/pkg/dataset"
	"github.com/travigo/punctuality/pkg/util"
	"github.com/urfave/cli/v2"
)

// FromCLI loads the configuration & dataset named by the command's flags
func FromCLI(c *cli.Context) (*config.Config, *Analyser, error) {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return nil, nil, err
	}

	ds, err := dataset.Open(c.Context, cfg.Dataset)
	if err != nil {
		return nil, nil, err
	}

	return cfg, New(ds, OptionsFromConfig(cfg)), nil
}

// ModeFlags are the flags selecting holdup kind, measure & direction
func ModeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "holdup",
			Value: HoldupTotal.String(),
			Usage: "holdup to consider: at_stop, on_trajectory or total",
		},
		&cli.StringFlag{
			Name:  "measure",
			Value: MeasureDelay.String(),
			Usage: "delay or deviation (absolute delay) from the timetable",
		},
		&cli.StringFlag{
			Name:  "direction",
			Value: DirectionPrimary.String(),
			Usage: "direction of the line: primary or reverse",
		},
		&cli.BoolFlag{
			Name:  "per-stop",
			Value: true,
			Usage: "divide by the number of stops on the route",
		},
	}
}

type Modes struct {
	Holdup    HoldupKind
	Measure   MeasureKind
	Direction Direction
	PerStop   bool
}

func ModesFromCLI(c *cli.Context) (Modes, error) {
	holdup, err := ParseHoldupKind(c.String("holdup"))
	if err != nil {
		return Modes{}, err
	}

	measure, err := ParseMeasureKind(c.String("measure"))
	if err != nil {
		return Modes{}, err
	}

	direction, err := ParseDirection(c.String("direction"))
	if err != nil {
		return Modes{}, err
	}

	return Modes{
		Holdup:    holdup,
		Measure:   measure,
		Direction: direction,
		PerStop:   c.Bool("per-stop"),
	}, nil
}

// LinesFromCLI returns the --lines flag value, falling back to the configured lines
func LinesFromCLI(c *cli.Context, cfg *config.Config) ([]string, error) {
	lines := cfg.LineIDs()
	if c.IsSet("lines") {
		lines = util.SplitList(c.String("lines"))
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no lines given, set --lines or configure lines")
	}

	return lines, nil
}

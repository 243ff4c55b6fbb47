package presentation

import (
	"os"

	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/config"
	"github.com/urfave/cli/v2"
)

type figureBuilder func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (Figure, error)

func plotFlags(extra ...cli.Flag) []cli.Flag {
	flags := append(config.Flags(), analysis.ModeFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "output-directory",
			Usage: "directory to write figures to",
		},
		&cli.StringFlag{
			Name:  "image-format",
			Usage: "png, svg, pdf, eps or jpg",
		},
		&cli.BoolFlag{
			Name:  "table",
			Usage: "print the figure data as a table instead of rendering it",
		},
	)
	return append(flags, extra...)
}

func plotAction(build figureBuilder) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, analyser, err := analysis.FromCLI(c)
		if err != nil {
			return err
		}

		modes, err := analysis.ModesFromCLI(c)
		if err != nil {
			return err
		}

		figure, err := build(c, cfg, analyser, modes)
		if err != nil {
			return err
		}

		var presenter Presenter
		if c.Bool("table") {
			presenter = &TablePresenter{Writer: os.Stdout}
		} else {
			plotConfig := cfg.Plot
			if c.IsSet("output-directory") {
				plotConfig.OutputDirectory = c.String("output-directory")
			}
			if c.IsSet("image-format") {
				plotConfig.Format = c.String("image-format")
			}
			presenter = NewPlotPresenter(plotConfig)
		}

		return presenter.Present(figure)
	}
}

func RegisterCLI() *cli.Command {
	lineFlag := &cli.StringFlag{
		Name:     "line",
		Usage:    "line to plot",
		Required: true,
	}
	linesFlag := &cli.StringFlag{
		Name:  "lines",
		Usage: "comma separated lines to compare, defaults to the configured lines",
	}
	cutoffFlag := &cli.Float64Flag{
		Name:     "cutoff",
		Usage:    "seconds above which a delay or holdup is major",
		Required: true,
	}

	return &cli.Command{
		Name:  "plot",
		Usage: "Render punctuality charts",
		Subcommands: []*cli.Command{
			{
				Name:  "lines",
				Usage: "compare the delay or deviation of lines",
				Flags: plotFlags(linesFlag),
				Action: plotAction(func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (Figure, error) {
					lines, err := analysis.LinesFromCLI(c, cfg)
					if err != nil {
						return Figure{}, err
					}
					return FigureLines(analyser, lines, cfg.LineColours(), modes.Holdup, modes.Measure, modes.PerStop)
				}),
			},
			{
				Name:  "overview",
				Usage: "mean holdup at every stop along a line",
				Flags: plotFlags(lineFlag, &cli.BoolFlag{
					Name:  "annotations",
					Value: true,
					Usage: "write the mean holdup next to each bar",
				}),
				Action: plotAction(func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (Figure, error) {
					return OverviewForLine(analyser, c.String("line"), cfg.LineColours(), modes.Direction, modes.Holdup, c.Bool("annotations"))
				}),
			},
			{
				Name:  "major-holdups",
				Usage: "how likely a major holdup is at each stop along a line",
				Flags: plotFlags(lineFlag, cutoffFlag),
				Action: plotAction(func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (Figure, error) {
					return MajorHoldupsLine(analyser, c.String("line"), c.Float64("cutoff"), cfg.LineColours(), modes.Measure, modes.Direction, modes.Holdup)
				}),
			},
			{
				Name:  "distribution",
				Usage: "distribution of the delay accumulated until each line's endpoint",
				Flags: plotFlags(linesFlag),
				Action: plotAction(func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (Figure, error) {
					lines, err := analysis.LinesFromCLI(c, cfg)
					if err != nil {
						return Figure{}, err
					}
					return DistributionLines(analyser, lines, cfg.LineColours())
				}),
			},
			{
				Name:  "major-delays",
				Usage: "how likely trams of each line reach the endpoint with a major delay",
				Flags: plotFlags(linesFlag, cutoffFlag),
				Action: plotAction(func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (Figure, error) {
					lines, err := analysis.LinesFromCLI(c, cfg)
					if err != nil {
						return Figure{}, err
					}
					return MajorDelaysLines(analyser, lines, cfg.LineColours(), c.Float64("cutoff"), modes.PerStop, modes.Measure)
				}),
			},
		},
	}
}

package report

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/config"
	"github.com/urfave/cli/v2"
)

type reportFunc func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error)

func reportFlags(extra ...cli.Flag) []cli.Flag {
	flags := append(config.Flags(), analysis.ModeFlags()...)
	return append(flags, extra...)
}

func reportAction(title string, run reportFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, analyser, err := analysis.FromCLI(c)
		if err != nil {
			return err
		}

		modes, err := analysis.ModesFromCLI(c)
		if err != nil {
			return err
		}

		frame, err := run(c, cfg, analyser, modes)
		if err != nil {
			return err
		}
		if frame.Err != nil {
			return frame.Err
		}

		_, err = fmt.Fprintf(c.App.Writer, "%s\n%s\n", title, frame.String())
		return err
	}
}

// debugResult dumps a raw analysis result when debug logging is on
func debugResult(name string, result interface{}) {
	if event := log.Debug(); event.Enabled() {
		event.Str("result", name).Msg(pretty.Sprint(result))
	}
}

func RegisterCLI() *cli.Command {
	lineFlag := &cli.StringFlag{
		Name:     "line",
		Usage:    "line to report on",
		Required: true,
	}
	linesFlag := &cli.StringFlag{
		Name:  "lines",
		Usage: "comma separated lines, defaults to the configured lines",
	}
	routeFlag := &cli.StringFlag{
		Name:     "route",
		Usage:    `route label, eg. "REHA - ZAUZ"`,
		Required: true,
	}
	cutoffFlag := &cli.Float64Flag{
		Name:     "cutoff",
		Usage:    "seconds above which a delay or holdup is major",
		Required: true,
	}

	return &cli.Command{
		Name:  "report",
		Usage: "Print punctuality analysis results as tables",
		Subcommands: []*cli.Command{
			{
				Name:  "routes",
				Usage: "the two most observed routes of a line",
				Flags: reportFlags(lineFlag),
				Action: reportAction("Main routes", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					routes, err := analyser.MainRoutesOfLine(c.String("line"))
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					return StringsFrame("route", routes), nil
				}),
			},
			{
				Name:  "stops",
				Usage: "stops along a route in travel order",
				Flags: reportFlags(routeFlag),
				Action: reportAction("Stops on route", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					stops, err := analyser.StopsOnRoute(c.String("route"))
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					return StringsFrame("stop", stops), nil
				}),
			},
			{
				Name:  "stop-name",
				Usage: "resolve a stop code to its name",
				Flags: reportFlags(&cli.StringFlag{Name: "stop", Required: true}),
				Action: reportAction("Stop name", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					name, err := analyser.StopName(c.String("stop"))
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					return StringsFrame(c.String("stop"), []string{name}), nil
				}),
			},
			{
				Name:  "contributions",
				Usage: "mean holdups at every stop of a route",
				Flags: reportFlags(routeFlag),
				Action: reportAction("Contributions", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					contributions, err := analyser.Contributions(c.String("route"))
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					debugResult("contributions", contributions)
					return ContributionsFrame(contributions), nil
				}),
			},
			{
				Name:  "major-contributions",
				Usage: "stops of a line whose mean total holdup exceeds the cutoff",
				Flags: reportFlags(lineFlag, cutoffFlag),
				Action: reportAction("Major contributions", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					contributions, err := analyser.MajorContributionsLine(c.String("line"), c.Float64("cutoff"), modes.Direction)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					debugResult("major contributions", contributions)
					return ContributionsFrame(contributions), nil
				}),
			},
			{
				Name:  "delay",
				Usage: "delay (or deviation) accumulated along a route",
				Flags: reportFlags(routeFlag),
				Action: reportAction("Delay along route", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					route := c.String("route")
					delay, err := analyser.DelayAlongRoute(route, modes.Holdup, modes.Measure == analysis.MeasureDeviation)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					return LineMeasureFrame("route", route, modes.Measure.String(), delay), nil
				}),
			},
			{
				Name:  "line-delay",
				Usage: "delay (or deviation) measure of a line",
				Flags: reportFlags(lineFlag),
				Action: reportAction("Line delay", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					line := c.String("line")
					delay, err := analyser.MeasureOfDelayLine(line, modes.Holdup, modes.Measure == analysis.MeasureDeviation, modes.PerStop)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					return LineMeasureFrame("line", line, modes.Measure.String(), delay), nil
				}),
			},
			{
				Name:  "table-lines",
				Usage: "delay and deviation measure of several lines",
				Flags: reportFlags(linesFlag),
				Action: reportAction("Lines", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					lines, err := analysis.LinesFromCLI(c, cfg)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					table, err := analyser.TableLines(lines, modes.Holdup, modes.PerStop)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					debugResult("table lines", table)
					return LineMeasuresFrame(table), nil
				}),
			},
			{
				Name:  "major-delays",
				Usage: "how often trams reach the end of a route (or both directions of a line) with a major delay",
				Flags: reportFlags(
					cutoffFlag,
					&cli.StringFlag{Name: "line", Usage: "line to pool both directions of"},
					&cli.StringFlag{Name: "route", Usage: "single route to report on"},
				),
				Action: reportAction("Major delays", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					switch {
					case c.IsSet("route"):
						frequency, err := analyser.FreqMajorDelaysRoute(c.String("route"), c.Float64("cutoff"), modes.PerStop, modes.Measure)
						if err != nil {
							return dataframe.DataFrame{}, err
						}
						return FrequencyFrame("route", c.String("route"), frequency), nil
					case c.IsSet("line"):
						frequency, err := analyser.FreqMajorDelaysLine(c.String("line"), c.Float64("cutoff"), modes.PerStop, modes.Measure)
						if err != nil {
							return dataframe.DataFrame{}, err
						}
						return FrequencyFrame("line", c.String("line"), frequency), nil
					default:
						return dataframe.DataFrame{}, fmt.Errorf("one of --route or --line is required")
					}
				}),
			},
			{
				Name:  "table-major-delays",
				Usage: "how often trams of several lines reach the endpoint with a major delay",
				Flags: reportFlags(linesFlag, cutoffFlag),
				Action: reportAction("Major delays", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					lines, err := analysis.LinesFromCLI(c, cfg)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					table, err := analyser.TableMajorDelaysLines(lines, c.Float64("cutoff"), modes.PerStop, modes.Measure)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					debugResult("table major delays", table)
					return LineFrequenciesFrame(table), nil
				}),
			},
			{
				Name:  "major-holdups",
				Usage: "how often the holdup at one stop, or every stop, of a line is major",
				Flags: reportFlags(lineFlag, cutoffFlag, &cli.StringFlag{
					Name:  "stop",
					Usage: "stop code or name, defaults to every stop of the line",
				}),
				Action: reportAction("Major holdups", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					line := c.String("line")
					if c.IsSet("stop") {
						frequency, err := analyser.FreqMajorHoldupsStop(line, c.String("stop"), c.Float64("cutoff"), modes.Measure, modes.Direction, modes.Holdup)
						if err != nil {
							return dataframe.DataFrame{}, err
						}
						return FrequencyFrame("stop", c.String("stop"), frequency), nil
					}

					table, err := analyser.FreqMajorHoldupsAllStops(line, c.Float64("cutoff"), modes.Measure, modes.Direction, modes.Holdup)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					debugResult("major holdups", table)
					return StopFrequenciesFrame(table), nil
				}),
			},
			{
				Name:  "endpoint-delays",
				Usage: "delays observed at the endpoint of each line",
				Flags: reportFlags(linesFlag),
				Action: reportAction("Endpoint delays", func(c *cli.Context, cfg *config.Config, analyser *analysis.Analyser, modes analysis.Modes) (dataframe.DataFrame, error) {
					lines, err := analysis.LinesFromCLI(c, cfg)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					table, err := analyser.TableDelaysLines(lines)
					if err != nil {
						return dataframe.DataFrame{}, err
					}
					return LineDelaysFrame(table), nil
				}),
			},
		},
	}
}

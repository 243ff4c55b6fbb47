package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog/log"
)

// DelayAlongRoute is the delay an average tram accumulates along an entire route.
//
// With absolute set the absolute value of every stop's mean holdup is summed instead, giving
// the total deviation from the timetable: losing 10s and regaining it later adds 20s.
func (a *Analyser) DelayAlongRoute(route string, kind HoldupKind, absolute bool) (float64, error) {
	contributions, err := a.Contributions(route)
	if err != nil {
		return 0, err
	}

	return contributions.Sum(kind, absolute), nil
}

// MeasureOfDelayLine is the delay along a line's most observed route, optionally divided by its
// number of stops. With Options.AverageBothDirections the measure is averaged over both
// canonical routes.
func (a *Analyser) MeasureOfDelayLine(line string, kind HoldupKind, absolute bool, perStop bool) (float64, error) {
	routes, err := a.MainRoutesOfLine(line)
	if err != nil {
		return 0, err
	}

	if !a.options.AverageBothDirections {
		routes = routes[:1]
	}

	measures := []float64{}
	for _, route := range routes {
		contributions, err := a.Contributions(route)
		if err != nil {
			return 0, err
		}

		measure := contributions.Sum(kind, absolute)
		if perStop {
			if len(contributions) == 0 {
				return 0, insufficientData("route %q has no stops", route)
			}
			measure = measure / float64(len(contributions))
		}

		measures = append(measures, measure)
	}

	average, err := stats.Mean(measures)
	if err != nil {
		return 0, insufficientData("line %s has no routes", line)
	}

	return average, nil
}

// LineMeasure is a row of the per line comparison table
type LineMeasure struct {
	Line      string  `json:"line" groups:"basic,detailed"`
	Delay     float64 `json:"delay" groups:"basic,detailed"`
	Deviation float64 `json:"deviation" groups:"basic,detailed"`
}

// TableLines computes the delay and the deviation measure of each line
func (a *Analyser) TableLines(lines []string, kind HoldupKind, perStop bool) ([]LineMeasure, error) {
	table := []LineMeasure{}

	for _, line := range lines {
		delay, err := a.MeasureOfDelayLine(line, kind, false, perStop)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", line, err)
		}

		deviation, err := a.MeasureOfDelayLine(line, kind, true, perStop)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", line, err)
		}

		table = append(table, LineMeasure{
			Line:      line,
			Delay:     delay,
			Deviation: deviation,
		})

		log.Debug().Str("line", line).Float64("delay", delay).Float64("deviation", deviation).Msg("Measured line")
	}

	return table, nil
}

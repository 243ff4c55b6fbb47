package analysis

import (
	"fmt"
)

// Frequency counts how many of the available observations were major
type Frequency struct {
	Observations int     `json:"observations" groups:"basic,detailed"`
	Major        int     `json:"major" groups:"basic,detailed"`
	Percentage   float64 `json:"percentage" groups:"basic,detailed"`
}

func newFrequency(observations int, major int) (Frequency, error) {
	if observations == 0 {
		return Frequency{}, insufficientData("no observations")
	}

	return Frequency{
		Observations: observations,
		Major:        major,
		Percentage:   float64(major) / float64(observations) * 100,
	}, nil
}

// penultimateStop is the second to last stop of the linearised route, the stop whose delay
// after trajectory is recorded as the delay accumulated along the route
func (a *Analyser) penultimateStop(route string) (string, int, error) {
	stops, err := a.StopsOnRoute(route)
	if err != nil {
		return "", 0, err
	}

	if len(stops) < 2 {
		return "", 0, insufficientData("route %q has %d stop(s), need at least 2", route, len(stops))
	}

	return stops[len(stops)-2], len(stops), nil
}

func (a *Analyser) countMajorDelaysRoute(route string, cutoff float64, perStop bool, measure MeasureKind) (int, int, error) {
	penultimate, length, err := a.penultimateStop(route)
	if err != nil {
		return 0, 0, err
	}

	threshold := cutoff
	if perStop {
		threshold = cutoff * float64(length)
	}

	observations := 0
	major := 0
	for _, observation := range a.routeObservations(route) {
		if observation.Stop != penultimate {
			continue
		}

		observations++
		if measure.Exceeds(observation.DelayAfterTrajectory, threshold) {
			major++
		}
	}

	return observations, major, nil
}

// FreqMajorDelaysRoute reports how often the delay accumulated along a route exceeds cutoff.
// With perStop the cutoff is per stop, so it is scaled by the number of stops.
func (a *Analyser) FreqMajorDelaysRoute(route string, cutoff float64, perStop bool, measure MeasureKind) (Frequency, error) {
	observations, major, err := a.countMajorDelaysRoute(route, cutoff, perStop, measure)
	if err != nil {
		return Frequency{}, err
	}

	frequency, err := newFrequency(observations, major)
	if err != nil {
		return Frequency{}, fmt.Errorf("route %q: %w", route, err)
	}

	return frequency, nil
}

// FreqMajorDelaysLine pools the observations of both directions of a line
func (a *Analyser) FreqMajorDelaysLine(line string, cutoff float64, perStop bool, measure MeasureKind) (Frequency, error) {
	primary, reverse, err := a.canonicalRoutes(line)
	if err != nil {
		return Frequency{}, err
	}

	totalObservations := 0
	totalMajor := 0
	for _, route := range []string{primary, reverse} {
		observations, major, err := a.countMajorDelaysRoute(route, cutoff, perStop, measure)
		if err != nil {
			return Frequency{}, err
		}

		totalObservations += observations
		totalMajor += major
	}

	frequency, err := newFrequency(totalObservations, totalMajor)
	if err != nil {
		return Frequency{}, fmt.Errorf("line %s: %w", line, err)
	}

	return frequency, nil
}

type LineFrequency struct {
	Line string `json:"line" groups:"basic,detailed"`
	Frequency
}

func (a *Analyser) TableMajorDelaysLines(lines []string, cutoff float64, perStop bool, measure MeasureKind) ([]LineFrequency, error) {
	table := []LineFrequency{}

	for _, line := range lines {
		frequency, err := a.FreqMajorDelaysLine(line, cutoff, perStop, measure)
		if err != nil {
			return nil, err
		}

		table = append(table, LineFrequency{Line: line, Frequency: frequency})
	}

	return table, nil
}

// FreqMajorHoldupsStop reports how often the holdup at one stop of a line exceeds cutoff. The
// stop may be given by its short code or its long name.
func (a *Analyser) FreqMajorHoldupsStop(line string, stop string, cutoff float64, measure MeasureKind, direction Direction, kind HoldupKind) (Frequency, error) {
	route, err := a.RouteForDirection(line, direction)
	if err != nil {
		return Frequency{}, err
	}

	observations := 0
	major := 0
	for _, observation := range a.routeObservations(route) {
		if observation.Stop != stop && observation.StopName != stop {
			continue
		}

		observations++
		if measure.Exceeds(kind.Value(observation), cutoff) {
			major++
		}
	}

	frequency, err := newFrequency(observations, major)
	if err != nil {
		return Frequency{}, fmt.Errorf("stop %s on route %q: %w", stop, route, err)
	}

	return frequency, nil
}

type StopFrequency struct {
	Stop     string `json:"stop" groups:"basic,detailed"`
	StopName string `json:"stop_name" groups:"basic,detailed"`
	Frequency
}

// FreqMajorHoldupsAllStops computes FreqMajorHoldupsStop for every stop along the line in
// travel order
func (a *Analyser) FreqMajorHoldupsAllStops(line string, cutoff float64, measure MeasureKind, direction Direction, kind HoldupKind) ([]StopFrequency, error) {
	route, err := a.RouteForDirection(line, direction)
	if err != nil {
		return nil, err
	}

	stops, err := a.StopsOnRoute(route)
	if err != nil {
		return nil, err
	}

	table := []StopFrequency{}
	for _, stop := range stops {
		frequency, err := a.FreqMajorHoldupsStop(line, stop, cutoff, measure, direction, kind)
		if err != nil {
			return nil, err
		}

		name, err := a.StopName(stop)
		if err != nil {
			return nil, err
		}

		table = append(table, StopFrequency{
			Stop:      stop,
			StopName:  name,
			Frequency: frequency,
		})
	}

	return table, nil
}

// EndpointDelays collects every delay observed at the end of each canonical route of a line
func (a *Analyser) EndpointDelays(line string) ([]float64, error) {
	routes, err := a.MainRoutesOfLine(line)
	if err != nil {
		return nil, err
	}

	delays := []float64{}
	for _, route := range routes {
		penultimate, _, err := a.penultimateStop(route)
		if err != nil {
			return nil, err
		}

		for _, observation := range a.routeObservations(route) {
			if observation.Stop == penultimate {
				delays = append(delays, observation.DelayAfterTrajectory)
			}
		}
	}

	return delays, nil
}

type LineDelays struct {
	Line   string    `json:"line" groups:"basic,detailed"`
	Delays []float64 `json:"delays" groups:"detailed"`
}

func (a *Analyser) TableDelaysLines(lines []string) ([]LineDelays, error) {
	table := []LineDelays{}

	for _, line := range lines {
		delays, err := a.EndpointDelays(line)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", line, err)
		}

		table = append(table, LineDelays{Line: line, Delays: delays})
	}

	return table, nil
}


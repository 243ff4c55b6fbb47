package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/travigo/punctuality/pkg/dataset"
)

// Contribution is the average holdup attributed to one stop of a route. The holdup fields are
// nil when the stop has no observations on the route.
type Contribution struct {
	Stop         string `json:"stop" groups:"basic,detailed"`
	StopName     string `json:"stop_name" groups:"basic,detailed"`
	Observations int    `json:"observations" groups:"detailed"`

	HoldupStop       *float64 `json:"holdup_stop" groups:"detailed"`
	HoldupTrajectory *float64 `json:"holdup_trajectory" groups:"detailed"`
	TotalHoldup      *float64 `json:"total_holdup" groups:"basic,detailed"`
}

func (c *Contribution) Valid() bool {
	return c.Observations > 0
}

// Holdup returns the mean holdup of the given kind and whether one was observed
func (c *Contribution) Holdup(kind HoldupKind) (float64, bool) {
	var value *float64

	switch kind {
	case HoldupAtStop:
		value = c.HoldupStop
	case HoldupOnTrajectory:
		value = c.HoldupTrajectory
	case HoldupTotal:
		value = c.TotalHoldup
	}

	if value == nil {
		return 0, false
	}
	return *value, true
}

// ContributionTable has one row per stop of a route, in travel order
type ContributionTable []Contribution

func (t ContributionTable) Stops() []string {
	stops := []string{}
	for _, contribution := range t {
		stops = append(stops, contribution.Stop)
	}
	return stops
}

// Sum adds up the per-stop mean holdups, skipping stops without observations. In absolute mode
// the absolute value of each stop's mean is summed.
func (t ContributionTable) Sum(kind HoldupKind, absolute bool) float64 {
	values := []float64{}
	for _, contribution := range t {
		value, ok := contribution.Holdup(kind)
		if !ok {
			continue
		}

		if absolute {
			value = math.Abs(value)
		}
		values = append(values, value)
	}

	sum, _ := stats.Sum(values)
	return sum
}

type holdupSamples struct {
	stopName string

	holdupStop       []float64
	holdupTrajectory []float64
	totalHoldup      []float64
}

// Contributions averages, for every stop along a route, the holdup at the stop, the holdup on
// the trajectory to the next stop and their sum
func (a *Analyser) Contributions(route string) (ContributionTable, error) {
	stopsInOrder, err := a.StopsOnRoute(route)
	if err != nil {
		return nil, err
	}

	samples := map[string]*holdupSamples{}
	for _, observation := range a.routeObservations(route) {
		stopSamples, exists := samples[observation.From]
		if !exists {
			stopSamples = &holdupSamples{stopName: observation.StopName}
			samples[observation.From] = stopSamples
		}

		stopSamples.add(observation)
	}

	table := ContributionTable{}
	for _, stop := range stopsInOrder {
		contribution := Contribution{Stop: stop}

		if stopSamples, exists := samples[stop]; exists {
			contribution.StopName = StripCityPrefix(stopSamples.stopName, a.options.CityPrefix)
			contribution.Observations = len(stopSamples.totalHoldup)
			contribution.HoldupStop = mean(stopSamples.holdupStop)
			contribution.HoldupTrajectory = mean(stopSamples.holdupTrajectory)
			contribution.TotalHoldup = mean(stopSamples.totalHoldup)
		} else if name, err := a.StopName(stop); err == nil {
			contribution.StopName = name
		}

		table = append(table, contribution)
	}

	return table, nil
}

func (s *holdupSamples) add(observation dataset.Observation) {
	s.holdupStop = append(s.holdupStop, observation.HoldupStop)
	s.holdupTrajectory = append(s.holdupTrajectory, observation.HoldupTrajectory)
	s.totalHoldup = append(s.totalHoldup, observation.TotalHoldup)
}

func mean(values []float64) *float64 {
	value, err := stats.Mean(values)
	if err != nil {
		return nil
	}
	return &value
}

// NumberOfStops is the number of stops on a route excluding the final stop
func (a *Analyser) NumberOfStops(route string) (int, error) {
	contributions, err := a.Contributions(route)
	if err != nil {
		return 0, err
	}

	return len(contributions), nil
}

// MajorContributions keeps the stops of a route whose mean total holdup exceeds cutoff
func (a *Analyser) MajorContributions(route string, cutoff float64) (ContributionTable, error) {
	contributions, err := a.Contributions(route)
	if err != nil {
		return nil, err
	}

	major := ContributionTable{}
	for _, contribution := range contributions {
		if total, ok := contribution.Holdup(HoldupTotal); ok && total > cutoff {
			major = append(major, contribution)
		}
	}

	return major, nil
}

func (a *Analyser) MajorContributionsLine(line string, cutoff float64, direction Direction) (ContributionTable, error) {
	route, err := a.RouteForDirection(line, direction)
	if err != nil {
		return nil, err
	}

	return a.MajorContributions(route, cutoff)
}

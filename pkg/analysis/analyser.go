package analysis

import (
	"strings"

	"github.com/travigo/punctuality/pkg/config"
	"github.com/travigo/punctuality/pkg/dataset"
	"github.com/travigo/punctuality/pkg/util"
)

const DefaultCityPrefix = "Zürich"

type Options struct {
	// CityPrefix is stripped from the start of long stop names, eg. "Zürich, Rehalp" -> "Rehalp"
	CityPrefix string

	// AverageBothDirections makes line measures average over both canonical routes.
	// When false only the most observed route is used.
	AverageBothDirections bool
}

func OptionsFromConfig(c *config.Config) Options {
	return Options{
		CityPrefix:            c.CityPrefix,
		AverageBothDirections: c.AverageBothDirections,
	}
}

// Analyser answers punctuality questions over a single read-only dataset
type Analyser struct {
	dataset *dataset.Dataset
	options Options

	stopNames map[string]string
}

func New(ds *dataset.Dataset, options Options) *Analyser {
	if options.CityPrefix == "" {
		options.CityPrefix = DefaultCityPrefix
	}

	analyser := &Analyser{
		dataset:   ds,
		options:   options,
		stopNames: map[string]string{},
	}

	for _, stop := range ds.Stops {
		if _, exists := analyser.stopNames[stop.Code]; exists {
			continue
		}

		analyser.stopNames[stop.Code] = StripCityPrefix(stop.Name, options.CityPrefix)
	}

	return analyser
}

func (a *Analyser) Dataset() *dataset.Dataset {
	return a.dataset
}

func (a *Analyser) Options() Options {
	return a.options
}

// StripCityPrefix removes a leading "<city>, " or "<city>," from a stop name
func StripCityPrefix(name string, city string) string {
	name = strings.TrimPrefix(name, city+", ")
	name = strings.TrimPrefix(name, city+",")

	return name
}

// StopName resolves a short stop code (eg. "REHA") to its long name ("Rehalp")
func (a *Analyser) StopName(code string) (string, error) {
	name, exists := a.stopNames[code]
	if !exists {
		return "", &NotFoundError{Kind: "stop", Key: code}
	}

	return name, nil
}

func (a *Analyser) routeObservations(route string) []dataset.Observation {
	return util.Filter(a.dataset.Observations, func(observation dataset.Observation) bool {
		return observation.Route == route
	})
}

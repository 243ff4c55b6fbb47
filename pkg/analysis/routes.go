package analysis

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Route is a route label split into its endpoints, eg. "REHA - ZAUZ"
type Route struct {
	Label string
	First string
	Last  string
}

func ParseRoute(label string) (Route, error) {
	fields := strings.Fields(label)
	if len(fields) < 3 {
		return Route{}, &MalformedRouteError{
			Route:  label,
			Reason: `label is not of the form "<first stop> - <last stop>"`,
		}
	}

	return Route{
		Label: label,
		First: fields[0],
		Last:  fields[2],
	}, nil
}

// MainRoutesOfLine returns the (at most) two most observed routes of a line, most observed
// first. These are normally the two directions between the line's endpoints; other routes
// such as depot runs are less frequent. Equal counts keep the order in which the routes
// first appear in the observation table.
func (a *Analyser) MainRoutesOfLine(line string) ([]string, error) {
	counts := map[string]int{}
	routes := []string{}

	for _, observation := range a.dataset.Observations {
		if observation.Line != line || observation.Route == "" {
			continue
		}

		if _, seen := counts[observation.Route]; !seen {
			routes = append(routes, observation.Route)
		}
		counts[observation.Route]++
	}

	if len(routes) == 0 {
		return nil, &NotFoundError{Kind: "line", Key: line}
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return counts[routes[i]] > counts[routes[j]]
	})

	if len(routes) > 2 {
		routes = routes[:2]
	}

	return routes, nil
}

// RouteForDirection returns the primary or reverse canonical route of a line
func (a *Analyser) RouteForDirection(line string, direction Direction) (string, error) {
	routes, err := a.MainRoutesOfLine(line)
	if err != nil {
		return "", err
	}

	index := int(direction)
	if index >= len(routes) {
		return "", insufficientData("line %s has %d route(s), no %s direction", line, len(routes), direction)
	}

	return routes[index], nil
}

// canonicalRoutes returns both directions of a line, failing when the line has only one
func (a *Analyser) canonicalRoutes(line string) (string, string, error) {
	primary, err := a.RouteForDirection(line, DirectionPrimary)
	if err != nil {
		return "", "", err
	}

	reverse, err := a.RouteForDirection(line, DirectionReverse)
	if err != nil {
		return "", "", err
	}

	return primary, reverse, nil
}

// StopsOnRoute returns the short codes of the stops along a route in travel order, starting at
// the first stop and excluding the final stop.
//
// The order is rebuilt from the observed segments: each origin stop maps to the destination of
// its last observation in table order. Observations disagree on noisy data and the last one
// wins.
func (a *Analyser) StopsOnRoute(label string) ([]string, error) {
	route, err := ParseRoute(label)
	if err != nil {
		return nil, err
	}

	observations := a.routeObservations(label)
	if len(observations) == 0 {
		return nil, &NotFoundError{Kind: "route", Key: label}
	}

	successors := map[string]string{}
	for _, observation := range observations {
		if observation.From == "" {
			continue
		}
		successors[observation.From] = observation.To
	}

	stops := []string{}
	visited := map[string]bool{}

	current := route.First
	for current != route.Last {
		if visited[current] {
			return nil, &MalformedRouteError{
				Route:  label,
				Stop:   current,
				Reason: "successor chain loops without reaching the last stop",
			}
		}
		visited[current] = true

		stops = append(stops, current)

		next, exists := successors[current]
		if !exists || next == "" {
			return nil, &MalformedRouteError{
				Route:  label,
				Stop:   current,
				Reason: "no successor stop observed",
			}
		}

		current = next
	}

	log.Debug().Str("route", label).Int("stops", len(stops)).Msg("Linearised route")

	return stops, nil
}

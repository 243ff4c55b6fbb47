package presentation

import (
	"fmt"
	"strconv"

	"github.com/travigo/punctuality/pkg/analysis"
)

const densityPoints = 200

func lineColours(lines []string, colours map[string]string) ([]string, error) {
	lineColours := []string{}
	for _, line := range lines {
		colour, exists := colours[line]
		if !exists {
			return nil, &analysis.NotFoundError{Kind: "line colour", Key: line}
		}
		lineColours = append(lineColours, colour)
	}
	return lineColours, nil
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// FigureLines compares the delay (or deviation) measure of several lines
func FigureLines(analyser *analysis.Analyser, lines []string, colours map[string]string, kind analysis.HoldupKind, measure analysis.MeasureKind, perStop bool) (Figure, error) {
	barColours, err := lineColours(lines, colours)
	if err != nil {
		return Figure{}, err
	}

	table, err := analyser.TableLines(lines, kind, perStop)
	if err != nil {
		return Figure{}, err
	}

	var explanation string
	switch kind {
	case analysis.HoldupAtStop:
		explanation = " (only holdups at stops)"
	case analysis.HoldupOnTrajectory:
		explanation = " (only holdups between stops)"
	case analysis.HoldupTotal:
		explanation = ""
	}

	values := []float64{}
	var title string
	switch measure {
	case analysis.MeasureDelay:
		title = "Which lines had most delays from endpoint to endpoint?" + explanation
		for _, row := range table {
			values = append(values, row.Delay)
		}
	case analysis.MeasureDeviation:
		title = "Which lines deviated most from the timetable?" + explanation
		for _, row := range table {
			values = append(values, row.Deviation)
		}
	}

	yLabel := "Seconds"
	if perStop {
		yLabel = "Seconds per stop on the line"
	}

	return Figure{
		Kind:       FigureBar,
		Title:      title,
		XLabel:     "Line",
		YLabel:     yLabel,
		Categories: lines,
		Series: []Series{{
			Label:   measure.String(),
			Values:  values,
			Colours: barColours,
		}},
	}, nil
}

// OverviewForLine shows the mean holdup at every stop along one direction of a line
func OverviewForLine(analyser *analysis.Analyser, line string, colours map[string]string, direction analysis.Direction, kind analysis.HoldupKind, annotate bool) (Figure, error) {
	barColours, err := lineColours([]string{line}, colours)
	if err != nil {
		return Figure{}, err
	}

	overview, err := analyser.Overview(line, direction, kind)
	if err != nil {
		return Figure{}, err
	}

	categories := []string{}
	values := []float64{}
	for _, contribution := range overview.Contributions {
		value, _ := contribution.Holdup(kind)

		categories = append(categories, contribution.StopName)
		values = append(values, value)
	}

	return Figure{
		Kind:       FigureHorizontalBar,
		Title:      fmt.Sprintf("Tram %s (from %s to %s): %s", line, overview.FirstStopName, overview.FinalStopName, kind.Title()),
		XLabel:     "Seconds",
		Categories: categories,
		Series: []Series{{
			Label:  overview.Route,
			Values: values,
			Colour: barColours[0],
		}},
		Annotate: annotate,
	}, nil
}

// MajorHoldupsLine shows how likely a major holdup is at every stop along a line
func MajorHoldupsLine(analyser *analysis.Analyser, line string, cutoff float64, colours map[string]string, measure analysis.MeasureKind, direction analysis.Direction, kind analysis.HoldupKind) (Figure, error) {
	barColours, err := lineColours([]string{line}, colours)
	if err != nil {
		return Figure{}, err
	}

	table, err := analyser.FreqMajorHoldupsAllStops(line, cutoff, measure, direction, kind)
	if err != nil {
		return Figure{}, err
	}

	categories := []string{}
	values := []float64{}
	for _, row := range table {
		categories = append(categories, row.StopName)
		values = append(values, row.Percentage)
	}

	return Figure{
		Kind:       FigureHorizontalBar,
		Title:      fmt.Sprintf("How likely is a major holdup (>%ss)?", formatSeconds(cutoff)),
		XLabel:     "Percentage",
		Categories: categories,
		Series: []Series{{
			Label:  line,
			Values: values,
			Colour: barColours[0],
		}},
	}, nil
}

// DistributionLines estimates, per line, the distribution of the delay accumulated until the
// line's endpoint
func DistributionLines(analyser *analysis.Analyser, lines []string, colours map[string]string) (Figure, error) {
	densityColours, err := lineColours(lines, colours)
	if err != nil {
		return Figure{}, err
	}

	table, err := analyser.TableDelaysLines(lines)
	if err != nil {
		return Figure{}, err
	}

	series := []Series{}
	for i, row := range table {
		xs, densities, err := KernelDensity(row.Delays, densityPoints)
		if err != nil {
			return Figure{}, fmt.Errorf("line %s: %w", row.Line, err)
		}

		series = append(series, Series{
			Label:  row.Line,
			X:      xs,
			Values: densities,
			Colour: densityColours[i],
		})
	}

	return Figure{
		Kind:       FigureDensity,
		Title:      "Distribution of delays accumulated until line's endpoint",
		XLabel:     "Seconds of delay at line's endpoint",
		Series:     series,
		HideYTicks: true,
	}, nil
}

// MajorDelaysLines compares how likely trams of each line reach the endpoint with a major delay
func MajorDelaysLines(analyser *analysis.Analyser, lines []string, colours map[string]string, cutoff float64, perStop bool, measure analysis.MeasureKind) (Figure, error) {
	barColours, err := lineColours(lines, colours)
	if err != nil {
		return Figure{}, err
	}

	table, err := analyser.TableMajorDelaysLines(lines, cutoff, perStop, measure)
	if err != nil {
		return Figure{}, err
	}

	values := []float64{}
	for _, row := range table {
		values = append(values, row.Percentage)
	}

	unit := " s"
	if perStop {
		unit = " s (per stop)"
	}

	var title string
	switch measure {
	case analysis.MeasureDelay:
		title = fmt.Sprintf("Percentage of trams with >%s%s delay", formatSeconds(cutoff), unit)
	case analysis.MeasureDeviation:
		title = fmt.Sprintf("Percentage of trams with >%s%s deviation from timetable", formatSeconds(cutoff), unit)
	}

	return Figure{
		Kind:       FigureBar,
		Title:      title,
		XLabel:     "Line",
		YLabel:     "Percentage",
		Categories: lines,
		Series: []Series{{
			Label:   measure.String(),
			Values:  values,
			Colours: barColours,
		}},
	}, nil
}

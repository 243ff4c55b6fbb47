package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/travigo/punctuality/pkg/analysis"
)

func StringsFrame(column string, values []string) dataframe.DataFrame {
	return dataframe.New(series.New(values, series.String, column))
}

func ContributionsFrame(table analysis.ContributionTable) dataframe.DataFrame {
	stops := []string{}
	names := []string{}
	observations := []int{}
	holdupStop := []float64{}
	holdupTrajectory := []float64{}
	totalHoldup := []float64{}

	for _, contribution := range table {
		stops = append(stops, contribution.Stop)
		names = append(names, contribution.StopName)
		observations = append(observations, contribution.Observations)
		holdupStop = append(holdupStop, orNaN(contribution.Holdup(analysis.HoldupAtStop)))
		holdupTrajectory = append(holdupTrajectory, orNaN(contribution.Holdup(analysis.HoldupOnTrajectory)))
		totalHoldup = append(totalHoldup, orNaN(contribution.Holdup(analysis.HoldupTotal)))
	}

	return dataframe.New(
		series.New(stops, series.String, "stop"),
		series.New(names, series.String, "stop_name"),
		series.New(observations, series.Int, "observations"),
		series.New(holdupStop, series.Float, analysis.HoldupAtStop.Column()),
		series.New(holdupTrajectory, series.Float, analysis.HoldupOnTrajectory.Column()),
		series.New(totalHoldup, series.Float, analysis.HoldupTotal.Column()),
	)
}

func orNaN(value float64, ok bool) float64 {
	if !ok {
		return math.NaN()
	}
	return value
}

// LineMeasureFrame is a single measure of a route or line
func LineMeasureFrame(column string, label string, measure string, value float64) dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{label}, series.String, column),
		series.New([]float64{value}, series.Float, measure),
	)
}

func LineMeasuresFrame(table []analysis.LineMeasure) dataframe.DataFrame {
	lines := []string{}
	delays := []float64{}
	deviations := []float64{}

	for _, row := range table {
		lines = append(lines, row.Line)
		delays = append(delays, row.Delay)
		deviations = append(deviations, row.Deviation)
	}

	return dataframe.New(
		series.New(lines, series.String, "line"),
		series.New(delays, series.Float, "delay"),
		series.New(deviations, series.Float, "deviation"),
	)
}

func frequencyColumns(frequencies []analysis.Frequency) []series.Series {
	observations := []int{}
	major := []int{}
	percentages := []float64{}

	for _, frequency := range frequencies {
		observations = append(observations, frequency.Observations)
		major = append(major, frequency.Major)
		percentages = append(percentages, frequency.Percentage)
	}

	return []series.Series{
		series.New(observations, series.Int, "observations"),
		series.New(major, series.Int, "major"),
		series.New(percentages, series.Float, "percentage"),
	}
}

// FrequencyFrame is a single row frame labelled with what the frequency was computed for
func FrequencyFrame(column string, label string, frequency analysis.Frequency) dataframe.DataFrame {
	columns := []series.Series{series.New([]string{label}, series.String, column)}
	columns = append(columns, frequencyColumns([]analysis.Frequency{frequency})...)

	return dataframe.New(columns...)
}

func LineFrequenciesFrame(table []analysis.LineFrequency) dataframe.DataFrame {
	lines := []string{}
	frequencies := []analysis.Frequency{}

	for _, row := range table {
		lines = append(lines, row.Line)
		frequencies = append(frequencies, row.Frequency)
	}

	columns := []series.Series{series.New(lines, series.String, "line")}
	columns = append(columns, frequencyColumns(frequencies)...)

	return dataframe.New(columns...)
}

func StopFrequenciesFrame(table []analysis.StopFrequency) dataframe.DataFrame {
	stops := []string{}
	names := []string{}
	frequencies := []analysis.Frequency{}

	for _, row := range table {
		stops = append(stops, row.Stop)
		names = append(names, row.StopName)
		frequencies = append(frequencies, row.Frequency)
	}

	columns := []series.Series{
		series.New(stops, series.String, "stop"),
		series.New(names, series.String, "stop_name"),
	}
	columns = append(columns, frequencyColumns(frequencies)...)

	return dataframe.New(columns...)
}

// LineDelaysFrame summarises the endpoint delays of each line
func LineDelaysFrame(table []analysis.LineDelays) dataframe.DataFrame {
	lines := []string{}
	counts := []int{}
	delays := []string{}

	for _, row := range table {
		lines = append(lines, row.Line)
		counts = append(counts, len(row.Delays))

		formatted := []string{}
		for _, delay := range row.Delays {
			formatted = append(formatted, strconv.FormatFloat(delay, 'f', -1, 64))
		}
		delays = append(delays, strings.Join(formatted, " "))
	}

	return dataframe.New(
		series.New(lines, series.String, "line"),
		series.New(counts, series.Int, "observations"),
		series.New(delays, series.String, "delays"),
	)
}

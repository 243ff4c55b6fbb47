package report_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/report"
)

func float(value float64) *float64 {
	return &value
}

func TestContributionsFrame(t *testing.T) {
	frame := report.ContributionsFrame(analysis.ContributionTable{
		{Stop: "A", StopName: "Alpha", Observations: 2, HoldupStop: float(1), HoldupTrajectory: float(1), TotalHoldup: float(2)},
		{Stop: "B", StopName: "Bravo"},
	})
	require.NoError(t, frame.Err)

	assert.Equal(t, []string{"stop", "stop_name", "observations", "holdup_stop", "holdup_trajectory", "total_holdup"}, frame.Names())
	assert.Equal(t, []string{"A", "B"}, frame.Col("stop").Records())

	totals := frame.Col("total_holdup").Float()
	assert.Equal(t, 2.0, totals[0])
	assert.True(t, math.IsNaN(totals[1]))
}

func TestLineMeasuresFrame(t *testing.T) {
	frame := report.LineMeasuresFrame([]analysis.LineMeasure{
		{Line: "2", Delay: 4, Deviation: 6},
		{Line: "3", Delay: -1, Deviation: 3},
	})
	require.NoError(t, frame.Err)

	assert.Equal(t, 2, frame.Nrow())
	assert.Equal(t, []float64{4, -1}, frame.Col("delay").Float())
	assert.Equal(t, []float64{6, 3}, frame.Col("deviation").Float())
}

func TestFrequencyFrames(t *testing.T) {
	frequency := analysis.Frequency{Observations: 4, Major: 1, Percentage: 25}

	frame := report.FrequencyFrame("route", "A - D", frequency)
	require.NoError(t, frame.Err)
	assert.Equal(t, []string{"route", "observations", "major", "percentage"}, frame.Names())
	assert.Equal(t, []string{"A - D"}, frame.Col("route").Records())

	frame = report.LineFrequenciesFrame([]analysis.LineFrequency{
		{Line: "2", Frequency: frequency},
		{Line: "3", Frequency: analysis.Frequency{Observations: 2, Major: 2, Percentage: 100}},
	})
	require.NoError(t, frame.Err)
	assert.Equal(t, []float64{25, 100}, frame.Col("percentage").Float())

	frame = report.StopFrequenciesFrame([]analysis.StopFrequency{
		{Stop: "A", StopName: "Alpha", Frequency: frequency},
	})
	require.NoError(t, frame.Err)
	assert.Equal(t, []string{"stop", "stop_name", "observations", "major", "percentage"}, frame.Names())
}

func TestLineDelaysFrame(t *testing.T) {
	frame := report.LineDelaysFrame([]analysis.LineDelays{
		{Line: "2", Delays: []float64{20, 60, -10.5}},
		{Line: "3", Delays: []float64{5}},
	})
	require.NoError(t, frame.Err)

	assert.Equal(t, []string{"20 60 -10.5", "5"}, frame.Col("delays").Records())
	assert.Equal(t, []string{"3", "1"}, frame.Col("observations").Records())
}

package presentation_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/config"
	"github.com/travigo/punctuality/pkg/presentation"
)

func TestAnnotationText(t *testing.T) {
	assert.Equal(t, "+1.5 s", presentation.AnnotationText(1.5))
	assert.Equal(t, "+0.0 s", presentation.AnnotationText(0))
	assert.Equal(t, " -0.3 s", presentation.AnnotationText(-0.3))
}

func TestPlotPresenterPath(t *testing.T) {
	presenter := presentation.NewPlotPresenter(config.PlotConfig{
		OutputDirectory: "figures",
		Width:           8,
		Height:          5,
		Format:          "svg",
	})

	path := presenter.Path(presentation.Figure{Title: "How likely is a major holdup (>30s)?"})
	assert.Equal(t, filepath.Join("figures", "how-likely-is-a-major-holdup-30s.svg"), path)
}

func TestPlotPresenterWritesEveryFigureKind(t *testing.T) {
	analyser := newAnalyser()
	directory := t.TempDir()

	presenter := presentation.NewPlotPresenter(config.PlotConfig{
		OutputDirectory: directory,
		Width:           6,
		Height:          4,
		Format:          "png",
	})

	lines, err := presentation.FigureLines(analyser, []string{"2", "3"}, colours, analysis.HoldupTotal, analysis.MeasureDelay, true)
	require.NoError(t, err)
	overview, err := presentation.OverviewForLine(analyser, "2", colours, analysis.DirectionPrimary, analysis.HoldupTotal, true)
	require.NoError(t, err)
	distribution, err := presentation.DistributionLines(analyser, []string{"2", "3"}, colours)
	require.NoError(t, err)

	for _, figure := range []presentation.Figure{lines, overview, distribution} {
		require.NoError(t, presenter.Present(figure))

		info, err := os.Stat(presenter.Path(figure))
		require.NoError(t, err, figure.Title)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestPlotPresenterRejectsMultipleBarSeries(t *testing.T) {
	presenter := presentation.NewPlotPresenter(config.PlotConfig{OutputDirectory: t.TempDir(), Width: 4, Height: 4, Format: "png"})

	err := presenter.Present(presentation.Figure{
		Kind:       presentation.FigureBar,
		Title:      "Two series",
		Categories: []string{"2"},
		Series: []presentation.Series{
			{Label: "a", Values: []float64{1}},
			{Label: "b", Values: []float64{2}},
		},
	})
	assert.Error(t, err)
}

func TestTablePresenter(t *testing.T) {
	figure, err := presentation.MajorHoldupsLine(newAnalyser(), "2", 1.5, colours, analysis.MeasureDelay, analysis.DirectionPrimary, analysis.HoldupTotal)
	require.NoError(t, err)

	var buffer bytes.Buffer
	presenter := &presentation.TablePresenter{Writer: &buffer}
	require.NoError(t, presenter.Present(figure))

	output := buffer.String()
	assert.Contains(t, output, "How likely is a major holdup (>1.5s)?")
	assert.Contains(t, output, "Stop")
	assert.Contains(t, output, "Alpha")
	assert.Contains(t, output, "Charlie")
}

func TestFigureDataFrame(t *testing.T) {
	figure, err := presentation.FigureLines(newAnalyser(), []string{"2", "3"}, colours, analysis.HoldupTotal, analysis.MeasureDelay, false)
	require.NoError(t, err)

	frame := presentation.FigureDataFrame(figure)
	require.NoError(t, frame.Err)
	assert.Equal(t, []string{"Line", "delay"}, frame.Names())
	assert.Equal(t, []string{"2", "3"}, frame.Col("Line").Records())
	assert.InDeltaSlice(t, []float64{4, 6}, frame.Col("delay").Float(), 1e-9)

	distribution, err := presentation.DistributionLines(newAnalyser(), []string{"2", "3"}, colours)
	require.NoError(t, err)

	frame = presentation.FigureDataFrame(distribution)
	require.NoError(t, frame.Err)
	assert.Equal(t, []string{"2 x", "2 density", "3 x", "3 density"}, frame.Names())
	assert.Equal(t, 200, frame.Nrow())
}

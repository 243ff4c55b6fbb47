package presentation

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/config"
	"github.com/travigo/punctuality/pkg/util"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	positiveAnnotationColour = color.RGBA{R: 0xff, A: 0xff}
	negativeAnnotationColour = color.RGBA{B: 0x80, A: 0xff}
)

// PlotPresenter renders figures to image files named after the figure title
type PlotPresenter struct {
	OutputDirectory string
	Width           vg.Length
	Height          vg.Length
	Format          string
}

func NewPlotPresenter(plotConfig config.PlotConfig) *PlotPresenter {
	return &PlotPresenter{
		OutputDirectory: plotConfig.OutputDirectory,
		Width:           vg.Length(plotConfig.Width) * vg.Inch,
		Height:          vg.Length(plotConfig.Height) * vg.Inch,
		Format:          plotConfig.Format,
	}
}

// Path is the file a figure is written to
func (p *PlotPresenter) Path(figure Figure) string {
	return filepath.Join(p.OutputDirectory, fmt.Sprintf("%s.%s", util.Slugify(figure.Title), p.Format))
}

func (p *PlotPresenter) Present(figure Figure) error {
	chart, err := buildPlot(figure)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.OutputDirectory, 0o755); err != nil {
		return err
	}

	path := p.Path(figure)
	if err := chart.Save(p.Width, p.Height, path); err != nil {
		return fmt.Errorf("failed to save figure: %w", err)
	}

	log.Info().Str("file", path).Str("title", figure.Title).Msg("Rendered figure")

	return nil
}

func buildPlot(figure Figure) (*plot.Plot, error) {
	chart := plot.New()
	chart.Title.Text = figure.Title
	chart.X.Label.Text = figure.XLabel
	chart.Y.Label.Text = figure.YLabel

	var err error
	switch figure.Kind {
	case FigureBar:
		err = addBars(chart, figure, false)
	case FigureHorizontalBar:
		err = addBars(chart, figure, true)
	case FigureDensity:
		err = addDensities(chart, figure)
	default:
		err = fmt.Errorf("unknown figure kind %d", figure.Kind)
	}
	if err != nil {
		return nil, err
	}

	if figure.HideYTicks {
		chart.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{})
	}

	return chart, nil
}

func addBars(chart *plot.Plot, figure Figure, horizontal bool) error {
	if len(figure.Series) != 1 {
		return fmt.Errorf("bar figure needs exactly one series, got %d", len(figure.Series))
	}
	series := figure.Series[0]
	count := len(series.Values)

	// Horizontal charts list the first category at the top
	position := func(i int) int {
		if horizontal {
			return count - 1 - i
		}
		return i
	}

	for i, value := range series.Values {
		bars, err := plotter.NewBarChart(plotter.Values{value}, vg.Points(18))
		if err != nil {
			return err
		}

		colour, err := ParseColour(series.colourAt(i))
		if err != nil {
			return err
		}

		bars.Color = colour
		bars.LineStyle.Width = 0
		bars.Horizontal = horizontal
		bars.XMin = float64(position(i))

		chart.Add(bars)
	}

	names := make([]string, count)
	for i := range series.Values {
		if i < len(figure.Categories) {
			names[position(i)] = figure.Categories[i]
		}
	}

	if horizontal {
		chart.NominalY(names...)
	} else {
		chart.NominalX(names...)
	}

	if figure.Annotate && count > 0 {
		return addAnnotations(chart, series.Values, horizontal, position)
	}

	return nil
}

func addAnnotations(chart *plot.Plot, values []float64, horizontal bool, position func(int) int) error {
	maximum := math.Inf(-1)
	for _, value := range values {
		maximum = math.Max(maximum, value)
	}
	offset := math.Abs(maximum) * 1.15

	xyLabels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(values)),
		Labels: make([]string, len(values)),
	}
	for i, value := range values {
		if horizontal {
			xyLabels.XYs[i] = plotter.XY{X: offset, Y: float64(position(i))}
		} else {
			xyLabels.XYs[i] = plotter.XY{X: float64(position(i)), Y: offset}
		}
		xyLabels.Labels[i] = AnnotationText(value)
	}

	labels, err := plotter.NewLabels(xyLabels)
	if err != nil {
		return err
	}
	for i, value := range values {
		if value < 0 {
			labels.TextStyle[i].Color = negativeAnnotationColour
		} else {
			labels.TextStyle[i].Color = positiveAnnotationColour
		}
	}

	chart.Add(labels)

	return nil
}

// AnnotationText formats a holdup as "+1.5 s" or " -0.3 s"
func AnnotationText(value float64) string {
	if value < 0 {
		return fmt.Sprintf(" %.1f s", value)
	}
	return fmt.Sprintf("+%.1f s", value)
}

func addDensities(chart *plot.Plot, figure Figure) error {
	for _, series := range figure.Series {
		if len(series.X) != len(series.Values) {
			return fmt.Errorf("series %s has %d x values for %d densities", series.Label, len(series.X), len(series.Values))
		}

		xys := make(plotter.XYs, len(series.X))
		for i := range series.X {
			xys[i] = plotter.XY{X: series.X[i], Y: series.Values[i]}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}

		colour, err := ParseColour(series.Colour)
		if err != nil {
			return err
		}
		line.LineStyle.Color = colour
		line.FillColor = color.NRGBA{R: colour.R, G: colour.G, B: colour.B, A: 0x40}

		chart.Add(line)
		chart.Legend.Add(series.Label, line)
	}

	return nil
}

package presentation

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// TablePresenter writes the data behind a figure as a text table
type TablePresenter struct {
	Writer io.Writer
}

func (t *TablePresenter) Present(figure Figure) error {
	frame := FigureDataFrame(figure)
	if frame.Err != nil {
		return frame.Err
	}

	_, err := fmt.Fprintf(t.Writer, "%s\n%s\n", figure.Title, frame.String())
	return err
}

// FigureDataFrame lays out a figure as columns: categories and one column per series for bar
// figures, an x and a density column per series for density figures
func FigureDataFrame(figure Figure) dataframe.DataFrame {
	columns := []series.Series{}

	switch figure.Kind {
	case FigureBar, FigureHorizontalBar:
		columns = append(columns, series.New(figure.Categories, series.String, categoryColumn(figure)))
		for _, s := range figure.Series {
			columns = append(columns, series.New(s.Values, series.Float, s.Label))
		}
	case FigureDensity:
		for _, s := range figure.Series {
			columns = append(columns,
				series.New(s.X, series.Float, fmt.Sprintf("%s x", s.Label)),
				series.New(s.Values, series.Float, fmt.Sprintf("%s density", s.Label)),
			)
		}
	}

	return dataframe.New(columns...)
}

func categoryColumn(figure Figure) string {
	if figure.Kind == FigureBar && figure.XLabel != "" {
		return figure.XLabel
	}
	return "Stop"
}

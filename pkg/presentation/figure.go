package presentation

type FigureKind int

const (
	FigureBar FigureKind = iota
	FigureHorizontalBar
	FigureDensity
)

// Series is one set of values of a figure. Bar figures use Values aligned with the figure's
// Categories and may colour every bar separately with Colours; density figures use X & Values.
type Series struct {
	Label   string
	X       []float64
	Values  []float64
	Colour  string
	Colours []string
}

func (s *Series) colourAt(i int) string {
	if i < len(s.Colours) && s.Colours[i] != "" {
		return s.Colours[i]
	}
	return s.Colour
}

// Figure is an already computed chart, ready to be handed to a Presenter
type Figure struct {
	Kind   FigureKind
	Title  string
	XLabel string
	YLabel string

	Categories []string
	Series     []Series

	// Annotate writes each bar's value next to it
	Annotate bool
	// HideYTicks drops the value axis ticks, used for densities
	HideYTicks bool
}

// Presenter is the rendering sink for figures
type Presenter interface {
	Present(figure Figure) error
}

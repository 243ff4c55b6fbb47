package analysis

// LineOverview is everything the per line holdup chart needs: the contributions of one
// direction of the line together with its endpoint names
type LineOverview struct {
	Line          string            `json:"line" groups:"basic,detailed"`
	Route         string            `json:"route" groups:"basic,detailed"`
	Holdup        string            `json:"holdup" groups:"basic,detailed"`
	FirstStopName string            `json:"first_stop_name" groups:"basic,detailed"`
	FinalStopName string            `json:"final_stop_name" groups:"basic,detailed"`
	Contributions ContributionTable `json:"contributions" groups:"basic,detailed"`
}

func (a *Analyser) Overview(line string, direction Direction, kind HoldupKind) (LineOverview, error) {
	label, err := a.RouteForDirection(line, direction)
	if err != nil {
		return LineOverview{}, err
	}

	route, err := ParseRoute(label)
	if err != nil {
		return LineOverview{}, err
	}

	contributions, err := a.Contributions(label)
	if err != nil {
		return LineOverview{}, err
	}

	finalStopName, err := a.StopName(route.Last)
	if err != nil {
		return LineOverview{}, err
	}

	overview := LineOverview{
		Line:          line,
		Route:         label,
		Holdup:        kind.String(),
		FinalStopName: finalStopName,
		Contributions: contributions,
	}
	if len(contributions) > 0 {
		overview.FirstStopName = contributions[0].StopName
	}

	return overview, nil
}

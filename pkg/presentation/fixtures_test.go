package presentation_test

import (
	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/dataset"
)

var colours = map[string]string{
	"2": "#000000",
	"3": "#ff0000",
}

func observation(line, route, from, name, to string, stop, trajectory, delay float64) dataset.Observation {
	return dataset.Observation{
		Line:                 line,
		Route:                route,
		Stop:                 from,
		StopName:             name,
		From:                 from,
		To:                   to,
		HoldupStop:           stop,
		HoldupTrajectory:     trajectory,
		TotalHoldup:          stop + trajectory,
		DelayAfterTrajectory: delay,
	}
}

// line 2 runs A - B - C - D and back, line 3 runs X - Y - Z and back
func newAnalyser() *analysis.Analyser {
	observations := []dataset.Observation{
		observation("2", "A - D", "A", "Zürich, Alpha", "B", 1, 1, 0),
		observation("2", "A - D", "B", "Zürich, Bravo", "C", -1, 0, 20),
		observation("2", "A - D", "C", "Zürich, Charlie", "D", 2, 1, 0),
		observation("2", "D - A", "D", "Zürich, Delta", "C", 0, 0, 0),
		observation("2", "D - A", "C", "Zürich, Charlie", "B", 0, 0, -10),
		observation("2", "D - A", "B", "Zürich, Bravo", "A", 1, 0, 0),
		observation("2", "A - D", "A", "Zürich, Alpha", "B", 1, 1, 0),
		observation("2", "A - D", "B", "Zürich, Bravo", "C", -1, 0, 60),
		observation("2", "A - D", "C", "Zürich, Charlie", "D", 2, 1, 0),

		observation("3", "X - Z", "X", "Xray", "Y", 3, 1, 40),
		observation("3", "X - Z", "Y", "Yankee", "Z", 2, 0, 0),
		observation("3", "Z - X", "Z", "Zulu", "Y", 0, 0, 5),
		observation("3", "Z - X", "Y", "Yankee", "X", 0, 0, 0),
	}

	return analysis.New(dataset.New(observations, nil), analysis.Options{})
}

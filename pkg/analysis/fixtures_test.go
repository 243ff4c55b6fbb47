package analysis_test

import (
	"github.com/travigo/punctuality/pkg/analysis"
	"github.com/travigo/punctuality/pkg/dataset"
)

type row struct {
	line, route, from, to string
	stop, trajectory      float64
	delay                 float64
}

var stopNames = map[string]string{
	"A": "Zürich, Alpha",
	"B": "Zürich,Bravo",
	"C": "Charlie",
	"D": "Zürich, Delta",
}

func rows(rs ...row) []dataset.Observation {
	observations := []dataset.Observation{}
	for _, r := range rs {
		name, exists := stopNames[r.from]
		if !exists {
			name = r.from
		}

		observations = append(observations, dataset.Observation{
			Line:                 r.line,
			Route:                r.route,
			Stop:                 r.from,
			StopName:             name,
			From:                 r.from,
			To:                   r.to,
			HoldupStop:           r.stop,
			HoldupTrajectory:     r.trajectory,
			TotalHoldup:          r.stop + r.trajectory,
			DelayAfterTrajectory: r.delay,
		})
	}
	return observations
}

// tramNetwork builds a small network:
//
//	line 2: "A - D" (A, B, C), "D - A" (D, C) and a depot run "A - DEPO"
//	line 3: "X - Z" with a noisy successor for X
//	line 4: "S - U" where the last observation of S skips T
//	line 5: "L - K" and "K - L" observed equally often
//	line 7: "M - O" where N has no successor
//	line 9: "P - R" looping between P and Q
func tramNetwork() *dataset.Dataset {
	observations := rows(
		row{"2", "A - D", "A", "B", 2, 1, 0},
		row{"2", "A - D", "B", "C", -3, 1, 10},
		row{"2", "D - A", "D", "C", 1, 0, 5},
		row{"2", "A - D", "C", "D", 0, -5, 0},
		row{"2", "A - D", "A", "B", 4, -1, 0},
		row{"2", "A - D", "B", "C", -3, 1, 40},
		row{"2", "D - A", "C", "A", 4, 2, 0},
		row{"2", "A - D", "C", "D", 2, -5, 0},
		row{"2", "A - D", "A", "B", 6, 3, 0},
		row{"2", "A - D", "B", "C", -3, 1, -70},
		row{"2", "A - D", "C", "D", 4, -5, 0},
		row{"2", "D - A", "D", "C", 3, 0, 50},
		row{"2", "D - A", "C", "A", 4, 2, 0},
		row{"2", "A - DEPO", "A", "DEPO", 9, 9, 0},

		row{"3", "X - Z", "X", "Y", 1, 1, 0},
		row{"3", "X - Z", "X", "Q", 1, 1, 0},
		row{"3", "X - Z", "Y", "Z", 1, 1, 0},
		row{"3", "X - Z", "X", "Y", 1, 1, 0},

		row{"4", "S - U", "S", "T", 0, 0, 0},
		row{"4", "S - U", "T", "U", 0, 0, 0},
		row{"4", "S - U", "S", "U", 0, 0, 0},

		row{"5", "L - K", "L", "K", 0, 0, 0},
		row{"5", "K - L", "K", "L", 0, 0, 0},

		row{"7", "M - O", "M", "N", 0, 0, 0},

		row{"9", "P - R", "P", "Q", 0, 0, 0},
		row{"9", "P - R", "Q", "P", 0, 0, 0},
	)

	stops := []dataset.StopRecord{
		{Code: "A", Name: "Zürich, Alpha"},
		{Code: "B", Name: "Zürich,Bravo"},
		{Code: "C", Name: "Charlie"},
		{Code: "C", Name: "Zürich, Charlie (duplicate)"},
		{Code: "D", Name: "Zürich, Delta"},
	}

	return dataset.New(observations, stops)
}

func newAnalyser(options analysis.Options) *analysis.Analyser {
	return analysis.New(tramNetwork(), options)
}

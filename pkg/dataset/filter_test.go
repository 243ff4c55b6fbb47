package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/punctuality/pkg/dataset"
)

func filterDataset() *dataset.Dataset {
	return dataset.New([]dataset.Observation{
		{Line: "2", Route: "A - C", Stop: "A", From: "A", To: "B", TotalHoldup: 3},
		{Line: "3", Route: "X - Z", Stop: "X", From: "X", To: "Y", TotalHoldup: -1},
		{Line: "2", Route: "A - C", Stop: "B", From: "B", To: "C", TotalHoldup: 0},
		{Line: "4", Route: "", Stop: "S", From: "S", To: "T", TotalHoldup: 9},
	}, nil)
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		Expression string
		Expected   []string
	}{
		{`Line == "2"`, []string{"A", "B"}},
		{`Line in ["2", "3"] && TotalHoldup >= 0`, []string{"A", "B"}},
		{`Route != ""`, []string{"A", "X", "B"}},
		{`TotalHoldup > 100`, []string{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Expression, func(t *testing.T) {
			ds := filterDataset()
			require.NoError(t, ds.Filter(testCase.Expression))

			stops := []string{}
			for _, observation := range ds.Observations {
				stops = append(stops, observation.Stop)
			}
			assert.Equal(t, testCase.Expected, stops)
		})
	}
}

func TestFilterKeepsStops(t *testing.T) {
	ds := filterDataset()
	require.NoError(t, ds.Filter(`Line == "3"`))

	assert.Len(t, ds.Observations, 1)
	assert.Len(t, ds.Stops, 4)
}

func TestFilterInvalidExpression(t *testing.T) {
	for _, expression := range []string{`Line ==`, `Line`, `Unknown > 3`} {
		t.Run(expression, func(t *testing.T) {
			ds := filterDataset()
			assert.Error(t, ds.Filter(expression))
			assert.Len(t, ds.Observations, 4)
		})
	}
}

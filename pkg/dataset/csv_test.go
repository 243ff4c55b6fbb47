package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/punctuality/pkg/dataset"
)

const observationsCSV = `linie,fw_lang,halt_kurz,halt_lang,halt_kurz_von1,halt_kurz_nach1,holdup_stop,holdup_trajectory,total_holdup,delay_after_trajectory,betriebsdatum
2,REHA - ZAUZ,REHA,"Zürich, Rehalp",REHA,BALG,1.5,-0.5,1,12,2017-01-01
2,REHA - ZAUZ,BALG,"Zürich, Balgrist",BALG,ZAUZ,2,3,5,30,2017-01-01
2,ZAUZ - REHA,ZAUZ,"Zürich, Zürich Auzelg",ZAUZ,,0,0,0,0,2017-01-01
`

func TestParseObservations(t *testing.T) {
	observations, err := dataset.ParseObservations(strings.NewReader(observationsCSV))
	require.NoError(t, err)
	require.Len(t, observations, 3)

	assert.Equal(t, dataset.Observation{
		Line:                 "2",
		Route:                "REHA - ZAUZ",
		Stop:                 "REHA",
		StopName:             "Zürich, Rehalp",
		From:                 "REHA",
		To:                   "BALG",
		HoldupStop:           1.5,
		HoldupTrajectory:     -0.5,
		TotalHoldup:          1,
		DelayAfterTrajectory: 12,
	}, observations[0])

	assert.Equal(t, "", observations[2].To)
	assert.Equal(t, "BALG", observations[1].Stop)
}

func TestParseStops(t *testing.T) {
	stops, err := dataset.ParseStops(strings.NewReader("halt_id,halt_kurz,halt_lang\n1,REHA,\"Zürich, Rehalp\"\n2,BALG,\"Zürich, Balgrist\"\n"))
	require.NoError(t, err)

	assert.Equal(t, []dataset.StopRecord{
		{Code: "REHA", Name: "Zürich, Rehalp"},
		{Code: "BALG", Name: "Zürich, Balgrist"},
	}, stops)
}

func TestLoadCSV(t *testing.T) {
	directory := t.TempDir()

	observationsPath := filepath.Join(directory, "fahrzeitensollist.csv")
	require.NoError(t, os.WriteFile(observationsPath, []byte(observationsCSV), 0o644))

	stopsPath := filepath.Join(directory, "haltestelle.csv")
	require.NoError(t, os.WriteFile(stopsPath, []byte("halt_kurz,halt_lang\nREHA,\"Zürich, Rehalp\"\n"), 0o644))

	ds, err := dataset.LoadCSV(observationsPath, stopsPath)
	require.NoError(t, err)
	assert.Len(t, ds.Observations, 3)
	assert.Equal(t, []dataset.StopRecord{{Code: "REHA", Name: "Zürich, Rehalp"}}, ds.Stops)

	ds, err = dataset.LoadCSV(observationsPath, "")
	require.NoError(t, err)
	assert.Len(t, ds.Stops, 3)
	assert.Equal(t, dataset.StopRecord{Code: "BALG", Name: "Zürich, Balgrist"}, ds.Stops[1])

	_, err = dataset.LoadCSV(filepath.Join(directory, "missing.csv"), "")
	assert.Error(t, err)
}

func TestProjectStopsSkipsBlankCodes(t *testing.T) {
	stops := dataset.ProjectStops([]dataset.Observation{
		{Stop: "REHA", StopName: "Rehalp"},
		{Stop: "", StopName: "Nowhere"},
	})

	assert.Equal(t, []dataset.StopRecord{{Code: "REHA", Name: "Rehalp"}}, stops)
}

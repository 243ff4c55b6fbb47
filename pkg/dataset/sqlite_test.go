package dataset_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/punctuality/pkg/config"
	"github.com/travigo/punctuality/pkg/dataset"
)

func createDatabase(t *testing.T, withStops bool) string {
	path := filepath.Join(t.TempDir(), "punctuality.db")

	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	statements := []string{
		`CREATE TABLE observations (
			linie TEXT, fw_lang TEXT, halt_kurz TEXT, halt_lang TEXT,
			halt_kurz_von1 TEXT, halt_kurz_nach1 TEXT,
			holdup_stop REAL, holdup_trajectory REAL, total_holdup REAL, delay_after_trajectory REAL
		)`,
		`INSERT INTO observations VALUES ('2', 'A - C', 'A', 'Zürich, Alpha', 'A', 'B', 1, 2, 3, 10)`,
		`INSERT INTO observations VALUES ('2', 'A - C', 'B', 'Zürich, Bravo', 'B', 'C', 0, 1, 1, 20)`,
		`INSERT INTO observations VALUES ('2', 'C - A', 'C', 'Zürich, Charlie', 'C', NULL, 0, 0, 0, 0)`,
	}
	if withStops {
		statements = append(statements,
			`CREATE TABLE stops (halt_kurz TEXT, halt_lang TEXT)`,
			`INSERT INTO stops VALUES ('A', 'Zürich, Alpha')`,
		)
	}

	for _, statement := range statements {
		_, err := conn.Exec(statement)
		require.NoError(t, err)
	}

	return path
}

func TestLoadSQLite(t *testing.T) {
	ds, err := dataset.LoadSQLite(context.Background(), createDatabase(t, true))
	require.NoError(t, err)

	require.Len(t, ds.Observations, 3)
	assert.Equal(t, "A", ds.Observations[0].From)
	assert.Equal(t, "B", ds.Observations[1].From)
	assert.Equal(t, 20.0, ds.Observations[1].DelayAfterTrajectory)
	assert.Equal(t, "", ds.Observations[2].To)

	assert.Equal(t, []dataset.StopRecord{{Code: "A", Name: "Zürich, Alpha"}}, ds.Stops)
}

func TestLoadSQLiteWithoutStopsTable(t *testing.T) {
	ds, err := dataset.LoadSQLite(context.Background(), createDatabase(t, false))
	require.NoError(t, err)

	assert.Len(t, ds.Stops, 3)
	assert.Equal(t, "C", ds.Stops[2].Code)
}

func TestOpenSQLiteWithFilter(t *testing.T) {
	ds, err := dataset.Open(context.Background(), config.DatasetConfig{
		Format: config.DatasetFormatSQLite,
		SQLite: createDatabase(t, true),
		Filter: `Route == "A - C"`,
	})
	require.NoError(t, err)

	assert.Len(t, ds.Observations, 2)
}

func TestOpenUnknownFormat(t *testing.T) {
	_, err := dataset.Open(context.Background(), config.DatasetConfig{Format: "parquet"})
	assert.Error(t, err)
}

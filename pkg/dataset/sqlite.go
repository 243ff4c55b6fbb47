package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

const observationsQuery = `
	SELECT linie, fw_lang, halt_kurz, halt_lang, halt_kurz_von1, halt_kurz_nach1,
		holdup_stop, holdup_trajectory, total_holdup, delay_after_trajectory
	FROM observations
	ORDER BY rowid
`

const stopsQuery = `SELECT halt_kurz, halt_lang FROM stops ORDER BY rowid`

// LoadSQLite reads the observations and stops tables of a SQLite database.
// The stops table is optional.
func LoadSQLite(ctx context.Context, path string) (*Dataset, error) {
	log.Info().Str("file", path).Msg("Opening SQLite database")

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	observations, err := queryObservations(ctx, conn)
	if err != nil {
		return nil, err
	}

	stops, err := queryStops(ctx, conn)
	if err != nil {
		log.Debug().Err(err).Msg("No stops table, projecting stops from observations")
		stops = nil
	}

	return New(observations, stops), nil
}

func queryObservations(ctx context.Context, conn *sql.DB) ([]Observation, error) {
	rows, err := conn.QueryContext(ctx, observationsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	observations := []Observation{}
	for rows.Next() {
		var observation Observation
		var to sql.NullString

		err := rows.Scan(
			&observation.Line,
			&observation.Route,
			&observation.Stop,
			&observation.StopName,
			&observation.From,
			&to,
			&observation.HoldupStop,
			&observation.HoldupTrajectory,
			&observation.TotalHoldup,
			&observation.DelayAfterTrajectory,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observation.To = to.String

		observations = append(observations, observation)
	}

	return observations, rows.Err()
}

func queryStops(ctx context.Context, conn *sql.DB) ([]StopRecord, error) {
	rows, err := conn.QueryContext(ctx, stopsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query stops: %w", err)
	}
	defer rows.Close()

	stops := []StopRecord{}
	for rows.Next() {
		var stop StopRecord
		if err := rows.Scan(&stop.Code, &stop.Name); err != nil {
			return nil, fmt.Errorf("failed to scan stop: %w", err)
		}

		stops = append(stops, stop)
	}

	return stops, rows.Err()
}

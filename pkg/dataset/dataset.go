package dataset

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/punctuality/pkg/config"
)

// Dataset holds the observation table and the stop metadata it is analysed against.
// The order of Observations is the table order and is significant for route linearisation.
type Dataset struct {
	Observations []Observation
	Stops        []StopRecord
}

func New(observations []Observation, stops []StopRecord) *Dataset {
	if len(stops) == 0 {
		stops = ProjectStops(observations)
	}

	return &Dataset{
		Observations: observations,
		Stops:        stops,
	}
}

// ProjectStops derives the stop metadata relation from the observations themselves
func ProjectStops(observations []Observation) []StopRecord {
	stops := []StopRecord{}
	for _, observation := range observations {
		if observation.Stop == "" {
			continue
		}

		stops = append(stops, StopRecord{
			Code: observation.Stop,
			Name: observation.StopName,
		})
	}

	return stops
}

func Open(ctx context.Context, datasetConfig config.DatasetConfig) (*Dataset, error) {
	var dataset *Dataset
	var err error

	switch datasetConfig.Format {
	case config.DatasetFormatCSV:
		dataset, err = LoadCSV(datasetConfig.Observations, datasetConfig.Stops)
	case config.DatasetFormatSQLite:
		dataset, err = LoadSQLite(ctx, datasetConfig.SQLite)
	case config.DatasetFormatMongoDB:
		dataset, err = LoadMongo(ctx)
	default:
		return nil, fmt.Errorf("unknown dataset format %q", datasetConfig.Format)
	}

	if err != nil {
		return nil, err
	}

	if datasetConfig.Filter != "" {
		if err := dataset.Filter(datasetConfig.Filter); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("format", string(datasetConfig.Format)).
		Int("observations", len(dataset.Observations)).
		Int("stops", len(dataset.Stops)).
		Msg("Loaded dataset")

	return dataset, nil
}

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

func init() {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})
}

func ParseObservations(reader io.Reader) ([]Observation, error) {
	observations := []Observation{}
	if err := gocsv.Unmarshal(reader, &observations); err != nil {
		return nil, fmt.Errorf("failed to parse observations csv: %w", err)
	}

	return observations, nil
}

func ParseStops(reader io.Reader) ([]StopRecord, error) {
	stops := []StopRecord{}
	if err := gocsv.Unmarshal(reader, &stops); err != nil {
		return nil, fmt.Errorf("failed to parse stops csv: %w", err)
	}

	return stops, nil
}

// LoadCSV reads the observation table and, if stopsPath is set, the stop metadata file
func LoadCSV(observationsPath string, stopsPath string) (*Dataset, error) {
	log.Info().Str("file", observationsPath).Msg("Loading file")

	observationsFile, err := os.Open(observationsPath)
	if err != nil {
		return nil, err
	}
	defer observationsFile.Close()

	observations, err := ParseObservations(observationsFile)
	if err != nil {
		return nil, err
	}

	var stops []StopRecord
	if stopsPath != "" {
		log.Info().Str("file", stopsPath).Msg("Loading file")

		stopsFile, err := os.Open(stopsPath)
		if err != nil {
			return nil, err
		}
		defer stopsFile.Close()

		stops, err = ParseStops(stopsFile)
		if err != nil {
			return nil, err
		}
	}

	return New(observations, stops), nil
}

package presentation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/travigo/punctuality/pkg/analysis"
)

// KernelDensity estimates the density of values with a gaussian kernel and Scott's bandwidth,
// evaluated at points evenly spaced x values reaching three bandwidths past the data
func KernelDensity(values []float64, points int) ([]float64, []float64, error) {
	if points < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 evaluation points", analysis.ErrInsufficientData)
	}
	if len(values) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 values for a density, got %d", analysis.ErrInsufficientData, len(values))
	}

	deviation, err := stats.StandardDeviationSample(values)
	if err != nil {
		return nil, nil, err
	}
	if deviation == 0 {
		return nil, nil, fmt.Errorf("%w: values have no spread", analysis.ErrInsufficientData)
	}

	n := float64(len(values))
	bandwidth := deviation * math.Pow(n, -1.0/5.0)

	minimum, _ := stats.Min(values)
	maximum, _ := stats.Max(values)
	lower := minimum - 3*bandwidth
	upper := maximum + 3*bandwidth
	step := (upper - lower) / float64(points-1)

	xs := make([]float64, points)
	densities := make([]float64, points)
	for i := range xs {
		x := lower + float64(i)*step

		density := 0.0
		for _, value := range values {
			u := (x - value) / bandwidth
			density += math.Exp(-0.5*u*u) / math.Sqrt(2*math.Pi)
		}

		xs[i] = x
		densities[i] = density / (n * bandwidth)
	}

	return xs, densities, nil
}

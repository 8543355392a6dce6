package ga

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FitnessStats summarises the fitness of one generation.
type FitnessStats struct {
	Best  int
	Worst int
	Mean  float64
	Stdev float64 // sample standard deviation, 0 for fewer than 2 members
}

// ComputeFitnessStats calculates best, worst, mean and standard deviation of scored.
// An empty slice yields the zero value.
func ComputeFitnessStats(scored []Scored) FitnessStats {
	if len(scored) == 0 {
		return FitnessStats{}
	}
	values := make([]float64, len(scored))
	for i, s := range scored {
		values[i] = float64(s.Fitness)
	}
	fs := FitnessStats{
		Best:  int(floats.Max(values)),
		Worst: int(floats.Min(values)),
		Mean:  stat.Mean(values, nil),
	}
	if len(values) > 1 {
		fs.Stdev = stat.StdDev(values, nil)
	}
	return fs
}

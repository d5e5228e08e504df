package utils

import "time"

// Stats tracks the progress of a single run
type Stats struct {
	Generation        int
	Population        int
	PeakPopulation    int
	AveragePopulation float64
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the grid shown for a generation
func (s *Stats) Update(generation int, population int) {
	s.Generation = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Running mean over every generation displayed so far
	if generation <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(generation)
	}
}

// Runtime returns the wall time since the run started
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

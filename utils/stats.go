package utils

import "time"

// Stats tracks the population and the running totals of a simulation
type Stats struct {
	Population  int
	TotalDeaths int
	TotalBirths int

	AveragePopulation float64
	StartTime         time.Time
}

func NewStats(population int) *Stats {
	return &Stats{
		Population:        population,
		AveragePopulation: float64(population),
		StartTime:         time.Now(),
	}
}

// Apply folds one round's births and deaths into the totals
func (s *Stats) Apply(births, deaths int) {
	s.Population += births - deaths
	s.TotalBirths += births
	s.TotalDeaths += deaths

	// Simple moving average for population
	s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(s.Population) * 0.1)
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

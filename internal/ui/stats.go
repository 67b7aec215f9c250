package ui

import (
	"fmt"
	"time"
)

// Stats tracks simulation throughput for display.
type Stats struct {
	Generation        uint64
	Population        int
	AveragePopulation float64
	GenerationsPerSec float64

	lastGen  uint64
	lastTime time.Duration
	started  bool
}

// NewStats returns an empty Stats.
func NewStats() *Stats { return &Stats{} }

// Update records the state observed at host timestamp now.
func (s *Stats) Update(generation uint64, population int, now time.Duration) {
	if s.started && now > s.lastTime && generation >= s.lastGen {
		rate := float64(generation-s.lastGen) / (now - s.lastTime).Seconds()
		if s.GenerationsPerSec == 0 {
			s.GenerationsPerSec = rate
		} else {
			s.GenerationsPerSec = s.GenerationsPerSec*0.9 + rate*0.1
		}
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}

	s.Generation = generation
	s.Population = population
	s.lastGen = generation
	s.lastTime = now
	s.started = true
}

// Lines formats the stats for the HUD.
func (s *Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Generation  %d", s.Generation),
		fmt.Sprintf("Population  %d", s.Population),
		fmt.Sprintf("Avg pop     %.0f", s.AveragePopulation),
		fmt.Sprintf("Gen/s       %.1f", s.GenerationsPerSec),
	}
}

package ui

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestStatsRate(t *testing.T) {
	s := NewStats()
	s.Update(0, 100, 0)
	if s.GenerationsPerSec != 0 {
		t.Fatalf("rate after first sample = %v, want 0", s.GenerationsPerSec)
	}
	s.Update(10, 100, time.Second)
	if math.Abs(s.GenerationsPerSec-10) > 1e-9 {
		t.Fatalf("rate = %v, want 10", s.GenerationsPerSec)
	}
	s.Update(30, 100, 2*time.Second)
	if math.Abs(s.GenerationsPerSec-11) > 1e-9 {
		t.Fatalf("smoothed rate = %v, want 11", s.GenerationsPerSec)
	}
}

func TestStatsPopulationAverage(t *testing.T) {
	s := NewStats()
	s.Update(1, 200, time.Millisecond)
	s.Update(2, 100, 2*time.Millisecond)
	if math.Abs(s.AveragePopulation-190) > 1e-9 {
		t.Fatalf("average = %v, want 190", s.AveragePopulation)
	}
	if s.Population != 100 || s.Generation != 2 {
		t.Fatalf("latest sample not kept: %+v", s)
	}
}

func TestStatsLines(t *testing.T) {
	s := NewStats()
	s.Update(7, 3, 0)
	lines := s.Lines()
	if len(lines) != 4 || !strings.HasSuffix(lines[0], " 7") || !strings.HasSuffix(lines[1], " 3") {
		t.Fatalf("unexpected lines %q", lines)
	}
}

// Package statistics aggregates per-seat results over a batch of games.
package statistics

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/nothanks/internal/game"
)

// Sample accumulates observations of one quantity.
type Sample struct {
	N      int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Kept for median/percentile calculation
}

// Add records one observation.
func (s *Sample) Add(v float64) {
	s.N++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean, or 0 for an empty sample.
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value
func (s *Sample) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(s.Values))

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// interpolating between neighbours.
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(s.Values))

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatStats tracks one seat across every game in a batch.
type SeatStats struct {
	Seat  int
	Games int
	Wins  int // outright wins
	Ties  int // shared lowest score

	Score    Sample
	Tokens   Sample
	HandSize Sample
	Runs     Sample
}

// WinRate is the fraction of games won outright.
func (s *SeatStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// TieRate is the fraction of games in which the seat shared the win.
func (s *SeatStats) TieRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Ties) / float64(s.Games)
}

// Statistics tracks a whole simulation run.
type Statistics struct {
	Games     int
	TiedGames int
	Steps     Sample
	Seats     []SeatStats
}

// Add incorporates one finished game.
func (s *Statistics) Add(res *game.Result) {
	s.Games++
	if res.Tied() {
		s.TiedGames++
	}
	s.Steps.Add(float64(res.Steps))

	for len(s.Seats) < len(res.Players) {
		s.Seats = append(s.Seats, SeatStats{Seat: len(s.Seats)})
	}
	for i, p := range res.Players {
		seat := &s.Seats[i]
		f := p.Features
		seat.Games++
		switch f.Win {
		case game.Win:
			seat.Wins++
		case game.Tie:
			seat.Ties++
		}
		seat.Score.Add(float64(f.Score))
		seat.Tokens.Add(float64(p.Tokens))
		seat.HandSize.Add(float64(f.HandSize))
		seat.Runs.Add(float64(f.Runs))
	}
}

// Validate checks the bookkeeping: every seat played every game and every
// game produced exactly one winner or a shared win.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if s.Steps.N != s.Games {
		return fmt.Errorf("steps sample size (%d) does not match games count (%d)", s.Steps.N, s.Games)
	}

	wins, ties := 0, 0
	for _, seat := range s.Seats {
		if seat.Games != s.Games {
			return fmt.Errorf("seat %d played %d games, expected %d", seat.Seat, seat.Games, s.Games)
		}
		wins += seat.Wins
		ties += seat.Ties
	}
	if wins != s.Games-s.TiedGames {
		return fmt.Errorf("outright wins (%d) do not match untied games (%d)", wins, s.Games-s.TiedGames)
	}
	if ties < 2*s.TiedGames {
		return fmt.Errorf("tied seats (%d) too few for %d tied games", ties, s.TiedGames)
	}
	return nil
}

package game

import (
	"slices"
	"strconv"
	"strings"
)

// Card is a numbered No Thanks! card.
type Card int

// NoCard is returned once the deck runs dry. Decks never hold values below
// 1, so it cannot collide with a real card.
const NoCard Card = -1

// Valid reports whether c is a real card value.
func (c Card) Valid() bool { return c >= 1 }

func (c Card) String() string {
	if !c.Valid() {
		return "-"
	}
	return strconv.Itoa(int(c))
}

// FormatCards renders cards as "[3 4 9]".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Runs partitions cards into maximal runs of consecutive values. The input
// must be sorted ascending.
func Runs(sorted []Card) [][]Card {
	var runs [][]Card
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || sorted[i] != sorted[i-1]+1 {
			runs = append(runs, slices.Clone(sorted[start:i]))
			start = i
		}
	}
	return runs
}

// RunTotal sums the lowest card of each run in a sorted hand.
func RunTotal(sorted []Card) int {
	total := 0
	for i, c := range sorted {
		if i == 0 || c != sorted[i-1]+1 {
			total += int(c)
		}
	}
	return total
}

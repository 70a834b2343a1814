package game

import (
	"fmt"
	"slices"
)

// StartingTokens is each player's token balance at the start of a game.
const StartingTokens = 11

// MaxTokenThreshold caps Thresholds.Token; a player wanting all 11 tokens
// back would take every card.
const MaxTokenThreshold = 10

// Outcome marks a player's final standing.
type Outcome int

const (
	Lose Outcome = iota
	Win
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "lose"
	}
}

// MarshalText renders the outcome as "win", "lose" or "tie".
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Thresholds are a player's fixed decision parameters.
type Thresholds struct {
	// Init is the highest effective value taken while the hand is empty.
	Init int `json:"init_threshold"`
	// EffVal is the highest effective value taken speculatively once the
	// player holds cards.
	EffVal int `json:"eff_val_threshold"`
	// Token is the balance below which the player starts eyeing the pot.
	Token int `json:"token_threshold"`
	// Pot is the pot size that tempts a token-starved player to take.
	Pot int `json:"pot_threshold"`
}

// Player is one seat at the table.
type Player struct {
	Seat       int
	Name       string
	Tokens     int
	Thresholds Thresholds
	// Generated marks seats filled with randomized AI thresholds.
	Generated bool

	// EffVal is the effective value of the face-up card to this player,
	// pot included. Recomputed every turn.
	EffVal float64

	Win           Outcome
	TokenHistory  []int
	EffValHistory []float64

	cards []Card // sorted ascending
	taken []Card // in the order taken
}

// NewPlayer seats a player with the given thresholds and a fresh hand.
func NewPlayer(seat int, th Thresholds) (*Player, error) {
	if seat < 0 {
		return nil, configErrorf("player seat %d out of range", seat)
	}
	if th.Token < 0 || th.Token > MaxTokenThreshold {
		return nil, configErrorf("token_threshold must be 0-%d, got %d", MaxTokenThreshold, th.Token)
	}
	return &Player{
		Seat:         seat,
		Tokens:       StartingTokens,
		Thresholds:   th,
		TokenHistory: []int{StartingTokens},
	}, nil
}

// DisplayName is the configured name or "Player N" (1-indexed).
func (p *Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Player %d", p.Seat+1)
}

// Cards returns a sorted copy of the hand.
func (p *Player) Cards() []Card { return slices.Clone(p.cards) }

// TakenOrder returns the hand in the order cards were taken.
func (p *Player) TakenOrder() []Card { return slices.Clone(p.taken) }

// HandSize is the number of cards held.
func (p *Player) HandSize() int { return len(p.cards) }

// Has reports whether the player holds card.
func (p *Player) Has(card Card) bool {
	_, found := slices.BinarySearch(p.cards, card)
	return found
}

// Score is the sum of the lowest card of each run minus remaining tokens.
// An empty hand scores 0.
func (p *Player) Score() int {
	if len(p.cards) == 0 {
		return 0
	}
	return RunTotal(p.cards) - p.Tokens
}

// Runs returns the hand split into maximal consecutive runs.
func (p *Player) Runs() [][]Card { return Runs(p.cards) }

// RunCount is the number of runs in the hand.
func (p *Player) RunCount() int { return len(Runs(p.cards)) }

// PlayToken spends one token. Spending a token the player does not have
// means a forced take was missed.
func (p *Player) PlayToken() error {
	if p.Tokens <= 0 {
		return invariantErrorf("%s played a token with none left", p.DisplayName())
	}
	p.Tokens--
	p.TokenHistory = append(p.TokenHistory, p.Tokens)
	return nil
}

// TakeCard adds card to the hand and the pot to the token balance.
func (p *Player) TakeCard(card Card, pot int) {
	i, _ := slices.BinarySearch(p.cards, card)
	p.cards = slices.Insert(p.cards, i, card)
	p.taken = append(p.taken, card)
	p.Tokens += pot
	p.TokenHistory = append(p.TokenHistory, p.Tokens)
	p.EffValHistory = append(p.EffValHistory, p.EffVal)
}

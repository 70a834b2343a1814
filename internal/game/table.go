package game

import (
	rand "math/rand/v2"
	"slices"

	"github.com/lox/nothanks/internal/randutil"
)

// Table holds the state of one game: deck, seats, pot and the face-up card.
// It is not safe for concurrent use; each game owns its own Table.
type Table struct {
	id        string
	seed      int64
	cfg       Config
	rng       *rand.Rand
	deck      *Deck
	players   []*Player
	pot       int
	whoseTurn int
	cardUp    Card
}

// NewTable validates cfg, shuffles and trims the deck, seats the players
// (generating AI seats for any gap) and turns up the first card.
func NewTable(cfg Config, rng *rand.Rand) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, configErrorf("table requires a random source")
	}

	deck, err := NewDeck(cfg.Cards, cfg.Offset, cfg.Discard, rng)
	if err != nil {
		return nil, err
	}
	deck.Shuffle()
	if err := deck.Discard(cfg.Discard); err != nil {
		return nil, err
	}

	t := &Table{
		cfg:  cfg,
		rng:  rng,
		deck: deck,
	}
	if err := t.seatPlayers(); err != nil {
		return nil, err
	}

	card, ok := deck.Draw()
	if !ok {
		return nil, invariantErrorf("deck empty before the first card")
	}
	t.cardUp = card
	return t, nil
}

// seatPlayers builds a fresh player slice for this table; configured seats
// are copied, never shared with the caller.
func (t *Table) seatPlayers() error {
	n := t.cfg.NumPlayers()
	t.players = make([]*Player, n)

	for _, sc := range t.cfg.Seats {
		p, err := NewPlayer(sc.Seat, sc.Thresholds)
		if err != nil {
			return err
		}
		p.Name = sc.Name
		t.players[sc.Seat] = p
	}

	for seat := range t.players {
		if t.players[seat] != nil {
			continue
		}
		p, err := NewPlayer(seat, t.randomThresholds())
		if err != nil {
			return err
		}
		p.Generated = true
		t.players[seat] = p
	}
	return nil
}

func (t *Table) randomThresholds() Thresholds {
	ai := t.cfg.AI
	initRange := ai.Init
	if initRange.IsZero() {
		initRange = Range{Min: int(t.deck.Min()), Max: int(t.deck.Max()) - 1}
	}
	return Thresholds{
		Init:   randutil.Between(t.rng, initRange.Min, initRange.Max),
		EffVal: randutil.Between(t.rng, ai.EffVal.Min, ai.EffVal.Max),
		Token:  randutil.Between(t.rng, ai.Token.Min, ai.Token.Max),
		Pot:    randutil.Between(t.rng, ai.Pot.Min, ai.Pot.Max),
	}
}

// ID is the game identifier, empty unless assigned by NewGame.
func (t *Table) ID() string { return t.id }

// Seed is the seed the table's random source was derived from.
func (t *Table) Seed() int64 { return t.seed }

func (t *Table) Config() Config { return t.cfg }

func (t *Table) Deck() *Deck { return t.deck }

// Players returns the seats in order. Callers must not reorder the slice.
func (t *Table) Players() []*Player { return t.players }

func (t *Table) NumPlayers() int { return len(t.players) }

func (t *Table) Pot() int { return t.pot }

// CardUp is the face-up card, or NoCard once the game is over.
func (t *Table) CardUp() Card { return t.cardUp }

func (t *Table) WhoseTurn() int { return t.whoseTurn }

// Current is the player whose decision is pending.
func (t *Table) Current() *Player { return t.players[t.whoseTurn] }

// IsOver reports whether the last card has been resolved.
func (t *Table) IsOver() bool { return !t.cardUp.Valid() }

// Others returns every player except p, in seat order.
func (t *Table) Others(p *Player) []*Player {
	others := make([]*Player, 0, len(t.players)-1)
	for _, o := range t.players {
		if o != p {
			others = append(others, o)
		}
	}
	return others
}

// HeldByOther reports whether any player other than p holds card.
func (t *Table) HeldByOther(p *Player, card Card) bool {
	for _, o := range t.players {
		if o != p && o.Has(card) {
			return true
		}
	}
	return false
}

// Take gives the face-up card and the pot to the current player and turns
// up the next card. The same player decides again; over is true once the
// deck is exhausted.
func (t *Table) Take() (over bool, err error) {
	if t.IsOver() {
		return true, invariantErrorf("take with no card up")
	}
	p := t.Current()
	p.TakeCard(t.cardUp, t.pot)
	t.pot = 0

	card, ok := t.deck.Draw()
	t.cardUp = card
	return !ok, nil
}

// Pass spends one of the current player's tokens into the pot and moves
// the turn to the next seat.
func (t *Table) Pass() error {
	if t.IsOver() {
		return invariantErrorf("pass with no card up")
	}
	if err := t.Current().PlayToken(); err != nil {
		return err
	}
	t.pot++
	t.whoseTurn = (t.whoseTurn + 1) % len(t.players)
	return nil
}

// TokensInPlay is every player's balance plus the pot.
func (t *Table) TokensInPlay() int {
	total := t.pot
	for _, p := range t.players {
		total += p.Tokens
	}
	return total
}

// ValidateTokens checks that no token has been created or destroyed.
func (t *Table) ValidateTokens() error {
	want := len(t.players) * StartingTokens
	if got := t.TokensInPlay(); got != want {
		return invariantErrorf("token conservation: %d in play, expected %d", got, want)
	}
	return nil
}

// ValidateCards checks that deck, face-up card, hands and discards together
// hold every card of the original range exactly once.
func (t *Table) ValidateCards() error {
	seen := make(map[Card]bool, t.deck.Total())
	add := func(c Card, where string) error {
		if c < t.deck.Min() || c > t.deck.Max() {
			return invariantErrorf("card %d in %s outside [%d,%d]", c, where, t.deck.Min(), t.deck.Max())
		}
		if seen[c] {
			return invariantErrorf("duplicate card %d in %s", c, where)
		}
		seen[c] = true
		return nil
	}

	for _, c := range t.deck.Cards() {
		if err := add(c, "deck"); err != nil {
			return err
		}
	}
	for _, c := range t.deck.DiscardedCards() {
		if err := add(c, "discards"); err != nil {
			return err
		}
	}
	if t.cardUp.Valid() {
		if err := add(t.cardUp, "face-up card"); err != nil {
			return err
		}
	}
	for _, p := range t.players {
		for _, c := range p.cards {
			if err := add(c, p.DisplayName()+"'s hand"); err != nil {
				return err
			}
		}
	}
	if len(seen) != t.deck.Total() {
		return invariantErrorf("%d cards accounted for, expected %d", len(seen), t.deck.Total())
	}
	return nil
}

// Finish scores every player and marks the winners. The lowest score
// wins; several players sharing it are all marked Tie.
func (t *Table) Finish() *Result {
	low := 0
	for i, p := range t.players {
		if s := p.Score(); i == 0 || s < low {
			low = s
		}
	}

	winners := make([]int, 0, 1)
	for _, p := range t.players {
		p.Win = Lose
		if p.Score() == low {
			winners = append(winners, p.Seat)
		}
	}
	outcome := Win
	if len(winners) > 1 {
		outcome = Tie
	}
	for _, seat := range winners {
		t.players[seat].Win = outcome
	}

	res := &Result{
		GameID:    t.id,
		Seed:      t.seed,
		Winners:   winners,
		Discarded: t.deck.DiscardedCards(),
		Players:   make([]PlayerResult, len(t.players)),
	}
	slices.Sort(res.Discarded)
	for i, p := range t.players {
		res.Players[i] = PlayerResult{
			Name:     p.DisplayName(),
			Tokens:   p.Tokens,
			Cards:    p.Cards(),
			Features: FeaturesOf(p),
		}
	}
	return res
}

package game

// Official setup: cards 3..35, nine removed face down.
const (
	DefaultCards      = 33
	DefaultOffset     = 3
	DefaultDiscard    = 9
	DefaultAIPlayers  = 3
	DefaultMilkMargin = 4

	MinPlayers = 3
	MaxPlayers = 5
)

// Range is a closed integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsZero reports whether r was left unset.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// Contains reports whether v lies in r.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// SeatConfig describes a user-supplied player.
type SeatConfig struct {
	Seat       int
	Name       string
	Thresholds Thresholds
}

// AIRanges bound the randomized thresholds of generated players. A zero
// Init range means "any card but the highest", derived from the deck.
type AIRanges struct {
	Init   Range
	EffVal Range
	Token  Range
	Pot    Range
}

// PolicyConfig tunes the take/pass heuristics.
type PolicyConfig struct {
	// MilkMargin is added to the player count to get the effective value
	// every opponent must exceed before a player risks milking.
	MilkMargin int
	// VindictiveMargin bounds the randomized score gap a player must trail
	// by before taking a card out of spite.
	VindictiveMargin Range
}

// Config describes one game.
type Config struct {
	Cards     int
	Offset    int
	Discard   int
	AIPlayers int
	Seats     []SeatConfig
	AI        AIRanges
	Policy    PolicyConfig
}

// DefaultConfig returns the official game with three generated players.
func DefaultConfig() Config {
	return Config{
		Cards:     DefaultCards,
		Offset:    DefaultOffset,
		Discard:   DefaultDiscard,
		AIPlayers: DefaultAIPlayers,
		AI:        DefaultAIRanges(),
		Policy:    DefaultPolicyConfig(),
	}
}

func DefaultAIRanges() AIRanges {
	return AIRanges{
		EffVal: Range{Min: 0, Max: 6},
		Token:  Range{Min: 0, Max: MaxTokenThreshold},
		Pot:    Range{Min: 6, Max: 20},
	}
}

func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		MilkMargin:       DefaultMilkMargin,
		VindictiveMargin: Range{Min: 20, Max: 40},
	}
}

// NumPlayers is the total of user-supplied and generated seats.
func (c Config) NumPlayers() int { return len(c.Seats) + c.AIPlayers }

// Validate checks every construction parameter up front.
func (c Config) Validate() error {
	if c.Cards < 1 {
		return configErrorf("deck needs at least 1 card, got %d", c.Cards)
	}
	if c.Offset < 1 {
		return configErrorf("lowest card must be positive, got %d", c.Offset)
	}
	if c.Discard < 0 || c.Discard >= c.Cards {
		return configErrorf("cannot discard %d of %d cards", c.Discard, c.Cards)
	}
	if c.AIPlayers < 0 {
		return configErrorf("negative AI player count %d", c.AIPlayers)
	}

	n := c.NumPlayers()
	if n > MaxPlayers {
		return configErrorf("too many players: %d (max %d)", n, MaxPlayers)
	}
	if n < MinPlayers {
		return configErrorf("too few players: %d (min %d)", n, MinPlayers)
	}

	taken := make(map[int]bool, len(c.Seats))
	for _, s := range c.Seats {
		if s.Seat < 0 || s.Seat >= n {
			return configErrorf("player position %d out of bounds for %d players", s.Seat, n)
		}
		if taken[s.Seat] {
			return configErrorf("duplicate player position %d", s.Seat)
		}
		taken[s.Seat] = true
		if s.Thresholds.Token < 0 || s.Thresholds.Token > MaxTokenThreshold {
			return configErrorf("seat %d: token_threshold must be 0-%d, got %d", s.Seat, MaxTokenThreshold, s.Thresholds.Token)
		}
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"init_threshold", c.AI.Init},
		{"eff_val_threshold", c.AI.EffVal},
		{"token_threshold", c.AI.Token},
		{"pot_threshold", c.AI.Pot},
		{"vindictive_margin", c.Policy.VindictiveMargin},
	}
	for _, rc := range ranges {
		if rc.r.Min > rc.r.Max {
			return configErrorf("%s range [%d,%d] is inverted", rc.name, rc.r.Min, rc.r.Max)
		}
	}
	if c.AI.Token.Min < 0 || c.AI.Token.Max > MaxTokenThreshold {
		return configErrorf("token_threshold range must lie within [0,%d]", MaxTokenThreshold)
	}
	if c.Policy.MilkMargin < 0 {
		return configErrorf("milk_margin cannot be negative, got %d", c.Policy.MilkMargin)
	}
	if c.Policy.VindictiveMargin.Min < 0 {
		return configErrorf("vindictive_margin range [%d,%d] cannot be negative",
			c.Policy.VindictiveMargin.Min, c.Policy.VindictiveMargin.Max)
	}
	return nil
}

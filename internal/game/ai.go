package game

import (
	"io"
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/nothanks/internal/randutil"
)

// Policy is the heuristic take/pass player shared by every seat. Each seat
// brings its own Thresholds; the policy supplies the rules.
type Policy struct {
	rng    *rand.Rand
	logger *log.Logger
	cfg    PolicyConfig
}

// NewPolicy creates a policy drawing its randomized margins from rng.
func NewPolicy(rng *rand.Rand, logger *log.Logger, cfg PolicyConfig) *Policy {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Policy{
		rng:    rng,
		logger: logger.WithPrefix("policy"),
		cfg:    cfg,
	}
}

// Decide applies the rules in strict order; the first match wins.
func (pol *Policy) Decide(t *Table) Decision {
	p := t.Current()
	th := p.Thresholds
	logger := pol.logger.With("player", p.DisplayName(), "card", t.CardUp(), "eff_val", p.EffVal)

	if p.Tokens == 0 {
		logger.Debug("no tokens left")
		return Decision{Take, ReasonNoTokens}
	}

	if p.Tokens < th.Token && t.Pot() > th.Pot &&
		t.Deck().Remaining() > t.NumPlayers() && t.CardUp() != t.Deck().Max() {
		logger.Debug("take it for the pot", "tokens", p.Tokens, "pot", t.Pot())
		return Decision{Take, ReasonPot}
	}

	if p.HandSize() == 0 {
		if p.EffVal <= float64(th.Init) {
			logger.Debug("no cards in hand, card within threshold")
			return Decision{Take, ReasonFirstCard}
		}
		return Decision{Pass, ReasonAboveInit}
	}

	// < 1 rather than < 0: passing costs a token.
	if p.EffVal < 1 {
		if pol.shouldMilk(t, p) {
			return Decision{Pass, ReasonMilking}
		}
		return Decision{Take, ReasonCheap}
	}

	if !t.Deck().IsEmpty() && p.EffVal <= float64(th.EffVal) && !t.HeldByOther(p, t.CardUp()-1) {
		logger.Debug("eff_val below threshold")
		return Decision{Take, ReasonSpeculative}
	}

	if pol.feelsVindictive(t, p) {
		return Decision{Take, ReasonVindictive}
	}

	return Decision{Pass, ReasonPass}
}

// shouldMilk reports whether p should pass a card that is cheap for them
// but costly for everyone else, collecting a lap of tokens before it comes
// back around.
func (pol *Policy) shouldMilk(t *Table, p *Player) bool {
	others := t.Others(p)
	for _, o := range others {
		// An empty-handed opponent takes cheaply.
		if o.HandSize() == 0 {
			return false
		}
	}
	if t.Pot() > p.Thresholds.Pot {
		return false
	}

	// The top card can only hurt whoever ends up with it.
	if t.CardUp() == t.Deck().Max() {
		if t.Deck().IsEmpty() || t.Pot() < p.Thresholds.Pot {
			pol.logger.Debug("milking the top card", "player", p.DisplayName())
			return true
		}
	}

	floor := float64(t.NumPlayers() + pol.cfg.MilkMargin)
	for _, o := range others {
		if o.Tokens == 0 || o.EffVal < floor {
			pol.logger.Debug("too risky, not milking", "player", p.DisplayName(), "opponent", o.DisplayName())
			return false
		}
	}
	pol.logger.Debug("milking", "player", p.DisplayName())
	return true
}

// feelsVindictive reports whether p, trailing badly late in the game,
// should take a card an opponent would profit from.
func (pol *Policy) feelsVindictive(t *Table, p *Player) bool {
	if t.Deck().Remaining() > t.NumPlayers() {
		return false
	}

	margin := randutil.Between(pol.rng, pol.cfg.VindictiveMargin.Min, pol.cfg.VindictiveMargin.Max)
	score := p.Score()
	lowest := math.Inf(1)
	for _, o := range t.Others(p) {
		if o.Score()+margin > score {
			return false
		}
		lowest = math.Min(lowest, o.EffVal)
	}

	if lowest < 0 {
		pol.logger.Debug("takes card out of spite", "player", p.DisplayName(), "margin", margin)
		return true
	}
	return false
}

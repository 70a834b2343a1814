package game

// Action is the only choice a player ever makes.
type Action int

const (
	Take Action = iota
	Pass
)

func (a Action) String() string {
	if a == Pass {
		return "pass"
	}
	return "take"
}

// Reason names the policy rule behind a decision.
type Reason string

const (
	ReasonNoTokens    Reason = "no tokens left"
	ReasonPot         Reason = "take it for the pot"
	ReasonFirstCard   Reason = "no cards in hand, card within threshold"
	ReasonAboveInit   Reason = "no cards in hand, card above threshold"
	ReasonCheap       Reason = "eff_val < 1"
	ReasonMilking     Reason = "milking"
	ReasonSpeculative Reason = "eff_val below threshold"
	ReasonVindictive  Reason = "takes card out of spite"
	ReasonPass        Reason = "pass"
	ReasonScripted    Reason = "scripted"
	ReasonChosen      Reason = "player's choice"
)

// Decision is a take or pass together with the rule that produced it.
type Decision struct {
	Action Action
	Reason Reason
}

// Decider chooses take or pass for the current player. Implementations may
// read the table but must not mutate it; the engine applies the decision.
type Decider interface {
	Decide(t *Table) Decision
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(t *Table) Decision

func (f DeciderFunc) Decide(t *Table) Decision { return f(t) }

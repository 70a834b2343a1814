package game

import (
	"time"
)

// EventType identifies a game event.
type EventType string

const (
	EventTypeGameStart    EventType = "game_start"
	EventTypeCardUp       EventType = "card_up"
	EventTypePlayerAction EventType = "player_action"
	EventTypeGameEnd      EventType = "game_end"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is anything published on the engine's event bus.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published once, before the first decision.
type GameStartEvent struct {
	GameID    string
	Players   []*Player
	Deck      []Card // remaining deck in draw order, first card already up
	CardUp    Card
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

func NewGameStartEvent(t *Table) GameStartEvent {
	return GameStartEvent{
		GameID:    t.ID(),
		Players:   t.Players(),
		Deck:      t.Deck().Cards(),
		CardUp:    t.CardUp(),
		timestamp: time.Now(),
	}
}

// CardUpEvent is published whenever a new card is turned face up.
type CardUpEvent struct {
	Card      Card
	Remaining int
	timestamp time.Time
}

func (e CardUpEvent) EventType() EventType { return EventTypeCardUp }
func (e CardUpEvent) Timestamp() time.Time { return e.timestamp }

func NewCardUpEvent(card Card, remaining int) CardUpEvent {
	return CardUpEvent{Card: card, Remaining: remaining, timestamp: time.Now()}
}

// PlayerActionEvent is published after a take or pass has been applied.
type PlayerActionEvent struct {
	Player *Player
	Action Action
	Reason Reason
	Card   Card
	EffVal float64
	// Hand is the player's hand before the action.
	Hand []Card
	// Pot is the pot before the action.
	Pot       int
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// GameEndEvent carries the final result.
type GameEndEvent struct {
	Result    *Result
	Players   []*Player
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

func NewGameEndEvent(result *Result, players []*Player) GameEndEvent {
	return GameEndEvent{Result: result, Players: players, timestamp: time.Now()}
}

// EventSubscriber receives published events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber.
type SubscriberFunc func(event GameEvent)

func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus fans events out to subscribers.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers synchronously, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

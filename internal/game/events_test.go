package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()

	var got []string
	bus.Subscribe(SubscriberFunc(func(e GameEvent) { got = append(got, "first:"+string(e.EventType())) }))
	bus.Subscribe(SubscriberFunc(func(e GameEvent) { got = append(got, "second:"+string(e.EventType())) }))

	bus.Publish(NewCardUpEvent(12, 4))

	assert.Equal(t, []string{"first:card_up", "second:card_up"}, got)
}

func TestGameStartEventSnapshotsTable(t *testing.T) {
	table := NewTestTable(t,
		WithDeck(3, 4, 5),
		WithCardUp(9, 0),
	)

	e := NewGameStartEvent(table)
	assert.Equal(t, EventTypeGameStart, e.EventType())
	assert.False(t, e.Timestamp().IsZero())
	assert.Equal(t, Card(9), e.CardUp)
	require.Len(t, e.Players, table.NumPlayers())
	assert.Equal(t, []Card{3, 4, 5}, e.Deck)
}

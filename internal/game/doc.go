// Package game implements a No Thanks! card game played by heuristic AI
// players.
//
// A Table holds one game: a shuffled deck with some cards removed face
// down, three to five players each holding tokens, the pot and the face-up
// card. On their turn the current player either takes the card together
// with the pot, or pays a token into the pot and passes. The game ends when
// the last card is taken; the lowest score wins.
//
// # Basic Usage
//
// Play one seeded game with generated players:
//
//	engine, err := game.NewGame(game.DefaultConfig(), 42, logger)
//	if err != nil {
//	    return err
//	}
//	engine.EventBus().Subscribe(game.NewNarrator(os.Stdout, game.NarratorOptions{Verbosity: 1}))
//	result, err := engine.Play()
//
// # Architecture
//
// The Engine asks a Decider for each decision and applies it to the Table:
//   - Policy: the heuristic rules, including milking and vindictive takes
//   - EffectiveValue: what the face-up card costs a given hand
//   - Deck: shuffle, discard and draw from a seeded source
//   - Narrator: renders published events for humans
//
// Everything random flows from the seed given to NewGame, so the same
// seed and configuration replay the same game.
package game

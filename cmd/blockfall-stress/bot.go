package main

import (
	"iter"
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

var botMoves = []tetris.Event{
	tetris.MoveLeft,
	tetris.MoveRight,
	tetris.SoftDrop,
	tetris.Rotate,
	tetris.HardDrop,
}

// Bot is an InputSource that presses a random key on roughly Rate of the
// frames. It never quits.
type Bot struct {
	Rand *rand.Rand
	Rate float64
}

func (b *Bot) Poll() iter.Seq[tetris.Event] {
	return func(yield func(tetris.Event) bool) {
		if b.Rand.Float64() >= b.Rate {
			return
		}
		yield(botMoves[b.Rand.IntN(len(botMoves))])
	}
}

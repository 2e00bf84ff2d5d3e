package main

import (
	"iter"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
)

var keyEvents = map[ebiten.Key]tetris.Event{
	ebiten.KeyArrowLeft:  tetris.MoveLeft,
	ebiten.KeyArrowRight: tetris.MoveRight,
	ebiten.KeyArrowDown:  tetris.SoftDrop,
	ebiten.KeyArrowUp:    tetris.Rotate,
	ebiten.KeySpace:      tetris.HardDrop,
	ebiten.KeyEscape:     tetris.Quit,
}

// Keyboard is the game's InputSource. It reports keys pressed since the
// previous tick.
type Keyboard struct {
	// Captured reports whether another consumer owns the keyboard this frame.
	Captured func() bool
}

func (k *Keyboard) Poll() iter.Seq[tetris.Event] {
	if k.Captured != nil && k.Captured() {
		return slices.Values([]tetris.Event(nil))
	}
	return slices.Values(eventsFor(inpututil.AppendJustPressedKeys(nil)))
}

// eventsFor maps pressed keys to events in the order the keys are given.
// Unbound keys are ignored.
func eventsFor(keys []ebiten.Key) []tetris.Event {
	var events []tetris.Event
	for _, key := range keys {
		if e, ok := keyEvents[key]; ok {
			events = append(events, e)
		}
	}
	return events
}

func anyKeyPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

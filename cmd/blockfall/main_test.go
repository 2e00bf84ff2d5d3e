package main

import (
	"io"
	"log"
	"slices"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsFor(t *testing.T) {
	events := eventsFor([]ebiten.Key{
		ebiten.KeyArrowUp,
		ebiten.KeyA,
		ebiten.KeyArrowLeft,
		ebiten.KeySpace,
		ebiten.KeyEscape,
	})
	assert.Equal(t, []tetris.Event{tetris.Rotate, tetris.MoveLeft, tetris.HardDrop, tetris.Quit}, events)
	assert.Empty(t, eventsFor(nil))
}

func TestKeyboardCaptured(t *testing.T) {
	k := &Keyboard{Captured: func() bool { return true }}
	assert.Empty(t, slices.Collect(k.Poll()))
}

func TestLayout(t *testing.T) {
	x, y := cellOrigin(0, 0)
	assert.Equal(t, float32(250), x)
	assert.Equal(t, float32(50), y)

	x, y = cellOrigin(tetris.Width-1, tetris.Height-1)
	assert.Equal(t, float32(250+9*BlockSize), x)
	assert.Equal(t, float32(50+19*BlockSize), y)

	px, py := previewOrigin()
	assert.Equal(t, float32(600), px)
	assert.Equal(t, float32(250), py)

	assert.Equal(t, 373, centeredX("GAME OVER", 400))
}

func TestScreenKeepsLatestSnapshot(t *testing.T) {
	s := &Screen{}
	s.Render(tetris.Snapshot{Score: 100})
	assert.Equal(t, 100, s.snapshot.Score)
	assert.Empty(t, s.banner())

	s.GameOver(tetris.Snapshot{Score: 200, Over: true})
	assert.Equal(t, 200, s.snapshot.Score)
	assert.Equal(t, "GAME OVER", s.banner())

	s.Reset(tetris.Snapshot{})
	assert.Empty(t, s.banner())
	assert.Zero(t, s.snapshot.Score)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 3
	return NewApp(cfg, log.New(io.Discard, "", 0))
}

func TestAppStartsGame(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, phaseTitle, app.phase)

	app.start()

	assert.Equal(t, phasePlaying, app.phase)
	require.NotNil(t, app.game)
	assert.Nil(t, app.inspect, "the inspector needs the debug backend")
	assert.Equal(t, app.game.State().Current, app.screen.snapshot.Current)
}

func TestAppGameOverReturnsToTitle(t *testing.T) {
	app := newTestApp(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	app.now = func() time.Time { return now }

	app.start()
	app.keyboard.Captured = func() bool { return true }
	// A locked cell in the top row ends the game on the next frame.
	app.game.State().Locked.Put(tetris.Pos{X: 0, Y: 0}, tetris.Color{})

	require.NoError(t, app.update())
	require.Equal(t, phaseGameOver, app.phase)
	assert.Equal(t, "GAME OVER", app.screen.banner())

	now = now.Add(time.Second)
	require.NoError(t, app.update())
	assert.Equal(t, phaseGameOver, app.phase)

	now = now.Add(gameOverHold)
	require.NoError(t, app.update())
	assert.Equal(t, phaseTitle, app.phase)
}

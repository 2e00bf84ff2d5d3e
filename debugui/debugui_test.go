package debugui

import (
	"io"
	"log"
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImguiSystemDefersRenders(t *testing.T) {
	var calls []string

	storage := loop.NewStorage()
	items := loop.NewSingleton[ImguiItems](storage).Get()
	items.Add(func() { calls = append(calls, "inspector") })
	items.Add(func() { calls = append(calls, "stats") })
	input := loop.NewSingleton[ImguiInputState](storage)

	system := &ImguiSystem{
		capture: func() ImguiInputState {
			return ImguiInputState{WantCaptureKeyboard: true}
		},
	}
	scheduler := loop.NewScheduler(storage)
	scheduler.Register(system)
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		calls = append(calls, "after")
	}))

	scheduler.Once(1.0 / 60.0)

	assert.Equal(t, []string{"after", "inspector", "stats"}, calls)
	assert.True(t, input.Get().WantCaptureKeyboard)
	assert.False(t, input.Get().WantCaptureMouse)
	assert.True(t, system.WantCaptureKeyboard())
}

func TestImguiSystemWithoutSingletons(t *testing.T) {
	system := &ImguiSystem{
		capture: func() ImguiInputState {
			return ImguiInputState{WantCaptureKeyboard: true}
		},
	}
	scheduler := loop.NewScheduler(loop.NewStorage())
	scheduler.Register(system)

	assert.NotPanics(t, func() { scheduler.Once(0) })
	assert.False(t, system.WantCaptureKeyboard())
}

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(3, nil)
	assert.Zero(t, ps.Average())
	assert.Empty(t, ps.History())

	ps.Record(10)
	ps.Record(20)
	assert.InDelta(t, 15.0, ps.Average(), 1e-6)
	assert.Equal(t, []float32{10, 20}, ps.History())

	ps.Record(30)
	ps.Record(40)
	assert.InDelta(t, 30.0, ps.Average(), 1e-6)
	assert.Equal(t, []float32{20, 30, 40}, ps.History())
}

func TestPerformanceStatsMinimumHistory(t *testing.T) {
	ps := NewPerformanceStats(0, nil)
	ps.Record(5)
	ps.Record(7)
	assert.Equal(t, []float32{7}, ps.History())
}

func TestRowFill(t *testing.T) {
	locked := tetris.NewLockedCells()
	for x := range tetris.Width {
		locked.Put(tetris.Pos{X: x, Y: 19}, tetris.Color{})
	}
	locked.Put(tetris.Pos{X: 3, Y: 18}, tetris.Color{})
	locked.Put(tetris.Pos{X: 3, Y: -1}, tetris.Color{})

	grid := tetris.BuildGrid(locked)
	fill := rowFill(&grid)

	assert.Equal(t, tetris.Width, fill[19])
	assert.Equal(t, 1, fill[18])
	assert.Equal(t, 0, fill[0])
}

func TestDescribePiece(t *testing.T) {
	p := tetris.NewPiece(tetris.J).Rotated(1)
	assert.Equal(t, "Current: J at (5, 0) rotation 1/4", describePiece("Current", p))
}

func TestInstallRegistersAfterGameSystems(t *testing.T) {
	game := tetris.NewGame(tetris.Options{Seed: 1, Logger: log.New(io.Discard, "", 0)})

	system := Install(game)
	require.True(t, system.Items.Exists())
	require.Len(t, *system.Items.Get(), 2)
	assert.True(t, system.InputState.Exists())

	systems := game.Stats().Systems
	assert.Equal(t, "ImguiSystem", systems[len(systems)-1].Name)
}

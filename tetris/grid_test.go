package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGrid(t *testing.T) {
	locked := NewLockedCells()
	locked.Put(Pos{X: 0, Y: 19}, S.Color())
	locked.Put(Pos{X: 9, Y: 0}, Z.Color())
	locked.Put(Pos{X: 4, Y: -1}, I.Color())

	g := BuildGrid(locked)

	assert.Equal(t, Cell{Filled: true, Color: S.Color()}, g.At(Pos{X: 0, Y: 19}))
	assert.Equal(t, Cell{Filled: true, Color: Z.Color()}, g.At(Pos{X: 9, Y: 0}))
	assert.False(t, g.Filled(Pos{X: 4, Y: -1}))
	assert.False(t, g.Filled(Pos{X: 4, Y: 0}))

	filled := 0
	for y := range Height {
		for x := range Width {
			if g[y][x].Filled {
				filled++
			}
		}
	}
	assert.Equal(t, 2, filled)
}

func TestGridAtOutOfRange(t *testing.T) {
	var g Grid
	for _, p := range []Pos{{-1, 0}, {10, 0}, {0, 20}, {0, -1}} {
		assert.Equal(t, Cell{}, g.At(p), "pos %v", p)
	}
}

func TestRowComplete(t *testing.T) {
	locked := NewLockedCells()
	fillRow(locked, 19)
	fillRow(locked, 18, 3)
	g := BuildGrid(locked)

	assert.True(t, g.RowComplete(19))
	assert.False(t, g.RowComplete(18))
	assert.False(t, g.RowComplete(0))
	assert.False(t, g.RowComplete(-1))
	assert.False(t, g.RowComplete(20))
	assert.Equal(t, []int{19}, CompleteRows(&g))
}

func TestGridWithPiece(t *testing.T) {
	var g Grid
	p := NewPiece(T)

	overlay := g.WithPiece(p)

	// T rotation 0 at spawn: top nub at row -1 is hidden, the bar sits on row 0.
	assert.True(t, overlay.Filled(Pos{X: 4, Y: 0}))
	assert.True(t, overlay.Filled(Pos{X: 5, Y: 0}))
	assert.True(t, overlay.Filled(Pos{X: 6, Y: 0}))
	assert.Equal(t, T.Color(), overlay.At(Pos{X: 5, Y: 0}).Color)
	assert.False(t, g.Filled(Pos{X: 5, Y: 0}), "overlay must not modify the receiver")
}

func TestGridString(t *testing.T) {
	locked := NewLockedCells()
	locked.Put(Pos{X: 0, Y: 19}, S.Color())
	locked.Put(Pos{X: 9, Y: 19}, S.Color())
	g := BuildGrid(locked)

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	assert.Len(t, lines, Height)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "#........#", lines[19])
}

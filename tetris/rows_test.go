package tetris

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearCompletedRowsNoop(t *testing.T) {
	locked := lockedFrom(
		"#.#.#.#.#.",
		"#########.",
		".#########",
	)
	locked.Put(Pos{X: 2, Y: -1}, I.Color())
	before := locked.Clone()

	g := BuildGrid(locked)
	assert.Equal(t, 0, ClearCompletedRows(&g, locked))
	assert.Equal(t, positions(before), positions(locked))
}

func TestClearCompletedRowsSingle(t *testing.T) {
	locked := lockedFrom(
		"#.........",
		"##########",
		"..#.......",
	)
	g := BuildGrid(locked)

	assert.Equal(t, 1, ClearCompletedRows(&g, locked))
	assert.Equal(t, map[Pos]bool{
		{X: 0, Y: 18}: true, // dropped from row 17
		{X: 2, Y: 19}: true, // below the cleared row, unmoved
	}, positions(locked))
}

func TestClearCompletedRowsKeepsColors(t *testing.T) {
	locked := NewLockedCells()
	fillRow(locked, 19)
	locked.Put(Pos{X: 6, Y: 18}, L.Color())

	g := BuildGrid(locked)
	ClearCompletedRows(&g, locked)

	c, ok := locked.Get(Pos{X: 6, Y: 19})
	assert.True(t, ok)
	assert.Equal(t, L.Color(), c)
	assert.Equal(t, 1, locked.Len())
}

func TestClearCompletedRowsMultiple(t *testing.T) {
	for k := 1; k <= 4; k++ {
		t.Run(fmt.Sprintf("%d contiguous rows", k), func(t *testing.T) {
			locked := NewLockedCells()
			for y := Height - k; y < Height; y++ {
				fillRow(locked, y)
			}
			marker := Pos{X: 3, Y: Height - k - 1}
			locked.Put(marker, T.Color())
			locked.Put(Pos{X: 8, Y: 2}, J.Color())

			g := BuildGrid(locked)
			assert.Equal(t, k, ClearCompletedRows(&g, locked))
			assert.Equal(t, map[Pos]bool{
				{X: 3, Y: Height - 1}: true,
				{X: 8, Y: 2 + k}:      true,
			}, positions(locked))
		})
	}
}

func TestClearCompletedRowsInterleaved(t *testing.T) {
	// Rows 15 and 18 are complete; each cell drops by the number of complete
	// rows beneath it.
	locked := lockedFrom(
		"#.........", // 14: two cleared rows below
		"##########", // 15
		".#........", // 16: one cleared row below
		"..#.......", // 17: one cleared row below
		"##########", // 18
		"...#......", // 19: none below
	)
	locked.Put(Pos{X: 9, Y: -1}, O.Color())

	g := BuildGrid(locked)
	assert.Equal(t, 2, ClearCompletedRows(&g, locked))
	assert.Equal(t, map[Pos]bool{
		{X: 0, Y: 16}: true,
		{X: 1, Y: 17}: true,
		{X: 2, Y: 18}: true,
		{X: 3, Y: 19}: true,
		{X: 9, Y: 1}:  true,
	}, positions(locked))
}

func TestClearedBelow(t *testing.T) {
	complete := []int{15, 18}
	assert.Equal(t, 2, clearedBelow(complete, 14))
	assert.Equal(t, 1, clearedBelow(complete, 15))
	assert.Equal(t, 1, clearedBelow(complete, 16))
	assert.Equal(t, 0, clearedBelow(complete, 18))
	assert.Equal(t, 0, clearedBelow(complete, 19))
	assert.Equal(t, 2, clearedBelow(complete, -3))
}

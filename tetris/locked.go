package tetris

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// cellKey packs a position into 64 bits: column in the upper half, row in
// the lower half, each as a two's-complement int32.
type cellKey uint64

func keyOf(p Pos) cellKey {
	return cellKey(uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y))))
}

func (k cellKey) Pos() Pos {
	return Pos{
		X: int(int32(uint32(k >> 32))),
		Y: int(int32(uint32(k & 0xFFFFFFFF))),
	}
}

// LockedCells maps absolute positions to the color of the piece that locked
// there. Positions above the field (negative rows) are kept.
type LockedCells struct {
	cells *intmap.Map[cellKey, Color]
}

// NewLockedCells returns an empty set.
func NewLockedCells() *LockedCells {
	return &LockedCells{
		cells: intmap.New[cellKey, Color](Width * Height),
	}
}

func (l *LockedCells) Put(p Pos, c Color) {
	l.cells.Put(keyOf(p), c)
}

func (l *LockedCells) Get(p Pos) (Color, bool) {
	return l.cells.Get(keyOf(p))
}

func (l *LockedCells) Has(p Pos) bool {
	return l.cells.Has(keyOf(p))
}

func (l *LockedCells) Del(p Pos) bool {
	return l.cells.Del(keyOf(p))
}

func (l *LockedCells) Len() int {
	return l.cells.Len()
}

func (l *LockedCells) Clear() {
	l.cells.Clear()
}

// All iterates over every locked cell. Iteration order is undefined.
func (l *LockedCells) All() iter.Seq2[Pos, Color] {
	return func(yield func(Pos, Color) bool) {
		l.cells.ForEach(func(k cellKey, c Color) bool {
			return yield(k.Pos(), c)
		})
	}
}

// Clone returns an independent copy.
func (l *LockedCells) Clone() *LockedCells {
	clone := &LockedCells{
		cells: intmap.New[cellKey, Color](l.cells.Len()),
	}
	l.cells.ForEach(func(k cellKey, c Color) bool {
		clone.cells.Put(k, c)
		return true
	})
	return clone
}

// Absorb locks every cell of p with the piece's color, including cells above
// the field.
func (l *LockedCells) Absorb(p Piece) {
	for _, cell := range OccupiedCells(p) {
		l.Put(cell, p.Color)
	}
}

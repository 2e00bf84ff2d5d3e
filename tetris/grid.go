package tetris

import "strings"

const (
	Width  = 10
	Height = 20
)

// Cell is one square of the field: empty, or filled with a color.
type Cell struct {
	Filled bool
	Color  Color
}

// Grid is a row-major view of the visible field.
type Grid [Height][Width]Cell

// BuildGrid derives the visible field from the locked-cell set. Cells above
// the field, and any outside the column range, are not represented.
func BuildGrid(locked *LockedCells) Grid {
	var g Grid
	for pos, color := range locked.All() {
		if !inBounds(pos) {
			continue
		}
		g[pos.Y][pos.X] = Cell{Filled: true, Color: color}
	}
	return g
}

func inBounds(p Pos) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// At returns the cell at p. Positions outside the field read as empty.
func (g *Grid) At(p Pos) Cell {
	if !inBounds(p) {
		return Cell{}
	}
	return g[p.Y][p.X]
}

// Filled reports whether p is inside the field and occupied.
func (g *Grid) Filled(p Pos) bool {
	return g.At(p).Filled
}

// RowComplete reports whether row y has no empty cell.
func (g *Grid) RowComplete(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for x := range Width {
		if !g[y][x].Filled {
			return false
		}
	}
	return true
}

// WithPiece returns a copy of g with p's visible cells painted on top.
func (g Grid) WithPiece(p Piece) Grid {
	for _, cell := range OccupiedCells(p) {
		if inBounds(cell) {
			g[cell.Y][cell.X] = Cell{Filled: true, Color: p.Color}
		}
	}
	return g
}

// String renders the grid with '#' for filled and '.' for empty cells, one
// line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(Height * (Width + 1))
	for y := range Height {
		for x := range Width {
			if g[y][x].Filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

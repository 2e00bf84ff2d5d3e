package tetris

// OccupiedCells expands p's current mask into absolute positions. Each filled
// mask cell (col, row) lands at anchor + (col, row) - (2, 2).
func OccupiedCells(p Piece) []Pos {
	cells := p.Mask().Cells()
	for i, c := range cells {
		cells[i] = Pos{
			X: p.Anchor.X + c.X - pivot.X,
			Y: p.Anchor.Y + c.Y - pivot.Y,
		}
	}
	return cells
}

// IsValidPlacement reports whether p fits on g. Cells above the field are
// always allowed; every other cell must be inside the field and empty.
func IsValidPlacement(p Piece, g *Grid) bool {
	for _, cell := range OccupiedCells(p) {
		if cell.Y < 0 {
			continue
		}
		if cell.X < 0 || cell.X >= Width || cell.Y >= Height {
			return false
		}
		if g[cell.Y][cell.X].Filled {
			return false
		}
	}
	return true
}

// IsGameOver reports whether any locked cell sits above row 1.
func IsGameOver(locked *LockedCells) bool {
	for pos := range locked.All() {
		if pos.Y < 1 {
			return true
		}
	}
	return false
}

package tetris

import "slices"

// CompleteRows returns the indices of full rows in ascending order.
func CompleteRows(g *Grid) []int {
	var rows []int
	for y := range Height {
		if g.RowComplete(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearCompletedRows removes the locked cells of every complete row of g and
// drops each remaining cell by the number of cleared rows beneath it. Cells
// beneath every cleared row stay put. It returns the number of rows cleared;
// with none, locked is not touched.
//
// g must have been built from locked.
func ClearCompletedRows(g *Grid, locked *LockedCells) int {
	complete := CompleteRows(g)
	if len(complete) == 0 {
		return 0
	}

	type entry struct {
		pos   Pos
		color Color
	}
	kept := make([]entry, 0, locked.Len())
	for pos, color := range locked.All() {
		if _, cleared := slices.BinarySearch(complete, pos.Y); cleared {
			continue
		}
		kept = append(kept, entry{pos: pos, color: color})
	}

	locked.Clear()
	for _, e := range kept {
		e.pos.Y += clearedBelow(complete, e.pos.Y)
		locked.Put(e.pos, e.color)
	}

	return len(complete)
}

// clearedBelow counts complete rows with an index greater than y, that is,
// rows nearer the floor.
func clearedBelow(complete []int, y int) int {
	n, found := slices.BinarySearch(complete, y)
	if found {
		n++
	}
	return len(complete) - n
}

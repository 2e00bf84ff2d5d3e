package tetris

import "strings"

// sequence is a Randomizer that replays a fixed list of kinds.
type sequence struct {
	kinds  []Kind
	next   int
	bounds []int
}

func (s *sequence) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return int(k)
}

// lockedFrom parses rows of '#' and '.' into locked cells, with the last
// row placed at the floor.
func lockedFrom(rows ...string) *LockedCells {
	locked := NewLockedCells()
	top := Height - len(rows)
	for i, row := range rows {
		for x, ch := range strings.TrimSpace(row) {
			if ch == '#' {
				locked.Put(Pos{X: x, Y: top + i}, Color{R: 9, G: 9, B: 9})
			}
		}
	}
	return locked
}

// fillRow locks every column of row y except those listed.
func fillRow(locked *LockedCells, y int, except ...int) {
	for x := range Width {
		skip := false
		for _, e := range except {
			if e == x {
				skip = true
			}
		}
		if !skip {
			locked.Put(Pos{X: x, Y: y}, Color{R: 1, G: 2, B: 3})
		}
	}
}

func positions(locked *LockedCells) map[Pos]bool {
	out := make(map[Pos]bool)
	for pos := range locked.All() {
		out[pos] = true
	}
	return out
}

package tetris

import "fmt"

// MaskSize is the width and height of every rotation mask.
const MaskSize = 5

// Mask is a row-major occupancy mask in a piece's local frame.
type Mask [MaskSize][MaskSize]bool

// Cells returns the filled (column, row) offsets of the mask in row-major order.
func (m Mask) Cells() []Pos {
	cells := make([]Pos, 0, 4)
	for row := range MaskSize {
		for col := range MaskSize {
			if m[row][col] {
				cells = append(cells, Pos{X: col, Y: row})
			}
		}
	}
	return cells
}

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	S Kind = iota
	Z
	I
	O
	J
	L
	T
)

// Kinds lists every piece kind in catalog order.
var Kinds = [...]Kind{S, Z, I, O, J, L, T}

var kindNames = [...]string{
	S: "S",
	Z: "Z",
	I: "I",
	O: "O",
	J: "J",
	L: "L",
	T: "T",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the seven catalog kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// Color returns the display color shared by every piece of this kind, or
// the zero Color for an invalid kind.
func (k Kind) Color() Color {
	if !k.Valid() {
		return Color{}
	}
	return kindColors[k]
}

// Rotations returns the number of distinct rotation states. Invalid kinds
// have none.
func (k Kind) Rotations() int {
	if !k.Valid() {
		return 0
	}
	return len(kindMasks[k])
}

// Mask returns the occupancy mask for the given rotation. Any integer is
// accepted; it is reduced modulo Rotations. Invalid kinds yield an empty
// mask.
func (k Kind) Mask(rotation int) Mask {
	if !k.Valid() {
		return Mask{}
	}
	masks := kindMasks[k]
	return masks[normalizeRotation(rotation, len(masks))]
}

func normalizeRotation(rotation, count int) int {
	if count == 0 {
		return 0
	}
	r := rotation % count
	if r < 0 {
		r += count
	}
	return r
}

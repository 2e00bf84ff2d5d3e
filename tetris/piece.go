package tetris

// Pos is an absolute (column, row) position on the field.
type Pos struct {
	X, Y int
}

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// SpawnPos is the anchor of every newly created piece.
var SpawnPos = Pos{X: 5, Y: 0}

// pivot is the mask cell that sits on the anchor.
var pivot = Pos{X: 2, Y: 2}

// Piece is a falling instance of a Kind.
type Piece struct {
	Anchor   Pos
	Kind     Kind
	Rotation int
	Color    Color
}

// NewPiece creates a piece of the given kind at the spawn anchor.
func NewPiece(kind Kind) Piece {
	return Piece{
		Anchor: SpawnPos,
		Kind:   kind,
		Color:  kind.Color(),
	}
}

// Mask returns the mask of the piece's current rotation state.
func (p Piece) Mask() Mask {
	return p.Kind.Mask(p.Rotation)
}

// Moved returns a copy of p translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(Pos{X: dx, Y: dy})
	return p
}

// Rotated returns a copy of p advanced by delta rotation states.
func (p Piece) Rotated(delta int) Piece {
	p.Rotation = normalizeRotation(p.Rotation+delta, p.Kind.Rotations())
	return p
}

// Randomizer picks an integer uniformly from [0, n).
// *math/rand/v2.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// RandomPiece spawns a piece of a uniformly chosen kind.
func RandomPiece(rng Randomizer) Piece {
	return NewPiece(Kinds[rng.IntN(len(Kinds))])
}

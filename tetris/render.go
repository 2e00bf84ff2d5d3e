package tetris

// Snapshot is an immutable copy of everything a renderer may show.
type Snapshot struct {
	// Grid holds the locked cells with the falling piece painted on top.
	Grid    Grid
	Current Piece
	Next    Piece
	Score   int
	Lines   int
	Pieces  int
	// Frame counts the frames completed before this snapshot was taken.
	Frame uint64
	Over  bool
}

// Renderer displays snapshots. GameOver is called exactly once, after the
// last Render, when the game reaches its terminal state.
type Renderer interface {
	Render(s Snapshot)
	GameOver(s Snapshot)
}

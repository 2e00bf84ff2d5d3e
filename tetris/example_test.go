package tetris_test

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// always is a Randomizer that only ever deals one kind.
type always tetris.Kind

func (a always) IntN(int) int { return int(a) }

func bottomRows(g *tetris.Grid, n int) {
	lines := strings.Split(strings.TrimSpace(g.String()), "\n")
	for _, line := range lines[len(lines)-n:] {
		fmt.Println(line)
	}
}

// ExampleClearCompletedRows removes the full row and drops the cell above it
// into the gap.
func ExampleClearCompletedRows() {
	locked := tetris.NewLockedCells()
	gray := tetris.Color{R: 128, G: 128, B: 128}
	locked.Put(tetris.Pos{X: 3, Y: 17}, gray)
	for x := range tetris.Width {
		locked.Put(tetris.Pos{X: x, Y: 18}, gray)
		if x != 4 {
			locked.Put(tetris.Pos{X: x, Y: 19}, gray)
		}
	}

	grid := tetris.BuildGrid(locked)
	cleared := tetris.ClearCompletedRows(&grid, locked)
	grid = tetris.BuildGrid(locked)

	fmt.Println("cleared:", cleared)
	bottomRows(&grid, 3)
	// Output:
	// cleared: 1
	// ..........
	// ...#......
	// ####.#####
}

// ExampleGame drives a headless game one frame at a time.
func ExampleGame() {
	queue := tetris.NewQueue()
	game := tetris.NewGame(tetris.Options{
		Random: always(tetris.O),
		Input:  queue,
		Logger: log.New(io.Discard, "", 0),
	})

	queue.Push(tetris.MoveLeft, tetris.MoveLeft, tetris.HardDrop)
	game.Tick(0)

	snapshot := game.Snapshot()
	fmt.Println("pieces:", snapshot.Pieces)
	bottomRows(&snapshot.Grid, 2)
	// Output:
	// pieces: 1
	// ..##......
	// ..##......
}

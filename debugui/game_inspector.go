package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// GameInspector is a window showing the live controller state.
type GameInspector struct {
	Game *tetris.Game
}

func (gi *GameInspector) Render() {
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := gi.Game.State()
	imgui.Text(fmt.Sprintf("Score: %d", state.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", state.Lines))
	imgui.Text(fmt.Sprintf("Pieces: %d", state.Pieces))
	imgui.Text(fmt.Sprintf("Fall Timer: %s", state.FallTime))
	if state.Over {
		imgui.Text("Game Over")
	}

	imgui.Separator()
	imgui.Text(describePiece("Current", state.Current))
	imgui.Text(describePiece("Next", state.Next))
	imgui.Text(fmt.Sprintf("Pending Lock: %t", state.PendingLock))

	if imgui.TreeNodeStr(fmt.Sprintf("Locked Cells (%d)", state.Locked.Len())) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowFillTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Filled")
			imgui.TableHeadersRow()

			for y, filled := range rowFill(&state.Grid) {
				if filled == 0 {
					continue
				}
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", y))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d/%d", filled, tetris.Width))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Field") {
		grid := state.Grid.WithPiece(state.Current)
		imgui.Text(grid.String())
		imgui.TreePop()
	}

	imgui.End()
}

func describePiece(label string, p tetris.Piece) string {
	return fmt.Sprintf("%s: %s at (%d, %d) rotation %d/%d",
		label, p.Kind, p.Anchor.X, p.Anchor.Y, p.Rotation, p.Kind.Rotations())
}

// rowFill counts the filled cells of every row.
func rowFill(g *tetris.Grid) [tetris.Height]int {
	var out [tetris.Height]int
	for y := range tetris.Height {
		for x := range tetris.Width {
			if g.Filled(tetris.Pos{X: x, Y: y}) {
				out[y]++
			}
		}
	}
	return out
}

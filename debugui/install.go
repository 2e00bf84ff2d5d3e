package debugui

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Install adds the game inspector and performance windows to the game's
// ImguiItems singleton and registers an ImguiSystem that draws them after
// the game systems every frame.
func Install(game *tetris.Game) *ImguiSystem {
	storage := game.Storage()
	loop.NewSingleton[ImguiInputState](storage)

	items := loop.NewSingleton[ImguiItems](storage).Get()
	items.Add((&GameInspector{Game: game}).Render)
	items.Add(NewPerformanceStats(120, game.Stats).Render)

	system := &ImguiSystem{}
	game.Register(system)
	return system
}

package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game and shows the inspector windows over an
// otherwise headless game.
type Game struct {
	game         *tetris.Game
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Windows queued by the ImguiSystem are submitted between BeginFrame
	// and EndFrame.
	g.imguiBackend.Frame(func() {
		g.game.Tick(time.Second / 60)
	})
	if g.game.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.imguiBackend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Blockfall Inspector", 1280, 720)

	game := tetris.NewGame(tetris.Options{Seed: 1})
	debugui.Install(game)

	if err := ebiten.RunGame(&Game{game: game, imguiBackend: backend}); err != nil {
		panic(err)
	}
}

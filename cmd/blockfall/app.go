package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	windowTitle = "Blockfall"
	// gameOverHold is how long the final field stays up before returning
	// to the title screen.
	gameOverHold = 2 * time.Second
)

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phaseGameOver
)

// App implements ebiten.Game. It moves between the title screen, a running
// game and the game over message.
type App struct {
	cfg    config.Config
	logger *log.Logger

	phase    phase
	game     *tetris.Game
	screen   *Screen
	keyboard *Keyboard
	timer    *loop.FrameTimer
	overAt   time.Time
	now      func() time.Time

	imgui   *debugui_ebiten.ImguiBackend
	inspect *debugui.ImguiSystem
}

func NewApp(cfg config.Config, logger *log.Logger) *App {
	app := &App{
		cfg:    cfg,
		logger: logger,
		screen: &Screen{},
		now:    time.Now,
	}
	app.keyboard = &Keyboard{Captured: app.imguiWantsKeyboard}
	return app
}

func (a *App) imguiWantsKeyboard() bool {
	return a.inspect != nil && a.inspect.WantCaptureKeyboard()
}

func (a *App) start() {
	a.game = tetris.NewGame(tetris.Options{
		FallInterval: a.cfg.FallInterval,
		Seed:         a.cfg.Seed,
		Input:        a.keyboard,
		Renderer:     a.screen,
		Logger:       a.logger,
	})
	if a.imgui != nil {
		a.inspect = debugui.Install(a.game)
	}
	a.screen.Reset(a.game.Snapshot())
	a.timer = loop.NewFrameTimer()
	a.phase = phasePlaying
	a.logger.Println("new game")
}

func (a *App) Update() error {
	if a.imgui == nil {
		return a.update()
	}

	var err error
	a.imgui.Frame(func() { err = a.update() })
	return err
}

func (a *App) update() error {
	switch a.phase {
	case phaseTitle:
		if quitPressed() {
			return ebiten.Termination
		}
		if anyKeyPressed() {
			a.start()
		}

	case phasePlaying:
		a.game.Tick(a.timer.Elapsed())
		switch {
		case a.game.QuitRequested():
			a.logger.Printf("quit with score %d", a.game.Score())
			return ebiten.Termination
		case a.game.Over():
			a.phase = phaseGameOver
			a.overAt = a.now()
		}

	case phaseGameOver:
		if a.now().Sub(a.overAt) >= gameOverHold {
			a.phase = phaseTitle
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	switch a.phase {
	case phaseTitle:
		drawTitle(screen)
	case phasePlaying, phaseGameOver:
		a.screen.Draw(screen)
	}

	if a.imgui != nil {
		a.imgui.Overlay(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
	}
	return WindowWidth, WindowHeight
}

// Command blockfall is the graphical frontend: an ebiten window with a title
// screen, the playing field, a next-piece preview and an optional Dear ImGui
// inspector.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	session := uuid.NewString()
	logger, closeLog, err := cfg.Logger("blockfall", session, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	app := NewApp(cfg, logger)
	if cfg.Debug {
		app.imgui = debugui_ebiten.NewImguiBackend(windowTitle, WindowWidth, WindowHeight)
	} else {
		ebiten.SetWindowSize(WindowWidth, WindowHeight)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(cfg.FrameRate)

	logger.Printf("session started (seed %d, fall interval %s)", cfg.Seed, cfg.FallInterval)
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatalf("Game exited with error: %v", err)
	}
	logger.Println("session ended")
}

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	WindowWidth  = 800
	WindowHeight = 700
	BlockSize    = 30

	playWidth  = tetris.Width * BlockSize
	playHeight = tetris.Height * BlockSize
	topLeftX   = (WindowWidth - playWidth) / 2
	topLeftY   = WindowHeight - playHeight - 50

	// ebitenutil.DebugPrint uses a fixed 6x16 glyph cell.
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	borderColor = color.RGBA{255, 0, 0, 255}
	lineColor   = color.RGBA{128, 128, 128, 255}
)

// Screen is the game's Renderer. It keeps the latest snapshot for Draw.
type Screen struct {
	snapshot tetris.Snapshot
	over     bool
}

func (s *Screen) Render(snapshot tetris.Snapshot) {
	s.snapshot = snapshot
}

func (s *Screen) GameOver(snapshot tetris.Snapshot) {
	s.snapshot = snapshot
	s.over = true
}

// Reset shows snapshot as the first frame of a new game.
func (s *Screen) Reset(snapshot tetris.Snapshot) {
	s.snapshot = snapshot
	s.over = false
}

func (s *Screen) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)

	ebitenutil.DebugPrintAt(dst, "BLOCKFALL", centeredX("BLOCKFALL", topLeftX+playWidth/2), 20)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d", s.snapshot.Score), topLeftX-200, topLeftY+100)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Lines: %d", s.snapshot.Lines), topLeftX-200, topLeftY+120)

	for y := range tetris.Height {
		for x := range tetris.Width {
			cell := s.snapshot.Grid.At(tetris.Pos{X: x, Y: y})
			if !cell.Filled {
				continue
			}
			cx, cy := cellOrigin(x, y)
			vector.DrawFilledRect(dst, cx, cy, BlockSize, BlockSize, cell.Color, false)
		}
	}

	drawGridLines(dst)
	vector.StrokeRect(dst, topLeftX, topLeftY, playWidth, playHeight, 4, borderColor, false)

	s.drawNext(dst)

	if msg := s.banner(); msg != "" {
		drawCentered(dst, msg)
	}
}

// banner is the message drawn over the field, empty while the game runs.
func (s *Screen) banner() string {
	if s.over {
		return "GAME OVER"
	}
	return ""
}

func (s *Screen) drawNext(dst *ebiten.Image) {
	sx, sy := previewOrigin()
	ebitenutil.DebugPrintAt(dst, "Next", int(sx)+10, int(sy)-30)

	next := s.snapshot.Next
	for _, c := range next.Mask().Cells() {
		vector.DrawFilledRect(dst,
			sx+float32(c.X*BlockSize), sy+float32(c.Y*BlockSize),
			BlockSize, BlockSize, next.Color, false)
	}
}

func drawGridLines(dst *ebiten.Image) {
	for y := range tetris.Height {
		fy := float32(topLeftY + y*BlockSize)
		vector.StrokeLine(dst, topLeftX, fy, topLeftX+playWidth, fy, 1, lineColor, false)
	}
	for x := range tetris.Width {
		fx := float32(topLeftX + x*BlockSize)
		vector.StrokeLine(dst, fx, topLeftY, fx, topLeftY+playHeight, 1, lineColor, false)
	}
}

func drawTitle(dst *ebiten.Image) {
	dst.Fill(color.Black)
	drawCentered(dst, "Press any key to start")
}

func drawCentered(dst *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(dst, msg, centeredX(msg, WindowWidth/2), (WindowHeight-glyphHeight)/2)
}

// cellOrigin is the top-left pixel of field cell (x, y).
func cellOrigin(x, y int) (float32, float32) {
	return float32(topLeftX + x*BlockSize), float32(topLeftY + y*BlockSize)
}

// previewOrigin is the top-left pixel of the next-piece mask.
func previewOrigin() (float32, float32) {
	return float32(topLeftX + playWidth + 50), float32(topLeftY + playHeight/2 - 100)
}

// centeredX is the x at which msg is centered on mid.
func centeredX(msg string, mid int) int {
	return mid - len(msg)*glyphWidth/2
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

const (
	// Each field cell is two columns wide so the field looks square.
	cellWidth = 2
	fieldLeft = 2
	fieldTop  = 1
	panelLeft = fieldLeft + tetris.Width*cellWidth + 4

	gameOverHold = 2 * time.Second
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Terminal runs the title screen and games on a tcell screen and renders
// their frames.
type Terminal struct {
	screen tcell.Screen
	cfg    config.Config
	logger *log.Logger
}

func NewTerminal(screen tcell.Screen, cfg config.Config, logger *log.Logger) *Terminal {
	return &Terminal{
		screen: screen,
		cfg:    cfg,
		logger: logger,
	}
}

// Run alternates between the title screen and games until the player quits
// or ctx ends.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		t.drawTitle()
		start, err := waitForStart(ctx, events)
		if err != nil || !start {
			return err
		}
		if !t.play(ctx, events) {
			return nil
		}
	}
}

// waitForStart blocks until a key is pressed. It reports false when the key
// asks to quit.
func waitForStart(ctx context.Context, events <-chan tcell.Event) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return false, nil
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			e, bound := eventFor(key.Key(), key.Rune())
			return !(bound && e == tetris.Quit), nil
		}
	}
}

// play runs one game. It reports whether to return to the title screen.
func (t *Terminal) play(ctx context.Context, events <-chan tcell.Event) bool {
	queue := tetris.NewQueue()
	game := tetris.NewGame(tetris.Options{
		FallInterval: t.cfg.FallInterval,
		Seed:         t.cfg.Seed,
		Input:        queue,
		Renderer:     t,
		Logger:       t.logger,
	})
	t.logger.Println("new game")

	playCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		forward(playCtx, events, queue, t.screen.Sync)
	}()

	game.Run(playCtx, t.cfg.FrameInterval())
	cancel()
	<-done

	if !game.Over() {
		return false
	}

	select {
	case <-ctx.Done():
		return false
	case <-time.After(gameOverHold):
		return true
	}
}

// forward turns key events into game events until ctx ends. onResize is
// called for terminal resizes.
func forward(ctx context.Context, events <-chan tcell.Event, queue *tetris.Queue, onResize func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				queue.Push(tetris.Quit)
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e, bound := eventFor(ev.Key(), ev.Rune()); bound {
					queue.Push(e)
				}
			case *tcell.EventResize:
				onResize()
			}
		}
	}
}

// eventFor maps a key to a game event. Arrow keys and the vi keys h, j, k
// and l move the piece.
func eventFor(key tcell.Key, r rune) (tetris.Event, bool) {
	switch key {
	case tcell.KeyLeft:
		return tetris.MoveLeft, true
	case tcell.KeyRight:
		return tetris.MoveRight, true
	case tcell.KeyDown:
		return tetris.SoftDrop, true
	case tcell.KeyUp:
		return tetris.Rotate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tetris.Quit, true
	case tcell.KeyRune:
		switch r {
		case 'h':
			return tetris.MoveLeft, true
		case 'l':
			return tetris.MoveRight, true
		case 'j':
			return tetris.SoftDrop, true
		case 'k':
			return tetris.Rotate, true
		case ' ':
			return tetris.HardDrop, true
		case 'q':
			return tetris.Quit, true
		}
	}
	return 0, false
}

func (t *Terminal) Render(s tetris.Snapshot) {
	t.draw(s)
	t.screen.Show()
}

func (t *Terminal) GameOver(s tetris.Snapshot) {
	t.logger.Printf("final score %d after %d pieces", s.Score, s.Pieces)
	t.draw(s)
	t.drawText(fieldLeft+tetris.Width*cellWidth/2-4, fieldTop+tetris.Height/2, "GAME OVER", textStyle.Reverse(true))
	t.screen.Show()
}

func (t *Terminal) draw(s tetris.Snapshot) {
	t.screen.Clear()
	t.drawFrame()

	for y := range tetris.Height {
		for x := range tetris.Width {
			cell := s.Grid.At(tetris.Pos{X: x, Y: y})
			if cell.Filled {
				t.drawBlock(fieldLeft+x*cellWidth, fieldTop+y, cell.Color)
			}
		}
	}

	t.drawText(panelLeft, fieldTop, "BLOCKFALL", textStyle.Bold(true))
	t.drawText(panelLeft, fieldTop+2, fmt.Sprintf("Score: %d", s.Score), textStyle)
	t.drawText(panelLeft, fieldTop+3, fmt.Sprintf("Lines: %d", s.Lines), textStyle)
	t.drawText(panelLeft, fieldTop+5, "Next", textStyle)
	for _, c := range s.Next.Mask().Cells() {
		t.drawBlock(panelLeft+c.X*cellWidth, fieldTop+6+c.Y, s.Next.Color)
	}
}

func (t *Terminal) drawFrame() {
	left, right := fieldLeft-1, fieldLeft+tetris.Width*cellWidth
	bottom := fieldTop + tetris.Height
	for y := fieldTop; y < bottom; y++ {
		t.screen.SetContent(left, y, '│', nil, frameStyle)
		t.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	t.screen.SetContent(left, bottom, '└', nil, frameStyle)
	t.screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func (t *Terminal) drawBlock(x, y int, c tetris.Color) {
	style := tcell.StyleDefault.Foreground(colorOf(c))
	for i := range cellWidth {
		t.screen.SetContent(x+i, y, '█', nil, style)
	}
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) drawTitle() {
	t.screen.Clear()
	w, h := t.screen.Size()
	msg := "Press any key to start"
	t.drawText((w-len(msg))/2, h/2, msg, textStyle)
	t.screen.Show()
}

func colorOf(c tetris.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

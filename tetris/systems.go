package tetris

import (
	"log"
	"time"

	"github.com/plus3/blockfall/loop"
)

// GridSystem rebuilds the derived grid from the locked cells at the start of
// every frame.
type GridSystem struct {
	State loop.Singleton[State]
}

func (s *GridSystem) Execute(frame *loop.UpdateFrame) {
	state := s.State.Get()
	state.Grid = BuildGrid(state.Locked)
}

// GravitySystem moves the current piece down one row per Interval.
type GravitySystem struct {
	State    loop.Singleton[State]
	Interval time.Duration
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	state := s.State.Get()
	state.FallTime += durationOf(frame.DeltaTime)
	if state.FallTime < s.Interval {
		return
	}
	state.FallTime = 0

	prev := state.Current
	state.Current = prev.Moved(0, 1)
	if IsValidPlacement(state.Current, &state.Grid) {
		return
	}
	// A blocked piece still at or above its spawn row keeps falling instead
	// of locking.
	if state.Current.Anchor.Y > SpawnPos.Y {
		state.Current = prev
		state.PendingLock = true
	}
}

// InputSystem applies every event received since the last frame.
type InputSystem struct {
	State loop.Singleton[State]
	Input InputSource
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	if s.Input == nil {
		return
	}

	state := s.State.Get()
	for event := range s.Input.Poll() {
		if event == Quit {
			state.Quit = true
			frame.Commands.Halt()
			return
		}
		state.Current, state.PendingLock = apply(event, state.Current, &state.Grid, state.PendingLock)
	}
}

// apply returns the piece after event, reverting any transform that would
// leave it in an invalid placement.
func apply(event Event, p Piece, g *Grid, pendingLock bool) (Piece, bool) {
	var next Piece
	switch event {
	case MoveLeft:
		next = p.Moved(-1, 0)
	case MoveRight:
		next = p.Moved(1, 0)
	case SoftDrop:
		next = p.Moved(0, 1)
	case Rotate:
		next = p.Rotated(1)
	case HardDrop:
		return HardDropped(p, g), true
	default:
		return p, pendingLock
	}

	if !IsValidPlacement(next, g) {
		return p, pendingLock
	}
	return next, pendingLock
}

// HardDropped lowers p while its placement stays valid and returns it one
// row above the first invalid position.
func HardDropped(p Piece, g *Grid) Piece {
	for IsValidPlacement(p, g) {
		p.Anchor.Y++
	}
	p.Anchor.Y--
	return p
}

// LockSystem absorbs a piece marked for locking, promotes the next piece,
// clears complete rows and scores them.
type LockSystem struct {
	State  loop.Singleton[State]
	Random Randomizer
	Logger *log.Logger
}

func (s *LockSystem) Execute(frame *loop.UpdateFrame) {
	state := s.State.Get()
	if state.Quit || !state.PendingLock {
		return
	}

	state.Locked.Absorb(state.Current)
	state.Current = state.Next
	state.Next = RandomPiece(s.Random)
	state.PendingLock = false
	state.Pieces++

	grid := BuildGrid(state.Locked)
	cleared := ClearCompletedRows(&grid, state.Locked)
	if cleared > 0 {
		state.Score += cleared * ScorePerRow
		state.Lines += cleared
		s.Logger.Printf("cleared %d row(s), score %d", cleared, state.Score)
	}
	state.Grid = BuildGrid(state.Locked)
}

// RenderSystem hands the frame's snapshot to the renderer.
type RenderSystem struct {
	State    loop.Singleton[State]
	Renderer Renderer
}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	state := s.State.Get()
	if s.Renderer == nil || state.Quit {
		return
	}
	s.Renderer.Render(state.snapshot(frame.Index))
}

// GameOverSystem ends the game once a locked cell reaches the top rows.
type GameOverSystem struct {
	State    loop.Singleton[State]
	Renderer Renderer
	Logger   *log.Logger
}

func (s *GameOverSystem) Execute(frame *loop.UpdateFrame) {
	state := s.State.Get()
	if state.Quit || state.Over || !IsGameOver(state.Locked) {
		return
	}

	state.Over = true
	frame.Commands.Halt()
	s.Logger.Printf("game over: score %d, lines %d, pieces %d", state.Score, state.Lines, state.Pieces)
	if s.Renderer != nil {
		s.Renderer.GameOver(state.snapshot(frame.Index))
	}
}

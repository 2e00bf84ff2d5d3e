package tetris

import (
	"context"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/loop"
)

const (
	// DefaultFallInterval is the gravity period.
	DefaultFallInterval = 500 * time.Millisecond
	// ScorePerRow is awarded for each row removed by a lock.
	ScorePerRow = 100
)

// Options configure a Game. Zero values select defaults.
type Options struct {
	FallInterval time.Duration
	// Seed seeds the default randomizer; zero picks a fresh seed.
	Seed uint64
	// Random overrides the piece randomizer.
	Random   Randomizer
	Input    InputSource
	Renderer Renderer
	Logger   *log.Logger
}

// State is the controller-owned game state, held as a singleton in the
// game's storage and shared by the frame systems. Only systems mutate it,
// and only from inside a frame.
type State struct {
	Locked  *LockedCells
	Grid    Grid
	Current Piece
	Next    Piece

	Score  int
	Lines  int
	Pieces int

	FallTime    time.Duration
	PendingLock bool
	Over        bool
	Quit        bool
}

// Game is the per-frame controller.
type Game struct {
	state     *State
	scheduler *loop.Scheduler
	random    Randomizer
	input     InputSource
	renderer  Renderer
	logger    *log.Logger
}

// NewGame builds a game with an empty field, a current and a next piece, and
// registers the frame systems in their fixed order.
func NewGame(opts Options) *Game {
	if opts.FallInterval <= 0 {
		opts.FallInterval = DefaultFallInterval
	}
	if opts.Random == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		opts.Random = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	storage := loop.NewStorage()
	state := loop.NewSingleton(storage, State{Locked: NewLockedCells()})

	g := &Game{
		state:     state.Get(),
		scheduler: loop.NewScheduler(storage),
		random:    opts.Random,
		input:     opts.Input,
		renderer:  opts.Renderer,
		logger:    opts.Logger,
	}
	g.state.Current = RandomPiece(g.random)
	g.state.Next = RandomPiece(g.random)

	g.scheduler.Register(&GridSystem{})
	g.scheduler.Register(&GravitySystem{Interval: opts.FallInterval})
	g.scheduler.Register(&InputSystem{Input: g.input})
	g.scheduler.Register(&LockSystem{Random: g.random, Logger: g.logger})
	g.scheduler.Register(&RenderSystem{Renderer: g.renderer})
	g.scheduler.Register(&GameOverSystem{Renderer: g.renderer, Logger: g.logger})

	return g
}

// Register appends an extra system that runs after the game systems. Its
// Singleton fields share the game's storage, so a loop.Singleton[State]
// field sees the live state.
func (g *Game) Register(system loop.System) {
	g.scheduler.Register(system)
}

// Storage returns the storage holding the game's singletons.
func (g *Game) Storage() *loop.Storage {
	return g.scheduler.Storage()
}

// Tick runs one frame with dt of elapsed time.
func (g *Game) Tick(dt time.Duration) {
	g.scheduler.Once(dt.Seconds())
}

// Run ticks the game every interval until ctx is done, the player quits, or
// the game is over.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	g.scheduler.Run(ctx, interval)
}

// Done reports whether the game has stopped ticking.
func (g *Game) Done() bool {
	return g.scheduler.Halted()
}

// Over reports whether the game reached its terminal state.
func (g *Game) Over() bool {
	return g.state.Over
}

// QuitRequested reports whether a Quit event ended the game.
func (g *Game) QuitRequested() bool {
	return g.state.Quit
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// State exposes the live state for inspection. Callers must not mutate it.
func (g *Game) State() *State {
	return g.state
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return g.state.snapshot(g.scheduler.GetStats().Frames)
}

// Stats returns frame timing statistics per system.
func (g *Game) Stats() *loop.SchedulerStats {
	return g.scheduler.GetStats()
}

func (s *State) snapshot(frame uint64) Snapshot {
	return Snapshot{
		Grid:    s.Grid.WithPiece(s.Current),
		Current: s.Current,
		Next:    s.Next,
		Score:   s.Score,
		Lines:   s.Lines,
		Pieces:  s.Pieces,
		Frame:   frame,
		Over:    s.Over,
	}
}

func durationOf(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

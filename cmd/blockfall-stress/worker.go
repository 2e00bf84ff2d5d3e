package main

import (
	"context"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// frameStep is the simulated time between frames. Games run as fast as the
// CPU allows; only the game clock is fixed.
const frameStep = time.Second / 60

// maxFrames caps a single game.
const maxFrames = 1_000_000

// Result aggregates the games played by one or more workers.
type Result struct {
	Games     int
	Finished  int
	Pieces    int
	Lines     int
	BestScore int
	Frames    int64

	UpdateTime Stats
	Systems    []SystemTotals
}

// SystemTotals accumulates one system's timings across games.
type SystemTotals struct {
	Name           string
	ExecutionCount int64
	TotalDuration  time.Duration
	MaxDuration    time.Duration
}

func (s SystemTotals) Avg() time.Duration {
	if s.ExecutionCount == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.ExecutionCount)
}

// Merge folds other into r.
func (r *Result) Merge(other Result) {
	r.Games += other.Games
	r.Finished += other.Finished
	r.Pieces += other.Pieces
	r.Lines += other.Lines
	r.BestScore = max(r.BestScore, other.BestScore)
	r.Frames += other.Frames
	r.UpdateTime.Merge(other.UpdateTime)
	r.addSystems(other.Systems)
}

func (r *Result) addSystems(systems []SystemTotals) {
	for _, sys := range systems {
		found := false
		for i := range r.Systems {
			if r.Systems[i].Name == sys.Name {
				r.Systems[i].ExecutionCount += sys.ExecutionCount
				r.Systems[i].TotalDuration += sys.TotalDuration
				r.Systems[i].MaxDuration = max(r.Systems[i].MaxDuration, sys.MaxDuration)
				found = true
				break
			}
		}
		if !found {
			r.Systems = append(r.Systems, sys)
		}
	}
}

func (r *Result) addStats(stats *loop.SchedulerStats) {
	systems := make([]SystemTotals, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		systems = append(systems, SystemTotals{
			Name:           sys.Name,
			ExecutionCount: sys.ExecutionCount,
			TotalDuration:  sys.TotalDuration,
			MaxDuration:    sys.MaxDuration,
		})
	}
	r.addSystems(systems)
}

// Worker plays bot games back to back until its context ends.
type Worker struct {
	ID           int
	Seed         uint64
	FallInterval time.Duration
	InputRate    float64
	Logger       *log.Logger
}

func (w *Worker) Run(ctx context.Context) Result {
	var result Result
	for game := 0; ctx.Err() == nil; game++ {
		seed := w.Seed + uint64(w.ID)<<32 + uint64(game) + 1
		w.play(ctx, seed, &result)
	}
	w.Logger.Printf("worker %d done: %d games, best score %d", w.ID, result.Games, result.BestScore)
	return result
}

func (w *Worker) play(ctx context.Context, seed uint64, result *Result) {
	rng := rand.New(rand.NewPCG(seed, seed^0x2545F4914F6CDD1D))
	game := tetris.NewGame(tetris.Options{
		FallInterval: w.FallInterval,
		Random:       rng,
		Input:        &Bot{Rand: rng, Rate: w.InputRate},
		Logger:       log.New(io.Discard, "", 0),
	})

	var frames int64
	for !game.Done() && frames < maxFrames {
		if frames%256 == 0 && ctx.Err() != nil {
			break
		}
		start := time.Now()
		game.Tick(frameStep)
		result.UpdateTime.Add(time.Since(start))
		frames++
	}

	state := game.State()
	result.Games++
	if game.Over() {
		result.Finished++
	}
	result.Pieces += state.Pieces
	result.Lines += state.Lines
	result.BestScore = max(result.BestScore, state.Score)
	result.Frames += frames
	result.addStats(game.Stats())
}

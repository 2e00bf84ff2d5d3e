package loop

import "time"

// FrameTimer measures wall-clock time between successive calls.
type FrameTimer struct {
	lastFrameTime time.Time
	now           func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return newFrameTimer(time.Now)
}

func newFrameTimer(now func() time.Time) *FrameTimer {
	return &FrameTimer{
		lastFrameTime: now(),
		now:           now,
	}
}

// Elapsed returns the time since the previous call (or since construction)
// and restarts the measurement.
func (ft *FrameTimer) Elapsed() time.Duration {
	now := ft.now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}

// ElapsedMillis is Elapsed expressed in whole milliseconds.
func (ft *FrameTimer) ElapsedMillis() int64 {
	return ft.Elapsed().Milliseconds()
}

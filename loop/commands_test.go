package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommandsFlush(t *testing.T) {
	c := newCommands()

	var calls []int
	c.Defer(func() { calls = append(calls, 1) })
	c.Defer(func() { calls = append(calls, 2) })

	assert.False(t, c.Flush())
	assert.Equal(t, []int{1, 2}, calls)

	// Buffer is reset.
	assert.False(t, c.Flush())
	assert.Equal(t, []int{1, 2}, calls)
}

func TestCommandsHalt(t *testing.T) {
	c := newCommands()
	c.Halt()
	assert.True(t, c.Halted())
	assert.True(t, c.Flush())
	assert.False(t, c.Halted())
}

func TestFrameTimer(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	ft := newFrameTimer(func() time.Time { return current })

	current = base.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, ft.Elapsed())

	current = current.Add(500 * time.Millisecond)
	assert.Equal(t, int64(500), ft.ElapsedMillis())

	assert.Equal(t, time.Duration(0), ft.Elapsed())
}

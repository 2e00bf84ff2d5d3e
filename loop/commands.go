package loop

// Commands buffers work that must happen after every system of the frame has
// run, plus the request to stop the scheduler.
type Commands struct {
	defers []func()
	halt   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Halt asks the scheduler to stop once the current frame completes.
// Halting is terminal: later calls to Once are no-ops.
func (c *Commands) Halt() {
	c.halt = true
}

// Halted reports whether Halt was called during this frame.
func (c *Commands) Halted() bool {
	return c.halt
}

// Flush runs deferred functions in queue order and resets the buffer.
// It reports whether a halt was requested.
func (c *Commands) Flush() bool {
	for _, fn := range c.defers {
		fn()
	}

	halted := c.halt
	c.defers = c.defers[:0]
	c.halt = false
	return halted
}

package tetris

import (
	"fmt"
	"iter"
	"sync"
)

// Event is a discrete player action.
type Event uint8

const (
	MoveLeft Event = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Quit
)

var eventNames = [...]string{
	MoveLeft:  "MoveLeft",
	MoveRight: "MoveRight",
	SoftDrop:  "SoftDrop",
	Rotate:    "Rotate",
	HardDrop:  "HardDrop",
	Quit:      "Quit",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// InputSource yields the events received since the previous poll, in
// arrival order. The controller polls once per frame.
type InputSource interface {
	Poll() iter.Seq[Event]
}

// Queue is an InputSource fed by Push. Push may be called from any goroutine.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends events to the pending queue.
func (q *Queue) Push(events ...Event) {
	q.mu.Lock()
	q.events = append(q.events, events...)
	q.mu.Unlock()
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Poll takes every pending event. Events pushed while the sequence is being
// consumed are left for the next poll.
func (q *Queue) Poll() iter.Seq[Event] {
	q.mu.Lock()
	pending := q.events
	q.events = nil
	q.mu.Unlock()

	return func(yield func(Event) bool) {
		for _, e := range pending {
			if !yield(e) {
				return
			}
		}
	}
}

// InputFunc adapts a function returning a batch of events to InputSource.
type InputFunc func() []Event

func (f InputFunc) Poll() iter.Seq[Event] {
	events := f()
	return func(yield func(Event) bool) {
		for _, e := range events {
			if !yield(e) {
				return
			}
		}
	}
}

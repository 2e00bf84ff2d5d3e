package tetris

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventString(t *testing.T) {
	assert.Equal(t, "HardDrop", HardDrop.String())
	assert.Equal(t, "Quit", Quit.String())
	assert.Equal(t, "Event(42)", Event(42).String())
}

func TestQueueDrainsInOrder(t *testing.T) {
	q := NewQueue()
	q.Push(MoveLeft, Rotate)
	q.Push(HardDrop)
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, []Event{MoveLeft, Rotate, HardDrop}, slices.Collect(q.Poll()))
	assert.Zero(t, q.Len())
	assert.Empty(t, slices.Collect(q.Poll()))
}

func TestQueuePushDuringPoll(t *testing.T) {
	q := NewQueue()
	q.Push(MoveLeft)

	for range q.Poll() {
		q.Push(MoveRight)
	}

	assert.Equal(t, []Event{MoveRight}, slices.Collect(q.Poll()))
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Push(SoftDrop)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, slices.Collect(q.Poll()), 800)
}

func TestInputFunc(t *testing.T) {
	calls := 0
	source := InputFunc(func() []Event {
		calls++
		return []Event{Rotate, Quit, MoveLeft}
	})

	var got []Event
	for e := range source.Poll() {
		got = append(got, e)
		if e == Quit {
			break
		}
	}

	assert.Equal(t, []Event{Rotate, Quit}, got)
	assert.Equal(t, 1, calls)
}

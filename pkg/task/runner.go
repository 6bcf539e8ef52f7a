// Package task runs background work and delivers results back to the
// frame loop.
//
// Spawned functions run on their own goroutines; completions queue on
// a channel and are drained by Poll on the main thread, so completion
// callbacks may touch entity state and other frame-owned data without
// locking.
package task

import (
	"sync/atomic"

	"github.com/go-helio/helio/pkg/errors"
)

// TaskID identifies a spawned task.
type TaskID uint64

// defaultQueueDepth bounds how many completions can sit undelivered
// before spawned goroutines block.
const defaultQueueDepth = 256

type message struct {
	id    TaskID
	value any
	fn    func()
}

// Runner owns the completion queue for one frame loop.
//
// Spawn, Poll, Cancel and Pending must be called from the main thread.
// Post is safe from any goroutine.
type Runner struct {
	queue     chan message
	callbacks map[TaskID]func(any)
	nextID    atomic.Uint64
}

// NewRunner returns a runner with the default queue depth.
func NewRunner() *Runner {
	return NewRunnerWithDepth(defaultQueueDepth)
}

// NewRunnerWithDepth returns a runner whose completion queue holds up
// to depth undelivered results.
func NewRunnerWithDepth(depth int) *Runner {
	return &Runner{
		queue:     make(chan message, depth),
		callbacks: make(map[TaskID]func(any)),
	}
}

// Post queues fn to run on the main thread at the next Poll. Safe
// from any goroutine.
func (r *Runner) Post(fn func()) {
	r.queue <- message{fn: fn}
}

// Poll drains the completion queue without blocking and invokes the
// callbacks of finished tasks. Returns the number of items delivered.
func (r *Runner) Poll() int {
	delivered := 0
	for {
		select {
		case msg := <-r.queue:
			delivered++
			if msg.fn != nil {
				msg.fn()
				continue
			}
			if cb, ok := r.callbacks[msg.id]; ok {
				delete(r.callbacks, msg.id)
				cb(msg.value)
			}
		default:
			return delivered
		}
	}
}

// Cancel drops a task's completion callback. The task itself keeps
// running; its result is discarded on arrival.
func (r *Runner) Cancel(id TaskID) {
	delete(r.callbacks, id)
}

// Pending returns the number of tasks whose completions have not been
// delivered yet.
func (r *Runner) Pending() int {
	return len(r.callbacks)
}

func (r *Runner) register(cb func(any)) TaskID {
	id := TaskID(r.nextID.Add(1))
	r.callbacks[id] = cb
	return id
}

func (r *Runner) complete(id TaskID, value any) {
	r.queue <- message{id: id, value: value}
}

// SpawnOn runs fn on a new goroutine and delivers its result to
// complete on the main thread at a later Poll of r.
func SpawnOn[T any](r *Runner, fn func() T, complete func(T)) TaskID {
	id := r.register(func(v any) {
		complete(v.(T))
	})
	go func() {
		// A panicking task is reported and its completion dropped;
		// the frame loop keeps running.
		defer errors.Recover("task.Spawn")
		r.complete(id, fn())
	}()
	return id
}

// Spawn runs fn on a new goroutine via the current runner. Panics
// when no runner is installed.
func Spawn[T any](fn func() T, complete func(T)) TaskID {
	if currentRunner == nil {
		panic("task: Spawn called without a runner installed")
	}
	return SpawnOn(currentRunner, fn, complete)
}

// SpawnDetached runs fn on a new goroutine with no completion
// callback.
func SpawnDetached(fn func()) {
	go func() {
		defer errors.Recover("task.SpawnDetached")
		fn()
	}()
}

// currentRunner is the runner of the active frame loop. Set once at
// startup from the main thread.
var currentRunner *Runner

// SetCurrent installs the process runner.
func SetCurrent(r *Runner) {
	currentRunner = r
}

// ClearCurrent removes the process runner.
func ClearCurrent() {
	currentRunner = nil
}

// With passes the current runner to f. Panics when no runner is
// installed.
func With(f func(*Runner)) {
	if currentRunner == nil {
		panic("task: With called without a runner installed")
	}
	f(currentRunner)
}

// TryWith passes the current runner to f, doing nothing when no
// runner is installed.
func TryWith(f func(*Runner)) bool {
	if currentRunner == nil {
		return false
	}
	f(currentRunner)
	return true
}

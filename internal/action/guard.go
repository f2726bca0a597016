// Package action provides a guard that lets at most one run of an
// asynchronous action be in flight at a time.
package action

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// ErrPending is returned by Run when a previous run has not finished yet.
var ErrPending = errors.New("action already pending")

// Func is the work a Guard protects.
type Func func(ctx context.Context) error

// Guard wraps a Func with an idle/pending state machine:
//
//	Idle --Run/Start--> Pending --return, error or panic--> Idle
//
// While pending, further Run calls fail with ErrPending and Start returns false.
// The return to Idle happens in a deferred block, so a failing or panicking
// action cannot leave the guard stuck.
//
// Each transition and its state-change notification happen under one lock,
// so observers see strictly alternating true/false notifications whose last
// value always matches Pending().
type Guard struct {
	fn      Func
	pending atomic.Bool

	transition sync.Mutex

	mu            sync.Mutex
	onStateChange func(pending bool)
	onComplete    func(err error)
}

// NewGuard creates an idle guard around fn.
func NewGuard(fn Func) *Guard {
	return &Guard{fn: fn}
}

// SetOnStateChange registers a callback invoked on every Idle/Pending transition.
// It is called on the goroutine performing the transition and must not call
// Run or Start.
func (g *Guard) SetOnStateChange(fn func(pending bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onStateChange = fn
}

// SetOnComplete registers a callback invoked after each run with its result.
// It fires after the guard is idle again.
func (g *Guard) SetOnComplete(fn func(err error)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onComplete = fn
}

// Pending reports whether a run is in flight.
func (g *Guard) Pending() bool {
	return g.pending.Load()
}

// Run executes the action on the calling goroutine and returns its error.
// A panic inside the action is recovered and returned as an error.
func (g *Guard) Run(ctx context.Context) error {
	if !g.begin() {
		return ErrPending
	}
	err := g.invoke(ctx)
	g.end()
	g.notifyComplete(err)
	return err
}

// Start runs the action on a new goroutine. It returns false, without
// starting anything, if a run is already pending.
func (g *Guard) Start(ctx context.Context) bool {
	if !g.begin() {
		return false
	}
	go func() {
		err := g.invoke(ctx)
		g.end()
		g.notifyComplete(err)
	}()
	return true
}

// begin moves Idle to Pending and reports whether it did.
func (g *Guard) begin() bool {
	g.transition.Lock()
	defer g.transition.Unlock()
	if !g.pending.CompareAndSwap(false, true) {
		return false
	}
	g.notifyState(true)
	return true
}

// end moves Pending back to Idle.
func (g *Guard) end() {
	g.transition.Lock()
	defer g.transition.Unlock()
	g.pending.Store(false)
	g.notifyState(false)
}

// invoke calls fn, converting a panic into an error.
func (g *Guard) invoke(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v\n%s", r, debug.Stack())
		}
	}()
	if g.fn == nil {
		return nil
	}
	return g.fn(ctx)
}

func (g *Guard) notifyState(pending bool) {
	g.mu.Lock()
	fn := g.onStateChange
	g.mu.Unlock()
	if fn != nil {
		fn(pending)
	}
}

func (g *Guard) notifyComplete(err error) {
	g.mu.Lock()
	fn := g.onComplete
	g.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

package utils

import (
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// Debouncer coalesces a burst of calls into a single call of fn, made once
// wait has elapsed since the last call. Each call replaces the argument of
// the pending one. A Debouncer owns exactly one timer.
type Debouncer[T any] struct {
	fn     func(T)
	wait   time.Duration
	logger logr.Logger

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	pending    bool
	arg        T
}

// DebouncerOption configures a Debouncer.
type DebouncerOption[T any] func(*Debouncer[T])

// WithDebounceLogger logs scheduling decisions at V(1).
func WithDebounceLogger[T any](logger logr.Logger) DebouncerOption[T] {
	return func(d *Debouncer[T]) {
		d.logger = logger
	}
}

// NewDebouncer returns a Debouncer calling fn after wait of quiet.
func NewDebouncer[T any](wait time.Duration, fn func(T), opts ...DebouncerOption[T]) *Debouncer[T] {
	d := &Debouncer[T]{
		fn:     fn,
		wait:   wait,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Debounce wraps fn so that repeated calls only run it once, wait after the
// last one. The result of fn is discarded.
func Debounce[T any](fn func(T), wait time.Duration) func(T) {
	return NewDebouncer(wait, fn).Call
}

// Call cancels any pending invocation and schedules a new one with arg.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.logger.V(1).Info("debounce: replaced pending call")
	}
	d.generation++
	d.pending = true
	d.arg = arg

	gen := d.generation
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// fire runs fn unless a newer call or a Cancel superseded generation gen.
// Stop on an already fired timer returns false, so this check is what keeps
// a stale timer from running.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation || !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.take()
	d.mu.Unlock()

	d.logger.V(1).Info("debounce: firing")
	d.fn(arg)
}

// take clears the pending state and returns the argument. d.mu must be held.
func (d *Debouncer[T]) take() T {
	arg := d.arg
	var zero T
	d.arg = zero
	d.pending = false
	d.timer = nil
	return arg
}

// Cancel drops the pending invocation, if any, and reports whether one was
// dropped.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending {
		return false
	}
	d.timer.Stop()
	d.generation++
	d.take()
	return true
}

// Flush runs the pending invocation immediately on the calling goroutine.
// It reports whether there was one.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.generation++
	arg := d.take()
	d.mu.Unlock()

	d.fn(arg)
	return true
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

package typewriter

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRunning is returned when Run is called on a runner that is already running
var ErrRunning = errors.New("typewriter: runner already running")

// Runner advances a Machine on a single timer. At most one tick is pending
// at any time, and none survive the return of Run.
type Runner struct {
	mu      sync.Mutex
	machine *Machine
	running bool
	reset   chan struct{}
}

// NewRunner creates a runner for words
func NewRunner(words []string, timing Timing) (*Runner, error) {
	m, err := NewMachine(words, timing)
	if err != nil {
		return nil, err
	}
	return &Runner{
		machine: m,
		reset:   make(chan struct{}, 1),
	}, nil
}

// Frame returns the current display state
func (r *Runner) Frame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.machine.Frame()
}

// Restart discards the current cycle and starts over with words and timing
// from the first rune of the first word. A running loop picks the change up
// immediately, cancelling its pending tick.
func (r *Runner) Restart(words []string, timing Timing) error {
	m, err := NewMachine(words, timing)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.machine = m
	r.mu.Unlock()

	select {
	case r.reset <- struct{}{}:
	default:
	}
	return nil
}

// Run emits the initial frame and then one frame per tick until ctx is
// done. emit is only ever called from the goroutine running Run.
func (r *Runner) Run(ctx context.Context, emit func(Frame)) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrRunning
	}
	r.running = true
	frame, delay := r.machine.Frame(), r.machine.Next()
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	// A restart requested before Run is already reflected in the machine
	select {
	case <-r.reset:
	default:
	}

	emit(frame)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-r.reset:
			r.mu.Lock()
			frame, delay = r.machine.Frame(), r.machine.Next()
			r.mu.Unlock()
			timer.Stop()
			emit(frame)
			timer.Reset(delay)

		case <-timer.C:
			if ctx.Err() != nil {
				return nil
			}
			r.mu.Lock()
			delay = r.machine.Tick()
			frame = r.machine.Frame()
			r.mu.Unlock()
			emit(frame)
			timer.Reset(delay)
		}
	}
}

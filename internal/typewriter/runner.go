package typewriter

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrRunning is returned by Start when the runner is already active.
var ErrRunning = errors.New("typewriter: runner already started")

// Frame is what a renderer needs to draw one line.
type Frame struct {
	Text          string    `json:"text"`
	Cursor        string    `json:"cursor"`
	CursorVisible bool      `json:"cursor_visible"`
	State         State     `json:"state"`
	At            time.Time `json:"at"`
}

// Line joins the revealed text and the cursor cell.
func (f Frame) Line() string { return f.Text + f.Cursor }

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the real clock, typically with a ManualClock.
func WithClock(c Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runner drives one Engine and one Cursor from two independent timers.
// Start acquires the timers and Stop releases them; after Stop returns no
// further frames are delivered. onFrame runs with the runner locked and
// must not call Start or Stop.
type Runner struct {
	mu      sync.Mutex
	engine  *Engine
	cursor  *Cursor
	clock   Clock
	logger  *zap.Logger
	onFrame func(Frame)

	running   bool
	gen       uint64
	typeTimer Timer
	blink     Timer
	stop      chan struct{}
	watched   chan struct{}
	last      Frame
}

// NewRunner creates a stopped runner.
func NewRunner(engine *Engine, cursor *Cursor, onFrame func(Frame), opts ...RunnerOption) *Runner {
	r := &Runner{
		engine:  engine,
		cursor:  cursor,
		clock:   RealClock(),
		logger:  zap.NewNop(),
		onFrame: onFrame,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cursor == nil {
		r.cursor = NewCursor("", DefaultCursorInterval)
	}
	return r
}

// Start resets the engine, emits the initial frame and schedules the typing
// and blink timers. Cancelling ctx has the same effect as Stop.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrRunning
	}
	r.running = true
	r.gen++
	gen := r.gen
	stop := make(chan struct{})
	watched := make(chan struct{})
	r.stop = stop
	r.watched = watched

	r.engine.Reset()
	r.cursor.Show()
	r.scheduleType(gen, r.engine.FirstDelay())
	r.scheduleBlink(gen)
	r.emitLocked()
	r.mu.Unlock()

	r.logger.Debug("typewriter runner started",
		zap.Int("segments", len(r.engine.segments)),
		zap.Bool("loop", r.engine.cfg.Loop))

	go func() {
		defer close(watched)
		select {
		case <-ctx.Done():
			r.halt(gen)
		case <-stop:
		}
	}()
	return nil
}

// Stop cancels pending timers and waits for the context watcher to exit.
// It is safe to call more than once.
func (r *Runner) Stop() {
	r.mu.Lock()
	watched := r.watched
	r.haltLocked()
	r.mu.Unlock()

	if watched != nil {
		<-watched
	}
}

// Running reports whether timers are active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Frame returns the most recently emitted frame.
func (r *Runner) Frame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *Runner) halt(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == gen {
		r.haltLocked()
	}
}

func (r *Runner) haltLocked() {
	if !r.running {
		return
	}
	r.running = false
	// Bumping the generation drops callbacks already waiting on the lock.
	r.gen++
	if r.typeTimer != nil {
		r.typeTimer.Stop()
		r.typeTimer = nil
	}
	if r.blink != nil {
		r.blink.Stop()
		r.blink = nil
	}
	close(r.stop)
	r.logger.Debug("typewriter runner stopped", zap.String("mode", r.engine.state.Mode.String()))
}

func (r *Runner) scheduleType(gen uint64, d time.Duration) {
	if d <= 0 {
		r.typeTimer = nil
		return
	}
	r.typeTimer = r.clock.AfterFunc(d, func() { r.onType(gen) })
}

func (r *Runner) scheduleBlink(gen uint64) {
	r.blink = r.clock.AfterFunc(r.cursor.Interval(), func() { r.onBlink(gen) })
}

func (r *Runner) onType(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || r.gen != gen {
		return
	}
	d := r.engine.Step()
	r.emitLocked()
	r.scheduleType(gen, d)
}

func (r *Runner) onBlink(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || r.gen != gen {
		return
	}
	r.cursor.Toggle()
	r.emitLocked()
	r.scheduleBlink(gen)
}

func (r *Runner) emitLocked() {
	r.last = Frame{
		Text:          r.engine.Text(),
		Cursor:        r.cursor.Glyph(),
		CursorVisible: r.cursor.Visible(),
		State:         r.engine.State(),
		At:            r.clock.Now(),
	}
	if r.onFrame != nil {
		r.onFrame(r.last)
	}
}

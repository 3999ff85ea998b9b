package typewriter

import (
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Engine owns the state of one typewriter instance. It is not safe for
// concurrent use; Runner and the TUI serialize access to it.
type Engine struct {
	segments []string
	cfg      Config
	state    State
}

// NewEngine copies segments so later changes by the caller cannot reach
// the running animation.
func NewEngine(segments []string, cfg Config) *Engine {
	return &Engine{
		segments: slices.Clone(segments),
		cfg:      cfg.Normalize(),
	}
}

// Step advances one tick and returns the delay before the next one.
func (e *Engine) Step() time.Duration {
	var d time.Duration
	e.state, d = Advance(e.state, e.segments, e.cfg)
	return d
}

// FirstDelay is the delay before the first tick after a reset, or zero
// when there is nothing to animate.
func (e *Engine) FirstDelay() time.Duration {
	if e.Done() {
		return 0
	}
	return e.cfg.TypeDelay
}

func (e *Engine) Text() string { return Text(e.state, e.segments) }

func (e *Engine) State() State { return e.state }

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Segments() []string { return slices.Clone(e.segments) }

// Done reports whether no further ticks will change the state.
func (e *Engine) Done() bool {
	return len(e.segments) == 0 || e.state.Mode == ModeDone
}

// Reset returns to the first segment with nothing revealed.
func (e *Engine) Reset() { e.state = State{} }

// SetSegments replaces the segment list. When the new list differs from
// the current one the state restarts at index 0; the return value reports
// whether that happened.
func (e *Engine) SetSegments(segments []string) bool {
	if slices.Equal(e.segments, segments) {
		return false
	}
	e.segments = slices.Clone(segments)
	e.state = State{}
	return true
}

// Cursor is a blink toggle that runs on its own fixed interval,
// independent of the typing cadence.
type Cursor struct {
	glyph    string
	interval time.Duration
	visible  bool
}

// NewCursor returns a visible cursor. Intervals below MinDelay are clamped.
func NewCursor(glyph string, interval time.Duration) *Cursor {
	if glyph == "" {
		glyph = "█"
	}
	return &Cursor{
		glyph:    glyph,
		interval: clampDelay(interval),
		visible:  true,
	}
}

// Toggle flips visibility and returns the new value.
func (c *Cursor) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

func (c *Cursor) Visible() bool { return c.visible }

func (c *Cursor) Interval() time.Duration { return c.interval }

// Glyph returns the cursor glyph while visible and a blank of the same cell
// width otherwise, so the line does not jitter.
func (c *Cursor) Glyph() string {
	if c.visible {
		return c.glyph
	}
	return strings.Repeat(" ", runewidth.StringWidth(c.glyph))
}

// Show forces the cursor visible, used when an instance is remounted.
func (c *Cursor) Show() { c.visible = true }

// Package typewriter reveals an ordered list of text segments one character
// at a time, pauses, deletes them again and moves on to the next segment.
//
// Transition logic lives in Advance, a pure function over State. Timing is
// left to the caller: a Bubble Tea tick, a Runner with a real clock, or a
// ManualClock in tests.
package typewriter

import (
	"time"
	"unicode/utf8"
)

// MinDelay is the smallest delay a Config will ever schedule.
const MinDelay = time.Millisecond

// Default cadence used when no configuration is supplied.
const (
	DefaultTypeDelay         = 80 * time.Millisecond
	DefaultDeleteDelay       = 40 * time.Millisecond
	DefaultPauseAfterTyped   = 1500 * time.Millisecond
	DefaultPauseAfterDeleted = 400 * time.Millisecond
	DefaultCursorInterval    = 500 * time.Millisecond
)

// Mode is the phase the engine is in for the current segment.
type Mode int

const (
	ModeTyping Mode = iota
	ModePausing
	ModeDeleting
	ModeDone // non-looping engine finished its last segment
)

func (m Mode) String() string {
	switch m {
	case ModeTyping:
		return "typing"
	case ModePausing:
		return "pausing"
	case ModeDeleting:
		return "deleting"
	case ModeDone:
		return "done"
	default:
		return "unknown"
	}
}

// MarshalText renders the mode by name so JSON output stays readable.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// State is the animation state of one engine instance. The zero value is
// the start state: first segment, nothing revealed, typing.
type State struct {
	Index  int  `json:"index"`
	Prefix int  `json:"prefix"`
	Mode   Mode `json:"mode"`
}

// Config holds the cadence of an engine.
type Config struct {
	TypeDelay         time.Duration `json:"type_delay"`
	DeleteDelay       time.Duration `json:"delete_delay"`
	PauseAfterTyped   time.Duration `json:"pause_after_typed"`
	PauseAfterDeleted time.Duration `json:"pause_after_deleted"`
	Loop              bool          `json:"loop"`
}

// DefaultConfig returns a looping config with the default cadence.
func DefaultConfig() Config {
	return Config{
		TypeDelay:         DefaultTypeDelay,
		DeleteDelay:       DefaultDeleteDelay,
		PauseAfterTyped:   DefaultPauseAfterTyped,
		PauseAfterDeleted: DefaultPauseAfterDeleted,
		Loop:              true,
	}
}

// Normalize clamps every delay to at least MinDelay.
func (c Config) Normalize() Config {
	c.TypeDelay = clampDelay(c.TypeDelay)
	c.DeleteDelay = clampDelay(c.DeleteDelay)
	c.PauseAfterTyped = clampDelay(c.PauseAfterTyped)
	c.PauseAfterDeleted = clampDelay(c.PauseAfterDeleted)
	return c
}

func clampDelay(d time.Duration) time.Duration {
	if d < MinDelay {
		return MinDelay
	}
	return d
}

// Advance applies one tick to s and returns the next state together with
// the delay before the following tick. A zero delay means there is nothing
// left to schedule: the segment list is empty or the engine is done.
func Advance(s State, segments []string, cfg Config) (State, time.Duration) {
	n := len(segments)
	if n == 0 || s.Mode == ModeDone {
		return s, 0
	}
	cfg = cfg.Normalize()

	if s.Index < 0 || s.Index >= n {
		s = State{}
	}
	length := utf8.RuneCountInString(segments[s.Index])
	s.Prefix = min(max(s.Prefix, 0), length)

	switch s.Mode {
	case ModePausing:
		s.Mode = ModeDeleting
		return s, cfg.DeleteDelay

	case ModeDeleting:
		if s.Prefix > 0 {
			s.Prefix--
		}
		if s.Prefix > 0 {
			return s, cfg.DeleteDelay
		}
		if s.Index == n-1 && !cfg.Loop {
			s.Mode = ModeDone
			return s, 0
		}
		s.Index = (s.Index + 1) % n
		s.Mode = ModeTyping
		return s, cfg.PauseAfterDeleted

	default:
		s.Mode = ModeTyping
		if s.Prefix < length {
			s.Prefix++
		}
		if s.Prefix == length {
			s.Mode = ModePausing
			return s, cfg.PauseAfterTyped
		}
		return s, cfg.TypeDelay
	}
}

// Text returns the revealed prefix of the current segment.
func Text(s State, segments []string) string {
	if s.Mode == ModeDone || s.Index < 0 || s.Index >= len(segments) || s.Prefix <= 0 {
		return ""
	}
	seg := segments[s.Index]
	i := 0
	for pos := range seg {
		if i == s.Prefix {
			return seg[:pos]
		}
		i++
	}
	return seg
}

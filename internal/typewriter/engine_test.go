package typewriter

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestEngine_StepAndText(t *testing.T) {
	t.Parallel()

	e := NewEngine([]string{"go"}, scenarioConfig())
	if got := e.FirstDelay(); got != 10*time.Millisecond {
		t.Fatalf("first delay = %v, want type delay", got)
	}

	e.Step()
	if got := e.Text(); got != "g" {
		t.Fatalf("text = %q, want g", got)
	}
	if d := e.Step(); d != 100*time.Millisecond {
		t.Fatalf("delay = %v, want pause after typed", d)
	}
	if got := e.State().Mode; got != ModePausing {
		t.Fatalf("mode = %v, want pausing", got)
	}
}

func TestEngine_CopiesSegments(t *testing.T) {
	t.Parallel()

	segs := []string{"one", "two"}
	e := NewEngine(segs, scenarioConfig())
	segs[0] = "mutated"

	e.Step()
	if got := e.Text(); got != "o" {
		t.Fatalf("text = %q, want o", got)
	}
}

func TestEngine_SetSegmentsResetsOnChange(t *testing.T) {
	t.Parallel()

	e := NewEngine([]string{"abc", "def"}, scenarioConfig())
	for range 9 {
		e.Step()
	}
	if e.State().Index != 1 {
		t.Fatalf("index = %d, want 1 before change", e.State().Index)
	}

	if e.SetSegments([]string{"abc", "def"}) {
		t.Fatal("SetSegments reported a change for an equal list")
	}
	if e.State().Index != 1 {
		t.Fatal("equal list reset the state")
	}

	if !e.SetSegments([]string{"xyz"}) {
		t.Fatal("SetSegments did not report a change")
	}
	if diff := cmp.Diff(State{}, e.State()); diff != "" {
		t.Fatalf("state after change (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"xyz"}, e.Segments()); diff != "" {
		t.Fatalf("segments (-want +got):\n%s", diff)
	}
}

func TestEngine_EmptyIsDone(t *testing.T) {
	t.Parallel()

	e := NewEngine(nil, DefaultConfig())
	if !e.Done() {
		t.Fatal("empty engine not done")
	}
	if d := e.FirstDelay(); d != 0 {
		t.Fatalf("first delay = %v, want 0", d)
	}
	if d := e.Step(); d != 0 {
		t.Fatalf("step delay = %v, want 0", d)
	}
	if got := e.Text(); got != "" {
		t.Fatalf("text = %q, want empty", got)
	}
}

func TestEngine_NormalizesConfig(t *testing.T) {
	t.Parallel()

	e := NewEngine([]string{"a"}, Config{TypeDelay: -time.Second})
	if got := e.Config().TypeDelay; got != MinDelay {
		t.Fatalf("type delay = %v, want %v", got, MinDelay)
	}
}

func TestCursor_ToggleAndGlyph(t *testing.T) {
	t.Parallel()

	c := NewCursor("█", 0)
	if c.Interval() != MinDelay {
		t.Fatalf("interval = %v, want clamped to %v", c.Interval(), MinDelay)
	}
	if !c.Visible() || c.Glyph() != "█" {
		t.Fatalf("new cursor visible=%v glyph=%q", c.Visible(), c.Glyph())
	}
	if c.Toggle() {
		t.Fatal("first toggle returned visible")
	}
	if got := c.Glyph(); got != " " {
		t.Fatalf("hidden glyph = %q, want one blank", got)
	}
	c.Toggle()
	if !c.Visible() {
		t.Fatal("second toggle did not show the cursor")
	}
}

func TestCursor_HiddenGlyphKeepsWidth(t *testing.T) {
	t.Parallel()

	c := NewCursor("▌▌", DefaultCursorInterval)
	c.Toggle()
	if got := c.Glyph(); got != "  " {
		t.Fatalf("hidden glyph = %q, want two blanks", got)
	}
	c.Show()
	if !c.Visible() {
		t.Fatal("Show left cursor hidden")
	}
}

func TestSimulate_Timeline(t *testing.T) {
	t.Parallel()

	steps := Simulate([]string{"Hi"}, scenarioConfig(), 5)
	if len(steps) != 5 {
		t.Fatalf("steps = %d, want 5", len(steps))
	}

	wantAt := []time.Duration{10, 20, 120, 125, 130}
	wantText := []string{"H", "Hi", "Hi", "H", ""}
	for i, s := range steps {
		if s.Tick != i+1 {
			t.Errorf("step %d tick = %d", i, s.Tick)
		}
		if s.At != wantAt[i]*time.Millisecond {
			t.Errorf("step %d at = %v, want %v", i, s.At, wantAt[i]*time.Millisecond)
		}
		if s.Text != wantText[i] {
			t.Errorf("step %d text = %q, want %q", i, s.Text, wantText[i])
		}
	}
}

func TestSimulate_StopsWhenDone(t *testing.T) {
	t.Parallel()

	cfg := scenarioConfig()
	cfg.Loop = false
	steps := Simulate([]string{"ab"}, cfg, 100)
	if len(steps) != CycleTicks([]string{"ab"}) {
		t.Fatalf("steps = %d, want one cycle", len(steps))
	}
	if last := steps[len(steps)-1]; last.State.Mode != ModeDone || last.Delay != 0 {
		t.Fatalf("last step = %+v, want done", last)
	}
}

func TestSimulate_Empty(t *testing.T) {
	t.Parallel()

	if steps := Simulate(nil, DefaultConfig(), 10); steps != nil {
		t.Fatalf("steps = %+v, want nil", steps)
	}
	if steps := Simulate([]string{"a"}, DefaultConfig(), 0); steps != nil {
		t.Fatalf("steps = %+v, want nil", steps)
	}
}

func TestSimulate_BoundsHugeTickCounts(t *testing.T) {
	t.Parallel()

	for _, ticks := range []int{MaxTicks + 1, 1_000_000_000_000_000, math.MaxInt} {
		steps := Simulate([]string{"Hi"}, scenarioConfig(), ticks)
		if len(steps) != MaxTicks {
			t.Fatalf("Simulate(%d) len = %d, want %d", ticks, len(steps), MaxTicks)
		}
		if got := steps[len(steps)-1].Tick; got != MaxTicks {
			t.Fatalf("last tick = %d, want %d", got, MaxTicks)
		}
	}

	// A non-looping timeline still ends early.
	cfg := scenarioConfig()
	cfg.Loop = false
	if got := len(Simulate([]string{"Hi"}, cfg, math.MaxInt)); got != CycleTicks([]string{"Hi"}) {
		t.Fatalf("non-loop len = %d, want %d", got, CycleTicks([]string{"Hi"}))
	}
}

func TestCycleTicks(t *testing.T) {
	t.Parallel()

	if got := CycleTicks([]string{"Hi", "Bye"}); got != 12 {
		t.Fatalf("CycleTicks = %d, want 12", got)
	}
	if got := CycleTicks([]string{""}); got != 3 {
		t.Fatalf("CycleTicks(empty segment) = %d, want 3", got)
	}
}

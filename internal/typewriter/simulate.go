package typewriter

import "time"

// MaxTicks bounds a simulated timeline.
const MaxTicks = 1000

// Step is one tick of a simulated timeline.
type Step struct {
	Tick  int           `json:"tick"`
	At    time.Duration `json:"at"`
	State State         `json:"state"`
	Text  string        `json:"text"`
	Delay time.Duration `json:"delay"`
}

// Simulate runs up to ticks ticks from the start state without a clock.
// At is the offset at which each tick fires; the first tick fires after
// the type delay. The timeline ends early when the engine is done and never
// exceeds MaxTicks steps.
func Simulate(segments []string, cfg Config, ticks int) []Step {
	e := NewEngine(segments, cfg)
	at := e.FirstDelay()
	if at == 0 || ticks <= 0 {
		return nil
	}

	ticks = min(ticks, MaxTicks)
	steps := make([]Step, 0, min(ticks, CycleTicks(segments)*2))
	for i := 1; i <= ticks; i++ {
		d := e.Step()
		steps = append(steps, Step{
			Tick:  i,
			At:    at,
			State: e.State(),
			Text:  e.Text(),
			Delay: d,
		})
		if d == 0 {
			break
		}
		at += d
	}
	return steps
}

// CycleTicks returns the number of ticks one full pass over segments takes:
// typing every rune, one pause tick, deleting every rune.
func CycleTicks(segments []string) int {
	total := 0
	for _, seg := range segments {
		n := len([]rune(seg))
		// An empty segment still spends one tick "typing" and one deleting.
		total += max(n, 1)*2 + 1
	}
	return total
}

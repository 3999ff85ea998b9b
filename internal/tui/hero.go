package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/termfolio/internal/profile"
	"github.com/tinytelemetry/termfolio/internal/typewriter"
)

// typeTickMsg advances the hero typewriter by one tick.
type typeTickMsg struct{ gen uint64 }

// blinkTickMsg flips the hero cursor.
type blinkTickMsg struct{ gen uint64 }

// heroPanel owns one typewriter instance. Every mount starts a new
// generation; ticks carry the generation they were scheduled under and are
// dropped once it is stale, which is how unmounting cancels them.
type heroPanel struct {
	engine  *typewriter.Engine
	cursor  *typewriter.Cursor
	gen     uint64
	mounted bool
}

func newHeroPanel(segments []string, cfg typewriter.Config, cursorInterval time.Duration) *heroPanel {
	return &heroPanel{
		engine: typewriter.NewEngine(segments, cfg),
		cursor: typewriter.NewCursor("█", cursorInterval),
	}
}

func (h *heroPanel) mount() tea.Cmd {
	h.gen++
	h.mounted = true
	h.engine.Reset()
	h.cursor.Show()
	return tea.Batch(
		typeTick(h.gen, h.engine.FirstDelay()),
		blinkTick(h.gen, h.cursor.Interval()),
	)
}

func (h *heroPanel) unmount() {
	h.gen++
	h.mounted = false
}

// setSegments swaps the segment list, restarting the animation when the
// list changed while mounted.
func (h *heroPanel) setSegments(segments []string) tea.Cmd {
	if !h.engine.SetSegments(segments) || !h.mounted {
		return nil
	}
	return h.mount()
}

func (h *heroPanel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case typeTickMsg:
		if !h.mounted || msg.gen != h.gen {
			return nil
		}
		return typeTick(h.gen, h.engine.Step())

	case blinkTickMsg:
		if !h.mounted || msg.gen != h.gen {
			return nil
		}
		h.cursor.Toggle()
		return blinkTick(h.gen, h.cursor.Interval())
	}
	return nil
}

func (h *heroPanel) line() string {
	return h.engine.Text() + h.cursor.Glyph()
}

func (h *heroPanel) view(p *profile.Profile, width int) string {
	name := titleStyle.Render(p.Name)
	typed := accentStyle.Render(h.line())
	summary := mutedStyle.Width(min(width, 72)).Align(lipgloss.Center).Render(p.Summary)
	hint := mutedStyle.Render("→ explore my work")

	return lipgloss.JoinVertical(lipgloss.Center, name, "", typed, "", summary, "", hint)
}

func typeTick(gen uint64, d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return typeTickMsg{gen: gen} })
}

func blinkTick(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return blinkTickMsg{gen: gen} })
}

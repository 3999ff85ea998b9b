package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	IntroPageID     = "intro"
	PortfolioPageID = "portfolio"
)

// introDoneMsg ends the intro. gen guards against a timer from an earlier
// showing of the page.
type introDoneMsg struct{ gen uint64 }

// IntroPage is the timed loader shown before the portfolio. Any key skips it.
type IntroPage struct {
	name     string
	tagline  string
	duration time.Duration
	next     string
	spinner  spinner.Model
	gen      uint64
}

// NewIntroPage shows name and tagline for duration, then hands over to next.
func NewIntroPage(name, tagline string, duration time.Duration, next string) *IntroPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorMint)
	return &IntroPage{
		name:     name,
		tagline:  tagline,
		duration: duration,
		next:     next,
		spinner:  sp,
	}
}

func (i *IntroPage) ID() string { return IntroPageID }

func (i *IntroPage) Init() tea.Cmd {
	i.gen++
	gen := i.gen
	done := func(time.Time) tea.Msg { return introDoneMsg{gen: gen} }
	if i.duration <= 0 {
		return func() tea.Msg { return done(time.Time{}) }
	}
	return tea.Batch(i.spinner.Tick, tea.Tick(i.duration, done))
}

func (i *IntroPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case introDoneMsg:
		if msg.gen != i.gen {
			return nil, nil
		}
		return nil, &PageNav{PageID: i.next}

	case tea.KeyMsg:
		return nil, &PageNav{PageID: i.next}

	case spinner.TickMsg:
		var cmd tea.Cmd
		i.spinner, cmd = i.spinner.Update(msg)
		return cmd, nil
	}
	return nil, nil
}

// Leave invalidates the pending intro timer.
func (i *IntroPage) Leave() { i.gen++ }

func (i *IntroPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Loading..."
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(i.name),
		"",
		mutedStyle.Italic(true).Render(i.tagline),
		"",
		i.spinner.View()+mutedStyle.Render(" Loading..."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

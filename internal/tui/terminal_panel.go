package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/termfolio/internal/terminal"
)

const shellPrompt = "user@portfolio:~$ "

// terminalPanel is the interactive command line: a viewport over the
// history and a single-line prompt underneath.
type terminalPanel struct {
	keys     KeyMap
	registry *terminal.Registry
	history  terminal.History
	input    textinput.Model
	viewport viewport.Model
	now      func() time.Time
	width    int
}

func newTerminalPanel(keys KeyMap, reg *terminal.Registry, greeting terminal.History, now func() time.Time) *terminalPanel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(shellPrompt)
	ti.Placeholder = "Type a command..."
	ti.CharLimit = 256
	ti.TextStyle = inputStyle

	if now == nil {
		now = time.Now
	}
	p := &terminalPanel{
		keys:     keys,
		registry: reg,
		history:  greeting,
		input:    ti,
		viewport: viewport.New(80, 10),
		now:      now,
		width:    80,
	}
	p.refresh()
	return p
}

func (p *terminalPanel) focus() tea.Cmd { return p.input.Focus() }

func (p *terminalPanel) blur() { p.input.Blur() }

func (p *terminalPanel) resize(width, height int) {
	p.width = max(width, 20)
	p.viewport.Width = p.width
	// Window border and the prompt line.
	p.viewport.Height = max(height-3, 3)
	p.refresh()
}

func (p *terminalPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Submit):
		p.submit()
		return nil
	case key.Matches(msg, p.keys.Complete):
		if name, ok := terminal.Complete(p.registry, p.input.Value()); ok {
			p.input.SetValue(name)
			p.input.CursorEnd()
		}
		return nil
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *terminalPanel) submit() {
	p.history = terminal.Reduce(p.history, p.input.Value(), p.registry, p.now())
	p.input.SetValue("")
	p.refresh()
}

func (p *terminalPanel) refresh() {
	p.viewport.SetContent(p.render())
	p.viewport.GotoBottom()
}

func (p *terminalPanel) render() string {
	out := outputStyle.Width(p.width)
	var b strings.Builder
	for i, e := range p.history {
		if e.Greeting {
			b.WriteString(accentStyle.Render(e.Output))
			b.WriteString("\n")
			if i+1 == len(p.history) || !p.history[i+1].Greeting {
				b.WriteString(mutedStyle.Render("---"))
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(promptStyle.Render(shellPrompt))
		b.WriteString(inputStyle.Render(e.Command))
		b.WriteString("\n")
		if e.Output != "" {
			b.WriteString(out.Render(e.Output))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *terminalPanel) view() string {
	body := lipgloss.JoinVertical(lipgloss.Left, p.viewport.View(), p.input.View())
	return windowStyle.Render(body)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/termfolio/internal/interview"
)

// interviewPanel asks the profile prompts one at a time.
type interviewPanel struct {
	keys    KeyMap
	session *interview.Session
	input   textinput.Model
}

func newInterviewPanel(keys KeyMap, prompts []string) *interviewPanel {
	ti := textinput.New()
	ti.Prompt = "  "
	ti.Placeholder = "Type your response..."
	ti.CharLimit = 200
	ti.TextStyle = inputStyle
	return &interviewPanel{
		keys:    keys,
		session: interview.New(prompts),
		input:   ti,
	}
}

func (p *interviewPanel) focus() tea.Cmd {
	if p.session.Complete() {
		return nil
	}
	return p.input.Focus()
}

func (p *interviewPanel) blur() { p.input.Blur() }

func (p *interviewPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Submit):
		if p.session.Answer(p.input.Value()) {
			p.input.SetValue("")
		}
		if p.session.Complete() {
			p.input.Blur()
		}
		return nil
	case key.Matches(msg, p.keys.Reset):
		p.session.Reset()
		p.input.SetValue("")
		return p.input.Focus()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *interviewPanel) view(width int) string {
	var b strings.Builder
	for _, a := range p.session.Transcript() {
		fmt.Fprintf(&b, "%s%s\n", promptStyle.Render("$ "), mutedStyle.Render(a.Prompt))
		fmt.Fprintf(&b, "  %s\n", inputStyle.Render(a.Reply))
	}

	if prompt, ok := p.session.Current(); ok {
		fmt.Fprintf(&b, "%s%s\n", promptStyle.Render("$ "), mutedStyle.Render(prompt))
		b.WriteString(p.input.View())
	} else {
		fmt.Fprintf(&b, "\n%s%s\n", promptStyle.Render("$ "), inputStyle.Render("profile_complete"))
		fmt.Fprintf(&b, "  %s", mutedStyle.Render(interview.CompletionMessage))
	}

	answered, total := p.session.Progress()
	header := subtitleStyle.Render(fmt.Sprintf("user@interactive-profile:~  [%d/%d]", answered, total))
	return windowStyle.Width(max(width-2, 20)).Render(header + "\n\n" + b.String())
}

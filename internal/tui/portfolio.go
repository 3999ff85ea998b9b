package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/termfolio/internal/profile"
	"github.com/tinytelemetry/termfolio/internal/terminal"
	"github.com/tinytelemetry/termfolio/internal/typewriter"
)

// PortfolioOptions configures the portfolio page.
type PortfolioOptions struct {
	Typewriter     typewriter.Config
	CursorInterval time.Duration
	// Now feeds the terminal's date command; nil means time.Now.
	Now func() time.Time
}

// PortfolioPage shows one section at a time with next/prev navigation.
type PortfolioPage struct {
	profile  *profile.Profile
	keys     KeyMap
	help     help.Model
	showHelp bool
	helpView viewport.Model

	active Section
	hero   *heroPanel
	term   *terminalPanel
	quiz   *interviewPanel
	// category indexes profile.ArticleCategories.
	category int

	width  int
	height int
}

// NewPortfolioPage builds the page for p.
func NewPortfolioPage(p *profile.Profile, opts PortfolioOptions) *PortfolioPage {
	keys := DefaultKeyMap()
	if opts.CursorInterval <= 0 {
		opts.CursorInterval = typewriter.DefaultCursorInterval
	}
	return &PortfolioPage{
		profile:  p,
		keys:     keys,
		help:     help.New(),
		helpView: viewport.New(60, 20),
		hero:     newHeroPanel(p.Segments, opts.Typewriter, opts.CursorInterval),
		term:     newTerminalPanel(keys, terminal.DefaultRegistry(p), terminal.Greeting(p.Greeting...), opts.Now),
		quiz:     newInterviewPanel(keys, p.Prompts),
	}
}

func (p *PortfolioPage) ID() string { return PortfolioPageID }

// Active returns the section on screen.
func (p *PortfolioPage) Active() Section { return p.active }

func (p *PortfolioPage) Init() tea.Cmd {
	return p.enter(p.active)
}

// Leave unmounts the active section.
func (p *PortfolioPage) Leave() {
	p.leave(p.active)
}

func (p *PortfolioPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.help.Width = msg.Width
		p.term.resize(p.contentWidth(), p.bodyHeight())
		p.helpView.Width = min(msg.Width-8, 80)
		p.helpView.Height = max(msg.Height-8, 5)
		return nil, nil

	case typeTickMsg, blinkTickMsg:
		return p.hero.update(msg), nil

	case tea.KeyMsg:
		return p.handleKey(msg), nil
	}

	// Anything else (cursor blink of a focused prompt) goes to the prompt.
	switch p.active {
	case SectionTerminal:
		var cmd tea.Cmd
		p.term.input, cmd = p.term.input.Update(msg)
		return cmd, nil
	case SectionInterview:
		var cmd tea.Cmd
		p.quiz.input, cmd = p.quiz.input.Update(msg)
		return cmd, nil
	}
	return nil, nil
}

func (p *PortfolioPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := p.keys

	if p.showHelp {
		switch {
		case key.Matches(msg, k.Help), key.Matches(msg, k.Escape), key.Matches(msg, k.Quit):
			p.showHelp = false
			return nil
		}
		var cmd tea.Cmd
		p.helpView, cmd = p.helpView.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, k.NextSectionAlways):
		return p.goTo(p.active + 1)
	case key.Matches(msg, k.PrevSectionAlways):
		return p.goTo(p.active - 1)
	}

	if p.active.takesInput() {
		if key.Matches(msg, k.Escape) {
			return p.goTo(p.active + 1)
		}
		if p.active == SectionTerminal {
			return p.term.handleKey(msg)
		}
		return p.quiz.handleKey(msg)
	}

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		p.showHelp = true
		p.helpView.SetContent(p.renderHelpContent())
		p.helpView.GotoTop()
		return nil
	case key.Matches(msg, k.NextSection), key.Matches(msg, k.ScrollDown):
		return p.goTo(p.active + 1)
	case key.Matches(msg, k.PrevSection), key.Matches(msg, k.ScrollUp):
		return p.goTo(p.active - 1)
	case key.Matches(msg, k.First):
		return p.goTo(SectionHero)
	case key.Matches(msg, k.Last):
		return p.goTo(sectionCount - 1)
	case key.Matches(msg, k.Jump):
		return p.goTo(jumpTarget(msg.Runes[0]))
	case p.active == SectionArticles && key.Matches(msg, k.NextCategory):
		p.cycleCategory(1)
	case p.active == SectionArticles && key.Matches(msg, k.PrevCategory):
		p.cycleCategory(-1)
	}
	return nil
}

// jumpTarget maps '1'..'9' to the first nine sections and '0' to the tenth.
func jumpTarget(r rune) Section {
	if r == '0' {
		return 9
	}
	return Section(r - '1')
}

// cycleCategory moves the article filter by step, wrapping at both ends.
func (p *PortfolioPage) cycleCategory(step int) {
	n := len(p.profile.ArticleCategories())
	p.category = ((p.category+step)%n + n) % n
}

// Category returns the active article filter.
func (p *PortfolioPage) Category() string {
	cats := p.profile.ArticleCategories()
	if p.category >= len(cats) {
		return profile.AllCategories
	}
	return cats[p.category]
}

// goTo switches sections, clamping at both ends.
func (p *PortfolioPage) goTo(s Section) tea.Cmd {
	s = min(max(s, 0), sectionCount-1)
	if s == p.active {
		return nil
	}
	p.leave(p.active)
	p.active = s
	return p.enter(s)
}

func (p *PortfolioPage) enter(s Section) tea.Cmd {
	switch s {
	case SectionHero:
		return p.hero.mount()
	case SectionTerminal:
		return p.term.focus()
	case SectionInterview:
		return p.quiz.focus()
	}
	return nil
}

func (p *PortfolioPage) leave(s Section) {
	switch s {
	case SectionHero:
		p.hero.unmount()
	case SectionTerminal:
		p.term.blur()
	case SectionInterview:
		p.quiz.blur()
	}
}

func (p *PortfolioPage) contentWidth() int {
	return max(min(p.width-4, 100), 20)
}

// bodyHeight leaves room for the tab bar and the footer.
func (p *PortfolioPage) bodyHeight() int {
	return max(p.height-4, 5)
}

func (p *PortfolioPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing portfolio..."
	}
	if p.showHelp {
		return p.renderHelpModal(width, height)
	}

	header := p.renderTabs()
	footer := p.renderFooter()
	body := lipgloss.Place(width, p.bodyHeight(), lipgloss.Center, lipgloss.Center, p.renderSection())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (p *PortfolioPage) renderSection() string {
	w := p.contentWidth()
	switch p.active {
	case SectionHero:
		return p.hero.view(p.profile, w)
	case SectionAbout:
		return renderAbout(p.profile, w)
	case SectionExperience:
		return renderExperience(p.profile, w)
	case SectionSkills:
		return renderSkills(p.profile, w)
	case SectionProjects:
		return renderProjects(p.profile, w)
	case SectionArticles:
		return renderArticles(p.profile, p.Category(), w)
	case SectionCoding:
		return renderCodingProfiles(p.profile, w)
	case SectionInterview:
		return p.quiz.view(w)
	case SectionTerminal:
		return p.term.view()
	case SectionContact:
		return renderContact(p.profile)
	}
	return ""
}

func (p *PortfolioPage) renderTabs() string {
	tabs := make([]string, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		style := tabStyle
		if s == p.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (p *PortfolioPage) renderFooter() string {
	if p.active.takesInput() {
		return p.help.View(promptKeys{KeyMap: p.keys, complete: p.active == SectionTerminal})
	}
	if p.active == SectionArticles {
		return p.help.View(articleKeys{KeyMap: p.keys})
	}
	return p.help.View(p.keys)
}

func (p *PortfolioPage) renderHelpContent() string {
	h := help.New()
	h.ShowAll = true
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.profile.Name + " · keys"))
	b.WriteString("\n\n")
	b.WriteString(h.View(p.keys))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("In the Terminal section type 'help' for commands."))
	return b.String()
}

func (p *PortfolioPage) renderHelpModal(width, height int) string {
	modal := windowStyle.
		BorderForeground(ColorPurple).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			p.helpView.View(),
			mutedStyle.Render("?/esc: close · ↑/↓: scroll")))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

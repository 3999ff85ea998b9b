package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/termfolio/internal/profile"
)

// Section is one full-screen part of the portfolio.
type Section int

const (
	SectionHero Section = iota
	SectionAbout
	SectionExperience
	SectionSkills
	SectionProjects
	SectionArticles
	SectionCoding
	SectionInterview
	SectionTerminal
	SectionContact
	sectionCount
)

var sectionTitles = [sectionCount]string{
	"Home", "About", "Experience", "Skills", "Projects", "Articles", "Coding", "Profile", "Terminal", "Contact",
}

func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return "Unknown"
	}
	return sectionTitles[s]
}

// takesInput reports whether the section owns a text prompt, in which case
// letter keys go to the prompt rather than to navigation.
func (s Section) takesInput() bool {
	return s == SectionInterview || s == SectionTerminal
}

func sectionHeading(title string) string {
	return titleStyle.Render(title) + "\n" + mutedStyle.Render(strings.Repeat("─", lipgloss.Width(title)))
}

func renderAbout(p *profile.Profile, width int) string {
	w := min(width, 80)
	var parts []string
	parts = append(parts, sectionHeading("About Me"), "")
	parts = append(parts, bodyStyle.Width(w).Render(p.About))
	if len(p.Interests) > 0 {
		parts = append(parts, "", subtitleStyle.Render("Interests"), mutedStyle.Width(w).Render(strings.Join(p.Interests, " · ")))
	}
	if p.Location != "" {
		parts = append(parts, "", mutedStyle.Render("Based in "+p.Location))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderExperience(p *profile.Profile, width int) string {
	w := min(width, 80)
	parts := []string{sectionHeading("Experience")}
	for _, e := range p.Experience {
		parts = append(parts, "",
			subtitleStyle.Render(e.Role)+mutedStyle.Render(" @ ")+accentStyle.Render(e.Company),
			mutedStyle.Render(fmt.Sprintf("%s – %s", e.Start, e.End)))
		for _, h := range e.Highlights {
			parts = append(parts, bodyStyle.Width(w).Render("• "+h))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSkills(p *profile.Profile, width int) string {
	labelWidth := 0
	for _, g := range p.Skills {
		labelWidth = max(labelWidth, lipgloss.Width(g.Name))
	}
	label := subtitleStyle.Width(labelWidth + 2)
	items := bodyStyle.Width(max(min(width, 80)-labelWidth-2, 10))

	parts := []string{sectionHeading("Skills"), ""}
	for _, g := range p.Skills {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(g.Name), items.Render(strings.Join(g.Items, ", "))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderProjects(p *profile.Profile, width int) string {
	w := min(width, 80)
	parts := []string{sectionHeading("Projects")}
	for _, pr := range p.Projects {
		parts = append(parts, "", subtitleStyle.Render(pr.Name), bodyStyle.Width(w).Render(pr.Description))
		if len(pr.Tech) > 0 {
			parts = append(parts, accentStyle.Render(strings.Join(pr.Tech, " · ")))
		}
		if pr.URL != "" {
			parts = append(parts, mutedStyle.Render(pr.URL))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderArticles lists the articles in category with the filter bar on top.
func renderArticles(p *profile.Profile, category string, width int) string {
	w := min(width, 80)
	parts := []string{sectionHeading("Featured Articles"), ""}

	var filters []string
	for _, c := range p.ArticleCategories() {
		if c == category {
			filters = append(filters, activeTabStyle.Render(c))
		} else {
			filters = append(filters, tabStyle.Render(c))
		}
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, filters...))

	articles := p.FilterArticles(category)
	if len(articles) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(parts, "", mutedStyle.Render("No articles in "+category))...)
	}
	for _, a := range articles {
		meta := a.Date
		if a.ReadTime != "" {
			meta += " · " + a.ReadTime
		}
		parts = append(parts, "",
			subtitleStyle.Render(a.Title)+mutedStyle.Render("  ["+a.Category+"]"),
			mutedStyle.Render(meta),
			bodyStyle.Width(w).Render(a.Excerpt))
		if a.URL != "" {
			parts = append(parts, accentStyle.Render(a.URL))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderCodingProfiles(p *profile.Profile, width int) string {
	w := min(width, 80)
	parts := []string{sectionHeading("Coding Profiles")}
	for _, cp := range p.CodingProfiles {
		parts = append(parts, "",
			subtitleStyle.Render(cp.Name)+" "+mutedStyle.Render(cp.Username))
		if cp.Description != "" {
			parts = append(parts, bodyStyle.Width(w).Render(cp.Description))
		}
		parts = append(parts, fmt.Sprintf("%s %s  %s %s  %s %s",
			mutedStyle.Render("Problems"), accentStyle.Render(cp.Stats.Solved),
			mutedStyle.Render("Rating"), accentStyle.Render(cp.Stats.Rating),
			mutedStyle.Render("Rank"), accentStyle.Render(cp.Stats.Rank)))
		if cp.URL != "" {
			parts = append(parts, mutedStyle.Render(cp.URL))
		}
	}
	if len(p.Achievements) > 0 {
		parts = append(parts, "", subtitleStyle.Render("Key Achievements"))
		for _, a := range p.Achievements {
			parts = append(parts, bodyStyle.Width(w).Render("• "+a.Title+": "+a.Description))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderContact(p *profile.Profile) string {
	parts := []string{sectionHeading("Get In Touch"), ""}
	for _, row := range [][2]string{
		{"Email", p.Contact.Email},
		{"GitHub", p.Contact.GitHub},
		{"LinkedIn", p.Contact.LinkedIn},
		{"Website", p.Contact.Website},
	} {
		if row[1] == "" {
			continue
		}
		parts = append(parts, subtitleStyle.Width(10).Render(row[0])+bodyStyle.Render(row[1]))
	}
	if len(p.Social) > 0 {
		parts = append(parts, "", subtitleStyle.Render("Elsewhere"))
		for _, l := range p.Social {
			parts = append(parts, mutedStyle.Width(10).Render(l.Label)+accentStyle.Render(l.URL))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

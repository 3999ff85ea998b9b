package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytelemetry/termfolio/internal/profile"
)

// DateLayout formats the output of the date command.
const DateLayout = "Mon Jan 2 2006 15:04:05 MST"

// DefaultRegistry builds the standard command set for p.
func DefaultRegistry(p *profile.Profile) *Registry {
	reg := NewRegistry()
	static := func(text string) Handler {
		return func(time.Time) Result { return Output(text) }
	}

	must(reg.Register("whoami", "Display information about me", static(whoami(p))))
	must(reg.Register("skills", "List my technical skills", static(skills(p))))
	must(reg.Register("projects", "List things I have built", static(projects(p))))
	must(reg.Register("contact", "Show contact information", static(contact(p))))
	must(reg.Register("social", "Show social links", static(social(p))))
	must(reg.Register("date", "Display current date and time", func(now time.Time) Result {
		return Output("Current date and time: " + now.Format(DateLayout))
	}))
	must(reg.Register("clear", "Clear the terminal screen", func(time.Time) Result {
		return Clear()
	}))
	must(reg.Register("help", "Show this help message", func(time.Time) Result {
		return Output(help(reg))
	}))
	return reg
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func heading(title string) string {
	return title + "\n" + strings.Repeat("=", len(title)) + "\n"
}

func whoami(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(heading("System Information"))
	fmt.Fprintf(&b, "\nName: %s\nRole: %s\n", p.Name, p.Role)
	if p.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
	}
	if p.About != "" {
		b.WriteString("\nAbout Me:\n--------\n")
		b.WriteString(p.About)
		b.WriteString("\n")
	}
	if names := p.SkillNames(); len(names) > 0 {
		fmt.Fprintf(&b, "\nSkills: %s\n", strings.Join(names, ", "))
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(p.Interests, ", "))
	}
	b.WriteString("\nType 'help' for available commands.")
	return b.String()
}

func skills(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(heading("Technical Skills"))
	width := 0
	for _, g := range p.Skills {
		width = max(width, len(g.Name)+1)
	}
	for _, g := range p.Skills {
		fmt.Fprintf(&b, "\n%-*s %s", width+2, g.Name+":", strings.Join(g.Items, ", "))
	}
	return b.String()
}

func projects(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(heading("Projects"))
	for _, pr := range p.Projects {
		fmt.Fprintf(&b, "\n%s\n  %s\n", pr.Name, pr.Description)
		if len(pr.Tech) > 0 {
			fmt.Fprintf(&b, "  Tech: %s\n", strings.Join(pr.Tech, ", "))
		}
		if pr.URL != "" {
			fmt.Fprintf(&b, "  %s\n", pr.URL)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func contact(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(heading("Contact Information"))
	b.WriteString("\n")
	for _, row := range [][2]string{
		{"Email", p.Contact.Email},
		{"GitHub", p.Contact.GitHub},
		{"LinkedIn", p.Contact.LinkedIn},
		{"Website", p.Contact.Website},
	} {
		if row[1] != "" {
			fmt.Fprintf(&b, "%-10s%s\n", row[0]+":", row[1])
		}
	}
	b.WriteString("\nFeel free to reach out for collaboration opportunities!")
	return b.String()
}

func social(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString(heading("Social"))
	for _, l := range p.Social {
		fmt.Fprintf(&b, "\n%-10s%s", l.Label+":", l.URL)
	}
	return b.String()
}

func help(reg *Registry) string {
	var b strings.Builder
	b.WriteString(heading("Available Commands"))
	b.WriteString("\n")
	for _, name := range reg.Names() {
		fmt.Fprintf(&b, "%-10s- %s\n", name, reg.Description(name))
	}
	b.WriteString("\nTip: Use Tab for command completion")
	return b.String()
}

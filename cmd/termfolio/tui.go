package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tinytelemetry/termfolio/internal/profile"
	"github.com/tinytelemetry/termfolio/internal/tui"
)

func runTUI(cfg appConfig, logger *zap.Logger) error {
	p, err := profile.Load(cfg.Profile)
	if err != nil {
		return err
	}

	intro := tui.NewIntroPage(p.Name, p.Tagline, cfg.IntroDuration, tui.PortfolioPageID)
	portfolio := tui.NewPortfolioPage(p, tui.PortfolioOptions{
		Typewriter:     cfg.typewriterConfig(),
		CursorInterval: cfg.CursorInterval,
	})
	app := tui.NewApp(intro, portfolio)

	logger.Debug("starting tui", zap.String("profile", p.Name), zap.Int("segments", len(p.Segments)))

	prog := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

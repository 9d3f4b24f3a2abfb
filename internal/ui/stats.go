package ui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fatcat/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Pet    pet.Stats
	Tuning pet.Tuning
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	p := m.Pet
	status := pet.GetStatusWithLabel(p, m.Tuning)

	level := fmt.Sprintf("%d (%d/%d exp)", p.Level, p.Exp, pet.ExpForNextLevel(p.Level))
	if p.Level >= pet.MaxLevel {
		level = fmt.Sprintf("%d (max)", p.Level)
	}
	games := fmt.Sprintf("%d played, %dW %dD %dL", p.Games.Total, p.Games.Wins, p.Games.Draws, p.Games.Loses)

	var s strings.Builder
	s.WriteString("╔════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  %s %-31s ║\n", pet.GetStatus(p), p.Name))
	s.WriteString("╠════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Gender:  %-24s ║\n", p.Gender))
	s.WriteString(fmt.Sprintf("║  Born:    %-24s ║\n", p.Birthday.Local().Format("2006-01-02")))
	s.WriteString(fmt.Sprintf("║  Nature:  %-24s ║\n", p.Personality))
	s.WriteString(fmt.Sprintf("║  Hobby:   %-24s ║\n", p.Hobby))
	s.WriteString("║                                    ║\n")
	s.WriteString(fmt.Sprintf("║  Level:   %-24s ║\n", level))
	s.WriteString(fmt.Sprintf("║  Status:  %-24s ║\n", status))
	s.WriteString(fmt.Sprintf("║  Games:   %-24s ║\n", games))
	s.WriteString("║                                    ║\n")
	for _, n := range pet.Needs(p) {
		s.WriteString(fmt.Sprintf("║  %-10s [%s] %3d%%           ║\n", n.Need+":", makeBar(n.Value, 5), n.Value))
	}
	s.WriteString("╚════════════════════════════════════╝\n")
	s.WriteString("\nPress ESC, click, or any key to close...")

	return s.String()
}

// DisplayStats shows the stats display
func DisplayStats(p pet.Stats, tuning pet.Tuning) {
	program := tea.NewProgram(StatsModel{Pet: p, Tuning: tuning}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running stats display: %v\n", err)
		os.Exit(1)
	}
}

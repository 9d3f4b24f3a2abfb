package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fatcat/internal/pet"
	"fatcat/internal/wander"
)

var gameStyles = struct {
	title      lipgloss.Style
	status     lipgloss.Style
	menu       lipgloss.Style
	menuBox    lipgloss.Style
	stats      lipgloss.Style
	speech     lipgloss.Style
	playground lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	speech: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFD700")).
		Padding(0, 1),

	playground: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#555555")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.InCheatMenu {
		return m.renderCheatMenu()
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	title := m.renderTitle()
	stats := m.renderStats()
	status := m.renderStatus()

	sections := []string{
		title,
		"",
		stats,
		"",
		status,
	}

	if m.Speech != "" && pet.TimeNow().Before(m.SpeechExpires) {
		sections = append(sections, gameStyles.speech.Render("💬 "+m.Speech))
	}
	sections = append(sections, m.renderPlayground())

	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	helpText := "arrows to move • enter to select • t to talk • c for settings • q to quit"
	menu := m.renderMenu()
	if m.InGame {
		menu = m.renderGameMenu()
		helpText = "pick a hand • enter to throw • esc to cancel"
	}

	sections = append(sections,
		"",
		menu,
		"",
		gameStyles.status.Render(helpText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	return gameStyles.title.Render(fmt.Sprintf("%s %s  Lv.%d", pet.GetStatus(m.Pet), m.Pet.Name, m.Pet.Level))
}

func makeBar(value, width int) string {
	filled := value * width / pet.MaxStat
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) renderStats() string {
	expLine := "MAX"
	if m.Pet.Level < pet.MaxLevel {
		expLine = fmt.Sprintf("%d/%d", m.Pet.Exp, pet.ExpForNextLevel(m.Pet.Level))
	}
	progress := int(pet.LevelProgress(m.Pet) * pet.MaxStat)

	stats := []struct {
		name, value string
	}{
		{"Energy", fmt.Sprintf("[%s] %3d%%", makeBar(m.Pet.Health, 10), m.Pet.Health)},
		{"Food", fmt.Sprintf("[%s] %3d%%", makeBar(m.Pet.Hunger, 10), m.Pet.Hunger)},
		{"Water", fmt.Sprintf("[%s] %3d%%", makeBar(m.Pet.Thirst, 10), m.Pet.Thirst)},
		{"Sleep", fmt.Sprintf("[%s] %3d%%", makeBar(m.Pet.Sleep, 10), m.Pet.Sleep)},
		{"Happy", fmt.Sprintf("[%s] %3d%%", makeBar(m.Pet.Happiness, 10), m.Pet.Happiness)},
		{"Exp", fmt.Sprintf("[%s] %s", makeBar(progress, 10), expLine)},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-7s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	return gameStyles.status.Render(fmt.Sprintf("Status: %s", pet.GetStatusWithLabel(m.Pet, m.Engine.Tuning())))
}

// renderPlayground draws the area the pet wanders around in
func (m Model) renderPlayground() string {
	w := m.Walker
	rows := make([]string, w.Height)
	for y := 0; y < w.Height; y++ {
		if y != w.Pos.Y {
			rows[y] = strings.Repeat(" ", w.Width)
			continue
		}
		// emoji are two cells wide
		x := min(w.Pos.X, w.Width-2)
		rows[y] = strings.Repeat(" ", x) + pet.GetStatus(m.Pet) + strings.Repeat(" ", w.Width-x-2)
	}
	return gameStyles.playground.Render(strings.Join(rows, "\n"))
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range menuOptions {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderGameMenu() string {
	games := m.Pet.Games
	header := fmt.Sprintf("Rock, paper, scissors! (W%d D%d L%d)", games.Wins, games.Draws, games.Loses)
	menuItems := []string{header, ""}
	for i, h := range hands {
		cursor := " "
		if m.HandChoice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s %s", cursor, h.Emoji(), h))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

var cheatMenuOptions = []string{
	"Grant 100 Exp",
	"Reset Pet",
	"Back",
}

func (m Model) renderCheatMenu() string {
	var menuItems []string
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF0000")).
		Render("⚙️  SETTINGS ⚙️")

	for i, choice := range cheatMenuOptions {
		cursor := " "
		if m.CheatChoice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
		"",
		gameStyles.status.Render("Press 'c' or Esc to exit"),
	)
}

func (m Model) updateCheatMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c", "esc":
		m.InCheatMenu = false
	case "up", "k":
		if m.CheatChoice > 0 {
			m.CheatChoice--
		}
	case "down", "j":
		if m.CheatChoice < len(cheatMenuOptions)-1 {
			m.CheatChoice++
		}
	case "enter", " ":
		m.executeCheat()
	}
	return m, nil
}

func (m *Model) executeCheat() {
	switch m.CheatChoice {
	case 0: // Grant Exp
		if m.Engine.AddExp(100) {
			m.setMessage("🎮 Level up!")
		} else {
			m.setMessage("🎮 +100 exp")
		}
	case 1: // Reset Pet
		m.Engine.Reset()
		m.Walker = wander.New(m.Walker.Width, m.Walker.Height)
		m.setMessage("🎮 A brand new pet!")
	case 2: // Back
		m.InCheatMenu = false
	}
	m.Pet = m.Engine.Snapshot()
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)
	title := m.renderTitle()

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	sections := []string{
		title,
		"",
		animStyle.Render(frame),
	}

	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arpele/tempo/internal/domain"
)

// View renders the timer screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tone := lipgloss.Color(m.theme.ToneColor(m.snap.Tone))
	helpColor := lipgloss.Color(m.theme.ColorHelp)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tone)
	dimStyle := lipgloss.NewStyle().Foreground(helpColor)

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.snap.StatusLabel))
	b.WriteString("\n\n")

	clock := domain.FormatClock(m.snap.RemainingSeconds)
	b.WriteString(renderBigClock(clock, tone, m.width))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.snap.Progress()))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(m.cycleLine()))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := fmt.Sprintf("space %s · r reset · a apply config · q quit",
		strings.ToLower(m.snap.PrimaryLabel))
	b.WriteString(dimStyle.Render(help))
	b.WriteString("\n")

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

// cycleLine summarizes plan progress under the countdown.
func (m Model) cycleLine() string {
	current := m.snap.TotalCycles - m.snap.CyclesLeft + 1
	if current > m.snap.TotalCycles {
		current = m.snap.TotalCycles
	}
	if current < 1 {
		current = 1
	}
	return fmt.Sprintf("Cycle %d of %d · %s left in plan",
		current, m.snap.TotalCycles, domain.FormatClock(m.snap.TotalRemainingSeconds))
}

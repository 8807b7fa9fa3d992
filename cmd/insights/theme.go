package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/2beens/gyminsights/internal/gymstats/insights"

	"github.com/charmbracelet/lipgloss"
)

const (
	primaryCell   = "█"
	secondaryCell = "▒"
)

var (
	cPrimary   = lipgloss.Color("63")  // blue
	cSecondary = lipgloss.Color("111") // light blue
	cAccent    = lipgloss.Color("205") // magenta
	cGood      = lipgloss.Color("42")  // green
	cMuted     = lipgloss.Color("244") // gray
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	goodStyle      = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	mutedStyle     = lipgloss.NewStyle().Foreground(cMuted)
	primaryStyle   = lipgloss.NewStyle().Foreground(cPrimary)
	secondaryStyle = lipgloss.NewStyle().Foreground(cSecondary)
	muscleStyle    = lipgloss.NewStyle().Width(12)
)

// renderBar draws a muscle bar across width cells. The widths of a bar are
// fractions of the full width, so the largest bar spans 3/4 of it.
func renderBar(bar insights.MuscleBar, width int) string {
	primaryCells := int(math.Round(bar.PrimaryWidth * float64(width)))
	secondaryCells := int(math.Round(bar.Width()*float64(width))) - primaryCells
	if primaryCells+secondaryCells == 0 && bar.Percent > 0 {
		// keep a visible sliver for tiny loads
		secondaryCells = 1
	}

	return fmt.Sprintf("%s %s%s %s",
		muscleStyle.Render(bar.Muscle.String()),
		primaryStyle.Render(strings.Repeat(primaryCell, primaryCells)),
		secondaryStyle.Render(strings.Repeat(secondaryCell, max(secondaryCells, 0))),
		mutedStyle.Render(bar.Label),
	)
}

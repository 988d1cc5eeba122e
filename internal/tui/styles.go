package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mpcalc/internal/ui"
)

// Style variables for the dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	panelTitleStyle    lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	tableHeaderStyle   lipgloss.Style
	engineNameStyle    lipgloss.Style
	resultValueStyle   lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	mutedStyle         lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTableTheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Header)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Header).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Header)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Border)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Value)

	tableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Header)

	engineNameStyle = lipgloss.NewStyle().
		Foreground(t.Name)

	resultValueStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Border)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Value).
		Bold(true)

	mutedStyle = lipgloss.NewStyle().
		Foreground(t.Border)

	statusRunningStyle = lipgloss.NewStyle().
		Foreground(t.Header).
		Bold(true)

	statusPausedStyle = lipgloss.NewStyle().
		Foreground(t.Value).
		Bold(true)

	statusDoneStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	cpuSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Header)

	memSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Value)
}

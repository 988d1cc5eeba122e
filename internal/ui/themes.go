package ui

import (
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TextColors are the ANSI escape codes used for inline text.
type TextColors struct {
	Accent    string
	Muted     string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

// TableTheme defines the lipgloss colors of rendered tables and of the
// dashboard panels.
type TableTheme struct {
	Header  lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Name    lipgloss.TerminalColor
	Value   lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
}

// Theme is a named color scheme covering inline text and tables.
type Theme struct {
	Name  string
	Text  TextColors
	Table TableTheme
}

// xterm256 returns a theme whose text and table colors share the same
// 256-color palette indices.
func xterm256(name string, accent, muted, success, warning, errc, info string) Theme {
	esc := func(idx string) string { return "\033[38;5;" + idx + "m" }
	return Theme{
		Name: name,
		Text: TextColors{
			Accent: esc(accent), Muted: esc(muted), Success: esc(success),
			Warning: esc(warning), Error: esc(errc), Info: esc(info),
			Bold: "\033[1m", Underline: "\033[4m", Reset: "\033[0m",
		},
		Table: TableTheme{
			Header:  lipgloss.Color(accent),
			Border:  lipgloss.Color(muted),
			Name:    lipgloss.Color(info),
			Value:   lipgloss.Color(warning),
			Success: lipgloss.Color(success),
			Error:   lipgloss.Color(errc),
		},
	}
}

var (
	// DarkTheme suits dark terminal backgrounds and is the default.
	DarkTheme = xterm256("dark", "39", "245", "82", "220", "196", "141")
	// LightTheme suits light terminal backgrounds.
	LightTheme = xterm256("light", "27", "240", "28", "130", "124", "54")
	// NoColorTheme emits no escape codes.
	NoColorTheme = Theme{
		Name: "none",
		Table: TableTheme{
			Header: lipgloss.NoColor{}, Border: lipgloss.NoColor{}, Name: lipgloss.NoColor{},
			Value: lipgloss.NoColor{}, Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{},
		},
	}

	themes = []Theme{DarkTheme, LightTheme, NoColorTheme}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames returns the names accepted by LookupTheme.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// LookupTheme returns the theme registered under name.
func LookupTheme(name string) (Theme, bool) {
	i := slices.IndexFunc(themes, func(t Theme) bool { return t.Name == name })
	if i < 0 {
		return Theme{}, false
	}
	return themes[i], true
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// GetCurrentTableTheme returns the table colors of the active theme.
func GetCurrentTableTheme() TableTheme {
	return GetCurrentTheme().Table
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme activates the named theme. Colors are disabled when noColor is
// set or the NO_COLOR environment variable exists (https://no-color.org/).
// Unknown names select the dark theme.
func InitTheme(name string, noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	t, ok := LookupTheme(name)
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

package ui

import (
	"os"
	"slices"
	"testing"
)

// Theme tests mutate package state and therefore do not run in parallel.

func TestInitTheme(t *testing.T) {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		t.Skip("NO_COLOR is set in the environment")
	}
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name    string
		noColor bool
		want    string
	}{
		{"dark", false, "dark"},
		{"light", false, "light"},
		{"none", false, "none"},
		{"solarized", false, "dark"},
		{"light", true, "none"},
	}
	for _, tt := range tests {
		InitTheme(tt.name, tt.noColor)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("InitTheme(%q, %v) active theme = %q, want %q", tt.name, tt.noColor, got, tt.want)
		}
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	t.Setenv("NO_COLOR", "1")
	InitTheme("light", false)
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("NO_COLOR should produce empty escape codes")
	}
	if GetCurrentTableTheme() != NoColorTheme.Table {
		t.Error("NO_COLOR should select the uncolored table theme")
	}
}

func TestColorsFollowTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != "\033[38;5;82m" || ColorUnderline() != "\033[4m" {
		t.Errorf("dark success = %q", ColorGreen())
	}
	SetCurrentTheme(LightTheme)
	if ColorBlue() != "\033[38;5;27m" || ColorCyan() != "\033[38;5;240m" {
		t.Errorf("light accent = %q, muted = %q", ColorBlue(), ColorCyan())
	}
	if GetCurrentTableTheme() != LightTheme.Table {
		t.Error("table colors do not follow the light theme")
	}
}

func TestLookupTheme(t *testing.T) {
	if !slices.Equal(ThemeNames(), []string{"dark", "light", "none"}) {
		t.Errorf("ThemeNames() = %v", ThemeNames())
	}
	if _, ok := LookupTheme("neon"); ok {
		t.Error("unknown theme found")
	}
	if th, ok := LookupTheme("light"); !ok || th.Table.Header == nil {
		t.Errorf("light theme lookup = %+v, %v", th, ok)
	}
}

package ui

// The Color* functions return the escape code of the active theme for each
// role, or an empty string when colors are disabled.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Text.Reset }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Text.Bold }

// ColorUnderline starts underlined text.
func ColorUnderline() string { return GetCurrentTheme().Text.Underline }

// ColorRed marks errors.
func ColorRed() string { return GetCurrentTheme().Text.Error }

// ColorGreen marks success.
func ColorGreen() string { return GetCurrentTheme().Text.Success }

// ColorYellow marks warnings and measured values.
func ColorYellow() string { return GetCurrentTheme().Text.Warning }

// ColorBlue marks primary elements.
func ColorBlue() string { return GetCurrentTheme().Text.Accent }

// ColorMagenta marks informational elements.
func ColorMagenta() string { return GetCurrentTheme().Text.Info }

// ColorCyan marks secondary elements.
func ColorCyan() string { return GetCurrentTheme().Text.Muted }

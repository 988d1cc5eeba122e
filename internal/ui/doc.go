// Package ui provides theme and color support for the command-line output.
// It defines color schemes as ANSI escape codes for inline text and as
// lipgloss colors for rendered tables.
package ui

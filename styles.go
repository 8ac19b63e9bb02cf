package main

import "github.com/charmbracelet/lipgloss"

// reportStyles is the style set passed into the rendering functions.
// It is built once per run from the --no-color flag; validation itself
// never touches it.
type reportStyles struct {
	File lipgloss.Style
	OK   lipgloss.Style
	Fail lipgloss.Style
	Warn lipgloss.Style
	Key  lipgloss.Style
}

var (
	colorOK   = lipgloss.Color("#10B981")
	colorFail = lipgloss.Color("#EF4444")
	colorWarn = lipgloss.Color("#F59E0B")
	colorKey  = lipgloss.Color("#6B7280")
)

// newReportStyles returns colored styles, or pass-through styles when
// color is disabled.
func newReportStyles(color bool) reportStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return reportStyles{File: plain, OK: plain, Fail: plain, Warn: plain, Key: plain}
	}
	return reportStyles{
		File: lipgloss.NewStyle().Bold(true),
		OK:   lipgloss.NewStyle().Foreground(colorOK),
		Fail: lipgloss.NewStyle().Foreground(colorFail).Bold(true),
		Warn: lipgloss.NewStyle().Foreground(colorWarn),
		Key:  lipgloss.NewStyle().Foreground(colorKey),
	}
}

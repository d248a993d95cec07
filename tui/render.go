// Package tui renders colours in the terminal and hosts the interactive
// colour editor.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmuldo/hexref/colorspace"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)
)

// Swatch paints label on a c background with readable text.
func Swatch(c colorspace.RGB, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.OverlayText().Hex())).
		Padding(0, 1).
		Render(label)
}

// Sample renders text in fg on a bg background.
func Sample(fg, bg colorspace.RGB, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Padding(1, 2).
		Render(text)
}

// Strip renders colours side by side, each labelled with its hex.
func Strip(colors []colorspace.RGB) string {
	blocks := make([]string, len(colors))
	for i, c := range colors {
		blocks[i] = Swatch(c, c.Hex())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Card frames a title and rows of "label value" pairs.
func Card(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	lines := []string{titleStyle.Render(title)}
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-*s", width, r[0]))+"  "+r[1])
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Badge renders a pass/fail marker for a WCAG level.
func Badge(label string, pass bool) string {
	if pass {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓ " + label)
	}
	return errorStyle.Render("✗ " + label)
}

// Badges renders all four WCAG levels of r.
func Badges(r colorspace.WCAGRating) string {
	return strings.Join([]string{
		Badge("AA", r.AA),
		Badge("AA large", r.AALarge),
		Badge("AAA", r.AAA),
		Badge("AAA large", r.AAALarge),
	}, "  ")
}

// Warn renders an advisory line.
func Warn(s string) string {
	return warnStyle.Render("! " + s)
}

package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	White = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	Good = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82"))

	Warn = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)

// Separator renders a dim horizontal rule.
func Separator(width int) string {
	return Subtle.Render(strings.Repeat("─", width))
}

// Sparkline renders values as a compact unicode bar strip.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/donors"
)

// DefaultChartWidth is the length of the longest bar when no width is given.
const DefaultChartWidth = 40

const barChar = "█"

// BarChart renders a horizontal bar chart of s, one line per label.
//
// Bars are scaled so that the largest value spans width cells, and colored
// with the series colors. Any positive value gets at least one cell, non
// positive values get none.
func BarChart(s donors.Series, width int) string {
	if s.Len() == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultChartWidth
	}

	points := s.Points()
	labelWidth, maxValue := 0, 0.0
	for _, p := range points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		maxValue = max(maxValue, p.Value)
	}
	labelStyle := lipgloss.NewStyle().Width(labelWidth)

	var sb strings.Builder
	for _, p := range points {
		n := 0
		if p.Value > 0 && maxValue > 0 {
			n = max(1, int(p.Value/maxValue*float64(width)+0.5))
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(strings.Repeat(barChar, n))
		fmt.Fprintf(&sb, "%s %s %s\n", labelStyle.Render(p.Label), bar, strconv.FormatFloat(p.Value, 'f', -1, 64))
	}
	return sb.String()
}

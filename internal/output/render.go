package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var styled string
	switch {
	case score >= 70:
		styled = StyleSuccess.Render(bar)
	case score >= 40:
		styled = StyleWarning.Render(bar)
	default:
		styled = StyleError.Render(bar)
	}

	return fmt.Sprintf("%s %s", styled, StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// TrendArrowPercent returns a styled trend indicator for a percentage delta.
func TrendArrowPercent(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	if delta > 0 {
		return StyleSuccess.Render(fmt.Sprintf("▲ +%.0f%%", delta))
	}
	return StyleError.Render(fmt.Sprintf("▼ %.0f%%", delta))
}

// sectionWidth is the horizontal rule width under section headers.
var sectionWidth = 66

// SetWidth adjusts rendering to the configured terminal width.
func SetWidth(w int) {
	if w > 14 {
		sectionWidth = w - 14
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", sectionWidth))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// heatShades are the cells used for increasing completion counts.
var heatShades = []string{"·", "░", "▒", "▓", "█"}

// HeatCell returns the shaded cell for a day's completion count relative to
// the habit total.
func HeatCell(count, total int) string {
	if count <= 0 {
		return StyleMuted.Render(heatShades[0])
	}
	idx := len(heatShades) - 1
	if total > 0 && count < total {
		// Scale partial days across the middle shades.
		idx = 1 + count*(len(heatShades)-2)/total
		if idx > len(heatShades)-2 {
			idx = len(heatShades) - 2
		}
	}
	return StyleSuccess.Render(heatShades[idx])
}

// TypeBadge renders a colored label for an insight type.
func TypeBadge(insightType string) string {
	label := strings.ToUpper(insightType)
	switch insightType {
	case "celebration":
		return StyleSuccess.Render(label)
	case "warning":
		return StyleWarning.Render(label)
	case "suggestion":
		return StyleHeader.Render(label)
	default:
		return StyleBold.Render(label)
	}
}

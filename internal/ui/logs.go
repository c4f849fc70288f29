package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ladle/internal/logtail"
)

// renderLogs renders the diagnostics log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	title := styles.Heading.Render("Diagnostics") + "  " +
		styles.FaintText.Render(truncateMiddle(m.logPath, max(m.width-20, 10)))

	body := m.logView.View()
	if m.logErr != nil {
		body = styles.DangerText.Render("Could not read log: " + m.logErr.Error())
	}

	return styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Width(max(m.width-2, 20)).
		Render(title + "\n" + body)
}

func (m Model) renderLogLines(entries []logtail.Entry) string {
	styles := m.theme.Styles()
	if len(entries) == 0 {
		return styles.MutedText.Render("No log entries yet.")
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		style := styles.Text
		switch e.Level {
		case "error":
			style = styles.DangerText
		case "warn":
			style = styles.WarningText
		case "debug":
			style = styles.FaintText
		}
		lines = append(lines, style.Render(truncate(e.String(), max(m.logView.Width, 20))))
	}
	return strings.Join(lines, "\n")
}

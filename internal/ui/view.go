package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/ladle/internal/recipe"
)

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading…"
	}
	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayLogs:
		return m.renderLogs()
	}

	parts := []string{m.renderHeader(), m.renderSearchBox()}
	if banner := m.renderBanner(); banner != "" {
		parts = append(parts, banner)
	}
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(strings.Join(parts, "\n")) - lipgloss.Height(footer) - 1

	if m.snapshot.Selected != nil {
		parts = append(parts, m.detail.View())
	} else {
		parts = append(parts, m.renderResults(max(bodyHeight, 1)))
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)
	sep := styles.Header.Render("  ")

	segments := []string{styles.Logo.Render("ladle")}
	snap := m.snapshot
	switch {
	case snap.Loading():
		segments = append(segments, styles.WarningText.Background(bg).Render(m.spinner.View()+" Loading…"))
	case snap.Failed():
		segments = append(segments, styles.DangerText.Background(bg).Render("Error"))
	case snap.Term != "":
		segments = append(segments, styles.Text.Background(bg).Render(
			fmt.Sprintf("%s for %q", pluralize(len(snap.Results), "recipe", "recipes"), snap.Term)))
	}
	if snap.IsOffline() {
		segments = append(segments, styles.WarningText.Background(bg).Render("TheMealDB unreachable"))
	}
	segments = append(segments, styles.FaintText.Background(bg).Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

func (m Model) renderSearchBox() string {
	border := m.theme.Border
	if m.focus == focusSearch {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(border)).
		Width(m.width).
		Render(m.input.View())
}

func (m Model) renderBanner() string {
	if !m.snapshot.Failed() {
		return ""
	}
	styles := m.theme.Styles()
	return styles.Banner.Width(m.width).Render(m.snapshot.Status.Message + "  (esc to dismiss)")
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	line := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.prefsErr != nil {
		line += styles.DangerText.Render("  prefs not saved")
	}
	return styles.Footer.Width(m.width).Render(line)
}

func (m Model) renderResults(height int) string {
	styles := m.theme.Styles()
	snap := m.snapshot
	if len(snap.Results) == 0 {
		var msg string
		switch {
		case snap.Loading():
			msg = m.spinner.View() + " Searching…"
		case snap.Failed():
			msg = ""
		case snap.Term != "":
			msg = fmt.Sprintf("No recipes found for %q.", snap.Term)
		default:
			msg = "Type to search TheMealDB."
		}
		return lipgloss.NewStyle().Padding(1, 2).Height(height).Render(styles.MutedText.Render(msg))
	}

	cardHeight := 3
	if m.prefs.CompactCards {
		cardHeight = 1
	}
	visible := max(height/cardHeight, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(snap.Results))

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(snap.Results[i], i == m.cursor))
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(cards, "\n"))
}

func (m Model) renderCard(r recipe.Recipe, selected bool) string {
	styles := m.theme.Styles()
	width := max(m.width-4, 10)

	marker := "  "
	nameStyle := styles.Text.Bold(true)
	if selected {
		marker = styles.AccentText.Render("▸ ")
		nameStyle = styles.Selected.Bold(true)
	}

	meta := joinNonEmpty(" · ", r.Category, r.Area)
	if m.prefs.CompactCards {
		line := nameStyle.Render(truncate(r.Name, width/2))
		if meta != "" {
			line += "  " + styles.MutedText.Render(truncate(meta, width/2))
		}
		return marker + line
	}

	summary := r.Summary()
	if summary == "" {
		summary = "No ingredients listed."
	}
	return strings.Join([]string{
		marker + nameStyle.Render(truncate(r.Name, width)),
		"  " + styles.MutedText.Render(truncate(meta, width)),
		"  " + styles.FaintText.Render(truncate(summary, width)),
	}, "\n")
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

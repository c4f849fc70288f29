package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/ladle/internal/recipe"
)

// renderDetail renders the full recipe for the detail viewport.
func renderDetail(r recipe.Recipe, width int, styles Styles) string {
	wrap := max(width-2, 20)
	var b strings.Builder

	b.WriteString(styles.Heading.Render(wordwrap.String(r.Name, wrap)))
	b.WriteString("\n")
	if meta := joinNonEmpty(" · ", r.Category, r.Area); meta != "" {
		b.WriteString(styles.MutedText.Render(meta))
		b.WriteString("\n")
	}
	if len(r.Tags) > 0 {
		b.WriteString(styles.InfoText.Render(strings.Join(r.Tags, "  ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(field(styles, "Image", r.Image()))
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		field(styles, "Prep", r.PrepTime),
		field(styles, "Cook", r.CookTime),
		field(styles, "Servings", r.Servings),
	}, "   "))
	b.WriteString("\n\n")

	b.WriteString(styles.Heading.Render("Ingredients"))
	b.WriteString("\n")
	if len(r.Ingredients) == 0 {
		b.WriteString(styles.MutedText.Render("No ingredients listed."))
		b.WriteString("\n")
	}
	for _, item := range r.Ingredients {
		b.WriteString(hangingIndent("• ", wordwrap.String(item, wrap-2)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.Heading.Render("Instructions"))
	b.WriteString("\n")
	if len(r.Instructions) == 0 {
		b.WriteString(styles.MutedText.Render("No instructions available."))
		b.WriteString("\n")
	}
	for i, step := range r.Instructions {
		prefix := fmt.Sprintf("%d. ", i+1)
		b.WriteString(hangingIndent(prefix, wordwrap.String(step, wrap-len(prefix))))
		b.WriteString("\n")
	}

	if r.VideoURL != "" || r.SourceURL != "" {
		b.WriteString("\n")
		if r.VideoURL != "" {
			b.WriteString(field(styles, "Video", r.VideoURL))
			b.WriteString("\n")
		}
		if r.SourceURL != "" {
			b.WriteString(field(styles, "Source", r.SourceURL))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func field(styles Styles, label, value string) string {
	return styles.MutedText.Render(label+":") + " " + styles.Text.Render(value)
}

// hangingIndent prefixes the first line and aligns continuation lines under it.
func hangingIndent(prefix, text string) string {
	pad := strings.Repeat(" ", len([]rune(prefix)))
	lines := strings.Split(text, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
			continue
		}
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

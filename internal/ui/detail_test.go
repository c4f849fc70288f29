package ui

import (
	"strings"
	"testing"

	"github.com/five82/ladle/internal/recipe"
)

func TestRenderDetail_EmptySections(t *testing.T) {
	out := renderDetail(recipe.Recipe{ID: "1", Name: "Plain Toast", PrepTime: "N/A", CookTime: "N/A", Servings: "N/A"}, 60, GetTheme("").Styles())

	for _, want := range []string{
		"Plain Toast",
		"No ingredients listed.",
		"No instructions available.",
		recipe.PlaceholderImageURL,
		"Servings:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDetail_NumbersAndWrapsInstructions(t *testing.T) {
	r := recipe.Recipe{
		ID:           "52772",
		Name:         "Teriyaki Chicken Casserole",
		Ingredients:  []string{"3/4 cup soy sauce", "1/2 cup water"},
		Instructions: []string{"Preheat oven to 350 degrees and spray a 9x13-inch baking pan with non-stick spray.", "Bake for 35 minutes."},
		VideoURL:     "https://www.youtube.com/watch?v=4aZr5hZXP_s",
	}

	out := renderDetail(r, 40, GetTheme("Basil").Styles())

	if !strings.Contains(out, "1. Preheat") || !strings.Contains(out, "2. Bake for 35 minutes.") {
		t.Fatalf("instructions not numbered:\n%s", out)
	}
	if !strings.Contains(out, "• 3/4 cup soy sauce") {
		t.Fatalf("ingredients not bulleted:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "1. ") && len([]rune(line)) > 40 {
			t.Fatalf("instruction line not wrapped: %q", line)
		}
	}
	if !strings.Contains(out, "Video:") {
		t.Fatalf("video link missing:\n%s", out)
	}
}

func TestThemeCycle(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Paprika" {
		t.Fatalf("ThemeNames() = %v", names)
	}
	if got := NextTheme(names[len(names)-1]); got != names[0] {
		t.Fatalf("NextTheme wraps to %q, want %q", got, names[0])
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
	if GetTheme("nope").Name != "Paprika" {
		t.Fatalf("GetTheme fallback = %q, want Paprika", GetTheme("nope").Name)
	}
}

func TestTruncateHelpers(t *testing.T) {
	if got := truncate("  Teriyaki Chicken Casserole ", 10); got != "Teriyak..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncateMiddle("/home/cook/.local/share/ladle/logs/ladle.log", 21); len([]rune(got)) != 21 || !strings.HasSuffix(got, "ladle.log") {
		t.Fatalf("truncateMiddle = %q", got)
	}
	if got := joinNonEmpty(" · ", "Chicken", " ", "Indian"); got != "Chicken · Indian" {
		t.Fatalf("joinNonEmpty = %q", got)
	}
}

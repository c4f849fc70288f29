package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/five82/ladle/internal/app"
	"github.com/five82/ladle/internal/recipe"
)

const showWrapWidth = 80

func newShowCommand(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full recipe for a TheMealDB id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			rt, err := app.Setup(flags.options())
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			rt.Controller.SelectRecipe(cmd.Context(), args[0])
			snap := rt.Controller.Snapshot()
			if snap.Failed() {
				return errors.New(snap.Status.Message)
			}
			if snap.Selected == nil {
				return fmt.Errorf("recipe %s: no result", args[0])
			}

			switch format {
			case formatJSON:
				return writeJSON(cmd, snap.Selected)
			case formatYAML:
				return writeYAML(cmd, snap.Selected)
			}
			writeRecipeText(cmd.OutOrStdout(), *snap.Selected)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, or yaml")
	return cmd
}

func writeRecipeText(w io.Writer, r recipe.Recipe) {
	fmt.Fprintln(w, r.Name)
	if meta := strings.Join(nonEmpty(r.Category, r.Area), " · "); meta != "" {
		fmt.Fprintln(w, meta)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Image:    %s\n", r.Image())
	fmt.Fprintf(w, "Prep:     %s\n", r.PrepTime)
	fmt.Fprintf(w, "Cook:     %s\n", r.CookTime)
	fmt.Fprintf(w, "Servings: %s\n", r.Servings)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ingredients")
	if len(r.Ingredients) == 0 {
		fmt.Fprintln(w, "  No ingredients listed.")
	}
	for _, item := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", item)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Instructions")
	if len(r.Instructions) == 0 {
		fmt.Fprintln(w, "  No instructions available.")
	}
	for i, step := range r.Instructions {
		prefix := fmt.Sprintf("  %d. ", i+1)
		wrapped := wordwrap.String(step, showWrapWidth-len(prefix))
		pad := strings.Repeat(" ", len(prefix))
		fmt.Fprintln(w, prefix+strings.ReplaceAll(wrapped, "\n", "\n"+pad))
	}

	if r.VideoURL != "" {
		fmt.Fprintf(w, "\nVideo:  %s\n", r.VideoURL)
	}
	if r.SourceURL != "" {
		fmt.Fprintf(w, "Source: %s\n", r.SourceURL)
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

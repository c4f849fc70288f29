package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/ladle/internal/app"
	"github.com/five82/ladle/internal/recipe"
)

func newSearchCommand(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search [term...]",
		Short: "List recipes whose name matches term (default term when omitted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatTable, formatJSON, formatYAML); err != nil {
				return err
			}
			rt, err := app.Setup(flags.options())
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			rt.Controller.Search(cmd.Context(), strings.Join(args, " "))
			snap := rt.Controller.Snapshot()
			if snap.Failed() {
				return errors.New(snap.Status.Message)
			}

			switch format {
			case formatJSON:
				return writeJSON(cmd, snap.Results)
			case formatYAML:
				return writeYAML(cmd, snap.Results)
			}
			if len(snap.Results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No recipes found for %q.\n", snap.Term)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResultsTable(snap.Results))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, or yaml")
	return cmd
}

func renderResultsTable(results []recipe.Recipe) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.ID,
			r.Name,
			r.Category,
			r.Area,
			strconv.Itoa(len(r.Ingredients)),
		})
	}
	return renderTable(
		[]string{"ID", "Name", "Category", "Area", "Ingredients"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

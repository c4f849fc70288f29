package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/ladle/internal/app"
)

type rootFlags struct {
	config      string
	prefs       string
	metricsAddr string
	noAltScreen bool
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath:  f.config,
		PrefsPath:   f.prefs,
		MetricsAddr: f.metricsAddr,
		NoAltScreen: f.noAltScreen,
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "ladle",
		Short:         "Search TheMealDB recipes from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
				return errors.New("interactive mode needs a terminal; use `ladle search` for scripted output")
			}
			return app.Run(cmd.Context(), flags.options())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path (default ~/.config/ladle/config.toml)")
	rootCmd.Flags().StringVar(&flags.prefs, "prefs", "", "Preferences file path (default ~/.config/ladle/prefs.toml)")
	rootCmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	rootCmd.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "Render inline instead of on the alternate screen")

	rootCmd.AddCommand(newSearchCommand(flags))
	rootCmd.AddCommand(newShowCommand(flags))

	return rootCmd
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

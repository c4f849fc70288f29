// Package app is the composition root for ladle.
//
// Setup turns a config file into a ready Runtime:
//
//	config.Load()          ~/.config/ladle/config.toml, defaults when missing
//	logging.New()          slog to ~/.local/share/ladle/logs/ladle.log
//	mealdb.NewClient()     TheMealDB HTTP client
//	search.New()           controller owning the search/detail state
//
// Run adds the interactive pieces on top: it loads UI preferences, attaches a
// ui.Notifier to the controller's change callback, and starts the TUI and the
// optional Prometheus /metrics listener in one errgroup. Quitting the TUI
// stops the listener; a listener failure stops the TUI.
//
// Fatal errors are returned from Setup and Run: bad config, unusable log
// directory, unparsable API base URL, metrics address already in use.
// Failed API requests never reach this package; the controller turns them
// into error status in its snapshot.
//
// The one-shot CLI commands use Setup directly and drive the controller
// without a UI:
//
//	rt, err := app.Setup(app.Options{ConfigPath: path})
//	if err != nil {
//		return err
//	}
//	defer rt.Close()
//	rt.Controller.Search(ctx, "arrabiata")
//	snap := rt.Controller.Snapshot()
package app

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/five82/ladle/internal/config"
	"github.com/five82/ladle/internal/logging"
	"github.com/five82/ladle/internal/mealdb"
	"github.com/five82/ladle/internal/prefs"
	"github.com/five82/ladle/internal/recipe"
	"github.com/five82/ladle/internal/search"
	"github.com/five82/ladle/internal/ui"
)

// Options configure the ladle application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/ladle/prefs.toml
	MetricsAddr string // overrides metrics_addr from the config file
	NoAltScreen bool
}

// Runtime holds the wired dependencies shared by the TUI and the one-shot
// commands.
type Runtime struct {
	Config     config.Config
	Logger     *slog.Logger
	Client     *mealdb.Client
	Controller *search.Controller

	logCloser io.Closer
}

// Setup loads configuration, opens the diagnostics log and builds the search
// controller. Extra options are applied after the config-derived ones.
func Setup(opts Options, extra ...search.Option) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if addr := strings.TrimSpace(opts.MetricsAddr); addr != "" {
		cfg.MetricsAddr = addr
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   cfg.LogPath(),
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := mealdb.NewClient(cfg.APIBaseURL,
		mealdb.WithLogger(logger),
		mealdb.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init mealdb client: %w", err)
	}

	searchOpts := []search.Option{
		search.WithQuietPeriod(cfg.QuietPeriod),
		search.WithDefaultTerm(cfg.DefaultTerm),
		search.WithNormalizer(recipe.Normalizer{Placeholders: recipe.Placeholders{
			PrepTime: cfg.PrepTime,
			CookTime: cfg.CookTime,
			Servings: cfg.Servings,
		}}),
		search.WithLogger(logger),
		search.WithRequestTimeout(cfg.RequestTimeout),
	}
	ctrl := search.New(client, append(searchOpts, extra...)...)

	logger.Info("ladle started",
		slog.String("api", cfg.APIBaseURL),
		slog.String("default_term", cfg.DefaultTerm),
		slog.Duration("quiet_period", cfg.QuietPeriod))

	return &Runtime{
		Config:     cfg,
		Logger:     logger,
		Client:     client,
		Controller: ctrl,
		logCloser:  closer,
	}, nil
}

// Close stops pending searches and releases the log file.
func (r *Runtime) Close() error {
	if r == nil {
		return nil
	}
	r.Controller.Close()
	return r.logCloser.Close()
}

// Run boots the ladle TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	notifier := ui.NewNotifier()
	rt, err := Setup(opts, search.WithOnChange(notifier.Notify))
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		rt.Logger.Warn("load preferences failed; using defaults", logging.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	uiCtx, stopUI := context.WithCancel(gctx)
	defer stopUI()

	if addr := rt.Config.MetricsAddr; addr != "" {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen metrics %s: %w", addr, err)
		}
		g.Go(func() error {
			return serveMetrics(uiCtx, ln, rt.Logger)
		})
	}

	g.Go(func() error {
		// Quitting the UI also stops the metrics server.
		defer stopUI()
		return ui.Run(ui.Options{
			Context:     uiCtx,
			Controller:  rt.Controller,
			Notifier:    notifier,
			Prefs:       userPrefs,
			PrefsPath:   opts.PrefsPath,
			LogPath:     rt.Config.LogPath(),
			Logger:      rt.Logger,
			NoAltScreen: opts.NoAltScreen,
		})
	})

	return g.Wait()
}

package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/ladle/internal/logging"
	"github.com/five82/ladle/internal/mealdb"
	"github.com/five82/ladle/internal/recipe"
	"github.com/five82/ladle/internal/state"
)

// User-facing status messages.
const (
	MsgSearchFailed    = "Failed to load recipes. Please try again later."
	MsgDetailsNotFound = "Recipe details not found."
	MsgDetailsFailed   = "Failed to load recipe details. Please try again later."
)

const (
	// DefaultTerm is searched for when the query is empty.
	DefaultTerm = "chicken"
	// DefaultQuietPeriod is how long input must be idle before it is searched.
	DefaultQuietPeriod = 500 * time.Millisecond
)

// Source is the read-only recipe API the controller queries. LookupByID
// returns mealdb.ErrNotFound when no record exists.
type Source interface {
	SearchByName(ctx context.Context, term string) ([]mealdb.Meal, error)
	LookupByID(ctx context.Context, id string) (mealdb.Meal, error)
}

// Controller turns query edits and selections into API requests and keeps
// the resulting state in a single store. Only the latest request may change
// that state; anything it supersedes is discarded on arrival.
type Controller struct {
	source      Source
	store       state.Store
	normalizer  recipe.Normalizer
	logger      *slog.Logger
	quietPeriod time.Duration
	defaultTerm string
	timeout     time.Duration
	onChange    func()
	scheduler   Scheduler

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	timer  Timer
	closed bool
}

// New builds a controller over source.
func New(source Source, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		source:      source,
		logger:      logging.NewNop(),
		quietPeriod: DefaultQuietPeriod,
		defaultTerm: DefaultTerm,
		scheduler:   realScheduler{},
		ctx:         ctx,
		cancel:      cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "search")
	return c
}

// DefaultTerm returns the term searched for when the query is empty.
func (c *Controller) DefaultTerm() string { return c.defaultTerm }

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() state.Snapshot {
	return c.store.Snapshot()
}

// SetQuery records raw input. Empty input searches for the default term at
// once; anything else, including blank input, is searched after the quiet
// period unless SetQuery is called again first. It never blocks on the network.
func (c *Controller) SetQuery(text string) {
	gen := c.store.SetQuery(text)

	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.closed {
		c.mu.Unlock()
		return
	}
	if text == "" {
		// Claim the search generation now so later input still supersedes it.
		searchGen, ok := c.store.BeginSearchIfCurrent(gen, c.defaultTerm)
		if !ok {
			c.mu.Unlock()
			return
		}
		c.wg.Add(1)
		c.mu.Unlock()
		c.notify()
		go func() {
			defer c.wg.Done()
			c.runSearch(c.ctx, searchGen, c.defaultTerm)
		}()
		return
	}
	term := strings.TrimSpace(text)
	if term == "" {
		term = c.defaultTerm
	}
	c.timer = c.scheduler.AfterFunc(c.quietPeriod, func() {
		c.fire(gen, term)
	})
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) fire(gen uint64, term string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.wg.Add(1)
	c.mu.Unlock()
	defer c.wg.Done()

	searchGen, ok := c.store.BeginSearchIfCurrent(gen, term)
	if !ok {
		c.logger.Debug("quiet period elapsed for superseded input", slog.String("term", term))
		return
	}
	c.notify()
	c.runSearch(c.ctx, searchGen, term)
}

// Search lists recipes matching term, or the default term when term is
// empty. It blocks until the request completes; the outcome is reported
// through the state snapshot.
func (c *Controller) Search(ctx context.Context, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		term = c.defaultTerm
	}
	gen := c.store.BeginSearch(term)
	c.notify()
	c.runSearch(ctx, gen, term)
}

func (c *Controller) runSearch(ctx context.Context, gen uint64, term string) {
	logger := c.requestLogger(gen).With(slog.String("term", term))
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	started := time.Now()
	meals, err := c.source.SearchByName(ctx, term)
	elapsed := time.Since(started)
	if err != nil {
		if !c.store.ApplyError(gen, MsgSearchFailed, err, true) {
			logger.Debug("discarded superseded search failure", logging.Error(err))
			return
		}
		logger.Warn("search failed", logging.Error(err), slog.Duration("duration", elapsed))
		c.notify()
		return
	}

	results, dropped := c.normalizer.NormalizeAll(meals)
	if dropped > 0 {
		logger.Warn("dropped records without id", slog.Int("count", dropped))
	}
	if !c.store.ApplyResults(gen, results) {
		logger.Debug("discarded superseded search results", slog.Int("results", len(results)))
		return
	}
	logger.Info("search completed", slog.Int("results", len(results)), slog.Duration("duration", elapsed))
	c.notify()
}

// SelectRecipe loads the full record for id into the detail view. It blocks
// until the request completes.
func (c *Controller) SelectRecipe(ctx context.Context, id string) {
	id = strings.TrimSpace(id)
	gen := c.store.BeginSelect()
	c.notify()

	logger := c.requestLogger(gen).With(slog.String("id", id))
	if id == "" {
		c.applySelectError(logger, gen, mealdb.ErrNotFound)
		return
	}

	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	started := time.Now()
	meal, err := c.source.LookupByID(ctx, id)
	elapsed := time.Since(started)
	if err != nil {
		c.applySelectError(logger.With(slog.Duration("duration", elapsed)), gen, err)
		return
	}

	selected := c.normalizer.Normalize(meal)
	if selected.ID == "" {
		c.applySelectError(logger, gen, mealdb.ErrNotFound)
		return
	}
	if !c.store.ApplySelected(gen, selected) {
		logger.Debug("discarded superseded recipe details")
		return
	}
	logger.Info("recipe details loaded", slog.String("name", selected.Name), slog.Duration("duration", elapsed))
	c.notify()
}

func (c *Controller) applySelectError(logger *slog.Logger, gen uint64, err error) {
	message := MsgDetailsFailed
	if errors.Is(err, mealdb.ErrNotFound) {
		message = MsgDetailsNotFound
	}
	if !c.store.ApplyError(gen, message, err, false) {
		logger.Debug("discarded superseded lookup failure", logging.Error(err))
		return
	}
	logger.Warn("recipe lookup failed", logging.Error(err))
	c.notify()
}

// CloseDetails clears the selection and any error. A lookup still in flight
// will not repopulate the selection.
func (c *Controller) CloseDetails() {
	c.store.CloseDetails()
	c.notify()
}

// Close stops the quiet-period timer, abandons background searches and
// waits for them to return.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = c.ctx
	}
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

func (c *Controller) requestLogger(gen uint64) *slog.Logger {
	return c.logger.With(
		slog.String(logging.FieldRequestID, uuid.NewString()),
		slog.Uint64("generation", gen),
	)
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

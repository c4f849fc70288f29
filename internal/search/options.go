package search

import (
	"log/slog"
	"strings"
	"time"

	"github.com/five82/ladle/internal/recipe"
)

// Option configures a Controller.
type Option func(*Controller)

// WithQuietPeriod sets how long input must be idle before it is searched.
func WithQuietPeriod(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.quietPeriod = d
		}
	}
}

// WithDefaultTerm sets the term searched for when the query is empty.
func WithDefaultTerm(term string) Option {
	return func(c *Controller) {
		if term = strings.TrimSpace(term); term != "" {
			c.defaultTerm = term
		}
	}
}

// WithNormalizer sets the record normalizer.
func WithNormalizer(n recipe.Normalizer) Option {
	return func(c *Controller) {
		c.normalizer = n
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRequestTimeout bounds each request. Zero leaves requests bounded only
// by the caller's context and the transport.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithOnChange registers a callback invoked after every state change. It
// runs on the goroutine that made the change and must not block.
func WithOnChange(fn func()) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithScheduler replaces the timer factory used for the quiet period.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

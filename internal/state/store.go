package state

import (
	"sync"
	"time"

	"github.com/five82/ladle/internal/recipe"
)

// StatusKind enumerates the list/detail request status.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusLoading
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Status is the current request status. Message is set only for StatusError.
type Status struct {
	Kind    StatusKind
	Message string
}

// Snapshot represents the latest search state available to the UI.
type Snapshot struct {
	Query    string
	Term     string // term of the last search issued
	Results  []recipe.Recipe
	Selected *recipe.Recipe
	Status   Status

	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	Generation          uint64
}

// Loading reports whether a request is outstanding.
func (s Snapshot) Loading() bool { return s.Status.Kind == StatusLoading }

// Failed reports whether the last request ended in an error.
func (s Snapshot) Failed() bool { return s.Status.Kind == StatusError }

// IsOffline returns true when the API has failed several requests in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store owns the search state. Every request is tagged with the generation
// current when it began; completions for any other generation are rejected.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetQuery records raw input and supersedes any outstanding request.
func (s *Store) SetQuery(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Query = query
	return s.bumpLocked()
}

// BeginSearch marks a list search as loading and clears the selection.
// Existing results stay visible until the search completes.
func (s *Store) BeginSearch(term string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.beginSearchLocked(term)
}

// BeginSearchIfCurrent is BeginSearch guarded by gen, for deferred searches
// that must not run once newer input has arrived.
func (s *Store) BeginSearchIfCurrent(gen uint64, term string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return 0, false
	}
	return s.beginSearchLocked(term), true
}

// BeginSelect marks a detail lookup as loading.
func (s *Store) BeginSelect() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Status = Status{Kind: StatusLoading}
	return s.bumpLocked()
}

// CloseDetails clears the selection and any error, and supersedes any
// outstanding request.
func (s *Store) CloseDetails() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Selected = nil
	s.snapshot.Status = Status{Kind: StatusIdle}
	return s.bumpLocked()
}

// ApplyResults replaces the result list if gen is still current.
func (s *Store) ApplyResults(gen uint64, results []recipe.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	s.snapshot.Results = cloneResults(results)
	if s.snapshot.Results == nil {
		s.snapshot.Results = []recipe.Recipe{}
	}
	s.succeedLocked()
	return true
}

// ApplySelected sets the selected recipe if gen is still current.
func (s *Store) ApplySelected(gen uint64, r recipe.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	selected := r.Clone()
	s.snapshot.Selected = &selected
	s.succeedLocked()
	return true
}

// ApplyError records a failed request if gen is still current. The selection
// is always cleared; results are cleared when clearResults is set.
func (s *Store) ApplyError(gen uint64, message string, err error, clearResults bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	s.snapshot.Status = Status{Kind: StatusError, Message: message}
	s.snapshot.Selected = nil
	if clearResults {
		s.snapshot.Results = []recipe.Recipe{}
	}
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
	return true
}

// Current reports whether gen is the latest generation.
func (s *Store) Current(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return gen == s.snapshot.Generation
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Results = cloneResults(s.snapshot.Results)
	if s.snapshot.Results != nil && snap.Results == nil {
		snap.Results = []recipe.Recipe{}
	}
	if s.snapshot.Selected != nil {
		selected := s.snapshot.Selected.Clone()
		snap.Selected = &selected
	}
	return snap
}

func (s *Store) beginSearchLocked(term string) uint64 {
	s.snapshot.Term = term
	s.snapshot.Selected = nil
	s.snapshot.Status = Status{Kind: StatusLoading}
	return s.bumpLocked()
}

func (s *Store) bumpLocked() uint64 {
	s.snapshot.Generation++
	return s.snapshot.Generation
}

func (s *Store) succeedLocked() {
	s.snapshot.Status = Status{Kind: StatusIdle}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

func cloneResults(items []recipe.Recipe) []recipe.Recipe {
	if len(items) == 0 {
		return nil
	}
	dup := make([]recipe.Recipe, len(items))
	for i, item := range items {
		dup[i] = item.Clone()
	}
	return dup
}

package state

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/ladle/internal/recipe"
)

func TestStore_ApplyResultsAndSnapshotClone(t *testing.T) {
	var s Store

	gen := s.BeginSearch("chicken")
	if snap := s.Snapshot(); snap.Status.Kind != StatusLoading || snap.Term != "chicken" {
		t.Fatalf("status after BeginSearch = %v term=%q, want loading chicken", snap.Status.Kind, snap.Term)
	}

	before := time.Now()
	results := []recipe.Recipe{
		{ID: "1", Ingredients: []string{"rice"}},
		{ID: "2"},
	}
	if !s.ApplyResults(gen, results) {
		t.Fatalf("ApplyResults rejected current generation")
	}

	snap := s.Snapshot()
	if snap.Status.Kind != StatusIdle {
		t.Fatalf("status = %v, want idle", snap.Status.Kind)
	}
	if len(snap.Results) != 2 || snap.Results[0].ID != "1" {
		t.Fatalf("results = %#v, want 2 items", snap.Results)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Results[0].ID = "999"
	snap.Results[0].Ingredients[0] = "changed"
	results[0].ID = "mutated by caller"
	snap2 := s.Snapshot()
	if snap2.Results[0].ID != "1" || snap2.Results[0].Ingredients[0] != "rice" {
		t.Fatalf("Snapshot should clone results; got %#v", snap2.Results[0])
	}
}

func TestStore_EmptyResultsAreIdleNotError(t *testing.T) {
	var s Store

	gen := s.BeginSearch("xyz_no_match")
	s.ApplyResults(gen, nil)

	snap := s.Snapshot()
	if snap.Status.Kind != StatusIdle {
		t.Fatalf("status = %v, want idle", snap.Status.Kind)
	}
	if snap.Results == nil || len(snap.Results) != 0 {
		t.Fatalf("results = %#v, want empty non-nil slice", snap.Results)
	}
}

func TestStore_StaleGenerationRejected(t *testing.T) {
	var s Store

	first := s.BeginSearch("a")
	second := s.BeginSearch("ab")

	if s.ApplyResults(first, []recipe.Recipe{{ID: "stale"}}) {
		t.Fatalf("ApplyResults accepted superseded generation")
	}
	if s.ApplyError(first, "boom", errors.New("boom"), true) {
		t.Fatalf("ApplyError accepted superseded generation")
	}
	if !s.ApplyResults(second, []recipe.Recipe{{ID: "fresh"}}) {
		t.Fatalf("ApplyResults rejected current generation")
	}
	if snap := s.Snapshot(); len(snap.Results) != 1 || snap.Results[0].ID != "fresh" {
		t.Fatalf("results = %#v, want fresh only", snap.Results)
	}
}

func TestStore_CloseDetailsSupersedesSelect(t *testing.T) {
	var s Store

	gen := s.BeginSelect()
	s.CloseDetails()

	if s.ApplySelected(gen, recipe.Recipe{ID: "52772"}) {
		t.Fatalf("ApplySelected accepted generation superseded by CloseDetails")
	}
	snap := s.Snapshot()
	if snap.Selected != nil {
		t.Fatalf("Selected = %#v, want nil", snap.Selected)
	}
	if snap.Status.Kind != StatusIdle {
		t.Fatalf("status = %v, want idle", snap.Status.Kind)
	}
}

func TestStore_ApplySelectedClones(t *testing.T) {
	var s Store

	gen := s.BeginSelect()
	r := recipe.Recipe{ID: "52772", Instructions: []string{"Preheat oven."}}
	s.ApplySelected(gen, r)

	snap := s.Snapshot()
	if snap.Selected == nil || snap.Selected.ID != "52772" {
		t.Fatalf("Selected = %#v, want 52772", snap.Selected)
	}
	snap.Selected.Instructions[0] = "changed"
	if got := s.Snapshot().Selected.Instructions[0]; got != "Preheat oven." {
		t.Fatalf("Snapshot should clone selected; got %q", got)
	}

	// A new search clears the selection immediately.
	s.BeginSearch("beef")
	if s.Snapshot().Selected != nil {
		t.Fatalf("BeginSearch should clear Selected")
	}
}

func TestStore_ApplyErrorClearsResultsAndKeepsCause(t *testing.T) {
	var s Store

	gen := s.BeginSearch("a")
	s.ApplyResults(gen, []recipe.Recipe{{ID: "1"}})

	gen = s.BeginSearch("b")
	origErr := errors.New("boom")
	s.ApplyError(gen, "Failed to load recipes. Please try again later.", origErr, true)

	snap := s.Snapshot()
	if snap.Status.Kind != StatusError || snap.Status.Message != "Failed to load recipes. Please try again later." {
		t.Fatalf("status = %#v, want error with message", snap.Status)
	}
	if len(snap.Results) != 0 {
		t.Fatalf("results = %#v, want cleared", snap.Results)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if snap.LastError != origErr {
		t.Fatalf("LastError = %#v, want the recorded error value", snap.LastError)
	}
}

func TestStore_DetailErrorKeepsResults(t *testing.T) {
	var s Store

	gen := s.BeginSearch("a")
	s.ApplyResults(gen, []recipe.Recipe{{ID: "1"}})

	gen = s.BeginSelect()
	s.ApplyError(gen, "Recipe details not found.", errors.New("missing"), false)

	snap := s.Snapshot()
	if len(snap.Results) != 1 {
		t.Fatalf("results = %#v, want kept", snap.Results)
	}
	if snap.Selected != nil {
		t.Fatalf("Selected = %#v, want nil", snap.Selected)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("fresh store failures = %d offline = %v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.ApplyError(s.BeginSearch("a"), "fail", errors.New("fail 1"), true)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures = %d offline = %v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.ApplyError(s.BeginSelect(), "fail", errors.New("fail 2"), false)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures = %d offline = %v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.ApplyResults(s.BeginSearch("a"), nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: failures = %d offline = %v", snap.ConsecutiveFailures, snap.IsOffline())
	}
}

func TestStore_BeginSearchIfCurrent(t *testing.T) {
	var s Store

	gen := s.SetQuery("pasta")
	if got := s.Snapshot().Query; got != "pasta" {
		t.Fatalf("Query = %q, want pasta", got)
	}

	s.SetQuery("pastaa")
	if _, ok := s.BeginSearchIfCurrent(gen, "pasta"); ok {
		t.Fatalf("BeginSearchIfCurrent started a search for superseded input")
	}

	gen = s.SetQuery("pasta")
	next, ok := s.BeginSearchIfCurrent(gen, "pasta")
	if !ok || next != gen+1 {
		t.Fatalf("BeginSearchIfCurrent = (%d, %v), want (%d, true)", next, ok, gen+1)
	}
	if !s.Current(next) {
		t.Fatalf("Current(%d) = false, want true", next)
	}
}

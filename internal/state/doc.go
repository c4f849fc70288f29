// Package state holds the search state shared by the query controller and the
// renderers.
//
// # Overview
//
// Store is the single owner of the Snapshot: query text, result list,
// selected recipe and request status. The controller is its only writer;
// the TUI and CLI read cloned snapshots.
//
//	Controller:                     Renderer:
//	┌──────────────────┐            ┌──────────────────┐
//	│ gen := Begin*()  │            │                  │
//	│ fetch + normalize│            │                  │
//	│ Apply*(gen, ...) │───────────→│ store.Snapshot() │
//	│   (rejected if   │  (mutex)   │       ↓          │
//	│    gen is stale) │            │   render         │
//	└──────────────────┘            └──────────────────┘
//
// # Generations
//
// Every operation that starts or abandons a request (SetQuery, BeginSearch,
// BeginSelect, CloseDetails) increments Generation and returns the new value.
// The Apply methods take that value back and only mutate state if it is still
// the latest, so a response that resolves after newer input or after the
// detail pane was closed is dropped without side effects. Network calls are
// never cancelled to achieve this.
//
// # Update Semantics
//
//   - BeginSearch: Loading, selection cleared, previous results kept
//   - BeginSelect: Loading, results and selection kept
//   - ApplyResults: results replaced wholesale, Idle
//   - ApplySelected: selection set, Idle
//   - ApplyError: Error(message), selection cleared, results optionally cleared
//   - CloseDetails: selection cleared, Idle
//
// LastError keeps the underlying cause for diagnostics. ConsecutiveFailures
// counts errors since the last success and drives IsOffline.
//
// # Defensive Copying
//
// Snapshot deep-copies results, the selected recipe and the error value so
// renderers can never mutate the store. The store is zero-value ready.
package state

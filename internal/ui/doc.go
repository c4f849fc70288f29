// Package ui implements ladle's terminal interface with Bubble Tea.
//
// # Layout
//
//	┌────────────────────────────────────────────┐
//	│ ladle  12 recipes for "chicken"   Paprika  │ header
//	│ search › chick_                            │ search box
//	│ Failed to load recipes. ...                │ error banner (only on error)
//	│ ▸ Chicken Handi                            │
//	│   Chicken · Indian                         │ result cards, or the
//	│   1.2 kg chicken, 5 thinly sliced onion…   │ recipe detail viewport
//	│ ...                                        │
//	│ / search • enter open • esc close • ? help │ footer
//	└────────────────────────────────────────────┘
//
// # State Flow
//
// The model never edits search state. Key presses call the Controller
// (SetQuery on every edit, Search on enter, SelectRecipe on enter over a
// card, CloseDetails on esc) and the model re-reads Controller.Snapshot when
// a stateChangedMsg arrives. Those messages come from the commands that ran
// the blocking calls, from the Notifier wired to the controller's change
// callback, and from every spinner tick.
//
// # Overlays
//
//   - ? shows the key reference built from the key map
//   - L shows the tail of the diagnostics log, colored by level
//
// T cycles themes and c toggles compact cards; both are saved to prefs.
package ui

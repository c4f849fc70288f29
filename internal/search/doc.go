// Package search implements the query controller that sits between user
// input and TheMealDB.
//
// SetQuery debounces typing: each call cancels the armed quiet-period timer
// and arms a new one, so only the last edit in any idle window produces a
// request. Clearing the input searches for the default term immediately.
// Search, SelectRecipe and CloseDetails act at once.
//
// Every operation advances the state generation. A response is applied only
// if no newer operation has happened since its request began; the transport
// itself is never cancelled to enforce this. Failures become one of three
// fixed status messages while the cause is kept in Snapshot.LastError and
// the log.
package search

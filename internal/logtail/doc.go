// Package logtail reads the end of ladle's diagnostics log for the TUI log
// overlay.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) however large the log grows. Lines come back
// oldest first. A missing file yields no lines and no error, which is the
// normal state before the first request has been logged.
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//
// # Parsing
//
// Parse understands both handler formats the logging package writes:
//
//	ts=2026-10-15T09:30:00Z level=info msg="search completed" component=search results=3
//	{"ts":"2026-10-15T09:30:00Z","level":"info","msg":"search completed","component":"search","results":3}
//
// ts, level, msg and component are lifted into Entry fields; everything else
// stays in Attrs. Lines in neither format keep their raw text so nothing is
// hidden from the overlay.
package logtail

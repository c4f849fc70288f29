// Package config loads ladle's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ladle/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	api_base_url = "https://www.themealdb.com/api/json/v1/1"
//	default_term = "chicken"          # searched when the query is empty
//	quiet_period_ms = 500             # idle time before a typed query is searched
//	request_timeout_seconds = 10
//	prep_time = "N/A"                 # quick-fact placeholders; the API has no such data
//	cook_time = "N/A"
//	servings = "N/A"
//	log_level = "info"                # debug, info, warn, error
//	log_format = "text"               # text or json
//	log_dir = "~/.local/share/ladle/logs"
//	metrics_addr = ""                 # e.g. "127.0.0.1:9464" to serve /metrics
//
// Every field is optional. Tilde expansion is performed for log_dir and the
// config path itself; the diagnostics log lives at <log_dir>/ladle.log.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unsupported log_level or log_format values
//
// Missing config files are NOT an error, so ladle runs out of the box.
package config

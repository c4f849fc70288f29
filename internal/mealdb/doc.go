// Package mealdb provides an HTTP client for TheMealDB recipe API.
//
// # Overview
//
// TheMealDB exposes a read-only JSON API. Ladle uses two endpoints:
//
//   - GET /search.php?s=<term>: records whose name matches term
//   - GET /lookup.php?i=<id>: the single record with the given id
//
// Both return {"meals": [...]} and use {"meals": null} for "nothing found".
// SearchByName maps that to an empty slice; LookupByID maps it to ErrNotFound.
//
// # Raw Records
//
// A record is a flat object of string-or-null values, including twenty
// numbered ingredient/measure pairs (strIngredient1..20, strMeasure1..20).
// Meal keeps the string values and exposes typed accessors plus Field for
// opaque pass-through of keys the core does not interpret (category, area,
// tags, video and source links). Normalization into recipe.Recipe lives in
// the recipe package; this package never reshapes records.
//
// # Client Usage
//
//	client, err := mealdb.NewClient("", mealdb.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	meals, err := client.SearchByName(ctx, "arrabiata")
//	meal, err := client.LookupByID(ctx, "52771")
//	if errors.Is(err, mealdb.ErrNotFound) {
//		// no such recipe
//	}
//
// # Error Handling
//
//   - Network failures: "execute request (latency=...): ..."
//   - Non-2xx responses: *StatusError ("api /search.php returned status 500")
//   - Malformed JSON: "decode response: ..."
//   - Missing lookup record: ErrNotFound
//
// Callers treat everything except ErrNotFound as a transport failure.
//
// # Request Handling
//
// All requests carry Accept: application/json and User-Agent: ladle/0.1 and
// use a 10 second client timeout unless overridden. Concurrent lookups of the
// same id are collapsed into one request via singleflight. There are no
// retries and no caching; the caller decides when to ask again.
//
// # Metrics
//
// Each request increments ladle_mealdb_requests_total{endpoint,outcome} and
// observes ladle_mealdb_request_duration_seconds{endpoint} on the default
// Prometheus registry.
package mealdb

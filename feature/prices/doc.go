// Package prices exposes the engine's price cache and tick state over HTTP.
//
//   - GET /prices: every tracked symbol with its last market price.
//   - GET /prices/:symbol: one symbol; "set" is false until the first successful fetch.
//   - GET /health: liveness plus the summary of the last completed tick.
//
// The views only read; the cache is written by the reconciliation engine alone.
package prices

// Package httpx wraps net/http for the outbound market and catalog clients.
//
// It sets a pooled transport with short dial and header timeouts, stamps a
// User-Agent on every request and turns non-2xx answers into *StatusError.
package httpx

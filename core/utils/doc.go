// Package utils provides loose type conversion helpers for decoding upstream JSON,
// where the same field may arrive as a string, a number or json.Number.
package utils

package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLabel is returned when a label is not exactly "<qty> <symbol>".
	ErrMalformedLabel = errors.New("label must be \"<quantity> <symbol>\"")
	// ErrInvalidQuantity is returned when the quantity token is not a positive number.
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	// ErrSymbolMismatch is returned when the label symbol differs from the tracked symbol.
	ErrSymbolMismatch = errors.New("label symbol does not match tracked symbol")
	// ErrNoVariants is returned when a catalog item has no variants to price.
	ErrNoVariants = errors.New("catalog item has no variants")
	// ErrInvalidPrice is returned by sources that receive a non-positive market price.
	ErrInvalidPrice = errors.New("market price must be positive")
)

// Source names used in FetchError.
const (
	SourceCatalog = "catalog"
	SourceMarket  = "market"
)

// FetchError reports a failure to read the catalog or the market.
type FetchError struct {
	Source string
	Key    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s %q: %v", e.Source, e.Key, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a variant label that does not decompose into a quantity and a symbol.
type ParseError struct {
	Label string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse label %q: %v", e.Label, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a rejected or unreachable variant price update.
type WriteError struct {
	VariantID string
	Err       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("set price of variant %s: %v", e.VariantID, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

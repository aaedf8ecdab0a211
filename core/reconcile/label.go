package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VariantLabel is the structured form of a variant label such as "0.5 BTC".
type VariantLabel struct {
	Quantity decimal.Decimal `json:"quantity"`
	Symbol   string          `json:"symbol"`
}

// ParseLabel splits a variant label on whitespace into exactly a quantity and a symbol.
// The quantity must be a positive decimal. The symbol is returned upper-cased.
// Any other shape yields a *ParseError.
func ParseLabel(label string) (VariantLabel, error) {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return VariantLabel{}, &ParseError{Label: label, Err: ErrMalformedLabel}
	}

	qty, err := decimal.NewFromString(fields[0])
	if err != nil || !qty.IsPositive() {
		return VariantLabel{}, &ParseError{Label: label, Err: ErrInvalidQuantity}
	}

	return VariantLabel{
		Quantity: qty,
		Symbol:   strings.ToUpper(fields[1]),
	}, nil
}

// ParseLabelFor parses a label and checks that its symbol is the tracked symbol.
func ParseLabelFor(label, symbol string) (VariantLabel, error) {
	parsed, err := ParseLabel(label)
	if err != nil {
		return VariantLabel{}, err
	}
	if !strings.EqualFold(parsed.Symbol, symbol) {
		return VariantLabel{}, &ParseError{Label: label, Err: ErrSymbolMismatch}
	}
	return parsed, nil
}

package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		qty     string
		symbol  string
		wantErr error
	}{
		{"Whole unit", "1 BTC", "1", "BTC", nil},
		{"Fraction", "0.5 BTC", "0.5", "BTC", nil},
		{"Large quantity", "100 XRP", "100", "XRP", nil},
		{"Extra whitespace", "  0.25\tETH ", "0.25", "ETH", nil},
		{"Lower case symbol", "2 ltc", "2", "LTC", nil},
		{"Single token", "BTC", "", "", ErrMalformedLabel},
		{"Three tokens", "1 BTC coin", "", "", ErrMalformedLabel},
		{"Empty", "", "", "", ErrMalformedLabel},
		{"Non numeric", "one BTC", "", "", ErrInvalidQuantity},
		{"Zero", "0 BTC", "", "", ErrInvalidQuantity},
		{"Negative", "-1 BTC", "", "", ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLabel(tt.label)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				var perr *ParseError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, tt.label, perr.Label)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.qty, got.Quantity.String())
			assert.Equal(t, tt.symbol, got.Symbol)
		})
	}
}

func TestParseLabelFor(t *testing.T) {
	t.Run("Matching symbol", func(t *testing.T) {
		got, err := ParseLabelFor("0.5 btc", "BTC")
		require.NoError(t, err)
		assert.Equal(t, "0.5", got.Quantity.String())
	})

	t.Run("Other symbol", func(t *testing.T) {
		_, err := ParseLabelFor("0.5 ETH", "BTC")
		assert.ErrorIs(t, err, ErrSymbolMismatch)
	})
}

package tracking

import (
	"fmt"
	"strings"

	"price-sync/core/reconcile"
)

// DefaultTracked is the tracked item list used when none is configured.
const DefaultTracked = "BTC:bitcoin:24432181250,ETH:ethereum:24432148482,DASH:dash:24432050178,LTC:litecoin:24432115714,XRP:ripple:24432017410"

// Parse reads a comma separated list of SYMBOL:lookup_key:catalog_item_id entries.
// Symbols are upper-cased and must be unique. Blank entries are ignored.
func Parse(list string) ([]reconcile.TrackedItem, error) {
	var items []reconcile.TrackedItem
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("tracked item %q: want SYMBOL:lookup_key:catalog_item_id", entry)
		}

		item := reconcile.TrackedItem{
			Symbol:        strings.ToUpper(strings.TrimSpace(parts[0])),
			LookupKey:     strings.TrimSpace(parts[1]),
			CatalogItemID: strings.TrimSpace(parts[2]),
		}
		items = append(items, item)
	}

	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Validate checks that every item is complete and that no symbol is tracked twice.
func Validate(items []reconcile.TrackedItem) error {
	if len(items) == 0 {
		return fmt.Errorf("no tracked items configured")
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Symbol == "" || item.LookupKey == "" || item.CatalogItemID == "" {
			return fmt.Errorf("tracked item %+v: symbol, lookup key and catalog item id are required", item)
		}
		key := strings.ToUpper(item.Symbol)
		if seen[key] {
			return fmt.Errorf("symbol %s is tracked more than once", key)
		}
		seen[key] = true
	}
	return nil
}

// Symbols returns the symbols of items in order.
func Symbols(items []reconcile.TrackedItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Symbol
	}
	return out
}

// Find returns the item tracked under symbol, case-insensitively.
func Find(items []reconcile.TrackedItem, symbol string) (reconcile.TrackedItem, bool) {
	for _, item := range items {
		if strings.EqualFold(item.Symbol, symbol) {
			return item, true
		}
	}
	return reconcile.TrackedItem{}, false
}

// Package market reads spot prices from a CoinMarketCap v1 compatible ticker API.
//
// Client implements reconcile.MarketPriceSource for the engine. The same client
// backs two read views:
//
//   - GET /market: the top assets by rank (limit query parameter, default 20).
//   - GET /market/:lookupKey: one asset, e.g. /market/bitcoin.
//
// Prices are read from the price_<currency> field of each ticker, where the
// currency is the configured reference currency (CAD by default).
package market

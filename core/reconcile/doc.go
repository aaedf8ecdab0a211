// Package reconcile keeps catalog variant prices consistent with live market prices.
//
// On every tick the Engine walks the static set of tracked items and, for each one,
// reads the catalog item, reads the market price of its asset, decides whether the
// catalog is stale and, if so, rewrites the price of every variant.
//
// # Architecture
//
// The package consists of four parts:
//
// 1. Ports: MarketPriceSource, CatalogItemSource and CatalogItemSink describe the
// I/O the engine depends on. Concrete HTTP clients live in feature/market and
// feature/catalog.
//
// 2. Plan: PlanItem is a pure function that turns catalog and market state into an
// ItemPlan (decision + one PriceAction per variant). ApplyItemPlan pushes it.
//
// 3. Engine: RunOnce fans out one task per tracked item through an errgroup and
// joins them before returning a TickReport.
//
// 4. PriceCache: the last market price per symbol, shared with the read views.
//
// # Pricing
//
// Variant labels encode the quantity as "<qty> <symbol>" (e.g., "0.5 BTC").
// A variant priced correctly satisfies
//
//	price = market × qty × markup
//
// The reference (first) variant is considered stale when
// |price/markup - market×qty| exceeds Spec.Tolerance. New prices are rounded
// half-up to Spec.PriceScale decimals.
//
// # Failure model
//
// FetchError, ParseError and WriteError are logged and recorded in the report.
// None of them abort the tick, and there is no retry: the next tick tries again.
//
// # Usage Example
//
//	cache := reconcile.NewPriceCache("BTC", "ETH")
//	engine := reconcile.NewEngine(spec, marketClient, catalogClient, catalogClient, cache, logger)
//	report := engine.RunOnce(ctx)
package reconcile

// Package tracking resolves the set of tracked items at startup.
//
// Items come either from a configuration string
// ("BTC:bitcoin:24432181250,ETH:ethereum:24432148482") or, when a database is
// enabled, from the tracked_items table. Either way the set is fixed for the
// lifetime of the process.
package tracking

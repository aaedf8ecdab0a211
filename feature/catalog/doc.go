// Package catalog talks to the store admin API holding the priced products.
//
// Client implements both reconcile.CatalogItemSource (GET /admin/products/{id}.json)
// and reconcile.CatalogItemSink (PUT /admin/variants/{id}.json), authenticating
// with the private app API key and password over HTTP basic auth.
//
// The package also exposes GET /catalog/:symbol, which returns the live catalog
// item tracked under an asset symbol (case-insensitive).
package catalog

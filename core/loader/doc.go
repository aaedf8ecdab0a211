// Package loader provides the plugin-like feature loading system.
//
// Each read view (market, catalog, prices) is a feature implementing the Feature
// interface, which defines its name, whether it is enabled and its route
// registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
package loader

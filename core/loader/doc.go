// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its own routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry; LoadAll loads the enabled features in
// registration order.
package loader

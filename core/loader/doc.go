// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register and initialize features (modules) at startup.
// Each feature implements the Feature interface, which defines its lifecycle hooks
// and route registration logic.
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
//   - Initialization and loading of enabled features via LoadAll()
//
// The schedule feature is the only module registered today; the HTTP server in cmd/start
// loads it after the global middleware.
package loader

// Package loader provides the feature loading system for the HTTP server.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order and LoadAll registers the routes of
// every enabled one. The recipes and integrity features are wired this way by the serve
// command.
package loader

// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both the offline indexer commands and the
// HTTP adapter, and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so every line written while serving one recipe lookup can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Index built", zap.Int("items", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Recipe lookup failed", zap.Error(err))
package logger

// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for the recipe routes (public prefixes such as
//     /metrics and /swagger are exempt).
//   - rayid: assigns every request a ray id, stored in locals and echoed in the
//     X-Ray-ID response header for log correlation.
package middleware

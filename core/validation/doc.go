// Package validation wraps go-playground/validator for configuration and dump checks,
// turning field errors into a single readable message.
package validation

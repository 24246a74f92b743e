// Package server holds the HTTP server configuration.
//
// The serve command owns the fiber application; this package only defines the
// settings it reads: the listen port, the optional API key guarding the recipe
// routes, and whether fiber should prefork.
package server

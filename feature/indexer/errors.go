package indexer

import "errors"

var (
	// ErrSourceMissing is returned when the raw dump does not exist.
	ErrSourceMissing = errors.New("recipe dump not found")
	// ErrSourceMalformed is returned when the raw dump cannot be decoded or lacks a
	// required collection.
	ErrSourceMalformed = errors.New("recipe dump malformed")
)

package domain

import "errors"

var (
	// ErrValidation signals a malformed caller request.
	ErrValidation = errors.New("validation failed")
	// ErrCorpusUnavailable signals a missing, unreadable, or empty corpus.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
	// ErrNotIndexed signals that no successful index build has happened yet.
	ErrNotIndexed = errors.New("index not ready")
)

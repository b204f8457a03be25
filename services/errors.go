package services

import "errors"

// Sentinel errors returned (wrapped with a human-readable reason) across the
// service boundary. Handlers map them onto HTTP statuses with errors.Is; the
// concrete wrapped text is safe to show to clients.
var (
	ErrValidation   = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// errBackend marks a relational-backend failure. It never crosses the
// service boundary: every method that sees it falls back to the in-memory
// store, so callers cannot observe which path served the request.
var errBackend = errors.New("backend unavailable")

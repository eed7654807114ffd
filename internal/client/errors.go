package client

import "errors"

// Sentinel errors mapped from the server's HTTP status codes. The server's
// detail message is attached via wrapping, so callers can both match with
// [errors.Is] and print a meaningful reason.
var (
	ErrValidation          = errors.New("request rejected by server")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrNoActiveSession is returned by commands that require a login when no
// session is stored locally.
var ErrNoActiveSession = errors.New("not logged in: run the login command first")

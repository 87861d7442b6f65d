package clientconf

import "errors"

var (
	// ErrAliasCollision indicates that two distinct registered clients
	// produced the same alias spelling. The collision is reported at build
	// time instead of letting the last registration silently win.
	ErrAliasCollision = errors.New("alias collision between registered clients")

	// ErrConfigNotFound indicates a property file does not exist. It is not
	// fatal: the resolver can operate on the remaining sources.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrUnknownFormat indicates a property file whose format could not be
	// determined from its extension or content.
	ErrUnknownFormat = errors.New("unable to determine config file format")
)

package domain

import "errors"

var (
	// ErrEmptyQuery signals a query that is empty after trimming.
	ErrEmptyQuery = errors.New("query parameter is required")
	// ErrCatalogUnavailable signals that the catalog could not be fetched.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidRecord signals a catalog record that cannot be stored.
	ErrInvalidRecord = errors.New("invalid assessment record")
	// ErrUnknownDriver signals an unsupported catalog driver name.
	ErrUnknownDriver = errors.New("unknown catalog driver")
)

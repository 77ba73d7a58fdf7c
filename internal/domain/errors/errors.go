package errors

import "errors"

var (
	ErrCatalogNotLoaded   = errors.New("catalog not loaded")
	ErrCatalogUnavailable = errors.New("catalog source unavailable")
	ErrMalformedCatalog   = errors.New("malformed catalog payload")
	ErrUnknownTimeZone    = errors.New("unknown time zone")
)

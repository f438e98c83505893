package vega

import "errors"

// ErrUnknownMimeType is returned when a MIME type is not one of
// MimeTypeVega or MimeTypeVegaLite.
var ErrUnknownMimeType = errors.New("unknown MIME type")

// ErrAlreadyRegistered is returned by Registry.Register when a
// registration for the same MIME type exists.
var ErrAlreadyRegistered = errors.New("MIME type already registered")

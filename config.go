package vega

import "fmt"

var (
	// DefaultCellConfig provides the fallback sizing merged into
	// Vega-Lite specifications that don't define config.cell values.
	// Defined once at process start, never mutated.
	DefaultCellConfig = CellConfig{
		Width:  400,
		Height: 400 / 1.5,
	}

	// SelectFactory selects the Factory for the passed MIME type
	// using the fixed Registrations with the passed embedder.
	// By default it returns an ErrUnknownMimeType wrapping error
	// for MIME types that no registration can handle.
	SelectFactory = func(mimeType string, embedder Embedder) (Factory, error) {
		for _, reg := range Registrations(embedder) {
			if reg.Factory.CanHandle(mimeType) {
				return reg.Factory, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownMimeType, mimeType)
	}
)

package vega

// Model is the render request contract consumed from the host:
// a mapping from MIME type to chart specification payload.
// A ChartView looks up exactly one entry by its bound MIME type.
type Model interface {
	// MimeData returns the payload for a MIME type
	// and whether the model has one.
	MimeData(mimeType string) (Spec, bool)
}

// MimeBundle implements Model for a plain map
// from MIME type to chart specification.
type MimeBundle map[string]Spec

func (b MimeBundle) MimeData(mimeType string) (Spec, bool) {
	spec, ok := b[mimeType]
	return spec, ok
}

package vega

import "fmt"

const (
	// MimeTypeVega is the MIME type of Vega v5 chart specifications.
	MimeTypeVega = "application/vnd.vega.v5+json"

	// MimeTypeVegaLite is the MIME type of Vega-Lite v3 chart specifications.
	MimeTypeVegaLite = "application/vnd.vegalite.v3+json"
)

// Mode selects how an Embedder interprets a chart specification.
// It is fixed at ChartView construction time from the MIME type
// the view was created for.
type Mode string

const (
	ModeVega     Mode = "vega"
	ModeVegaLite Mode = "vega-lite"
)

// ModeForMimeType returns the render Mode for a MIME type
// or an ErrUnknownMimeType wrapping error for any other string.
//
// Note that RendererFactory.Create does not use this validation
// but silently falls back to ModeVegaLite for unknown MIME types,
// so callers that want strict behavior should use this function
// or Factory.CanHandle before creating a view.
func ModeForMimeType(mimeType string) (Mode, error) {
	switch mimeType {
	case MimeTypeVega:
		return ModeVega, nil
	case MimeTypeVegaLite:
		return ModeVegaLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMimeType, mimeType)
}

func (m Mode) String() string { return string(m) }

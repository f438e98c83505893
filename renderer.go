package vega

// ViewOptions configure the creation of a ChartView.
type ViewOptions struct {
	// MimeType the view will look up payloads by
	// and derive its render Mode from.
	MimeType string
}

// Factory implementations advertise which MIME types they handle
// and produce ChartViews for rendering requests.
type Factory interface {
	// CanHandle reports whether the factory can produce
	// a ChartView for the requested MIME type.
	CanHandle(mimeType string) bool

	// Create constructs a new ChartView bound to options.MimeType.
	// Call only with a MIME type CanHandle returned true for.
	Create(options ViewOptions) *ChartView

	// SanitizationRequired reports whether payloads rendered for
	// the passed options have to be sanitized by the host.
	SanitizationRequired(options ViewOptions) bool
}

// RendererFactory is the Factory for Vega and Vega-Lite
// chart specifications.
//
// It holds no mutable state, a single instance can be shared
// across all render requests.
type RendererFactory struct {
	embedder Embedder
}

// NewRendererFactory returns a Factory producing ChartViews
// that delegate drawing to the passed embedder.
func NewRendererFactory(embedder Embedder) *RendererFactory {
	return &RendererFactory{embedder: embedder}
}

// CanHandle returns true for exactly
// MimeTypeVega and MimeTypeVegaLite.
func (f *RendererFactory) CanHandle(mimeType string) bool {
	return mimeType == MimeTypeVega || mimeType == MimeTypeVegaLite
}

// Create constructs a new ChartView bound to options.MimeType.
//
// An unrecognized MIME type is not an error: the view silently
// falls back to ModeVegaLite. Callers must guard Create with
// CanHandle to avoid this latent edge case.
func (f *RendererFactory) Create(options ViewOptions) *ChartView {
	mode := ModeVegaLite
	if options.MimeType == MimeTypeVega {
		mode = ModeVega
	}
	container := NewContainer()
	container.AddClass(containerClass(mode))
	return &ChartView{
		mimeType:  options.MimeType,
		mode:      mode,
		container: container,
		embedder:  f.embedder,
	}
}

// SanitizationRequired always returns false: this renderer performs
// no content sanitization and relies entirely on the host or the
// embedder for any security treatment of the input.
// This is a declared trust boundary, not an omission.
func (f *RendererFactory) SanitizationRequired(options ViewOptions) bool {
	return false
}

func containerClass(mode Mode) string {
	if mode == ModeVega {
		return "vega-chart"
	}
	return "vega-lite-chart"
}

package vega

// Registration associates a MIME type with the Factory handling it
// plus the metadata a host needs to wire up file associations and
// output rendering. Registrations are created once at plugin load
// and never modified.
type Registration struct {
	// MimeType this registration handles.
	MimeType string
	// Rank orders registrations for the same source,
	// lower ranks take precedence.
	Rank int
	// DataType is the expected payload encoding.
	DataType string
	// Extensions are the file extensions recognized as this MIME type.
	Extensions []string
	// DefaultFor lists the extensions this renderer is the default for.
	DefaultFor []string
	// ReadOnly marks documents of this MIME type as not editable
	// through the renderer.
	ReadOnly bool
	// Factory produces ChartViews for this MIME type.
	Factory Factory
}

// Registrations returns the fixed registration entries of this
// plugin, one for Vega-Lite and one for Vega, with factories
// delegating to the passed embedder.
func Registrations(embedder Embedder) []Registration {
	factory := NewRendererFactory(embedder)
	return []Registration{
		{
			MimeType:   MimeTypeVegaLite,
			Rank:       50,
			DataType:   "json",
			Extensions: []string{".vl", ".vl.json"},
			DefaultFor: []string{".vl", ".vl.json"},
			ReadOnly:   true,
			Factory:    factory,
		},
		{
			MimeType:   MimeTypeVega,
			Rank:       51,
			DataType:   "json",
			Extensions: []string{".vg", ".vg.json"},
			DefaultFor: []string{".vg", ".vg.json"},
			ReadOnly:   true,
			Factory:    factory,
		},
	}
}

package vega

// ChartView renders chart specifications for one MIME type into
// its container. The render mode is fixed at construction and
// never changes, re-rendering with a new model is supported by
// calling Render again on the same view.
type ChartView struct {
	mimeType  string
	mode      Mode
	container *Container
	embedder  Embedder
}

// MimeType returns the MIME type the view looks up payloads by.
func (v *ChartView) MimeType() string { return v.mimeType }

// Mode returns the render mode fixed at construction.
func (v *ChartView) Mode() Mode { return v.mode }

// Container returns the drawing target owned by this view.
// The embedder replaces its content on every render.
func (v *ChartView) Container() *Container { return v.container }

// Render looks up the payload for the view's MIME type, normalizes
// it for ModeVegaLite by merging in the default cell config, and
// delegates drawing to the embedder.
//
// The returned Completion resolves once the embedder invokes its
// callback. Known limitation preserved from the original behavior:
// an error reported by the embedder never fails the completion,
// it resolves successfully either way. The reported error is
// retrievable through Completion.Err.
//
// A model without a payload for the view's MIME type is forwarded
// to the embedder as a nil Spec.
func (v *ChartView) Render(model Model) *Completion {
	spec, _ := model.MimeData(v.mimeType)
	if v.mode == ModeVegaLite && spec != nil {
		spec = spec.WithDefaultCellConfig()
	}
	completion := newCompletion()
	v.embedder.Embed(
		v.container,
		EmbedOptions{Mode: v.mode, Spec: spec},
		completion.resolve,
	)
	return completion
}

package vega

// EmbedOptions are passed from a ChartView to an Embedder.
type EmbedOptions struct {
	// Mode tags how the Spec has to be interpreted.
	Mode Mode
	// Spec is the chart specification to draw,
	// already normalized for ModeVegaLite.
	Spec Spec
}

// Embedder is the external capability that turns a chart
// specification into a drawn visual inside a container.
//
// Embed must eventually call done exactly once, passing a non-nil
// error if drawing failed. Everything else about the embedder's
// behavior is outside this package's control.
type Embedder interface {
	Embed(container *Container, options EmbedOptions, done func(err error))
}

// EmbedderFunc implements Embedder for a function.
type EmbedderFunc func(container *Container, options EmbedOptions, done func(err error))

func (f EmbedderFunc) Embed(container *Container, options EmbedOptions, done func(err error)) {
	f(container, options, done)
}

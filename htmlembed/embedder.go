// Package htmlembed provides a vega.Embedder that renders chart
// specifications as self-contained HTML documents.
//
// The emitted document loads the vega, vega-lite and vega-embed
// scripts from a CDN and delegates the actual drawing to them when
// the document is viewed. This package itself never interprets the
// chart grammar.
package htmlembed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/google/uuid"

	"github.com/domonda/go-vega"
)

const (
	// DefaultCDNBaseURL scripts are loaded from.
	DefaultCDNBaseURL = "https://cdn.jsdelivr.net/npm"

	// DefaultVegaVersion of the vega script.
	DefaultVegaVersion = "5"
	// DefaultVegaLiteVersion of the vega-lite script.
	DefaultVegaLiteVersion = "3"
	// DefaultEmbedVersion of the vega-embed script.
	DefaultEmbedVersion = "6"
)

// ErrNilSpec is reported through the embed callback
// when there is no chart specification to embed.
var ErrNilSpec = errors.New("nil chart specification")

var _ vega.Embedder = new(Embedder)

// Embedder implements vega.Embedder by writing a self-contained
// HTML document into the container.
type Embedder struct {
	cdnBaseURL      string
	vegaVersion     string
	vegaLiteVersion string
	embedVersion    string
	options         vega.Option
}

func NewEmbedder() *Embedder {
	return &Embedder{
		cdnBaseURL:      DefaultCDNBaseURL,
		vegaVersion:     DefaultVegaVersion,
		vegaLiteVersion: DefaultVegaLiteVersion,
		embedVersion:    DefaultEmbedVersion,
	}
}

func (e *Embedder) WithCDNBaseURL(url string) *Embedder {
	e.cdnBaseURL = url
	return e
}

func (e *Embedder) WithVegaVersion(version string) *Embedder {
	e.vegaVersion = version
	return e
}

func (e *Embedder) WithVegaLiteVersion(version string) *Embedder {
	e.vegaLiteVersion = version
	return e
}

func (e *Embedder) WithEmbedVersion(version string) *Embedder {
	e.embedVersion = version
	return e
}

// WithOptions sets the action links attached to the chart.
func (e *Embedder) WithOptions(options vega.Option) *Embedder {
	e.options = options
	return e
}

// Embed implements vega.Embedder.
//
// It writes the HTML document for options.Spec into the container
// and calls done exactly once, with the document generation error
// or nil. The container content is left unchanged on error.
func (e *Embedder) Embed(container *vega.Container, options vega.EmbedOptions, done func(err error)) {
	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	err := e.WriteDocument(context.Background(), buf, options)
	if err != nil {
		done(err)
		return
	}
	container.SetContent(buf.Bytes())
	done(nil)
}

// WriteDocument writes the HTML document embedding options.Spec.
func (e *Embedder) WriteDocument(ctx context.Context, dest io.Writer, options vega.EmbedOptions) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if options.Spec == nil {
		return ErrNilSpec
	}

	specJSON, err := options.Spec.JSON()
	if err != nil {
		return fmt.Errorf("can't encode chart specification: %w", err)
	}
	actionsJSON, err := json.Marshal(actions{
		Export: e.options.Has(vega.OptionExportAction),
		Source: e.options.Has(vega.OptionSourceAction),
		Editor: e.options.Has(vega.OptionEditorAction),
	})
	if err != nil {
		return err
	}

	vegaLiteVersion := ""
	if options.Mode == vega.ModeVegaLite {
		vegaLiteVersion = e.vegaLiteVersion
	}
	return DocumentTemplate.Execute(dest, &TemplateContext{
		CDNBaseURL:      e.cdnBaseURL,
		VegaVersion:     e.vegaVersion,
		VegaLiteVersion: vegaLiteVersion,
		EmbedVersion:    e.embedVersion,
		ElementID:       "vega-" + uuid.NewString(),
		Class:           string(options.Mode) + "-embed",
		Mode:            string(options.Mode),
		Spec:            template.JS(specJSON),
		Actions:         template.JS(actionsJSON),
	})
}

type actions struct {
	Export bool `json:"export"`
	Source bool `json:"source"`
	Editor bool `json:"editor"`
}

// Package specfile loads Vega and Vega-Lite chart specifications
// from files, mapping file extensions to the MIME types the
// renderer registrations recognize.
//
// Specifications are JSON by convention (.vl, .vl.json, .vg,
// .vg.json) but may also be authored as YAML (.vl.yaml, .vg.yaml
// and the .yml variants).
package specfile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
	"github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-vega"
)

// ErrUnknownExtension is returned for filenames that don't carry
// a recognized chart specification extension.
var ErrUnknownExtension = errors.New("unknown chart specification file extension")

// Document is a chart specification read from a file
// together with the MIME type derived from its extension.
type Document struct {
	MimeType string
	Spec     vega.Spec
}

// Mode returns the render mode for the document's MIME type.
func (doc *Document) Mode() vega.Mode {
	mode, err := vega.ModeForMimeType(doc.MimeType)
	if err != nil {
		// MimeType was derived from a registration, so this
		// can only happen for hand-constructed Documents
		return vega.ModeVegaLite
	}
	return mode
}

// Load reads and parses the chart specification file.
func Load(ctx context.Context, file fs.FileReader) (*Document, error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data, file.Name())
}

// Parse parses UTF-8 encoded chart specification data,
// deriving MIME type and encoding format from the filename.
// A UTF-8 BOM is trimmed if present.
func Parse(data []byte, filename string) (*Document, error) {
	mimeType, isYAML, err := MimeTypeForFilename(filename)
	if err != nil {
		return nil, err
	}

	data = charset.TrimBOM(data, charset.BOMUTF8)

	var spec vega.Spec
	if isYAML {
		err = yaml.Unmarshal(data, &spec)
	} else {
		spec, err = vega.ParseSpec(data)
	}
	if err != nil {
		return nil, fmt.Errorf("can't parse chart specification %q: %w", filename, err)
	}
	return &Document{MimeType: mimeType, Spec: spec}, nil
}

// ParseWithEncoding is Parse for data in a non-UTF-8 encoding,
// decoding it with the named encoding first.
func ParseWithEncoding(data []byte, filename, encoding string) (*Document, error) {
	if encoding != "" && encoding != "UTF-8" {
		enc, err := charset.GetEncoding(encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, err
		}
	}
	return Parse(data, filename)
}

// MimeTypeForFilename derives the chart MIME type from a filename
// or extension and reports whether the file is YAML encoded.
// Matching is case-insensitive.
func MimeTypeForFilename(filename string) (mimeType string, isYAML bool, err error) {
	name := strings.ToLower(filename)

	for _, yamlExt := range []string{".yaml", ".yml"} {
		if strings.HasSuffix(name, yamlExt) {
			name = strings.TrimSuffix(name, yamlExt)
			isYAML = true
			break
		}
	}

	// Registration metadata is the single source of extension
	// knowledge, the embedder is irrelevant for the lookup
	for _, reg := range vega.Registrations(nil) {
		for _, ext := range reg.Extensions {
			if strings.HasSuffix(name, ext) {
				return reg.MimeType, isYAML, nil
			}
		}
	}
	return "", false, fmt.Errorf("%w: %q", ErrUnknownExtension, filename)
}

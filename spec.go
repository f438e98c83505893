package vega

import (
	"bytes"
	"encoding/json"
)

// Spec is a Vega or Vega-Lite chart specification.
// It is treated as an opaque JSON object tree except for the
// optional config.cell sub-structure used for default sizing.
type Spec map[string]any

// ParseSpec parses a JSON encoded chart specification.
func ParseSpec(data []byte) (Spec, error) {
	var spec Spec
	err := json.Unmarshal(data, &spec)
	if err != nil {
		return nil, err
	}
	return spec, nil
}

// JSON returns the JSON encoding of the specification.
func (s Spec) JSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(s)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// CellConfig is the sizing applied to Vega-Lite specifications
// that don't define their own config.cell values.
type CellConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WithDefaultCellConfig returns a specification that is guaranteed
// to have a config.cell object with width and height set,
// filling missing values from DefaultCellConfig.
//
// Merge rules:
//   - Keys that the specification defines win over the defaults,
//     key by key within config.cell.
//   - All other keys under config and all top-level keys
//     are preserved unchanged.
//   - A config or config.cell value that is not a JSON object
//     is treated as absent.
//
// The receiver is never mutated. Only the top level, config and
// config.cell maps are reconstructed, all other sub-structures
// (which may embed large inline datasets) are shared with the
// receiver.
func (s Spec) WithDefaultCellConfig() Spec {
	return s.WithCellConfig(DefaultCellConfig)
}

// WithCellConfig is WithDefaultCellConfig with explicit defaults.
func (s Spec) WithCellConfig(defaults CellConfig) Spec {
	merged := make(Spec, len(s)+1)
	for key, val := range s {
		merged[key] = val
	}

	var config map[string]any
	if c, ok := s["config"].(map[string]any); ok {
		config = make(map[string]any, len(c)+1)
		for key, val := range c {
			config[key] = val
		}
	} else {
		config = make(map[string]any, 1)
	}

	cell := map[string]any{
		"width":  defaults.Width,
		"height": defaults.Height,
	}
	if c, ok := config["cell"].(map[string]any); ok {
		for key, val := range c {
			cell[key] = val
		}
	}

	config["cell"] = cell
	merged["config"] = config
	return merged
}

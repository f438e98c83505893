package vega

import (
	"reflect"
	"testing"
)

func TestSpec_WithDefaultCellConfig(t *testing.T) {
	defaultCell := map[string]any{
		"width":  float64(400),
		"height": 400 / 1.5,
	}
	tests := []struct {
		name string
		spec Spec
		want Spec
	}{
		{
			name: "no config",
			spec: Spec{"mark": "bar"},
			want: Spec{
				"mark":   "bar",
				"config": map[string]any{"cell": defaultCell},
			},
		},
		{
			name: "nil spec",
			spec: nil,
			want: Spec{
				"config": map[string]any{"cell": defaultCell},
			},
		},
		{
			name: "config without cell",
			spec: Spec{
				"mark":   "point",
				"config": map[string]any{"other": "x"},
			},
			want: Spec{
				"mark": "point",
				"config": map[string]any{
					"other": "x",
					"cell":  defaultCell,
				},
			},
		},
		{
			name: "partial cell override",
			spec: Spec{
				"config": map[string]any{
					"cell": map[string]any{"width": float64(999)},
				},
			},
			want: Spec{
				"config": map[string]any{
					"cell": map[string]any{
						"width":  float64(999),
						"height": 400 / 1.5,
					},
				},
			},
		},
		{
			name: "full cell override with extra keys",
			spec: Spec{
				"config": map[string]any{
					"cell": map[string]any{
						"width":  float64(1),
						"height": float64(2),
						"fill":   "red",
					},
				},
			},
			want: Spec{
				"config": map[string]any{
					"cell": map[string]any{
						"width":  float64(1),
						"height": float64(2),
						"fill":   "red",
					},
				},
			},
		},
		{
			name: "non-object config treated as absent",
			spec: Spec{"config": "bogus"},
			want: Spec{
				"config": map[string]any{"cell": defaultCell},
			},
		},
		{
			name: "non-object cell treated as absent",
			spec: Spec{
				"config": map[string]any{"cell": 42, "axis": map[string]any{"grid": false}},
			},
			want: Spec{
				"config": map[string]any{
					"cell": defaultCell,
					"axis": map[string]any{"grid": false},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.WithDefaultCellConfig(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WithDefaultCellConfig() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSpec_WithDefaultCellConfig_doesNotMutate(t *testing.T) {
	spec := Spec{
		"mark": "bar",
		"config": map[string]any{
			"other": "x",
			"cell":  map[string]any{"width": float64(999)},
		},
	}
	before := Spec{
		"mark": "bar",
		"config": map[string]any{
			"other": "x",
			"cell":  map[string]any{"width": float64(999)},
		},
	}

	_ = spec.WithDefaultCellConfig()

	if !reflect.DeepEqual(spec, before) {
		t.Errorf("input spec was mutated: %#v, want %#v", spec, before)
	}

	noConfig := Spec{"mark": "bar"}
	_ = noConfig.WithDefaultCellConfig()
	if _, hasConfig := noConfig["config"]; hasConfig {
		t.Error("input spec gained a config key")
	}
}

func TestSpec_WithDefaultCellConfig_sharesUnmergedSubstructures(t *testing.T) {
	// Large inline datasets must not be copied, only the top level,
	// config and config.cell maps are reconstructed
	data := []any{map[string]any{"a": float64(1)}}
	spec := Spec{"data": map[string]any{"values": data}}

	merged := spec.WithDefaultCellConfig()

	if merged["data"] == nil || reflect.ValueOf(merged["data"]).Pointer() != reflect.ValueOf(spec["data"]).Pointer() {
		t.Error("data sub-structure was copied instead of shared")
	}
}

func TestParseSpec(t *testing.T) {
	spec, err := ParseSpec([]byte(`{"mark":"bar","width":100}`))
	if err != nil {
		t.Fatalf("ParseSpec() error = %v", err)
	}
	want := Spec{"mark": "bar", "width": float64(100)}
	if !reflect.DeepEqual(spec, want) {
		t.Errorf("ParseSpec() = %#v, want %#v", spec, want)
	}

	if _, err = ParseSpec([]byte(`[1,2]`)); err == nil {
		t.Error("ParseSpec() accepted a non-object specification")
	}
}

func TestSpec_JSON(t *testing.T) {
	spec := Spec{"mark": "bar"}
	got, err := spec.JSON()
	if err != nil {
		t.Fatalf("Spec.JSON() error = %v", err)
	}
	if string(got) != `{"mark":"bar"}` {
		t.Errorf("Spec.JSON() = %s", got)
	}
}

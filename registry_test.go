package vega

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()
	factory := NewRendererFactory(nil)

	require.NoError(t, registry.Register(Registration{MimeType: MimeTypeVega, Factory: factory}))
	require.ErrorIs(t,
		registry.Register(Registration{MimeType: MimeTypeVega, Factory: factory}),
		ErrAlreadyRegistered)
	require.Error(t, registry.Register(Registration{Factory: factory}), "missing MIME type")
	require.Error(t, registry.Register(Registration{MimeType: "x"}), "missing factory")
}

func TestRegistry_FactoryFor(t *testing.T) {
	registry := NewDefaultRegistry(nil)

	for _, mimeType := range []string{MimeTypeVega, MimeTypeVegaLite} {
		factory, ok := registry.FactoryFor(mimeType)
		require.True(t, ok, mimeType)
		require.True(t, factory.CanHandle(mimeType))
	}

	_, ok := registry.FactoryFor("application/json")
	require.False(t, ok)
}

func TestRegistry_ForExtension(t *testing.T) {
	registry := NewDefaultRegistry(nil)

	tests := []struct {
		nameOrExt    string
		wantMimeType string
		wantFound    bool
	}{
		{nameOrExt: ".vl", wantMimeType: MimeTypeVegaLite, wantFound: true},
		{nameOrExt: "chart.vl.json", wantMimeType: MimeTypeVegaLite, wantFound: true},
		{nameOrExt: "CHART.VL.JSON", wantMimeType: MimeTypeVegaLite, wantFound: true},
		{nameOrExt: ".vg", wantMimeType: MimeTypeVega, wantFound: true},
		{nameOrExt: "bars.vg.json", wantMimeType: MimeTypeVega, wantFound: true},
		{nameOrExt: "data.json", wantFound: false},
		{nameOrExt: "", wantFound: false},
	}
	for _, tt := range tests {
		t.Run(tt.nameOrExt, func(t *testing.T) {
			reg, found := registry.ForExtension(tt.nameOrExt)
			require.Equal(t, tt.wantFound, found)
			if found {
				require.Equal(t, tt.wantMimeType, reg.MimeType)
			}
		})
	}
}

func TestRegistry_MimeTypes(t *testing.T) {
	registry := NewDefaultRegistry(nil)
	require.Equal(t, []string{MimeTypeVega, MimeTypeVegaLite}, registry.MimeTypes())
}

func TestRegistrations(t *testing.T) {
	regs := Registrations(nil)
	require.Len(t, regs, 2)
	for _, reg := range regs {
		require.Equal(t, "json", reg.DataType)
		require.True(t, reg.ReadOnly)
		require.NotNil(t, reg.Factory)
		require.True(t, reg.Factory.CanHandle(reg.MimeType))
		require.NotEmpty(t, reg.Extensions)
		require.Equal(t, reg.Extensions, reg.DefaultFor)
	}
	// Vega-Lite outranks Vega
	require.Equal(t, MimeTypeVegaLite, regs[0].MimeType)
	require.Less(t, regs[0].Rank, regs[1].Rank)
}

func TestSelectFactory(t *testing.T) {
	factory, err := SelectFactory(MimeTypeVegaLite, nil)
	require.NoError(t, err)
	require.True(t, factory.CanHandle(MimeTypeVegaLite))

	_, err = SelectFactory("application/json", nil)
	require.ErrorIs(t, err, ErrUnknownMimeType)
}

package vega

import (
	"reflect"
	"testing"
)

func TestContainer(t *testing.T) {
	container := NewContainer()

	container.AddClass("vega-chart")
	container.AddClass("vega-chart") // no duplicates
	container.AddClass("highlight")

	if !container.HasClass("vega-chart") {
		t.Error("HasClass(vega-chart) = false")
	}
	if container.HasClass("missing") {
		t.Error("HasClass(missing) = true")
	}
	if got, want := container.Classes(), []string{"vega-chart", "highlight"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Classes() = %v, want %v", got, want)
	}

	if container.Content() != nil {
		t.Error("new container has content")
	}
	container.SetContent([]byte("<div/>"))
	if string(container.Content()) != "<div/>" {
		t.Errorf("Content() = %q", container.Content())
	}
}

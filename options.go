package vega

import "strings"

// Option is a bitmask of action links an Embedder may attach
// to the rendered chart.
type Option int

const (
	// OptionExportAction attaches a link to export the chart as an image.
	OptionExportAction Option = 1 << iota
	// OptionSourceAction attaches a link to view the specification source.
	OptionSourceAction
	// OptionEditorAction attaches a link to open the specification in an editor.
	OptionEditorAction

	// OptionAllActions combines all action options.
	OptionAllActions = OptionExportAction | OptionSourceAction | OptionEditorAction
)

func (o Option) Has(option Option) bool {
	return o&option != 0
}

func (o Option) String() string {
	var b strings.Builder
	if o.Has(OptionExportAction) {
		b.WriteString("ExportAction")
	}
	if o.Has(OptionSourceAction) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("SourceAction")
	}
	if o.Has(OptionEditorAction) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("EditorAction")
	}
	if b.Len() == 0 {
		return "no Option"
	}
	return b.String()
}

func HasOption(options []Option, option Option) bool {
	for _, o := range options {
		if o.Has(option) {
			return true
		}
	}
	return false
}

package vega

import "testing"

func TestOption_String(t *testing.T) {
	tests := []struct {
		option Option
		want   string
	}{
		{option: 0, want: "no Option"},
		{option: OptionExportAction, want: "ExportAction"},
		{option: OptionSourceAction, want: "SourceAction"},
		{option: OptionExportAction | OptionEditorAction, want: "ExportAction|EditorAction"},
		{option: OptionAllActions, want: "ExportAction|SourceAction|EditorAction"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.option.String(); got != tt.want {
				t.Errorf("Option.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOption_Has(t *testing.T) {
	if !OptionAllActions.Has(OptionSourceAction) {
		t.Error("OptionAllActions.Has(OptionSourceAction) = false")
	}
	if OptionExportAction.Has(OptionEditorAction) {
		t.Error("OptionExportAction.Has(OptionEditorAction) = true")
	}
	if !HasOption([]Option{OptionExportAction, OptionSourceAction}, OptionSourceAction) {
		t.Error("HasOption() = false")
	}
}

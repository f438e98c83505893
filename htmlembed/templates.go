package htmlembed

import "html/template"

var (
	DocumentTemplate = template.Must(template.New("document").Parse(
		"<!DOCTYPE html>\n" +
			"<html>\n" +
			"<head>\n" +
			"  <meta charset='utf-8'>\n" +
			"  <script src='{{.CDNBaseURL}}/vega@{{.VegaVersion}}'></script>\n" +
			"{{if .VegaLiteVersion}}" +
			"  <script src='{{.CDNBaseURL}}/vega-lite@{{.VegaLiteVersion}}'></script>\n" +
			"{{end}}" +
			"  <script src='{{.CDNBaseURL}}/vega-embed@{{.EmbedVersion}}'></script>\n" +
			"</head>\n" +
			"<body>\n" +
			"  <div id='{{.ElementID}}'{{if .Class}} class='{{.Class}}'{{end}}></div>\n" +
			"  <script>\n" +
			"    vegaEmbed('#{{.ElementID}}', {{.Spec}}, {mode: '{{.Mode}}', actions: {{.Actions}}});\n" +
			"  </script>\n" +
			"</body>\n" +
			"</html>\n",
	))
)

// TemplateContext is passed to DocumentTemplate.
type TemplateContext struct {
	CDNBaseURL string
	// VegaVersion of the vega script to load.
	VegaVersion string
	// VegaLiteVersion of the vega-lite script to load,
	// empty to not load vega-lite.
	VegaLiteVersion string
	// EmbedVersion of the vega-embed script to load.
	EmbedVersion string
	// ElementID of the div the chart is embedded into.
	ElementID string
	// Class of the embedding div, empty for none.
	Class string
	// Mode tag passed to vegaEmbed.
	Mode string
	// Spec is the JSON encoded chart specification.
	Spec template.JS
	// Actions is the JSON encoded vegaEmbed actions option.
	Actions template.JS
}

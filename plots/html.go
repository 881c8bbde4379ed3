package plots

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/carbocation/pfx"
	"github.com/go-echarts/go-echarts/v2/charts"
)

// pageHTML lays the figures out on a CSS grid, Cols wide, and hands each one
// to plotly.js from the CDN. Figures are embedded as JSON, so they must not
// contain NaN or Inf; the builders emit nil for missing values instead.
const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{ .Title }}</title>
<script src="https://cdn.plot.ly/plotly-latest.min.js"></script>
<style>
body { margin: 8px; }
.grid {
	display: grid;
	grid-template-columns: repeat({{ .Cols }}, max-content);
	gap: 8px;
}
</style>
</head>
<body>
<div class="grid">
{{- range .Figs }}
<div id="{{ .ID }}"></div>
{{- end }}
</div>
<script>
{{- range .Figs }}
(function() {
	var fig = {{ .JSON }};
	Plotly.newPlot("{{ .ID }}", fig.data, fig.layout);
})();
{{- end }}
</script>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type figData struct {
	ID   string
	JSON template.JS
}

// WriteHTML renders figs into a single standalone HTML page at path. cols
// controls how many figures sit side by side before wrapping.
func WriteHTML(path, title string, cols int, figs ...*grob.Fig) error {
	if cols < 1 {
		cols = 1
	}

	page := struct {
		Title string
		Cols  int
		Figs  []figData
	}{Title: title, Cols: cols}

	for i, fig := range figs {
		raw, err := json.Marshal(fig)
		if err != nil {
			return pfx.Err(err)
		}
		page.Figs = append(page.Figs, figData{
			ID:   fmt.Sprintf("plot-%d", i),
			JSON: template.JS(raw),
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	if err := pageTemplate.Execute(f, page); err != nil {
		f.Close()
		return pfx.Err(err)
	}
	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteTreemapHTML renders the echarts treemap into its own HTML page at
// path. Echarts charts carry their page scaffolding with them, so this does
// not share the plotly template above.
func WriteTreemapHTML(path string, tm *charts.TreeMap) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	if err := tm.Render(f); err != nil {
		f.Close()
		return pfx.Err(err)
	}
	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

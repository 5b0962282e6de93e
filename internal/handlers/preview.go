package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/scrolltheme/internal/engine"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>scrolltheme preview</title>
	<style>{{.CSS}}</style>
</head>
<body>
{{range .Samples}}
	<section class="sample" style="{{.Style}}">
		<div class="sample-header">
			<h2>{{.Label}}</h2>
			<small class="sample-meta">progress {{.Progress}} &middot; contrast {{.Contrast}}:1</small>
		</div>
		<div class="card">
			<p>Text on a card surface. The foreground is derived from the background at this point of the page.</p>
		</div>
		<p>
			<span class="btn">Primary</span>
			<span class="btn btn-secondary">Secondary</span>
			<span class="btn btn-danger">Destructive</span>
		</p>
		<p class="muted">Muted surface with secondary text.</p>
		<div class="swatches">
		{{range .Swatches}}
			<div class="swatch" style="{{.Style}}">{{.Name}}<br><small>{{.Value}}</small></div>
		{{end}}
		</div>
	</section>
{{end}}
</body>
</html>
`))

type previewSwatch struct {
	Name  string
	Value string
	Style template.CSS
}

type previewSample struct {
	Label    string
	Progress string
	Contrast string
	Style    template.CSS
	Swatches []previewSwatch
}

// PreviewSamples picks the progress values shown on the preview page: every
// keyframe plus the midpoint of every interval
func PreviewSamples(table *themes.StopTable) []float64 {
	var out []float64
	for i := 0; i < table.Len(); i++ {
		out = append(out, table.At(i).Position)
		if i+1 < table.Len() {
			out = append(out, (table.At(i).Position+table.At(i+1).Position)/2)
		}
	}
	return out
}

// PreviewHandler renders the whole scroll range as a static page, one section
// per sample, each styled with its own palette
func PreviewHandler(table *themes.StopTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		var samples []previewSample
		for _, p := range PreviewSamples(table) {
			frame := engine.Compute(table, p)

			label := fmt.Sprintf("%s → %s", table.At(frame.Interval).Label, table.At(frame.Interval+1).Label)
			if frame.LocalT == 0 {
				label = table.At(frame.Interval).Label
			} else if frame.LocalT == 1 {
				label = table.At(frame.Interval + 1).Label
			}

			sample := previewSample{
				Label:    label,
				Progress: fmt.Sprintf("%.3f", frame.Progress),
				Contrast: fmt.Sprintf("%.2f", frame.Contrast),
				Style:    template.CSS(themes.InlineStyle(frame.Tokens)),
			}
			for _, t := range themes.AllTokens {
				sample.Swatches = append(sample.Swatches, previewSwatch{
					Name:  string(t),
					Value: frame.Tokens[t].String(),
					Style: template.CSS(fmt.Sprintf("background: hsl(%s)", frame.Tokens[t])),
				})
			}
			samples = append(samples, sample)
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		err := previewTemplate.Execute(c.Writer, gin.H{
			"CSS":     template.CSS(GetDesignSystemCSS()),
			"Samples": samples,
		})
		if err != nil {
			_ = c.Error(err)
		}
	}
}

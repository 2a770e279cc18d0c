package dash

import (
	"html/template"
	"io"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
:root{--primary:{{.Theme.Primary}};--border:{{.Theme.Border}};--muted-foreground:{{.Theme.Muted}};--foreground:{{.Theme.Foreground}};--background:{{.Theme.Background}}}
body{margin:0;padding:24px;font-family:system-ui,sans-serif;color:var(--foreground);background:var(--background)}
main{display:grid;grid-template-columns:repeat(auto-fill,minmax(420px,1fr));gap:24px}
section{border:1px solid var(--border);border-radius:8px;padding:16px}
h2{margin:0 0 12px;font-size:1rem}
section svg{width:100%;height:auto}
</style>
</head>
<body>
{{if .Title}}<h1>{{.Title}}</h1>{{end}}
<main>
{{range .Charts}}<section id="{{.Name}}">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{.SVG}}
</section>
{{end}}</main>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(page))

type pageChart struct {
	Name  string
	Title string
	SVG   template.HTML
}

type pageData struct {
	Title  string
	Theme  pageTheme
	Charts []pageChart
}

type pageTheme struct {
	Primary    template.CSS
	Border     template.CSS
	Muted      template.CSS
	Foreground template.CSS
	Background template.CSS
}

// WritePage writes an HTML page with every mounted chart inlined, in the
// order of the definition.
func (d *Dashboard) WritePage(w io.Writer) error {
	theme, err := themeFrom(d.environ(), nil)
	if err != nil {
		return err
	}
	if err := theme.Validate(); err != nil {
		return err
	}
	data := pageData{
		Title: d.Title,
		Theme: pageTheme{
			Primary:    template.CSS(theme.Primary),
			Border:     template.CSS(theme.Border),
			Muted:      template.CSS(theme.Muted),
			Foreground: template.CSS(theme.Foreground),
			Background: template.CSS(theme.Background),
		},
	}
	for _, ch := range d.Charts {
		cv, ok := d.Canvas(ch.Name)
		if !ok {
			continue
		}
		data.Charts = append(data.Charts, pageChart{
			Name:  ch.Name,
			Title: ch.Title,
			SVG:   template.HTML(cv.Inline()),
		})
	}
	return pageTemplate.Execute(w, data)
}

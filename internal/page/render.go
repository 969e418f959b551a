package page

import (
	"fmt"
	"html/template"
	"io"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body {
	margin: 0;
	min-height: 100vh;
	background: #0e0e10;
	font-family: "Segoe UI", Roboto, sans-serif;
}
#centered-container {
	display: flex;
	flex-direction: column;
	align-items: center;
	justify-content: center;
	gap: 1rem;
	min-height: 100vh;
}
.paint {
	font-size: 3rem;
	font-weight: 800;
	color: transparent;
	background-color: currentcolor;
	background-size: cover;
	-webkit-background-clip: text;
	background-clip: text;
}
.paint.placeholder {
	color: #adadb8;
}
</style>
</head>
<body>
<div id="centered-container">
{{- range .Nodes}}
{{- if .Styled}}
<div class="paint" data-user="{{.UserID}}" style="{{css .StyleAttr}}">{{.Text}}</div>
{{- else}}
<div class="paint placeholder" data-user="{{.UserID}}">{{.Text}}</div>
{{- end}}
{{- end}}
</div>
</body>
</html>
`

// DefaultTitle is used when a Document carries no title.
const DefaultTitle = "7TV Paints"

// Document is the data rendered into the page.
type Document struct {
	Title string
	Nodes []*Node
}

var tmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	// Style values are built by paint.DeriveStyle, which escapes URLs.
	"css": func(s string) template.CSS { return template.CSS(s) },
}).Parse(pageTemplate))

// Render writes the HTML document for doc to w.
func Render(w io.Writer, doc Document) error {
	if doc.Title == "" {
		doc.Title = DefaultTitle
	}
	if err := tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

package homepage

import (
	"fmt"
	"html/template"
	"io"
)

// PageData is the transient view model for the home page: constructed per
// build, consumed immediately by the template.
type PageData struct {
	PageTitle string
	Sidebar   template.HTML
	Body      template.HTML
}

// pageTemplate is the minimal page shell. The body and sidebar arrive as
// already-rendered fragments; full site theming is a separate concern.
var pageTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>{{.PageTitle}}</title>
</head>
<body>
<main class="contents">
{{.Body}}</main>
<aside class="sidebar">
{{.Sidebar}}</aside>
</body>
</html>
`))

func renderPage(w io.Writer, data PageData) error {
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

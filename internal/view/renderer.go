package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// PageTemplate is the name of the list page template.
const PageTemplate = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

type PageData struct {
	Title   string
	APIPath string
}

// TemplateRenderer is an echo.Renderer over the embedded page templates.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

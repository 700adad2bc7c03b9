package httpapi

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/Gedeon250/football-api-app/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageIndex       = "index.html"
	pageCompetition = "competition.html"
	pageTeam        = "team.html"
)

var minimalPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Football Dashboard</title></head>
<body><h1>Football Dashboard</h1><div class="error-message">` + template.HTMLEscapeString(usecase.DegradedPageMessage) + `</div></body></html>
`

type pageRenderer struct {
	templates map[string]*template.Template
}

type homeView struct {
	Page           usecase.HomePage
	CurrentSearch  string
	CurrentSort    string
	CurrentCountry string
}

func newPageRenderer() (*pageRenderer, error) {
	funcs := template.FuncMap{
		"slug":  slug,
		"deref": deref,
	}

	templates := make(map[string]*template.Template, 3)
	for _, name := range []string{pageIndex, pageCompetition, pageTeam} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &pageRenderer{templates: templates}, nil
}

// render executes the page into a pooled buffer and only writes to w when
// execution succeeded, so a failing template never leaves partial output.
func (p *pageRenderer) render(ctx context.Context, w http.ResponseWriter, status int, name string, data any) error {
	_, span := startSpan(ctx, "httpapi.pages.render")
	defer span.End()

	tmpl, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := tmpl.ExecuteTemplate(buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func writeMinimalPage(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(minimalPage))
}

// slug turns a display name into the path segment used by page links.
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

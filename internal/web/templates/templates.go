// Package templates renders the web client's HTML pages. View models are
// built by pure functions so view logic tests run without a browser.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

//go:embed html/*.html
var templatesFS embed.FS

const layoutFile = "html/layout.html"

var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	names, err := fs.Glob(templatesFS, "html/*.html")
	if err != nil {
		panic(fmt.Sprintf("glob page templates: %v", err))
	}
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile {
			continue
		}
		page := strings.TrimSuffix(path.Base(name), ".html")
		parsed[page] = template.Must(template.ParseFS(templatesFS, layoutFile, name))
	}
	return parsed
}

// Render executes the named page template with its layout into w.
func Render(w io.Writer, page string, data any) error {
	tmpl, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}

package web

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/kronos-guild/website/app/blog"
	"github.com/kronos-guild/website/app/site"
)

//go:embed templates/*.html
var templateFS embed.FS

func newTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}

var templateFuncs = template.FuncMap{
	"formatDate": formatDate,
	"asset":      asset,
	"fontURL":    fontURL,
	"year":       func() int { return time.Now().Year() },
}

// formatDate renders a post date as "January 2, 2006". Unparseable dates are
// shown as written.
func formatDate(date string) string {
	t, ok := blog.ParseDate(date)
	if !ok {
		return date
	}
	return t.Format("January 2, 2006")
}

// asset maps a site-relative path to the static file route.
func asset(p string) string {
	switch {
	case p == "":
		return ""
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "https://"), strings.HasPrefix(p, "/assets/"):
		return p
	default:
		return "/assets/" + strings.TrimLeft(p, "/")
	}
}

func fontURL(font site.Font) string {
	return asset(font.File)
}

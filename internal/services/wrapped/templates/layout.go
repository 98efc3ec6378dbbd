package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

// LayoutOptions describes the document shell.
type LayoutOptions struct {
	Title       string
	Description string
	Lang        string
}

const defaultDescription = "A little wrapped of our year together"

// Layout wraps children in the html document.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" || lang == "und" {
			lang = "en"
		}
		description := strings.TrimSpace(opts.Description)
		if description == "" {
			description = defaultDescription
		}
		m := newMarkup(ctx, w)
		m.raw("<!doctype html><html")
		m.attr("lang", lang)
		m.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		m.text(opts.Title)
		m.raw("</title><meta name=\"description\"")
		m.attr("content", description)
		m.raw("><link rel=\"stylesheet\"")
		m.attr("href", routepath.Static("wrapped.css"))
		m.raw("><script defer")
		m.attr("src", routepath.Static("wrapped.js"))
		m.raw("></script></head><body>")
		m.children()
		m.raw("</body></html>")
		return m.err
	})
}

package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ImageView is an image slot that may resolve to a placeholder.
type ImageView struct {
	URL              string
	Alt              string
	Placeholder      bool
	PlaceholderLabel string
	Class            string
}

// Image renders an img, or placeholder copy when no asset resolved. A
// rendered img swaps itself for the placeholder if the browser fails to
// load it.
func Image(view ImageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		label := strings.TrimSpace(view.PlaceholderLabel)
		if label == "" {
			label = "Your Photo Here"
		}
		m := newMarkup(ctx, w)
		m.raw("<div class=\"image-slot\">")
		if !view.Placeholder && strings.TrimSpace(view.URL) != "" {
			m.raw("<img loading=\"lazy\" data-fallback")
			m.attr("src", view.URL)
			m.attr("alt", view.Alt)
			if view.Class != "" {
				m.attr("class", view.Class)
			}
			m.raw(" onerror=\"this.hidden=true;this.nextElementSibling.hidden=false\">")
		}
		m.raw("<div class=\"image-placeholder\" data-placeholder")
		m.boolAttr("hidden", !view.Placeholder && strings.TrimSpace(view.URL) != "")
		m.raw(">")
		m.render(Icon("photo"))
		m.raw("<p>")
		m.text(label)
		m.raw("</p></div></div>")
		return m.err
	})
}

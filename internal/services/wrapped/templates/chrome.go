package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ChromeOptions configures the decorated paper card.
type ChromeOptions struct {
	Title     string
	Paperclip bool
	Wide      bool
}

type decoration struct {
	icon  string
	class string
	delay float64
}

var chromeDecorations = []decoration{
	{icon: "cat", class: "deco deco-top-left", delay: 0.3},
	{icon: "bunny", class: "deco deco-bottom-right", delay: 0.5},
	{icon: "dog", class: "deco deco-mid-right", delay: 0.4},
	{icon: "bear", class: "deco deco-mid-left", delay: 0.6},
	{icon: "heart", class: "deco deco-heart-a", delay: 0.7},
	{icon: "heart", class: "deco deco-heart-b", delay: 0.8},
	{icon: "star", class: "deco deco-star-a", delay: 0.9},
	{icon: "star", class: "deco deco-star-b", delay: 1.0},
}

// Chrome renders the dotted backdrop and rotated paper card around children.
func Chrome(opts ChromeOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<main class=\"backdrop\"><div class=\"stage\"><div")
		class := "paper-card enter"
		if opts.Wide {
			class += " paper-card-wide"
		}
		m.attr("class", class)
		m.raw(">")
		if opts.Paperclip {
			m.raw("<div class=\"paperclip\">")
			m.render(Icon("paperclip"))
			m.raw("</div>")
		}
		m.raw(`<div class="doodle" aria-hidden="true"><svg width="60" height="40" viewBox="0 0 60 40"><path d="M 10 20 Q 20 10, 30 20 T 50 20" stroke="#FFD1DC" stroke-width="2" fill="none" stroke-dasharray="3,3"></path><circle cx="15" cy="15" r="3" fill="#B8E6E6"></circle><circle cx="45" cy="25" r="2" fill="#B8E6E6"></circle></svg></div>`)
		if title := strings.TrimSpace(opts.Title); title != "" {
			m.raw("<h1 class=\"wrapped-title\">")
			m.text(title)
			m.raw("</h1>")
		}
		m.children()
		for _, deco := range chromeDecorations {
			m.raw("<div")
			m.attr("class", deco.class)
			m.attr("style", "animation-delay: "+seconds(deco.delay))
			m.raw(" aria-hidden=\"true\">")
			m.render(Icon(deco.icon))
			m.raw("</div>")
		}
		m.raw("</div></div></main>")
		return m.err
	})
}

// ContinueLink renders the forward link to the next screen.
func ContinueLink(href string, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if strings.TrimSpace(label) == "" {
			label = "Continue →"
		}
		m := newMarkup(ctx, w)
		m.raw("<div class=\"continue\"><a class=\"pill-button\" data-continue")
		m.attr("href", href)
		m.raw(">")
		m.text(label)
		m.raw("</a></div>")
		return m.err
	})
}

// Package templates renders wrapped pages as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// markup accumulates the first write error so component bodies stay linear.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + "=\"")
	m.text(value)
	m.raw("\"")
}

func (m *markup) boolAttr(name string, on bool) {
	if on {
		m.raw(" " + name)
	}
}

func (m *markup) render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// children renders the caller's children without leaking them further down.
func (m *markup) children() {
	if m.err != nil {
		return
	}
	child := templ.GetChildren(m.ctx)
	if child == nil {
		return
	}
	m.err = child.Render(templ.ClearChildren(m.ctx), m.w)
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

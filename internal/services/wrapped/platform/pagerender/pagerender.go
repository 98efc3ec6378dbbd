// Package pagerender centralizes screen page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/httpx"
	"github.com/louisbranch/wrapped/internal/services/wrapped/templates"
)

// Page describes one full-document screen response.
type Page struct {
	Title       string
	Description string
	Lang        string
	StatusCode  int
	Chrome      templates.ChromeOptions
	// Audio renders the background track when set.
	Audio *templates.AudioView
	Body  templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the document layout and chrome. Nothing is
// written to w when rendering fails, so callers can still send an error page.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if page.Audio != nil {
			if err := templates.AudioPlayer(*page.Audio).Render(ctx, w); err != nil {
				return err
			}
		}
		return templates.Chrome(page.Chrome).Render(templ.WithChildren(ctx, body), w)
	})
	layout := templates.Layout(templates.LayoutOptions{
		Title:       page.Title,
		Description: page.Description,
		Lang:        page.Lang,
	})

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), content), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

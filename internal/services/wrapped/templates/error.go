package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "Page not found"
	}
	return "Something went wrong"
}

// ErrorState renders the error body shown inside the chrome.
func ErrorState(statusCode int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := "Oops, this page got lost"
		message := "This page is not part of the wrapped. Let's go back to the start."
		if normalizeErrorStatus(statusCode) != http.StatusNotFound {
			heading = "Something went wrong"
			message = "The wrapped tripped over itself. Try again from the start."
		}
		m := newMarkup(ctx, w)
		m.raw("<section class=\"message error-state\"")
		m.attr("data-status", strconv.Itoa(normalizeErrorStatus(statusCode)))
		m.raw("><h2 class=\"message-heading\">")
		m.text(heading)
		m.raw("</h2><p class=\"message-lead\">")
		m.text(message)
		m.raw("</p></section>")
		m.render(ContinueLink(routepath.Root, "Back to the start"))
		return m.err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

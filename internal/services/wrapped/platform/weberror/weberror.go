// Package weberror renders shared chrome error responses for wrapped modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	apperrors "github.com/louisbranch/wrapped/internal/services/wrapped/platform/errors"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/pagerender"
	"github.com/louisbranch/wrapped/internal/services/wrapped/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the error page inside the paper-card chrome.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode),
		Lang:       deps.Locale.Lang(),
		StatusCode: statusCode,
		Chrome:     templates.ChromeOptions{Paperclip: true},
		Body:       templates.ErrorState(statusCode),
	})
	if err != nil {
		if deps.Logger != nil {
			deps.Logger.Error("render error page", "status", statusCode, "err", err)
		}
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		if statusCode >= http.StatusInternalServerError && deps.Logger != nil {
			deps.Logger.Error("module request failed", "path", requestPath(r), "err", err)
		}
		WriteAppError(w, r, statusCode, deps)
		return
	}
	http.Error(w, PublicMessage(err), statusCode)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}

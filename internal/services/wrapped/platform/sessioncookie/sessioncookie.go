// Package sessioncookie stores the session-scoped audio flag in a cookie.
//
// The cookie carries no Max-Age or Expires, so browsers drop it when the
// session ends.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/requestmeta"
)

// Name is the audio flag cookie name.
const Name = "wrapped_audio"

const enabledValue = "1"

// Read returns the trimmed cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the flag cookie for the current session.
func Write(w http.ResponseWriter, r *http.Request, value string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the flag cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// AudioFlags adapts the cookie to a per-request flag store. Writes are
// visible to later reads in the same request.
type AudioFlags struct {
	w       http.ResponseWriter
	r       *http.Request
	enabled bool
}

// NewAudioFlags reads the current flag from r.
func NewAudioFlags(w http.ResponseWriter, r *http.Request) *AudioFlags {
	value, ok := Read(r)
	return &AudioFlags{w: w, r: r, enabled: ok && value == enabledValue}
}

// Enabled reports whether the listener opted into audio this session.
func (f *AudioFlags) Enabled() bool {
	if f == nil {
		return false
	}
	return f.enabled
}

// SetEnabled writes or clears the cookie.
func (f *AudioFlags) SetEnabled(enabled bool) {
	if f == nil {
		return
	}
	f.enabled = enabled
	if enabled {
		Write(f.w, f.r, enabledValue)
		return
	}
	Clear(f.w, f.r)
}

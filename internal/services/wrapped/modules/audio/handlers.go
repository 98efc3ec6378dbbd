package audio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/wrapped/internal/platform/logging"
	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	apperrors "github.com/louisbranch/wrapped/internal/services/wrapped/platform/errors"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/httpx"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/sessioncookie"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/weberror"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
	"github.com/louisbranch/wrapped/internal/wrapped/audio"
	"github.com/louisbranch/wrapped/internal/wrapped/sequence"
)

const maxStateBody = 1 << 10

type handlers struct {
	deps   module.Dependencies
	logger *log.Logger
	assets http.Handler
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{
		deps:   deps,
		logger: logging.ForComponent(deps.Logger, "audio"),
		assets: deps.Assets.Handler(),
	}
}

// handleToggle is the form fallback for the play/pause button. The submitted
// form is the user gesture, so starting always succeeds server-side.
func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "invalid form body", err))
		return
	}
	playing, _ := strconv.ParseBool(strings.TrimSpace(r.PostFormValue("playing")))
	controller := audio.NewController(
		audio.NewPagePlayer(),
		sessioncookie.NewAudioFlags(w, r),
		audio.WithPlaying(playing),
		audio.WithLogger(h.logger),
	)
	now := controller.Toggle(httpx.RequestContext(r))
	h.logger.Debug("audio toggled", "playing", now)
	httpx.WriteSeeOther(w, r, returnPath(r.PostFormValue("return")))
}

// handleState records the outcome of a browser-side play or pause.
func (h handlers) handleState(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Enabled *bool `json:"enabled"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxStateBody)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeJSONError(w, apperrors.Wrap(apperrors.KindInvalidInput, "invalid json body", err))
		return
	}
	if payload.Enabled == nil {
		h.writeJSONError(w, apperrors.E(apperrors.KindInvalidInput, "enabled is required"))
		return
	}
	sessioncookie.NewAudioFlags(w, r).SetEnabled(*payload.Enabled)
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}

func (h handlers) writeJSONError(w http.ResponseWriter, err error) {
	statusCode := apperrors.HTTPStatus(err)
	message := weberror.PublicMessage(err)
	var appErr apperrors.Error
	if statusCode < http.StatusInternalServerError && errors.As(err, &appErr) {
		message = appErr.Message
	}
	_ = httpx.WriteJSONError(w, statusCode, message)
}

// returnPath keeps redirects inside the screen sequence.
func returnPath(raw string) string {
	screen, ok := sequence.Lookup(strings.TrimSpace(raw))
	if !ok {
		return routepath.Root
	}
	return screen.Path
}

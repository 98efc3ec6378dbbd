package audio

import (
	"net/http"

	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/httpx"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.AudioToggle, h.handleToggle)
	mux.HandleFunc(http.MethodGet+" "+routepath.AudioToggle, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AudioState, h.handleState)
	mux.HandleFunc(http.MethodGet+" "+routepath.AudioState, httpx.MethodNotAllowed(http.MethodPost))
	mux.Handle(http.MethodGet+" "+routepath.AudioPrefix+"{file...}", h.assets)
}

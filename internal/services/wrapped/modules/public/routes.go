package public

import (
	"net/http"

	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.Handle(http.MethodGet+" "+routepath.ImagesPrefix+"{file...}", h.assets)
	mux.HandleFunc(http.MethodGet+" "+routepath.NotFoundPattern, h.handleNotFound)
}

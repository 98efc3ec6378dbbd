package public

import (
	"io"
	"net/http"

	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/audioview"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/pagerender"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/weberror"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
	"github.com/louisbranch/wrapped/internal/services/wrapped/templates"
	"github.com/louisbranch/wrapped/internal/wrapped/sequence"
)

type handlers struct {
	deps   module.Dependencies
	assets http.Handler
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, assets: deps.Assets.Handler()}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	catalog := h.deps.Catalog
	start, err := sequence.Next(routepath.Root)
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	err = pagerender.WritePage(w, r, pagerender.Page{
		Title:  catalog.DocumentTitle(),
		Lang:   h.deps.Locale.Lang(),
		Chrome: templates.ChromeOptions{Paperclip: true},
		Audio:  audioview.Build(w, r, h.deps, catalog.Landing.Track, audioview.ModeResume, routepath.Root),
		Body: templates.LandingPage(templates.LandingView{
			Heading:    catalog.Heading(),
			Year:       catalog.Recipient.Year,
			Tagline:    catalog.Landing.Tagline,
			StartLabel: catalog.Landing.StartLabel,
			StartHref:  start,
		}),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

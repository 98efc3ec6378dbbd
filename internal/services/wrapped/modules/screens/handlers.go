package screens

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/audioview"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/pagerender"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/weberror"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
	"github.com/louisbranch/wrapped/internal/services/wrapped/templates"
	"github.com/louisbranch/wrapped/internal/wrapped/envelope"
	"github.com/louisbranch/wrapped/internal/wrapped/sequence"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleEntry(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, sequence.First().Path, http.StatusFound)
}

func (h handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Stats)
	if !ok {
		return
	}
	h.writeScreen(w, r, h.service.catalog.Stats.Title, nil, templates.StatsPage(h.service.statsView(next)))
}

func (h handlers) handleMusic(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Music)
	if !ok {
		return
	}
	music := h.service.catalog.Music
	player := audioview.Build(w, r, h.deps, music.Track, audioview.ModeAutoplay, routepath.Music)
	h.writeScreen(w, r, music.Title, player, templates.MusicPage(h.service.musicView(next)))
}

func (h handlers) handleMoments(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Moments)
	if !ok {
		return
	}
	moments := h.service.catalog.Moments
	h.writeScreen(w, r, moments.Title, nil, templates.EntriesPage(entriesView(moments.Items, next)))
}

func (h handlers) handleTravel(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Travel)
	if !ok {
		return
	}
	h.writeScreen(w, r, h.service.catalog.Travel.Title, nil, templates.TravelPage(h.service.travelView(next)))
}

func (h handlers) handleGrowth(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Growth)
	if !ok {
		return
	}
	growth := h.service.catalog.Growth
	h.writeScreen(w, r, growth.Title, nil, templates.EntriesPage(entriesView(growth.Items, next)))
}

func (h handlers) handleFavorite(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Favorite)
	if !ok {
		return
	}
	h.writeScreen(w, r, "", nil, templates.FavoritePage(h.service.favoriteView(next)))
}

func (h handlers) handleBirthday(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Birthday)
	if !ok {
		return
	}
	h.writeScreen(w, r, "", nil, templates.BirthdayPage(h.service.birthdayView(next)))
}

func (h handlers) handleLetter(w http.ResponseWriter, r *http.Request) {
	next, ok := h.next(w, r, routepath.Letter)
	if !ok {
		return
	}
	state := envelope.FromQuery(r.URL.Query())
	h.writeScreen(w, r, h.service.catalog.Letter.Title, nil, templates.LetterPage(h.service.letterView(state, routepath.Letter, next)))
}

func (h handlers) handleThankYou(w http.ResponseWriter, r *http.Request) {
	restart, ok := h.next(w, r, routepath.ThankYou)
	if !ok {
		return
	}
	h.writeScreen(w, r, h.service.catalog.ThankYou.Title, nil, templates.ThankYouPage(h.service.thankYouView(restart)))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

// next resolves the Continue target of the screen at path.
func (h handlers) next(w http.ResponseWriter, r *http.Request, path string) (string, bool) {
	next, err := sequence.Next(path)
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return "", false
	}
	return next, true
}

func (h handlers) writeScreen(w http.ResponseWriter, r *http.Request, title string, player *templates.AudioView, body templ.Component) {
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:  h.service.catalog.DocumentTitle(),
		Lang:   h.deps.Locale.Lang(),
		Chrome: templates.ChromeOptions{Title: title, Paperclip: true},
		Audio:  player,
		Body:   body,
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

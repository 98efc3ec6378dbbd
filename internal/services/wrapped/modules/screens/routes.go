package screens

import (
	"net/http"

	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Wrapped, h.handleEntry)
	mux.HandleFunc(http.MethodGet+" "+routepath.WrappedPrefix+"{$}", h.handleEntry)
	mux.HandleFunc(http.MethodGet+" "+routepath.Stats, h.handleStats)
	mux.HandleFunc(http.MethodGet+" "+routepath.Music, h.handleMusic)
	mux.HandleFunc(http.MethodGet+" "+routepath.Moments, h.handleMoments)
	mux.HandleFunc(http.MethodGet+" "+routepath.Travel, h.handleTravel)
	mux.HandleFunc(http.MethodGet+" "+routepath.Growth, h.handleGrowth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Favorite, h.handleFavorite)
	mux.HandleFunc(http.MethodGet+" "+routepath.Birthday, h.handleBirthday)
	mux.HandleFunc(http.MethodGet+" "+routepath.Letter, h.handleLetter)
	mux.HandleFunc(http.MethodGet+" "+routepath.ThankYou, h.handleThankYou)
	mux.HandleFunc(http.MethodGet+" "+routepath.WrappedPrefix+"{rest...}", h.handleNotFound)
}

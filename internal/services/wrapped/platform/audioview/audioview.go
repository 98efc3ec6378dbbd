// Package audioview maps a screen's audio behavior onto the rendered player.
package audioview

import (
	"net/http"

	"github.com/louisbranch/wrapped/internal/platform/logging"
	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/httpx"
	"github.com/louisbranch/wrapped/internal/services/wrapped/platform/sessioncookie"
	"github.com/louisbranch/wrapped/internal/services/wrapped/templates"
	"github.com/louisbranch/wrapped/internal/wrapped/assets"
	"github.com/louisbranch/wrapped/internal/wrapped/audio"
)

// Mode selects how a screen starts its track.
type Mode int

const (
	// ModeResume plays only when the session flag is set, and offers the
	// toggle that maintains the flag.
	ModeResume Mode = iota
	// ModeAutoplay always attempts playback and leaves the flag alone.
	ModeAutoplay
)

// Build returns the player view for track, or nil when no encoding of the
// track is published.
func Build(w http.ResponseWriter, r *http.Request, deps module.Dependencies, track string, mode Mode, returnPath string) *templates.AudioView {
	sources := Sources(deps.Assets, track)
	if len(sources) == 0 {
		return nil
	}
	player := audio.NewPagePlayer()
	controller := audio.NewController(
		player,
		sessioncookie.NewAudioFlags(w, r),
		audio.WithLogger(logging.ForComponent(deps.Logger, "audio")),
	)
	view := &templates.AudioView{Sources: sources, ReturnPath: returnPath}
	ctx := httpx.RequestContext(r)
	switch mode {
	case ModeAutoplay:
		view.Autoplay = controller.Autoplay(ctx)
	default:
		view.Autoplay = controller.Resume(ctx)
		view.Persist = true
		view.Toggle = true
		view.StartOnGesture = true
	}
	view.Volume = player.Volume()
	return view
}

// Sources lists the published encodings of track.
func Sources(resolver *assets.Resolver, track string) []templates.AudioSource {
	var sources []templates.AudioSource
	for _, source := range (audio.Track{Base: track}).Sources() {
		if !resolver.Exists(source.Path) {
			continue
		}
		url, err := resolver.URL(source.Path)
		if err != nil {
			continue
		}
		sources = append(sources, templates.AudioSource{URL: url, Type: source.Type})
	}
	return sources
}

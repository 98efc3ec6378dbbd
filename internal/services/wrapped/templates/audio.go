package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

// AudioSource is one encoding offered to the audio element.
type AudioSource struct {
	URL  string
	Type string
}

// AudioView describes a screen's background track.
type AudioView struct {
	Sources []AudioSource
	Volume  float64
	// Autoplay renders the autoplay attribute and asks the script to start
	// playback on load.
	Autoplay bool
	// Persist makes the script report play/pause back to the server so the
	// session flag follows the listener.
	Persist bool
	// StartOnGesture asks the script to start playback on the first click
	// anywhere on the page when autoplay was blocked.
	StartOnGesture bool
	// Toggle renders the play/pause button.
	Toggle     bool
	ReturnPath string
}

// AudioPlayer renders the looping audio element and, when requested, the
// play/pause toggle. The toggle is a form so it works without the script.
func AudioPlayer(view AudioView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(view.Sources) == 0 {
			return nil
		}
		m := newMarkup(ctx, w)
		m.raw("<audio id=\"wrapped-audio\" loop preload=\"auto\"")
		m.attr("data-volume", strconv.FormatFloat(view.Volume, 'f', -1, 64))
		m.attr("data-autoresume", strconv.FormatBool(view.Autoplay))
		m.attr("data-persist", strconv.FormatBool(view.Persist))
		m.attr("data-start-on-gesture", strconv.FormatBool(view.StartOnGesture))
		m.attr("data-state-url", routepath.AudioState)
		m.boolAttr("autoplay", view.Autoplay)
		m.raw(">")
		for _, source := range view.Sources {
			m.raw("<source")
			m.attr("src", source.URL)
			m.attr("type", source.Type)
			m.raw(">")
		}
		m.raw("Your browser does not support the audio element.</audio>")
		if view.Toggle {
			// Without the script the server cannot see a blocked autoplay, so a
			// set flag renders as playing and the first submit clears it.
			label := "Play music"
			if view.Autoplay {
				label = "Pause music"
			}
			m.raw("<form class=\"audio-toggle-form\" method=\"post\"")
			m.attr("action", routepath.AudioToggle)
			m.raw("><input type=\"hidden\" name=\"playing\"")
			m.attr("value", strconv.FormatBool(view.Autoplay))
			m.raw("><input type=\"hidden\" name=\"return\"")
			m.attr("value", view.ReturnPath)
			m.raw("><button type=\"submit\" class=\"audio-toggle\" data-audio-toggle")
			m.attr("aria-label", label)
			m.attr("aria-pressed", strconv.FormatBool(view.Autoplay))
			m.raw("><span class=\"audio-icon-play\"")
			m.boolAttr("hidden", view.Autoplay)
			m.raw(">")
			m.render(Icon("play"))
			m.raw("</span><span class=\"audio-icon-pause\"")
			m.boolAttr("hidden", !view.Autoplay)
			m.raw(">")
			m.render(Icon("pause"))
			m.raw("</span><span class=\"visually-hidden\" data-audio-label>")
			m.text(label)
			m.raw("</span></button></form>")
		}
		return m.err
	})
}

package audio

import (
	"context"
	"strings"
)

// PagePlayer records the playback state a rendered page should start in.
// The browser performs the real start; the page only carries the intent.
type PagePlayer struct {
	volume  float64
	playing bool
}

// NewPagePlayer returns a stopped player at DefaultVolume.
func NewPagePlayer() *PagePlayer {
	return &PagePlayer{volume: DefaultVolume}
}

// SetVolume clamps volume into [0, 1].
func (p *PagePlayer) SetVolume(volume float64) {
	switch {
	case volume < 0:
		volume = 0
	case volume > 1:
		volume = 1
	}
	p.volume = volume
}

// Play marks the page as playing unless ctx is already done.
func (p *PagePlayer) Play(ctx context.Context) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	p.playing = true
	return nil
}

// Pause marks the page as stopped.
func (p *PagePlayer) Pause() {
	p.playing = false
}

// Volume returns the configured level.
func (p *PagePlayer) Volume() float64 {
	return p.volume
}

// Playing reports whether the page should start with audio.
func (p *PagePlayer) Playing() bool {
	return p.playing
}

// Track is a looping background track published in several encodings.
type Track struct {
	Base string
}

// Source is one encoding of a track.
type Source struct {
	Path string
	Type string
}

var trackEncodings = []Source{
	{Path: ".mp3", Type: "audio/mpeg"},
	{Path: ".ogg", Type: "audio/ogg"},
}

// Sources lists the track's encodings in preference order.
func (t Track) Sources() []Source {
	base := strings.Trim(strings.TrimSpace(t.Base), "/")
	if base == "" {
		return nil
	}
	sources := make([]Source, 0, len(trackEncodings))
	for _, enc := range trackEncodings {
		sources = append(sources, Source{Path: base + enc.Path, Type: enc.Type})
	}
	return sources
}

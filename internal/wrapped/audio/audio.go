// Package audio owns background-music continuity across screens.
//
// A Controller drives a Player and records the listener's opt-in in a
// FlagStore so later screens can resume playback without another gesture.
// Playback failures are expected (hosts may refuse to start audio without a
// gesture) and never surface to the listener.
package audio

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/wrapped/internal/platform/logging"
)

// DefaultVolume is the level applied before every start attempt.
const DefaultVolume = 0.7

// ErrPlaybackDenied reports that the host refused to start playback.
var ErrPlaybackDenied = errors.New("playback denied")

// Player is an audio output the controller can start and stop.
type Player interface {
	SetVolume(volume float64)
	Play(ctx context.Context) error
	Pause()
}

// FlagStore persists the session-scoped "audio enabled" flag.
type FlagStore interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Controller toggles and resumes playback for one screen.
type Controller struct {
	player  Player
	flags   FlagStore
	logger  *log.Logger
	playing bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for swallowed playback failures.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPlaying seeds the current play state, e.g. from a submitted form.
func WithPlaying(playing bool) Option {
	return func(c *Controller) {
		c.playing = playing
	}
}

// NewController builds a controller over player and flags.
func NewController(player Player, flags FlagStore, opts ...Option) *Controller {
	c := &Controller{
		player: player,
		flags:  flags,
		logger: logging.ForComponent(nil, "audio"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Playing reports whether the controller believes audio is playing.
func (c *Controller) Playing() bool {
	if c == nil {
		return false
	}
	return c.playing
}

// Toggle pauses when playing and starts otherwise. Pausing clears the
// session flag; a successful start sets it. A refused start leaves the
// controller not playing. It returns the resulting play state.
func (c *Controller) Toggle(ctx context.Context) bool {
	if c == nil || c.player == nil {
		return false
	}
	if c.playing {
		c.player.Pause()
		c.playing = false
		c.setFlag(false)
		return false
	}
	if c.start(ctx) {
		c.setFlag(true)
	}
	return c.playing
}

// Resume attempts playback when the session flag is set.
func (c *Controller) Resume(ctx context.Context) bool {
	if c == nil || c.player == nil || c.flags == nil {
		return c.Playing()
	}
	if c.playing || !c.flags.Enabled() {
		return c.playing
	}
	return c.start(ctx)
}

// Autoplay attempts playback regardless of the session flag and leaves the
// flag untouched.
func (c *Controller) Autoplay(ctx context.Context) bool {
	if c == nil || c.player == nil {
		return false
	}
	if c.playing {
		return true
	}
	return c.start(ctx)
}

func (c *Controller) start(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	c.player.SetVolume(DefaultVolume)
	if err := c.player.Play(ctx); err != nil {
		c.logger.Debug("audio start refused", "err", err)
		c.playing = false
		return false
	}
	c.playing = true
	return true
}

func (c *Controller) setFlag(enabled bool) {
	if c.flags == nil {
		return
	}
	c.flags.SetEnabled(enabled)
}

package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// LandingView is the entry screen.
type LandingView struct {
	Heading    string
	Year       int
	Tagline    string
	StartLabel string
	StartHref  string
}

// LandingPage renders the entry screen body.
func LandingPage(view LandingView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"landing\"><h1 class=\"wrapped-title landing-title\">")
		m.text(view.Heading)
		m.raw("</h1>")
		if view.Year > 0 {
			m.raw("<p class=\"landing-year\">")
			m.text(strconv.Itoa(view.Year))
			m.raw("</p>")
		}
		m.raw("<p class=\"landing-tagline\">")
		m.text(view.Tagline)
		m.raw("</p><a class=\"pill-button landing-start\" data-continue")
		m.attr("href", view.StartHref)
		m.raw(">")
		m.text(view.StartLabel)
		m.raw("</a></section>")
		return m.err
	})
}

// StatCard is one stats card. Numeric cards carry precomputed count-up
// frames; text cards render Final verbatim.
type StatCard struct {
	Title      string
	Icon       string
	Delay      float64
	Numeric    bool
	Initial    string
	Final      string
	FramesJSON string
	IntervalMS string
}

// StatsView is the stats screen.
type StatsView struct {
	Cards    []StatCard
	Continue string
}

// StatsPage renders the stats grid.
func StatsPage(view StatsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"stats-grid\">")
		for _, card := range view.Cards {
			m.raw("<article class=\"stat-card rise\"")
			m.attr("style", "animation-delay: "+seconds(card.Delay))
			m.raw("><div class=\"stat-icon\">")
			m.render(Icon(card.Icon))
			m.raw("</div><p class=\"stat-title\">")
			m.text(card.Title)
			m.raw("</p>")
			if card.Numeric {
				m.raw("<p class=\"stat-value\" data-countup")
				m.attr("data-countup-frames", card.FramesJSON)
				m.attr("data-countup-interval-ms", card.IntervalMS)
				m.raw("><span class=\"countup-live\" hidden>")
				m.text(card.Initial)
				m.raw("</span><span class=\"countup-final\">")
				m.text(card.Final)
				m.raw("</span></p>")
			} else {
				m.raw("<p class=\"stat-value\">")
				m.text(card.Final)
				m.raw("</p>")
			}
			m.raw("</article>")
		}
		m.raw("</section>")
		m.render(ContinueLink(view.Continue, ""))
		return m.err
	})
}

// SongCard is one ranked song.
type SongCard struct {
	Rank   int
	Title  string
	Artist string
	Top    bool
	Cover  ImageView
}

// MusicView is the music screen.
type MusicView struct {
	Heading         string
	Songs           []SongCard
	PlaylistHeading string
	Playlist        ImageView
	PlaylistTitle   string
	PlaylistArtist  string
	Continue        string
}

// MusicPage renders ranked songs and the playlist photo.
func MusicPage(view MusicView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"music\"><h2 class=\"section-heading\">")
		m.render(Icon("music"))
		m.text(view.Heading)
		m.raw("</h2><ol class=\"song-list\">")
		for idx, song := range view.Songs {
			class := "song-card rise"
			if song.Top {
				class += " song-card-top"
			}
			m.raw("<li")
			m.attr("class", class)
			m.attr("style", "animation-delay: "+seconds(float64(idx)*0.2))
			m.raw(">")
			if song.Top {
				m.raw("<div class=\"crown\" aria-hidden=\"true\">")
				m.render(Icon("crown"))
				m.raw("</div>")
			}
			m.raw("<span class=\"song-rank\">#")
			m.text(strconv.Itoa(song.Rank))
			m.raw("</span><div class=\"song-cover\">")
			m.render(Image(song.Cover))
			m.raw("</div><div class=\"song-meta\"><p class=\"song-title\">")
			m.text(song.Title)
			m.raw("</p><p class=\"song-artist\">")
			m.text(song.Artist)
			m.raw("</p></div></li>")
		}
		m.raw("</ol>")
		if strings.TrimSpace(view.PlaylistHeading) != "" {
			m.raw("<div class=\"playlist\"><h3 class=\"section-heading\">")
			m.text(view.PlaylistHeading)
			m.raw("</h3><div class=\"playlist-photo\">")
			m.render(Image(view.Playlist))
			m.raw("</div><p class=\"song-title\">")
			m.text(view.PlaylistTitle)
			m.raw("</p><p class=\"song-artist\">")
			m.text(view.PlaylistArtist)
			m.raw("</p></div>")
		}
		m.raw("</section>")
		m.render(ContinueLink(view.Continue, ""))
		return m.err
	})
}

// EntryView is a titled text block on the moments and growth screens.
type EntryView struct {
	Title string
	Body  string
	Icon  string
	Delay float64
}

// EntriesView is a list of text blocks.
type EntriesView struct {
	Entries  []EntryView
	Continue string
}

// EntriesPage renders a column of entry cards.
func EntriesPage(view EntriesView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"entries\">")
		for _, entry := range view.Entries {
			m.raw("<article class=\"entry-card rise\"")
			m.attr("style", "animation-delay: "+seconds(entry.Delay))
			m.raw("><div class=\"entry-icon\">")
			m.render(Icon(entry.Icon))
			m.raw("</div><div><h3 class=\"entry-title\">")
			m.text(entry.Title)
			m.raw("</h3><p class=\"entry-body\">")
			m.text(entry.Body)
			m.raw("</p></div></article>")
		}
		m.raw("</section>")
		m.render(ContinueLink(view.Continue, ""))
		return m.err
	})
}

// MemoryView is one travel photo card.
type MemoryView struct {
	Place   string
	Caption string
	Note    string
	Image   ImageView
}

// TravelView is the travel gallery.
type TravelView struct {
	Intro    string
	Memories []MemoryView
	Continue string
}

// TravelPage renders the gallery.
func TravelPage(view TravelView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"travel\"><p class=\"lead\">")
		m.text(view.Intro)
		m.raw("</p><div class=\"gallery\">")
		for idx, memory := range view.Memories {
			tilt := "tilt-left"
			if idx%2 == 1 {
				tilt = "tilt-right"
			}
			m.raw("<figure")
			m.attr("class", "polaroid rise "+tilt)
			m.attr("style", "animation-delay: "+seconds(float64(idx)*0.1))
			m.raw(">")
			m.render(Image(memory.Image))
			m.raw("<figcaption><strong>")
			m.text(memory.Place)
			m.raw("</strong><span>")
			m.text(memory.Caption)
			m.raw("</span>")
			if strings.TrimSpace(memory.Note) != "" {
				m.raw("<em>")
				m.text(memory.Note)
				m.raw("</em>")
			}
			m.raw("</figcaption></figure>")
		}
		m.raw("</div></section>")
		m.render(ContinueLink(view.Continue, ""))
		return m.err
	})
}

// MessageView is a centered heading with a lead line and emphasis.
type MessageView struct {
	Heading  string
	Lead     string
	Emphasis string
	Continue string
}

// FavoritePage renders the favorite-part screen.
func FavoritePage(view MessageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"message\"><h2 class=\"message-heading\">")
		m.text(view.Heading)
		m.raw("</h2><p class=\"message-lead\">")
		m.text(view.Lead)
		m.raw("</p><p class=\"message-emphasis\">")
		m.text(view.Emphasis)
		m.raw("</p><div class=\"message-heart pulse\">")
		m.render(Icon("heart"))
		m.raw("</div></section>")
		m.render(ContinueLink(view.Continue, ""))
		return m.err
	})
}

// Bubble is one floating photo bubble.
type Bubble struct {
	SizePX   int
	LeftPct  float64
	Delay    float64
	Duration float64
}

// BirthdayView is the birthday screen.
type BirthdayView struct {
	Message MessageView
	Photo   ImageView
	Bubbles []Bubble
}

// BirthdayPage renders the photo, floating bubbles and birthday message.
func BirthdayPage(view BirthdayView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"birthday\"><div class=\"bubbles\" aria-hidden=\"true\">")
		for _, bubble := range view.Bubbles {
			size := strconv.Itoa(bubble.SizePX) + "px"
			m.raw("<span class=\"bubble\"")
			m.attr("style", "width: "+size+"; height: "+size+"; left: "+formatFloat(bubble.LeftPct)+"%; animation-delay: "+formatFloat(bubble.Delay)+"s; animation-duration: "+formatFloat(bubble.Duration)+"s")
			m.raw("></span>")
		}
		m.raw("</div><div class=\"birthday-photo\">")
		m.render(Image(view.Photo))
		m.raw("</div>")
		m.render(FavoritePage(view.Message))
		m.raw("</section>")
		return m.err
	})
}

// HeartView is one floating heart above the open envelope.
type HeartView struct {
	Delay   float64
	OffsetX string
}

// LetterView is the envelope screen.
type LetterView struct {
	Intro       string
	Prompt      string
	OpenedLabel string
	Date        string
	Body        string
	Open        bool
	FlapDegrees int
	LiftPX      int
	Hearts      []HeartView
	OpenHref    string
	CloseHref   string
	Continue    string
}

// LetterPage renders the envelope and the letter modal. Without the script
// the envelope and Close are plain links that reload with or without ?open=1.
func LetterPage(view LetterView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		state := "closed"
		if view.Open {
			state = "open"
		}
		m.raw("<section class=\"letter\" data-envelope")
		m.attr("data-envelope-state", state)
		m.raw("><p class=\"lead\">")
		m.text(view.Intro)
		m.raw("</p><a class=\"envelope\" data-envelope-open")
		m.attr("href", view.OpenHref)
		m.raw("><span class=\"envelope-pocket\"></span><span class=\"envelope-flap\"")
		m.attr("style", "transform: rotateX("+strconv.Itoa(view.FlapDegrees)+"deg) translateY("+strconv.Itoa(view.LiftPX)+"px)")
		m.raw(">")
		m.render(Icon("heart"))
		m.raw("</span><span class=\"envelope-peek\">")
		m.text(view.Prompt)
		m.raw("</span><span class=\"envelope-hearts\" aria-hidden=\"true\">")
		for _, heart := range view.Hearts {
			m.raw("<span class=\"floating-heart\"")
			m.attr("style", "animation-delay: "+seconds(heart.Delay)+"; transform: translateX("+heart.OffsetX+")")
			m.raw(">")
			m.render(Icon("heart"))
			m.raw("</span>")
		}
		m.raw("</span></a><div class=\"letter-modal\" role=\"dialog\" aria-modal=\"true\" data-letter-modal")
		m.boolAttr("hidden", !view.Open)
		m.raw("><a class=\"letter-scrim\" data-envelope-close aria-label=\"Close\"")
		m.attr("href", view.CloseHref)
		m.raw("></a><div class=\"letter-sheet\"><header class=\"letter-header\"><span>")
		m.text(view.OpenedLabel)
		m.raw("</span><a class=\"letter-close\" data-envelope-close")
		m.attr("href", view.CloseHref)
		m.raw(">Close</a></header><div class=\"letter-body\"><p class=\"letter-date\">")
		m.text(view.Date)
		m.raw("</p><p class=\"letter-text\">")
		m.text(view.Body)
		m.raw("</p>")
		m.render(ContinueLink(view.Continue, ""))
		m.raw("</div></div></div></section>")
		return m.err
	})
}

// ThankYouView is the closing screen.
type ThankYouView struct {
	Message      string
	Photo        ImageView
	Closing      string
	RestartLabel string
	RestartHref  string
}

// ThankYouPage renders the closing message and restart link.
func ThankYouPage(view ThankYouView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw("<section class=\"thank-you\"><p class=\"lead\">")
		m.text(view.Message)
		m.raw("</p><div class=\"thank-you-photo\">")
		m.render(Image(view.Photo))
		m.raw("</div><p class=\"message-emphasis\">")
		m.text(view.Closing)
		m.raw("</p></section>")
		m.render(ContinueLink(view.RestartHref, view.RestartLabel))
		return m.err
	})
}

// Package content holds the authored records shown on each wrapped screen.
//
// Nothing here is computed: songs, stats, memories and the letter are literal
// values decoded from a TOML catalog. The embedded catalog is the default; an
// operator may point the service at a replacement file.
package content

import (
	"fmt"
	"math"
	"strings"
)

// Recipient identifies who the wrapped is for.
type Recipient struct {
	Name string `toml:"name"`
	Year int    `toml:"year"`
}

// Song is one ranked entry on the music screen.
type Song struct {
	Rank   int    `toml:"rank"`
	Title  string `toml:"title"`
	Artist string `toml:"artist"`
	Cover  string `toml:"cover"`
	Top    bool   `toml:"top"`
}

// TravelMemory is one photo card in the travel gallery.
type TravelMemory struct {
	Place   string `toml:"place"`
	Caption string `toml:"caption"`
	Image   string `toml:"image"`
	Note    string `toml:"note"`
}

// Entry is a titled block of free text with an icon, used by the moments and
// growth screens.
type Entry struct {
	Title string  `toml:"title"`
	Body  string  `toml:"body"`
	Icon  string  `toml:"icon"`
	Delay float64 `toml:"delay"`
}

// Stat is one card on the stats screen. Value holds an int64 for numeric
// stats and a string for stats displayed verbatim.
type Stat struct {
	Title string  `toml:"title"`
	Value any     `toml:"value"`
	Icon  string  `toml:"icon"`
	Delay float64 `toml:"delay"`
}

// Numeric reports the integer target of a numeric stat.
func (s Stat) Numeric() (int64, bool) {
	switch v := s.Value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		// 2^63 itself is not representable as int64.
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

// Text returns the display text of a non-numeric stat.
func (s Stat) Text() string {
	switch v := s.Value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Landing is the copy for the entry screen.
type Landing struct {
	Tagline    string `toml:"tagline"`
	StartLabel string `toml:"start_label"`
	Track      string `toml:"track"`
}

// Stats is the copy for the stats screen.
type Stats struct {
	Title string `toml:"title"`
	Items []Stat `toml:"items"`
}

// Music is the copy for the music screen.
type Music struct {
	Title           string `toml:"title"`
	Heading         string `toml:"heading"`
	Track           string `toml:"track"`
	PlaylistHeading string `toml:"playlist_heading"`
	PlaylistImage   string `toml:"playlist_image"`
	PlaylistTitle   string `toml:"playlist_title"`
	PlaylistArtist  string `toml:"playlist_artist"`
	Songs           []Song `toml:"songs"`
}

// Moments is the copy for the moments screen.
type Moments struct {
	Title string  `toml:"title"`
	Items []Entry `toml:"items"`
}

// Travel is the copy for the travel gallery.
type Travel struct {
	Title    string         `toml:"title"`
	Intro    string         `toml:"intro"`
	Memories []TravelMemory `toml:"memories"`
}

// Growth is the copy for the growth screen.
type Growth struct {
	Title string  `toml:"title"`
	Items []Entry `toml:"items"`
}

// Favorite is the copy for the favorite-part screen.
type Favorite struct {
	Heading  string `toml:"heading"`
	Lead     string `toml:"lead"`
	Emphasis string `toml:"emphasis"`
}

// Birthday is the copy for the birthday screen.
type Birthday struct {
	Heading       string `toml:"heading"`
	Lead          string `toml:"lead"`
	Emphasis      string `toml:"emphasis"`
	Photo         string `toml:"photo"`
	FallbackPhoto string `toml:"fallback_photo"`
	PhotoAlt      string `toml:"photo_alt"`
	Bubbles       int    `toml:"bubbles"`
}

// Letter is the copy for the envelope screen.
type Letter struct {
	Title       string `toml:"title"`
	Intro       string `toml:"intro"`
	Prompt      string `toml:"prompt"`
	OpenedLabel string `toml:"opened_label"`
	Date        string `toml:"date"`
	Body        string `toml:"body"`
}

// ThankYou is the copy for the closing screen.
type ThankYou struct {
	Title        string `toml:"title"`
	Message      string `toml:"message"`
	Photo        string `toml:"photo"`
	PhotoAlt     string `toml:"photo_alt"`
	Closing      string `toml:"closing"`
	RestartLabel string `toml:"restart_label"`
}

// Catalog is the full set of authored content.
type Catalog struct {
	Recipient Recipient `toml:"recipient"`
	Landing   Landing   `toml:"landing"`
	Stats     Stats     `toml:"stats"`
	Music     Music     `toml:"music"`
	Moments   Moments   `toml:"moments"`
	Travel    Travel    `toml:"travel"`
	Growth    Growth    `toml:"growth"`
	Favorite  Favorite  `toml:"favorite"`
	Birthday  Birthday  `toml:"birthday"`
	Letter    Letter    `toml:"letter"`
	ThankYou  ThankYou  `toml:"thank_you"`
}

// DocumentTitle is the browser title shared by every screen.
func (c *Catalog) DocumentTitle() string {
	return c.Recipient.Name + "'s Wrapped"
}

// Heading is the landing headline.
func (c *Catalog) Heading() string {
	return strings.ToUpper(c.Recipient.Name) + "'S WRAPPED"
}

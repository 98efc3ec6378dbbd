// Package envelope models the open/closed letter reveal.
package envelope

import (
	"net/url"
	"strings"
)

// QueryKey is the query parameter that opens the letter on load.
const QueryKey = "open"

const (
	closedFlapDegrees = 0
	openFlapDegrees   = 160
	closedLiftPX      = 0
	openLiftPX        = -4
)

// State is the envelope's visibility. The zero value is closed.
type State struct {
	open bool
}

// Open returns the opened state.
func (s State) Open() State { return State{open: true} }

// Close returns the closed state.
func (s State) Close() State { return State{} }

// Toggle flips the state.
func (s State) Toggle() State { return State{open: !s.open} }

// IsOpen reports whether the letter is showing.
func (s State) IsOpen() bool { return s.open }

// FromQuery reads ?open=1 (or true/yes) as an open envelope.
func FromQuery(values url.Values) State {
	switch strings.ToLower(strings.TrimSpace(values.Get(QueryKey))) {
	case "1", "true", "yes":
		return State{open: true}
	default:
		return State{}
	}
}

// Query encodes s for a link to the letter screen.
func (s State) Query() string {
	if !s.open {
		return ""
	}
	return url.Values{QueryKey: []string{"1"}}.Encode()
}

// Heart is one floating heart shown while the letter is open.
type Heart struct {
	Delay   float64
	OffsetX string
}

// View is the presentation derived from a state.
type View struct {
	FlapDegrees  int
	LiftPX       int
	ModalVisible bool
	Hearts       []Heart
}

var openHearts = []Heart{
	{Delay: 0, OffsetX: "-60%"},
	{Delay: 0.2, OffsetX: "70%"},
	{Delay: 0.4, OffsetX: "-10%"},
}

// View maps the state to flap rotation, lift, modal and hearts.
func (s State) View() View {
	if !s.open {
		return View{FlapDegrees: closedFlapDegrees, LiftPX: closedLiftPX}
	}
	hearts := make([]Heart, len(openHearts))
	copy(hearts, openHearts)
	return View{
		FlapDegrees:  openFlapDegrees,
		LiftPX:       openLiftPX,
		ModalVisible: true,
		Hearts:       hearts,
	}
}

// Package sequence fixes the linear order of wrapped screens.
//
// Every screen has exactly one successor. The walk starts at the landing
// screen, passes through the wrapped screens in order and links back to the
// landing screen from the last one.
package sequence

import (
	"errors"
	"fmt"

	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

// ErrUnknownScreen is returned for paths outside the sequence.
var ErrUnknownScreen = errors.New("unknown screen")

// Screen identifies one step of the walk.
type Screen struct {
	ID   string
	Path string
}

var order = []Screen{
	{ID: "landing", Path: routepath.Root},
	{ID: "stats", Path: routepath.Stats},
	{ID: "music", Path: routepath.Music},
	{ID: "moments", Path: routepath.Moments},
	{ID: "travel", Path: routepath.Travel},
	{ID: "growth", Path: routepath.Growth},
	{ID: "favorite", Path: routepath.Favorite},
	{ID: "birthday", Path: routepath.Birthday},
	{ID: "letter", Path: routepath.Letter},
	{ID: "thank-you", Path: routepath.ThankYou},
}

// Screens returns the screens in walk order, landing first.
func Screens() []Screen {
	screens := make([]Screen, len(order))
	copy(screens, order)
	return screens
}

// First returns the first wrapped screen after landing. The /wrapped entry
// path redirects here.
func First() Screen {
	return order[1]
}

// Landing returns the entry screen.
func Landing() Screen {
	return order[0]
}

// Lookup finds the screen served at path.
func Lookup(path string) (Screen, bool) {
	for _, screen := range order {
		if screen.Path == path {
			return screen, true
		}
	}
	return Screen{}, false
}

// Next returns the successor of the screen at path. The landing screen's
// successor is the /wrapped entry path; the last screen links to landing.
func Next(path string) (string, error) {
	for idx, screen := range order {
		if screen.Path != path {
			continue
		}
		switch {
		case idx == 0:
			return routepath.Wrapped, nil
		case idx == len(order)-1:
			return routepath.Root, nil
		default:
			return order[idx+1].Path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, path)
}

// Resolve follows the /wrapped entry redirect so callers land on a screen.
func Resolve(path string) string {
	if path == routepath.Wrapped || path == routepath.WrappedPrefix {
		return First().Path
	}
	return path
}

// Validate checks that every screen has a successor inside the sequence and
// that the walk visits each screen once before returning to landing.
func Validate() error {
	seen := make(map[string]bool, len(order))
	current := Landing().Path
	for range order {
		if seen[current] {
			return fmt.Errorf("sequence revisits %q before completing", current)
		}
		seen[current] = true
		next, err := Next(current)
		if err != nil {
			return err
		}
		next = Resolve(next)
		if _, ok := Lookup(next); !ok {
			return fmt.Errorf("%w: successor %q of %q", ErrUnknownScreen, next, current)
		}
		current = next
	}
	if current != Landing().Path {
		return fmt.Errorf("sequence ends at %q, want %q", current, Landing().Path)
	}
	if len(seen) != len(order) {
		return fmt.Errorf("sequence visits %d of %d screens", len(seen), len(order))
	}
	return nil
}

// Package routepath stores canonical HTTP paths for wrapped modules.
package routepath

const (
	Root            = "/"
	Health          = "/up"
	StaticPrefix    = "/static/"
	ImagesPrefix    = "/images/"
	AudioPrefix     = "/audio/"
	AudioToggle     = "/audio/toggle"
	AudioState      = "/audio/state"
	Wrapped         = "/wrapped"
	WrappedPrefix   = "/wrapped/"
	Stats           = "/wrapped/stats"
	Music           = "/wrapped/music"
	Moments         = "/wrapped/moments"
	Travel          = "/wrapped/travel"
	Growth          = "/wrapped/growth"
	Favorite        = "/wrapped/favorite"
	Birthday        = "/wrapped/birthday"
	Letter          = "/wrapped/letter"
	ThankYou        = "/wrapped/thank-you"
	NotFoundPattern = "/{rest...}"
)

// Static returns the URL of an embedded stylesheet or script.
func Static(name string) string {
	return StaticPrefix + trimLeadingSlash(name)
}

// Asset returns the root-relative URL of a public asset path such as
// "images/thankyou.jpg".
func Asset(path string) string {
	return Root + trimLeadingSlash(path)
}

func trimLeadingSlash(value string) string {
	for len(value) > 0 && value[0] == '/' {
		value = value[1:]
	}
	return value
}

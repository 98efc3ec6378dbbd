// Package module defines the feature contract used by wrapped composition.
package module

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/wrapped/internal/platform/i18n"
	"github.com/louisbranch/wrapped/internal/wrapped/assets"
	"github.com/louisbranch/wrapped/internal/wrapped/content"
)

// Dependencies carries the shared, read-only state modules render from.
type Dependencies struct {
	Catalog *content.Catalog
	Assets  *assets.Resolver
	Locale  i18n.Locale
	Logger  *log.Logger
}

// Mount describes a module route mount. Aliases are extra exact paths served
// by the same handler, such as a prefix without its trailing slash.
type Mount struct {
	Prefix  string
	Aliases []string
	Handler http.Handler
}

// Module declares the minimum contract required by wrapped composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

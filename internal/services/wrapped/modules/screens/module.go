package screens

import (
	"fmt"
	"net/http"

	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
	"github.com/louisbranch/wrapped/internal/wrapped/sequence"
)

// Module provides the wrapped screens after landing.
type Module struct{}

// New returns the screens module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "screens" }

// Mount wires every screen under /wrapped/. The bare /wrapped path is an
// alias so it redirects straight to the first screen.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, fmt.Errorf("catalog is required")
	}
	if err := sequence.Validate(); err != nil {
		return module.Mount{}, fmt.Errorf("screen sequence: %w", err)
	}
	svc, err := newService(deps.Catalog, deps.Assets, deps.Locale)
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(svc, deps))
	return module.Mount{
		Prefix:  routepath.WrappedPrefix,
		Aliases: []string{routepath.Wrapped},
		Handler: mux,
	}, nil
}

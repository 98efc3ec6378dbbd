package public

import (
	"fmt"
	"net/http"

	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

// Module provides the landing screen, health probe, images and the
// catch-all not-found page.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "public" }

// Mount wires public routes under the root prefix.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, fmt.Errorf("catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

package audio

import (
	"net/http"

	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
	"github.com/louisbranch/wrapped/internal/services/wrapped/routepath"
)

// Module provides the background track files and the play/pause endpoints
// that maintain the session audio flag.
type Module struct{}

// New returns the audio module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "audio" }

// Mount wires audio routes under /audio/.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.AudioPrefix, Handler: mux}, nil
}

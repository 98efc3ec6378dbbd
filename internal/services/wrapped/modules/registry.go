package modules

import (
	"github.com/louisbranch/wrapped/internal/services/wrapped/modules/audio"
	"github.com/louisbranch/wrapped/internal/services/wrapped/modules/public"
	"github.com/louisbranch/wrapped/internal/services/wrapped/modules/screens"
)

// DefaultModules returns the modules that make up the wrapped.
func DefaultModules() []Module {
	return []Module{
		public.New(),
		screens.New(),
		audio.New(),
	}
}

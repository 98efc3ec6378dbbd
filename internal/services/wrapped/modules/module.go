// Package modules defines the wrapped module registry.
package modules

import (
	"github.com/louisbranch/wrapped/internal/services/wrapped/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Package modules defines web module registry helpers.
package modules

import "github.com/louisbranch/sip/internal/services/web/module"

// Module aliases the module interface contract.
type Module = module.Module

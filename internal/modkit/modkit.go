package modkit

import "figurefriday/internal/modkit/module"

// Module is the surface every API module implements
type Module = module.Module

package modkit

import "sentilex/internal/modkit/module"

// Module is the contract every API module satisfies
type Module = module.Module

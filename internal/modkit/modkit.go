// Package modkit provides module wiring and core deps
package modkit

import "sayitanyway/internal/modkit/module"

// Module is the common surface every service module exposes
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

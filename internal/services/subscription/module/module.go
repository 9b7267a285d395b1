// Package module wires the subscription service and exposes its ports
package module

import (
	"sayitanyway/internal/modkit"
	"sayitanyway/internal/services/subscription/domain"
	"sayitanyway/internal/services/subscription/repo"
	"sayitanyway/internal/services/subscription/service"
)

// Module defines the subscription module
type Module struct {
	ports Ports
}

// NewStatus builds the status store on deps.Blobs. It is created ahead of the
// module so the ledger can read the tier before subscription is wired
func NewStatus(deps modkit.Deps) domain.StatusStore {
	return repo.NewStatus(deps.Blobs, deps.Log.With().Str("component", "subscription").Logger())
}

// New constructs the module. Pass modkit.WithPorts(domain.Needs{...}) with the
// status store and the ledger's pools; a missing status store is built from deps
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	needs, _ := modkit.NeedsOf[domain.Needs](opts...)
	if needs.Status == nil {
		needs.Status = NewStatus(deps)
	}
	if needs.Pools == nil {
		panic("subscription: ledger pools port is required")
	}
	return &Module{ports: Ports{Subscription: service.New(deps, needs, FromConfig(deps.Cfg))}}
}

// Ports returns the module ports (Subscription)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "subscription" }

// Package module wires the recording time ledger and exposes its ports
package module

import (
	"sayitanyway/internal/modkit"
	dom "sayitanyway/internal/services/recordingtime/domain"
	"sayitanyway/internal/services/recordingtime/service"
)

// Module defines the recording time module
type Module struct {
	name  string
	ports Ports
}

// New constructs the ledger. Pass modkit.WithPorts(dom.Needs{...}) to supply the tier reader
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(opts...)
	needs, _ := b.Ports.(dom.Needs)

	svc := service.New(deps, needs.Tier, FromConfig(deps.Cfg))

	name := b.Name
	if name == "" {
		name = "recordingtime"
	}
	return &Module{
		name:  name,
		ports: Ports{Ledger: svc, Pools: svc},
	}
}

// Ports returns the module ports (Ledger, Pools)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return m.name }

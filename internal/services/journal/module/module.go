// Package module wires the journal service and exposes its ports
package module

import (
	"sayitanyway/internal/adapters/transcribe"
	"sayitanyway/internal/core/screening"
	"sayitanyway/internal/modkit"
	dom "sayitanyway/internal/services/journal/domain"
	"sayitanyway/internal/services/journal/repo"
	"sayitanyway/internal/services/journal/service"
)

// Module defines the journal module
type Module struct {
	ports Ports
}

// New constructs the journal over deps.Blobs. Needs.Ledger is required for
// audio; a missing screener or transcriber falls back to the defaults
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	needs, _ := modkit.NeedsOf[dom.Needs](opts...)
	if needs.Screener == nil {
		needs.Screener = screening.Default()
	}
	if needs.Transcriber == nil {
		needs.Transcriber = transcribe.Placeholder{}
	}
	store := repo.NewBlobs(deps.Blobs, deps.Log.With().Str("component", "journal").Logger())
	return &Module{ports: Ports{Journal: service.New(deps, store, needs)}}
}

// Ports returns the module ports (Journal)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "journal" }

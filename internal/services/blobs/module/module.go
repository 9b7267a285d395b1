// Package module wires the blob store and exposes it as a port
package module

import (
	"context"

	"sayitanyway/internal/modkit"
	"sayitanyway/internal/modkit/repokit"
	perr "sayitanyway/internal/platform/errors"
	dom "sayitanyway/internal/services/blobs/domain"
	"sayitanyway/internal/services/blobs/repo"
	"sayitanyway/internal/services/blobs/service"
)

// Module defines the blobs module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New builds the backend chosen by BLOBS_BACKEND, applying non-zero overrides
// pg and redis need the matching seam on deps; pg also ensures its table exists
func New(ctx context.Context, deps modkit.Deps, overrides Options) (*Module, error) {
	opts := FromConfig(deps.Cfg)
	if overrides.Backend != "" {
		opts.Backend = overrides.Backend
	}
	if overrides.Dir != "" {
		opts.Dir = overrides.Dir
	}
	if overrides.RedisPrefix != "" {
		opts.RedisPrefix = overrides.RedisPrefix
	}

	var backend dom.Port
	switch opts.Backend {
	case dom.BackendMemory:
		backend = repo.NewMemory()
	case dom.BackendFile:
		backend = repo.NewFile(opts.Dir)
	case dom.BackendPG:
		if deps.PG == nil {
			return nil, perr.InvalidArgf("blobs backend %q needs postgres", opts.Backend)
		}
		binder := repo.NewPG()
		if err := repokit.WithTx(ctx, deps.PG, binder, func(r *repo.PG) error { return r.EnsureSchema(ctx) }); err != nil {
			return nil, err
		}
		backend = repokit.MustBind(binder, deps.PG)
	case dom.BackendRedis:
		if deps.KV == nil {
			return nil, perr.InvalidArgf("blobs backend %q needs redis", opts.Backend)
		}
		backend = repo.NewRedis(deps.KV, opts.RedisPrefix)
	default:
		return nil, perr.InvalidArgf("unknown blobs backend %q", opts.Backend)
	}

	deps.Log.Info().Str("backend", opts.Backend).Msg("blob store ready")
	return &Module{
		deps:  deps,
		opts:  opts,
		ports: Ports{Store: service.New(backend, opts.Backend, deps.Log)},
	}, nil
}

// Ports returns the module ports (Store)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "blobs" }

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

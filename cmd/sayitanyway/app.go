package main

import (
	"context"

	"sayitanyway/internal/modkit"
	"sayitanyway/internal/modkit/module"
	"sayitanyway/internal/platform/config"
	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
	"sayitanyway/internal/platform/store"

	blobsdom "sayitanyway/internal/services/blobs/domain"
	blobsmod "sayitanyway/internal/services/blobs/module"
	jdom "sayitanyway/internal/services/journal/domain"
	jmod "sayitanyway/internal/services/journal/module"
	rtdom "sayitanyway/internal/services/recordingtime/domain"
	rtmod "sayitanyway/internal/services/recordingtime/module"
	subdom "sayitanyway/internal/services/subscription/domain"
	submod "sayitanyway/internal/services/subscription/module"
)

// app is the composed core for one command invocation
type app struct {
	log     logger.Logger
	st      *store.Store
	backend string

	ledger  rtdom.LedgerPort
	sub     subdom.ServicePort
	journal jdom.ServicePort
}

// storeConfig opens only the backend the blob store needs
func storeConfig(root config.Conf, backend string) store.Config {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	rdsCfg := root.Prefix("SERVICE_REDIS_")

	cfg := store.Config{AppName: "sayitanyway"}
	if backend == blobsdom.BackendPG {
		cfg.PG = store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		}
	}
	if backend == blobsdom.BackendRedis {
		cfg.RDS = store.RedisConfig{
			Enabled:  true,
			Addr:     rdsCfg.MayString("ADDR", "localhost:6379"),
			Password: rdsCfg.MayString("PASSWORD", ""),
			DB:       rdsCfg.MayInt("DB", 0),
		}
	}
	return cfg
}

func openApp(ctx context.Context) (*app, error) {
	root := config.New()
	l := logger.Get()

	backend := blobsmod.FromConfig(root).Backend
	st, err := store.Open(ctx, storeConfig(root, backend), store.WithLogger(*l))
	if err != nil {
		return nil, err
	}
	if err := st.Guard(ctx); err != nil {
		_ = st.Close(ctx)
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "storage not ready")
	}

	deps := modkit.Deps{Log: *l, Cfg: root, PG: st.PG, KV: st.RDS}

	blobs, err := blobsmod.New(ctx, deps, blobsmod.Options{Backend: backend})
	if err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	module.Register(blobs.Name(), blobs.Ports())
	deps = deps.WithBlobs(module.MustPortsOf[blobsmod.Ports](blobs).Store)

	// the ledger reads the tier from the status store, subscription moves the ledger's pools
	status := submod.NewStatus(deps)
	rt := rtmod.New(deps, modkit.WithPorts(rtdom.Needs{Tier: status}))
	module.Register(rt.Name(), rt.Ports())
	rtPorts := module.MustPortsOf[rtmod.Ports](rt)

	sub := submod.New(deps, modkit.WithPorts(subdom.Needs{Status: status, Pools: rtPorts.Pools}))
	module.Register(sub.Name(), sub.Ports())

	j := jmod.New(deps, modkit.WithPorts(jdom.Needs{Ledger: rtPorts.Ledger}))
	module.Register(j.Name(), j.Ports())

	return &app{
		log:     *l,
		st:      st,
		backend: backend,
		ledger:  rtPorts.Ledger,
		sub:     module.MustPortsOf[submod.Ports](sub).Subscription,
		journal: module.MustPortsOf[jmod.Ports](j).Journal,
	}, nil
}

func (a *app) Close(ctx context.Context) {
	if err := a.st.Close(ctx); err != nil {
		a.log.Error().Err(err).Msg("failed to close store")
	}
}

// withApp opens the core, runs fn and closes it again
func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.WithoutCancel(ctx))
	return fn(a)
}

package repo

import (
	"context"
	"encoding/json"

	"sayitanyway/internal/modkit/repokit"
	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/store"
)

const (
	schemaSQL = `CREATE TABLE IF NOT EXISTS app_blobs (
	key        text PRIMARY KEY,
	value      jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

	getSQL = `SELECT value::text FROM app_blobs WHERE key = $1`

	setSQL = `INSERT INTO app_blobs (key, value, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// PG stores documents in the app_blobs table
type PG struct{ q repokit.Queryer }

// NewPG returns a binder so the repo can run on the pool or inside a tx
func NewPG() repokit.Binder[*PG] {
	return repokit.BindFunc[*PG](func(q repokit.Queryer) *PG { return &PG{q: q} })
}

// EnsureSchema creates app_blobs when missing
func (r *PG) EnsureSchema(ctx context.Context) error {
	_, err := r.q.Exec(ctx, schemaSQL)
	return perr.FromPostgres(err, "ensure app_blobs")
}

// Get implements domain.Port
func (r *PG) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	v, err := store.Scalar[string](ctx, r.q, getSQL, key)
	if store.IsNoRows(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, perr.FromPostgresf(err, "get %s", key)
	}
	return json.RawMessage(v), true, nil
}

// Set implements domain.Port
func (r *PG) Set(ctx context.Context, key string, value json.RawMessage) error {
	err := store.ExecOne(ctx, r.q, setSQL, key, string(value))
	return perr.FromPostgresf(err, "set %s", key)
}

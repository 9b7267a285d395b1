// Package service fronts a blob backend with key checks and logging
package service

import (
	"context"
	"encoding/json"
	"regexp"

	perr "sayitanyway/internal/platform/errors"
	"sayitanyway/internal/platform/logger"
	dom "sayitanyway/internal/services/blobs/domain"
)

// keys end up as file names and redis suffixes
var keyRe = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// Svc implements dom.Port over any backend
type Svc struct {
	backend dom.Port
	name    string
	log     logger.Logger
}

// New wraps backend; name is the backend label used in logs
func New(backend dom.Port, name string, log logger.Logger) *Svc {
	return &Svc{backend: backend, name: name, log: log.With().Str("component", "blobs").Str("backend", name).Logger()}
}

// Backend reports the configured backend name
func (s *Svc) Backend() string { return s.name }

// Get reads the document at key
func (s *Svc) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, perr.WithOp(err, "blobs.get")
	}
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("blob read failed")
		return nil, false, perr.WithOp(err, "blobs.get")
	}
	s.log.Debug().Str("key", key).Bool("found", ok).Int("bytes", len(raw)).Msg("blob read")
	return raw, ok, nil
}

// Set replaces the document at key; value must be valid JSON
func (s *Svc) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := checkKey(key); err != nil {
		return perr.WithOp(err, "blobs.set")
	}
	if !json.Valid(value) {
		return perr.WithOp(perr.JSONErrf("value for %s is not valid json", key), "blobs.set")
	}
	if err := s.backend.Set(ctx, key, value); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("blob write failed")
		return perr.WithOp(err, "blobs.set")
	}
	s.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("blob written")
	return nil
}

func checkKey(key string) error {
	if !keyRe.MatchString(key) {
		return perr.WithField(perr.InvalidArgf("invalid blob key %q", key), "key")
	}
	return nil
}

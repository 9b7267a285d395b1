// Package service implements recipients, messages and composing
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"sayitanyway/internal/modkit"
	"sayitanyway/internal/platform/logger"
	dom "sayitanyway/internal/services/journal/domain"
)

// Option customises the service
type Option func(*Svc)

// WithClock overrides time.Now for message and recipient timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// WithIDs overrides uuid.NewString
func WithIDs(next func() string) Option {
	return func(s *Svc) { s.newID = next }
}

// Svc implements dom.ServicePort. Writes are serialized within a process
type Svc struct {
	mu    sync.Mutex
	store dom.Store
	needs dom.Needs
	now   func() time.Time
	newID func() string
	log   logger.Logger
}

var _ dom.ServicePort = (*Svc)(nil)

// New constructs the service over store
func New(deps modkit.Deps, store dom.Store, needs dom.Needs, opts ...Option) *Svc {
	s := &Svc{
		store: store,
		needs: needs,
		now:   time.Now,
		newID: uuid.NewString,
		log:   deps.Log.With().Str("component", "journal").Logger(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

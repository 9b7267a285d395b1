package repokit

import (
	"context"
	"fmt"
	"time"
)

// Pinger is any dependency that can report readiness
type Pinger interface{ Ping(context.Context) error }

// DefaultPingTimeout bounds Ping when ctx carries no deadline
const DefaultPingTimeout = 5 * time.Second

// Ping checks a named dependency, naming it in the error
func Ping(ctx context.Context, name string, p Pinger) error {
	if p == nil {
		return fmt.Errorf("%s: nil dependency", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}

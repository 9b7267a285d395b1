package pg

import (
	"context"
	"strings"

	"sayitanyway/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one executed statement. Bind values are counted, never
// carried, since they hold journal content
type QueryEvent struct {
	SQL       string
	NArgs     int
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement regardless of the root level, slow ones at warn
func Tracer(root logger.Logger) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Int("nargs", ev.NArgs).
		Err(ev.Err).
		Msg("pg query")
}

// compact folds all whitespace runs into single spaces and trims the ends
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }

package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) *pgconn.PgError { return &pgconn.PgError{Code: code} }

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeValidation},
		{"23502", ErrorCodeValidation},
		{"22P02", ErrorCodeJSON},
		{"22032", ErrorCodeJSON},
		{"40001", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"XXXXX", ErrorCodeStorage},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.code))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v,%v want %v", c.code, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("plain")); ok {
		t.Fatalf("non-pg errors must report !ok")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil in, nil out")
	}
	err := FromPostgresf(fmt.Errorf("exec: %w", pgErr("22032")), "upsert blob %q", "messages")
	if !IsCode(err, ErrorCodeJSON) {
		t.Fatalf("code = %v", CodeOf(err))
	}
	if !IsSQLState(err, "22032") {
		t.Fatalf("IsSQLState should see through wraps")
	}
	if !IsCode(FromPostgres(stderrs.New("conn reset"), "get"), ErrorCodeStorage) {
		t.Fatalf("foreign errors map to storage")
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) || IsRetryable(context.Canceled) {
		t.Fatalf("nil and cancellations are not retryable")
	}
	if !IsRetryable(fmt.Errorf("tx: %w", pgErr("40P01"))) {
		t.Fatalf("deadlock should be retryable")
	}
	if IsRetryable(pgErr("23505")) {
		t.Fatalf("unique violation is not retryable")
	}
	if !IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")) {
		t.Fatalf("commit rollback text should be retryable")
	}
}

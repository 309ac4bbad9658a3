package postgres

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type traceStartKey struct{}

type traceStart struct {
	at  time.Time
	sql string
}

// slowQueryTracer logs statements that take longer than threshold, and
// every failed statement that is not a plain no-rows result.
type slowQueryTracer struct {
	logger    *log.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(logger *log.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{logger: logger, threshold: threshold, now: time.Now}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceStartKey{}, traceStart{at: t.now(), sql: data.SQL})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(traceStartKey{}).(traceStart)
	if !ok || t.logger == nil {
		return
	}
	took := t.now().Sub(start.at)

	switch {
	case data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows):
		t.logger.Printf("Database | query failed | took=%s sql=%q error=%v", took.Round(time.Millisecond), compactSQL(start.sql), data.Err)
	case t.threshold > 0 && took > t.threshold:
		t.logger.Printf("Database | slow query | took=%s rows=%d sql=%q", took.Round(time.Millisecond), data.CommandTag.RowsAffected(), compactSQL(start.sql))
	}
}

const maxLoggedSQL = 200

// compactSQL folds whitespace so multi-line statements fit one log line.
func compactSQL(sql string) string {
	s := strings.Join(strings.Fields(sql), " ")
	if len(s) > maxLoggedSQL {
		s = s[:maxLoggedSQL] + "..."
	}
	return s
}

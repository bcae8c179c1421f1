package pg

import (
	"context"
	"strings"
	"time"

	"figurefriday/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// QueryLog is a pgx.QueryTracer that writes one line per statement
type QueryLog struct {
	log  logger.Logger
	slow time.Duration
}

var _ pgx.QueryTracer = (*QueryLog)(nil)

// NewQueryLog logs regardless of the root level; slow <= 0 never marks a statement slow
func NewQueryLog(root logger.Logger, slow time.Duration) *QueryLog {
	return &QueryLog{
		log:  root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: slow,
	}
}

type startKey struct{}

type started struct {
	sql  string
	args int
	at   time.Time
}

// TraceQueryStart stashes the statement on the context for TraceQueryEnd
func (q *QueryLog) TraceQueryStart(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, startKey{}, started{sql: d.SQL, args: len(d.Args), at: time.Now()})
}

// TraceQueryEnd writes the line; errors at error, slow statements at warn
func (q *QueryLog) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryEndData) {
	st, ok := ctx.Value(startKey{}).(started)
	if !ok {
		return
	}
	elapsed := time.Since(st.at)
	slow := q.slow > 0 && elapsed >= q.slow

	evt := q.log.Info()
	switch {
	case d.Err != nil:
		evt = q.log.Error().Err(d.Err)
	case slow:
		evt = q.log.Warn()
	}
	evt.Dur("elapsed", elapsed).
		Bool("slow", slow).
		Str("sql", strings.Join(strings.Fields(st.sql), " ")).
		Int("args", st.args).
		Int64("rows", d.CommandTag.RowsAffected()).
		Msg("pg query")
}

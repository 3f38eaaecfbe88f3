package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/qustavo/sqlhooks/v2"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/database/migrations"
)

const (
	driverName      = "postgres-hooked"
	metricNamespace = "securebi_backend"
)

var registerDriver sync.Once

type Querier interface {
	gensql.Querier
	WithTx(tx *sql.Tx) *gensql.Queries
}

type Transacter interface {
	Commit() error
	Rollback() error
}

type Repo struct {
	Querier Querier
	db      *sql.DB
	log     zerolog.Logger
}

func (r *Repo) GetDB() *sql.DB {
	return r.db
}

func (r *Repo) Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		collectors.NewDBStatsCollector(r.db, metricNamespace),
	}
}

// WithTx returns a function that starts a new transaction and hands back the
// queries bound to it, narrowed to the interface a storage needs.
func WithTx[T any](r *Repo) func() (T, Transacter, error) {
	return func() (T, Transacter, error) {
		var zero T

		tx, err := r.db.Begin()
		if err != nil {
			return zero, nil, err
		}

		q, ok := any(r.Querier.WithTx(tx)).(T)
		if !ok {
			_ = tx.Rollback()

			return zero, nil, fmt.Errorf("queries do not implement %T", &zero)
		}

		return q, tx, nil
	}
}

func New(dbConnDSN string, maxIdleConn, maxOpenConn int, log zerolog.Logger) (*Repo, error) {
	registerDriver.Do(func() {
		sql.Register(driverName, sqlhooks.Wrap(&pq.Driver{}, &queryLogger{log: log}))
	})

	db, err := sql.Open(driverName, dbConnDSN)
	if err != nil {
		return nil, fmt.Errorf("open sql connection: %w", err)
	}

	db.SetMaxIdleConns(maxIdleConn)
	db.SetMaxOpenConns(maxOpenConn)

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseLogger{log: log})

	err = goose.SetDialect("postgres")
	if err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	err = goose.Up(db, ".")
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	return &Repo{
		Querier: gensql.New(db),
		db:      db,
		log:     log,
	}, nil
}

type queryStartKey struct{}

// queryLogger traces every statement at debug level.
type queryLogger struct {
	log zerolog.Logger
}

func (h *queryLogger) Before(ctx context.Context, _ string, _ ...interface{}) (context.Context, error) {
	return context.WithValue(ctx, queryStartKey{}, time.Now()), nil
}

func (h *queryLogger) After(ctx context.Context, query string, args ...interface{}) (context.Context, error) {
	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		h.log.Debug().
			Str("query", query).
			Int("args", len(args)).
			Dur("took", time.Since(start)).
			Msg("sql")
	}

	return ctx, nil
}

func (h *queryLogger) OnError(ctx context.Context, err error, query string, _ ...interface{}) error {
	h.log.Debug().Err(err).Str("query", query).Msg("sql failed")

	return err
}

type gooseLogger struct {
	log zerolog.Logger
}

func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Fatal().Msgf(format, v...)
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info().Msgf(format, v...)
}

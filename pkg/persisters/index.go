// Package persisters implements the contact and session stores, backed by
// PostgreSQL in production and by an in-memory map store for tests.
package persisters

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/adelgado/libreta/pkg/migrations"
	"github.com/pressly/goose/v3"

	_ "github.com/lib/pq"
)

type Persister struct {
	log    *slog.Logger
	pgaddr string
	db     *sql.DB
}

func NewPersister(log *slog.Logger, pgaddr string) *Persister {
	return &Persister{
		log:    log,
		pgaddr: pgaddr,
	}
}

func (p *Persister) Init(ctx context.Context) error {
	if p.log.Enabled(ctx, slog.LevelDebug) {
		p.log.Debug("Connecting to database", "addr", p.pgaddr)
	} else {
		p.log.Info("Connecting to database")
	}

	var err error
	p.db, err = sql.Open("postgres", p.pgaddr)
	if err != nil {
		return err
	}

	if !p.log.Enabled(ctx, slog.LevelDebug) {
		goose.SetLogger(goose.NopLogger())
	}

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	p.log.Info("Running migrations")

	return goose.Up(p.db, ".")
}

func (p *Persister) Close() error {
	return p.db.Close()
}

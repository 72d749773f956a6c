package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/driftline-labs/churnforge/internal/store/common"
)

// Store writes the dataset to a PostgreSQL database through the pgx stdlib
// driver.
type Store struct {
	*common.Base
	url string
}

func New(url string, batch int) *Store {
	return &Store{Base: common.NewBase(common.Postgres, batch), url: url}
}

// PrepareDestination connects and makes room for a fresh dataset. Existing
// dataset tables are fatal unless force is set, which drops them.
func (p *Store) PrepareDestination(ctx context.Context, force bool) error {
	if err := p.open(ctx); err != nil {
		return err
	}

	exists, err := p.AnyTableExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		if !force {
			return fmt.Errorf("dataset tables already exist in the target database (re-run with --force to overwrite)")
		}
		if err := p.DropTables(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Open connects to an already populated database.
func (p *Store) Open(ctx context.Context) error {
	return p.open(ctx)
}

func (p *Store) open(ctx context.Context) error {
	db, err := sql.Open("pgx", p.url)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	p.DB = db
	return p.Ping(ctx)
}

// SizeBytes is unavailable for server databases.
func (p *Store) SizeBytes() (int64, bool) {
	return 0, false
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/driftline-labs/churnforge/internal/store/common"
)

// Store writes the dataset to a local SQLite file, the default provider.
type Store struct {
	*common.Base
	path string
}

func New(path string, batch int) *Store {
	return &Store{
		Base: common.NewBase(common.SQLite, batch),
		path: strings.TrimPrefix(path, "sqlite://"),
	}
}

// PrepareDestination clears the way for a fresh database file. An existing
// file is fatal unless force is set, which removes it first.
func (s *Store) PrepareDestination(ctx context.Context, force bool) error {
	if _, err := os.Stat(s.path); err == nil {
		if !force {
			return fmt.Errorf("destination %s already exists (re-run with --force to overwrite)", s.path)
		}
		if err := os.Remove(s.path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", s.path, err)
		}
	}
	return s.open(ctx)
}

// Open connects to an already generated database file.
func (s *Store) Open(ctx context.Context) error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("database %s not found", s.path)
	}
	return s.open(ctx)
}

func (s *Store) open(ctx context.Context) error {
	dsn := s.path
	if !strings.Contains(dsn, "?") {
		dsn += "?cache=shared&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.DB = db
	return s.Ping(ctx)
}

// SizeBytes reports the database file size. Valid after Close too, since it
// stats the file rather than asking the connection.
func (s *Store) SizeBytes() (int64, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/driftline-labs/churnforge/internal/store/common"
)

// Store writes the dataset to a MySQL database.
type Store struct {
	*common.Base
	dsn string
}

func New(url string, batch int) *Store {
	return &Store{Base: common.NewBase(common.MySQL, batch), dsn: normalizeDSN(url)}
}

// normalizeDSN converts a mysql:// URL into the go-sql-driver DSN form
// (user:pass@tcp(host:port)/db) and rewrites ssl-mode parameters into the
// driver's tls options. A DSN already in driver form passes through.
func normalizeDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.Index(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	replacements := [][2]string{
		{"ssl-mode=REQUIRED", "tls=skip-verify"},
		{"ssl-mode=DISABLED", "tls=false"},
		{"ssl-mode=VERIFY_CA", "tls=true"},
		{"ssl-mode=VERIFY_IDENTITY", "tls=true"},
		{"sslmode=require", "tls=skip-verify"},
		{"sslmode=disable", "tls=false"},
		{"sslmode=verify-ca", "tls=true"},
		{"sslmode=verify-full", "tls=true"},
	}
	for _, r := range replacements {
		dbAndParams = strings.ReplaceAll(dbAndParams, r[0], r[1])
	}

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

// PrepareDestination connects and makes room for a fresh dataset. Existing
// dataset tables are fatal unless force is set, which drops them.
func (m *Store) PrepareDestination(ctx context.Context, force bool) error {
	if err := m.open(ctx); err != nil {
		return err
	}

	exists, err := m.AnyTableExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		if !force {
			return fmt.Errorf("dataset tables already exist in the target database (re-run with --force to overwrite)")
		}
		if err := m.DropTables(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Open connects to an already populated database.
func (m *Store) Open(ctx context.Context) error {
	return m.open(ctx)
}

func (m *Store) open(ctx context.Context) error {
	db, err := sql.Open("mysql", m.dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.DB = db
	return m.Ping(ctx)
}

// SizeBytes is unavailable for server databases.
func (m *Store) SizeBytes() (int64, bool) {
	return 0, false
}

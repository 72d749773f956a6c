package store

import (
	"context"
	"fmt"

	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/store/common"
	"github.com/driftline-labs/churnforge/internal/store/mysql"
	"github.com/driftline-labs/churnforge/internal/store/postgres"
	"github.com/driftline-labs/churnforge/internal/store/sqlite"
)

// Store is the persistence surface for a generated dataset. Generation uses
// PrepareDestination + CreateSchema + InsertDataset + CreateIndexes; export
// and stats use Open plus the read methods.
type Store interface {
	// PrepareDestination readies the target for a fresh dataset and opens the
	// connection. Without force an existing destination is a fatal error.
	PrepareDestination(ctx context.Context, force bool) error
	// Open connects to an already generated destination for reading.
	Open(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	CreateSchema(ctx context.Context) error
	CreateIndexes(ctx context.Context) error
	InsertDataset(ctx context.Context, ds *model.Dataset) error

	FetchTable(ctx context.Context, spec model.TableSpec, limit int) (*common.TableData, error)
	TableCounts(ctx context.Context) (map[string]int64, error)
	ChurnStats(ctx context.Context) (total, churned int64, err error)
	PersonaCounts(ctx context.Context) (map[string]int64, error)

	// SizeBytes reports the on-disk size for file-backed providers.
	SizeBytes() (int64, bool)
	Provider() string
}

// New selects the provider implementation. url is a file path for sqlite and
// a connection string for the server providers.
func New(provider, url string, batch int) (Store, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(url, batch), nil
	case "mysql":
		return mysql.New(url, batch), nil
	case "sqlite", "sqlite3":
		return sqlite.New(url, batch), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}

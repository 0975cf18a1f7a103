// Package sqldb provides the database/sql backed connection factory.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/storage"

	_ "github.com/lib/pq"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"
)

// Driver names registered by this package.
const (
	DriverSQLServer = "sqlserver"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
)

// DB hands out dedicated connections from a database/sql handle.
type DB struct {
	sqlDB  *sql.DB
	driver string
}

// Open opens and pings the database behind dsn.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	driver = strings.TrimSpace(driver)
	if driver == "" {
		return nil, fmt.Errorf("database driver is required")
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database connection string is required")
	}
	switch driver {
	case DriverSQLServer, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	return &DB{sqlDB: sqlDB, driver: driver}, nil
}

// New wraps an already opened handle.
func New(sqlDB *sql.DB, driver string) *DB {
	return &DB{sqlDB: sqlDB, driver: driver}
}

// Driver returns the driver name the handle was opened with.
func (d *DB) Driver() string {
	if d == nil {
		return ""
	}
	return d.driver
}

// Connect acquires a dedicated connection. The caller owns it until Close.
func (d *DB) Connect(ctx context.Context) (storage.Conn, error) {
	if d == nil || d.sqlDB == nil {
		return nil, fmt.Errorf("database is not configured")
	}
	conn, err := d.sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, nil
}

// Close releases the underlying handle.
func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

var _ storage.ConnectionFactory = (*DB)(nil)

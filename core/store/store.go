package store

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Result reports the outcome of a mutating statement.
type Result struct {
	// LastInsertID is the generated identifier for insert statements.
	LastInsertID int64
	// RowsAffected is the number of rows the statement changed.
	RowsAffected int64
}

// Adapter is the query-execution surface consumed by the resource services.
type Adapter interface {
	// Query runs a select statement and returns every row as a map keyed by
	// column name.
	Query(ctx context.Context, query string, args ...any) ([]map[string]any, error)
	// Exec runs a mutating statement.
	Exec(ctx context.Context, query string, args ...any) (Result, error)
}

// DB implements Adapter on top of a GORM connection.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

// New wraps an established GORM connection.
func New(conn *gorm.DB) (*DB, error) {
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return &DB{gorm: conn, sql: sqlDB}, nil
}

// Query runs a parametrized select and scans every row into a column map.
// Text columns arrive from the driver as byte slices and are normalized to
// strings; other values keep their driver type.
func (d *DB) Query(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	rows, err := d.gorm.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Exec runs a parametrized mutating statement.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := d.sql.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, fmt.Errorf("exec failed: %w", err)
	}
	// MySQL supports both; errors here would mean a driver bug.
	id, _ := res.LastInsertId()
	n, _ := res.RowsAffected()
	return Result{LastInsertID: id, RowsAffected: n}, nil
}

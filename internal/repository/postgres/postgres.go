package postgres

import (
	"context"
	"database/sql"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryAll runs q and scans every row with scan. It always returns a non-nil slice on success.
func queryAll[T any](ctx context.Context, db *sql.DB, q string, scan func(scanner, *T) error, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// insertID executes an INSERT ... RETURNING id statement.
func insertID(ctx context.Context, db *sql.DB, q string, args ...any) (int64, error) {
	var id int64
	if err := db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

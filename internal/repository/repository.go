package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
	DriverName() string
}

// insertReturningID runs an INSERT written with '?' placeholders and returns
// the generated id column.
func insertReturningID(ctx context.Context, exec DBTX, query string, args ...interface{}) (int64, error) {
	var id int64
	if exec.DriverName() == "oracle" {
		args = append(args, sql.Out{Dest: &id})
		if _, err := exec.ExecContext(ctx, exec.Rebind(query+" RETURNING id INTO ?"), args...); err != nil {
			return 0, err
		}
		return id, nil
	}
	if err := exec.QueryRowxContext(ctx, exec.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// expectAffected turns a zero-row UPDATE or DELETE into notFound.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

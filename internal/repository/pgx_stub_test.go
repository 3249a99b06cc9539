package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakePool satisfies pgxPool with canned behavior per call.
type fakePool struct {
	queryRow func(ctx context.Context, sql string, args ...any) pgx.Row
	query    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	exec     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if p.queryRow == nil {
		return fakeRow{err: errors.New("query row not expected")}
	}
	return p.queryRow(ctx, sql, args...)
}

func (p *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if p.query == nil {
		return nil, errors.New("query not expected")
	}
	return p.query(ctx, sql, args...)
}

func (p *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if p.exec == nil {
		return pgconn.CommandTag{}, errors.New("exec not expected")
	}
	return p.exec(ctx, sql, args...)
}

// fakeRow yields one row of column values through Scan.
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignRow(dest, r.vals)
}

// fakeRows pages through fixed rows of column values.
type fakeRows struct {
	rows [][]any
	cur  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.err != nil || r.cur >= len(r.rows) {
		return false
	}
	r.cur++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.cur == 0 || r.cur > len(r.rows) {
		return errors.New("scan before next")
	}
	return assignRow(dest, r.rows[r.cur-1])
}

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Close() {}

func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *fakeRows) Values() ([]any, error) { return nil, nil }

func (r *fakeRows) RawValues() [][]byte { return nil }

func (r *fakeRows) Conn() *pgx.Conn { return nil }

func assignRow(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan expects %d columns, fake row has %d", len(dest), len(vals))
	}
	for i, v := range vals {
		switch v := v.(type) {
		case uuid.UUID:
			*dest[i].(*uuid.UUID) = v
		case string:
			*dest[i].(*string) = v
		case time.Time:
			*dest[i].(*time.Time) = v
		case int:
			*dest[i].(*int) = v
		default:
			return fmt.Errorf("fake row has no assignment for %T", v)
		}
	}
	return nil
}

package sqlc

import (
	"context"
	"database/sql"
	"regexp"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db       DBTX
	ordinals bool
}

// New binds queries with $N placeholders, as postgres expects.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// NewSqlite binds queries with ? placeholders. Every query below uses
// its arguments once and in order, so the rewrite keeps positions.
func NewSqlite(db DBTX) *Queries {
	return &Queries{db: db, ordinals: true}
}

var dollarParam = regexp.MustCompile(`\$\d+`)

func (q *Queries) bind(query string) string {
	if !q.ordinals {
		return query
	}
	return dollarParam.ReplaceAllString(query, "?")
}

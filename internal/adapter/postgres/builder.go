package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Get runs a single-row query and scans it into dst.
func Get(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, query, args...)
}

// Select runs a multi-row query and scans all rows into dst (a slice pointer).
func Select(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, query, args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ILike matches column against a case-insensitive substring. Wildcards in
// substr match literally; backslash is Postgres' default LIKE escape.
func ILike(column, substr string) sq.ILike {
	return sq.ILike{column: "%" + likeEscaper.Replace(substr) + "%"}
}

// Returning renders a RETURNING clause for the given columns.
func Returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

package bundle

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultTranslationsTable is created by Migrate.
const defaultTranslationsTable = "g11n_translations"

// tablePattern restricts table names to plain or schema-qualified
// identifiers, since the name is interpolated into the query text.
var tablePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// PostgresLoader reads bundles from a Postgres table of flat rows, one row
// per translation key:
//
//	locale | namespace | key            | value
//	en     | common    | greeting.hello | Hello, {{name}}!
//	en     | common    | items.one      | {{count}} item
//
// Dot-separated keys are rebuilt into the nested bundle tree, so plural
// tables and grammatical contexts round-trip through flat rows.
type PostgresLoader struct {
	pool  *pgxpool.Pool
	query string
	table string
}

// PostgresOption configures a PostgresLoader.
type PostgresOption func(*PostgresLoader)

// WithTranslationsTable replaces the default g11n_translations table name.
// Accepts plain or schema-qualified identifiers.
func WithTranslationsTable(name string) PostgresOption {
	return func(l *PostgresLoader) {
		if name != "" {
			l.table = name
		}
	}
}

// NewPostgres creates a loader reading translation rows through the pool.
func NewPostgres(pool *pgxpool.Pool, opts ...PostgresOption) (*PostgresLoader, error) {
	if pool == nil {
		return nil, fmt.Errorf("%w: pool is required", ErrInvalidConfig)
	}

	l := &PostgresLoader{
		pool:  pool,
		table: defaultTranslationsTable,
	}
	for _, opt := range opts {
		opt(l)
	}

	if !tablePattern.MatchString(l.table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrInvalidConfig, l.table)
	}
	l.query = fmt.Sprintf(
		`SELECT key, value FROM %s WHERE locale = $1 AND namespace = $2 ORDER BY key`,
		l.table,
	)
	return l, nil
}

// Load queries the rows for (locale, namespace) and rebuilds the nested
// tree. No rows is a plain miss and yields an empty bundle.
func (l *PostgresLoader) Load(ctx context.Context, locale, namespace string) (map[string]any, error) {
	rows, err := l.pool.Query(ctx, l.query, locale, namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: querying translations: %w", ErrLoadFailed, err)
	}
	defer rows.Close()

	tree := make(map[string]any)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scanning translation row: %w", ErrLoadFailed, err)
		}
		insertPath(tree, key, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading translation rows: %w", ErrLoadFailed, err)
	}
	return tree, nil
}

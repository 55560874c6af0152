package aggql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/aggql/duckdb"
	"github.com/zoobzio/aggql/internal/types"
	"github.com/zoobzio/aggql/keywords"
	"github.com/zoobzio/aggql/mariadb"
	"github.com/zoobzio/aggql/mssql"
	"github.com/zoobzio/aggql/postgres"
	"github.com/zoobzio/aggql/sqlite"
)

// Dialect defines the interface for SQL dialect-specific rendering.
// Implementations render single fragments; clause assembly is shared.
type Dialect interface {
	// Name identifies the dialect, e.g. "duckdb".
	Name() string

	// RenderAggregation renders one aggregation as a SELECT item.
	RenderAggregation(agg types.Aggregation) (string, error)

	// RenderFilter renders one filter as a WHERE predicate.
	RenderFilter(f types.Filter) (string, error)

	// Keywords returns the reserved words used by Qualify.
	Keywords() *keywords.Set
}

var dialects = map[string]func() Dialect{
	duckdb.Name:   func() Dialect { return duckdb.New() },
	postgres.Name: func() Dialect { return postgres.New() },
	sqlite.Name:   func() Dialect { return sqlite.New() },
	mariadb.Name:  func() Dialect { return mariadb.New() },
	mssql.Name:    func() Dialect { return mssql.New() },
}

// DialectByName returns a built-in dialect. "mysql" is accepted for mariadb.
func DialectByName(name string) (Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "mysql" {
		key = mariadb.Name
	}
	newDialect, ok := dialects[key]
	if !ok {
		return nil, &Error{
			Kind: KindCompile,
			Err:  ErrUnknownDialect,
			Msg:  fmt.Sprintf("unknown dialect %q, expected one of %s", name, strings.Join(DialectNames(), ", ")),
		}
	}
	return newDialect(), nil
}

// DialectNames lists the built-in dialects in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultDialect returns the DuckDB dialect.
func DefaultDialect() Dialect {
	return duckdb.New()
}

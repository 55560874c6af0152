// Package aggql compiles declarative aggregation queries into SQL.
//
// A Query names the columns to group by (labels), the aggregates to compute
// and the filters to apply. A Database describes the tables and the join
// conditions between them. Compile turns the pair into one SQL statement:
//
//	db := aggql.NewDatabase().
//		AddTable("orders").
//		Relate("customers", "orders", "customers.id = orders.customer_id")
//
//	sql, err := aggql.Compile(aggql.Query{
//		Labels: []aggql.Column{{Table: "customers", Column: "name"}},
//		Aggregations: []aggql.Aggregation{
//			{Column: aggql.Column{Table: "orders", Column: "total"}, Type: aggql.AggSum},
//		},
//	}, *db)
//	// SELECT customers.name,
//	// 	sum(orders.total) total
//	//
//	// FROM orders
//	// 	JOIN customers ON customers.id = orders.customer_id
//	//
//	// GROUP BY customers.name
//
// # Join Order
//
// Tables are joined left to right in the order they are first referenced:
// aggregations first, then labels, then filters. Relationships are directional.
// A table joined after another must declare conditions keyed by every table
// already joined; the reverse entry is never consulted. Use RelateBoth when a
// pair may be joined in either order.
//
// # Dialects
//
// Compile renders DuckDB SQL. CompileWith accepts any Dialect; the duckdb,
// postgres, sqlite, mariadb and mssql packages provide the built-in ones.
//
// # Autocomplete
//
// Qualify rewrites alias-prefixed identifiers in a partially typed query into
// table-prefixed ones. It is a whitespace-token heuristic, not a SQL parser.
package aggql

import "github.com/zoobzio/aggql/internal/types"

// Column references one column of one table.
type Column = types.Column

// Table describes the relationships of one table.
type Table = types.Table

// Database is the relational model queries are compiled against.
type Database = types.Database

// Query describes the labels, aggregations and filters to compile.
type Query = types.Query

// Aggregation applies an aggregate function to a column.
type Aggregation = types.Aggregation

// AggregationType represents the supported aggregate functions.
type AggregationType = types.AggregationType

// Re-export aggregation constants for public API.
const (
	AggSum   = types.AggSum
	AggAvg   = types.AggAvg
	AggMin   = types.AggMin
	AggMax   = types.AggMax
	AggCount = types.AggCount
)

// Filter restricts rows by comparing a column to literal values.
type Filter = types.Filter

// Operator represents filter comparison operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	EQ      = types.EQ
	IN      = types.IN
	BETWEEN = types.BETWEEN
)

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return types.NewDatabase()
}

// ParseAggregationType accepts an aggregate function name in any case.
func ParseAggregationType(s string) (AggregationType, error) {
	return types.ParseAggregationType(s)
}

// ParseOperator accepts an operator name in any case.
func ParseOperator(s string) (Operator, error) {
	return types.ParseOperator(s)
}

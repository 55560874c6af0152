package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/aggql"
	aggqltest "github.com/zoobzio/aggql/testing"
)

// scanner is the part of *sql.Rows and pgx.Rows the suites read.
type scanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// backend runs statements against one database.
type backend interface {
	Exec(ctx context.Context, t *testing.T, sql string)
	Query(ctx context.Context, t *testing.T, sql string, read func(scanner))
}

// setupSalesSchema creates and seeds the tables described by aggqltest.TestProject.
// numeric is the dialect's floating point column type.
func setupSalesSchema(ctx context.Context, t *testing.T, b backend, numeric string) {
	t.Helper()

	for _, table := range []string{"orders", "customers", "regions"} {
		b.Exec(ctx, t, "DROP TABLE IF EXISTS "+table)
	}

	b.Exec(ctx, t, `CREATE TABLE regions (
		code VARCHAR(10) PRIMARY KEY,
		name VARCHAR(100) NOT NULL
	)`)
	b.Exec(ctx, t, `CREATE TABLE customers (
		id INT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		region VARCHAR(10) NOT NULL
	)`)
	b.Exec(ctx, t, fmt.Sprintf(`CREATE TABLE orders (
		id INT PRIMARY KEY,
		customer_id INT NOT NULL,
		product_id INT NOT NULL,
		ship_region VARCHAR(10) NOT NULL,
		status VARCHAR(20) NOT NULL,
		total %s NOT NULL
	)`, numeric))

	b.Exec(ctx, t, `INSERT INTO regions (code, name) VALUES
		('EU', 'Europe'),
		('US', 'United States')`)
	b.Exec(ctx, t, `INSERT INTO customers (id, name, region) VALUES
		(1, 'Acme', 'EU'),
		(2, 'Globex', 'US'),
		(3, 'Initech', 'US')`)
	b.Exec(ctx, t, `INSERT INTO orders (id, customer_id, product_id, ship_region, status, total) VALUES
		(1, 1, 1, 'EU', 'paid', 100),
		(2, 1, 2, 'US', 'shipped', 250),
		(3, 1, 1, 'EU', 'cancelled', 40),
		(4, 2, 1, 'US', 'paid', 75),
		(5, 3, 2, 'US', 'cancelled', 500)`)
}

// report is a one-label query whose second column is a total or a count.
type report struct {
	name   string
	query  aggql.Query
	totals map[string]float64
	counts map[string]int64
}

func column(table, name string) aggql.Column {
	return aggql.Column{Table: table, Column: name}
}

func salesReports() []report {
	return []report{
		{
			name: "revenue by customer",
			query: aggql.Query{
				Labels:       []aggql.Column{column("customers", "name")},
				Aggregations: []aggql.Aggregation{{Column: column("orders", "total"), Type: aggql.AggSum}},
				Filters: []aggql.Filter{
					{Column: column("orders", "status"), Operator: aggql.IN, Values: []string{"'paid'", "'shipped'"}},
				},
			},
			totals: map[string]float64{"Acme": 350, "Globex": 75},
		},
		{
			name: "orders by status",
			query: aggql.Query{
				Labels:       []aggql.Column{column("orders", "status")},
				Aggregations: []aggql.Aggregation{{Column: column("orders", "id"), Type: aggql.AggCount, Alias: "n"}},
			},
			counts: map[string]int64{"paid": 2, "shipped": 1, "cancelled": 2},
		},
		{
			name: "large orders by ship region",
			query: aggql.Query{
				Labels:       []aggql.Column{column("regions", "name")},
				Aggregations: []aggql.Aggregation{{Column: column("orders", "total"), Type: aggql.AggSum}},
				Filters: []aggql.Filter{
					{Column: column("orders", "total"), Operator: aggql.BETWEEN, Values: []string{"0", "90"}, Negate: true},
				},
			},
			totals: map[string]float64{"Europe": 100, "United States": 750},
		},
		{
			name: "largest order by customer",
			query: aggql.Query{
				Labels:       []aggql.Column{column("customers", "name")},
				Aggregations: []aggql.Aggregation{{Column: column("orders", "total"), Type: aggql.AggMax}},
			},
			totals: map[string]float64{"Acme": 250, "Globex": 75, "Initech": 500},
		},
		{
			name: "home region revenue",
			query: aggql.Query{
				Labels:       []aggql.Column{column("customers", "name")},
				Aggregations: []aggql.Aggregation{{Column: column("orders", "total"), Type: aggql.AggSum}},
				Filters: []aggql.Filter{
					{Column: column("regions", "code"), Operator: aggql.EQ, Values: []string{"'US'"}},
				},
			},
			totals: map[string]float64{"Globex": 75, "Initech": 500},
		},
	}
}

// runSalesReports compiles every report with dialect, validating it against
// the DBML schema, and checks the rows the database returns.
func runSalesReports(ctx context.Context, t *testing.T, dialect aggql.Dialect, b backend) {
	t.Helper()

	instance := aggqltest.TestInstance(t).WithDialect(dialect)
	db := aggqltest.TestDatabase()

	for _, r := range salesReports() {
		t.Run(r.name, func(t *testing.T) {
			sql, err := instance.Compile(r.query, db)
			require.NoError(t, err)

			if r.totals != nil {
				got := make(map[string]float64)
				b.Query(ctx, t, sql, func(rows scanner) {
					for rows.Next() {
						var label string
						var total float64
						require.NoError(t, rows.Scan(&label, &total))
						got[label] = total
					}
					require.NoError(t, rows.Err())
				})
				assert.Equal(t, r.totals, got, "SQL:\n%s", sql)
			}

			if r.counts != nil {
				got := make(map[string]int64)
				b.Query(ctx, t, sql, func(rows scanner) {
					for rows.Next() {
						var label string
						var n int64
						require.NoError(t, rows.Scan(&label, &n))
						got[label] = n
					}
					require.NoError(t, rows.Err())
				})
				assert.Equal(t, r.counts, got, "SQL:\n%s", sql)
			}
		})
	}
}

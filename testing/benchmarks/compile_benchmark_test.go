// Package benchmarks provides performance benchmarks for aggql.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/zoobzio/aggql"
	"github.com/zoobzio/aggql/postgres"
	aggqltest "github.com/zoobzio/aggql/testing"
)

func reportQuery() aggql.Query {
	return aggql.Query{
		Labels: []aggql.Column{
			{Table: "customers", Column: "name"},
			{Table: "regions", Column: "name"},
		},
		Aggregations: []aggql.Aggregation{
			{Column: aggql.Column{Table: "orders", Column: "total"}, Type: aggql.AggSum},
			{Column: aggql.Column{Table: "orders", Column: "id"}, Type: aggql.AggCount, Alias: "orders"},
		},
		Filters: []aggql.Filter{
			{Column: aggql.Column{Table: "orders", Column: "status"}, Operator: aggql.IN, Values: []string{"'paid'", "'shipped'"}},
			{Column: aggql.Column{Table: "orders", Column: "total"}, Operator: aggql.BETWEEN, Values: []string{"10", "1000"}},
		},
	}
}

// chainDatabase relates every table to all tables before it.
func chainDatabase(n int) ([]string, aggql.Database) {
	db := aggql.NewDatabase().AddTable("t0")
	tables := []string{"t0"}
	for i := 1; i < n; i++ {
		table := fmt.Sprintf("t%d", i)
		for _, previous := range tables {
			db.Relate(table, previous, fmt.Sprintf("%s.%s_id = %s.id", table, previous, previous))
		}
		tables = append(tables, table)
	}
	return tables, *db
}

// BenchmarkCompileSingleTable measures a query that needs no joins.
func BenchmarkCompileSingleTable(b *testing.B) {
	db := aggqltest.TestDatabase()
	q := aggql.Query{
		Labels:       []aggql.Column{{Table: "orders", Column: "status"}},
		Aggregations: []aggql.Aggregation{{Column: aggql.Column{Table: "orders", Column: "total"}, Type: aggql.AggSum}},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := aggql.Compile(q, db); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompileReport measures a three-table report with filters.
func BenchmarkCompileReport(b *testing.B) {
	db := aggqltest.TestDatabase()
	q := reportQuery()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := aggql.Compile(q, db); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompileReportPostgres measures the same report with a non-default dialect.
func BenchmarkCompileReportPostgres(b *testing.B) {
	db := aggqltest.TestDatabase()
	q := reportQuery()
	dialect := postgres.New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := aggql.CompileWith(dialect, q, db); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInstanceCompile includes schema validation.
func BenchmarkInstanceCompile(b *testing.B) {
	instance, err := aggql.NewFromDBML(aggqltest.TestProject())
	if err != nil {
		b.Fatalf("Failed to create instance: %v", err)
	}
	db := aggqltest.TestDatabase()
	q := reportQuery()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := instance.Compile(q, db); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolveJoins measures join resolution as the table count grows.
func BenchmarkResolveJoins(b *testing.B) {
	for _, n := range []int{2, 8, 32} {
		tables, db := chainDatabase(n)
		b.Run(fmt.Sprintf("tables=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := aggql.ResolveJoins(tables, db); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDecodeQuery measures JSON query decoding.
func BenchmarkDecodeQuery(b *testing.B) {
	doc := []byte(`{
		"labels": [{"table": "customers", "column": "name"}],
		"aggregations": [{"column": {"table": "orders", "column": "total"}, "type": "sum"}],
		"filters": [{"column": {"table": "orders", "column": "status"}, "operator": "in", "values": ["'paid'", "'shipped'"]}]
	}`)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := aggql.DecodeQuery(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkQualify measures the autocomplete rewrite.
func BenchmarkQualify(b *testing.B) {
	text := "select o.total, c.name from orders o join customers c on c.id = o.customer_id"
	tables := []string{"orders", "customers", "regions", "products"}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = aggql.Qualify(text, tables, len(text))
	}
}

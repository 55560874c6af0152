package aggql

import (
	"strings"

	"github.com/zoobzio/aggql/internal/types"
)

// Statement is a compiled query before it is joined into SQL text.
// Every slice is deduplicated and keeps first-seen order.
type Statement struct {
	Tables       []string
	Labels       []string
	Aggregations []string
	Filters      []string
	Joins        []JoinStep
}

// orderedSet keeps unique strings in insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// Compile renders query against db as DuckDB SQL.
func Compile(query Query, db Database) (string, error) {
	return CompileWith(DefaultDialect(), query, db)
}

// CompileWith renders query against db using dialect.
func CompileWith(dialect Dialect, query Query, db Database) (string, error) {
	stmt, err := Plan(dialect, query, db)
	if err != nil {
		return "", err
	}
	return stmt.SQL(), nil
}

// Plan renders every fragment of query and resolves its joins.
//
// Tables are collected in first-seen order across aggregations, then labels,
// then filters. Fragments are deduplicated by their rendered text, so two
// identical aggregations or filters appear once.
func Plan(dialect Dialect, query Query, db Database) (*Statement, error) {
	if len(query.Labels) == 0 && len(query.Aggregations) == 0 {
		return nil, types.EmptySelectionError()
	}

	tables := newOrderedSet()
	labels := newOrderedSet()
	aggregations := newOrderedSet()
	filters := newOrderedSet()

	addTable := func(c Column) {
		if c.Table != "" {
			tables.add(c.Table)
		}
	}

	for _, agg := range query.Aggregations {
		addTable(agg.Column)
		fragment, err := dialect.RenderAggregation(agg)
		if err != nil {
			return nil, err
		}
		aggregations.add(fragment)
	}

	for _, label := range query.Labels {
		addTable(label)
		labels.add(label.String())
	}

	for _, f := range query.Filters {
		fragment, err := dialect.RenderFilter(f)
		if err != nil {
			return nil, err
		}
		addTable(f.Column)
		filters.add(fragment)
	}

	joins, err := ResolveJoins(tables.items, db)
	if err != nil {
		return nil, err
	}

	return &Statement{
		Tables:       tables.items,
		Labels:       labels.items,
		Aggregations: aggregations.items,
		Filters:      filters.items,
		Joins:        joins,
	}, nil
}

// SQL joins the clauses with blank lines in SELECT, FROM, WHERE, GROUP BY order.
// WHERE is omitted without filters; GROUP BY is emitted only when both labels
// and aggregations are present and always groups by every label.
func (s *Statement) SQL() string {
	selections := make([]string, 0, len(s.Labels)+len(s.Aggregations))
	selections = append(selections, s.Labels...)
	selections = append(selections, s.Aggregations...)

	clauses := []string{
		"SELECT " + strings.Join(selections, ",\n\t"),
		RenderFrom(s.Joins),
	}

	if len(s.Filters) > 0 {
		clauses = append(clauses, "WHERE "+strings.Join(s.Filters, "\n\tAND "))
	}

	if len(s.Aggregations) > 0 && len(s.Labels) > 0 {
		clauses = append(clauses, "GROUP BY "+strings.Join(s.Labels, ",\n\t"))
	}

	return strings.Join(clauses, "\n\n")
}

package aggql

import (
	"strings"

	"github.com/zoobzio/aggql/internal/types"
)

// JoinStep is one table added to the FROM clause.
// The first step of a plan has no conditions.
type JoinStep struct {
	Table      string
	Conditions []string
}

// ResolveJoins plans the left-to-right join of tables in the given order.
//
// The first table seeds the FROM clause. Every later table must declare, in its
// own relationship map, conditions keyed by each table already joined; all of
// them are combined into its ON clause. Lookups always go from the new table
// back to the joined ones, so a table reachable only through B must come after B.
//
// Resolution does one lookup per pair of tables and is O(n²) in len(tables).
func ResolveJoins(tables []string, db Database) ([]JoinStep, error) {
	if len(tables) == 0 {
		return nil, types.NoTablesError()
	}

	plan := make([]JoinStep, 0, len(tables))
	plan = append(plan, JoinStep{Table: tables[0]})

	for _, table := range tables[1:] {
		step := JoinStep{Table: table}
		for _, previous := range plan {
			conds, err := db.Conditions(table, previous.Table)
			if err != nil {
				return nil, err
			}
			step.Conditions = append(step.Conditions, conds...)
		}
		plan = append(plan, step)
	}

	return plan, nil
}

// RenderFrom renders a join plan:
//
//	FROM orders
//		JOIN customers ON customers.id = orders.customer_id
//			AND customers.region = orders.region
func RenderFrom(plan []JoinStep) string {
	if len(plan) == 0 {
		return ""
	}

	var sql strings.Builder
	sql.WriteString("FROM ")
	sql.WriteString(plan[0].Table)

	for _, step := range plan[1:] {
		sql.WriteString("\n\tJOIN ")
		sql.WriteString(step.Table)
		sql.WriteString(" ON ")
		sql.WriteString(strings.Join(step.Conditions, "\n\t\tAND "))
	}

	return sql.String()
}

// BuildFrom resolves and renders the FROM clause for tables.
func BuildFrom(tables []string, db Database) (string, error) {
	plan, err := ResolveJoins(tables, db)
	if err != nil {
		return "", err
	}
	return RenderFrom(plan), nil
}

// Package render turns single aggregations and filters into SQL fragments.
package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/aggql/internal/types"
)

// Aggregation renders "fn(table.column) alias", or "<count-all> alias" for COUNT.
func Aggregation(caps Capabilities, agg types.Aggregation) (string, error) {
	alias := agg.OutputName()
	switch agg.Type {
	case types.AggCount:
		countAll := caps.CountAll
		if countAll == "" {
			countAll = DefaultCapabilities().CountAll
		}
		return fmt.Sprintf("%s %s", countAll, alias), nil
	case types.AggSum, types.AggAvg, types.AggMin, types.AggMax:
		return fmt.Sprintf("%s(%s) %s", agg.Type, agg.Column, alias), nil
	default:
		return "", &types.Error{
			Kind:  types.KindCompile,
			Err:   types.ErrUnknownValue,
			Table: agg.Column.Table,
			Msg:   fmt.Sprintf("aggregation on %s has unknown type %q", agg.Column, agg.Type),
		}
	}
}

// Filter renders a parenthesised predicate, prefixed with NOT when negated.
// Value counts are checked before rendering; nothing is truncated.
func Filter(f types.Filter) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	var predicate string
	switch f.Operator {
	case types.EQ:
		predicate = fmt.Sprintf("(%s = %s)", f.Column, f.Values[0])
	case types.IN:
		predicate = fmt.Sprintf("(%s in (%s))", f.Column, strings.Join(f.Values, ", "))
	case types.BETWEEN:
		predicate = fmt.Sprintf("(%s between %s and %s)", f.Column, f.Values[0], f.Values[1])
	}

	if f.Negate {
		return "NOT " + predicate, nil
	}
	return predicate, nil
}

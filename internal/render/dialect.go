package render

import (
	"github.com/zoobzio/aggql/internal/types"
	"github.com/zoobzio/aggql/keywords"
)

// Dialect holds what a SQL dialect configures: its name, its rendering
// capabilities and its reserved words. Dialect packages embed it.
type Dialect struct {
	name     string
	caps     Capabilities
	keywords *keywords.Set
}

// NewDialect configures a dialect.
func NewDialect(name string, caps Capabilities, kw *keywords.Set) Dialect {
	return Dialect{name: name, caps: caps, keywords: kw}
}

// Name returns the dialect name.
func (d Dialect) Name() string {
	return d.name
}

// RenderAggregation renders one aggregation as a SELECT item.
func (d Dialect) RenderAggregation(agg types.Aggregation) (string, error) {
	return Aggregation(d.caps, agg)
}

// RenderFilter renders one filter as a WHERE predicate.
func (d Dialect) RenderFilter(f types.Filter) (string, error) {
	return Filter(f)
}

// Keywords returns the reserved words of the dialect.
func (d Dialect) Keywords() *keywords.Set {
	return d.keywords
}

// Capabilities returns the rendering options of the dialect.
func (d Dialect) Capabilities() Capabilities {
	return d.caps
}

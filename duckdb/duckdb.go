// Package duckdb provides the DuckDB dialect for aggql.
//
// DuckDB is the default dialect. COUNT aggregations render as count(),
// which DuckDB accepts as a count of all rows.
package duckdb

import (
	"github.com/zoobzio/aggql/internal/render"
	"github.com/zoobzio/aggql/keywords"
)

// Name identifies the dialect in configuration and keyword lists.
const Name = "duckdb"

// capabilities are the DuckDB rendering options.
var capabilities = render.Capabilities{
	CountAll: "count()",
}

// Renderer implements the DuckDB dialect.
type Renderer struct {
	render.Dialect
}

// New creates a new DuckDB renderer.
func New() *Renderer {
	return &Renderer{Dialect: render.NewDialect(Name, capabilities, keywords.MustLoad(Name))}
}

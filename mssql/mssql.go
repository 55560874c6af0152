// Package mssql provides the SQL Server dialect for aggql.
package mssql

import (
	"github.com/zoobzio/aggql/internal/render"
	"github.com/zoobzio/aggql/keywords"
)

// Name identifies the dialect in configuration and keyword lists.
const Name = "mssql"

// capabilities are the SQL Server rendering options.
var capabilities = render.Capabilities{
	CountAll: "count(*)",
}

// Renderer implements the SQL Server dialect.
type Renderer struct {
	render.Dialect
}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{Dialect: render.NewDialect(Name, capabilities, keywords.MustLoad(Name))}
}

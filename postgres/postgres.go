// Package postgres provides the PostgreSQL dialect for aggql.
package postgres

import (
	"github.com/zoobzio/aggql/internal/render"
	"github.com/zoobzio/aggql/keywords"
)

// Name identifies the dialect in configuration and keyword lists.
const Name = "postgres"

// capabilities are the PostgreSQL rendering options.
var capabilities = render.Capabilities{
	CountAll: "count(*)",
}

// Renderer implements the PostgreSQL dialect.
type Renderer struct {
	render.Dialect
}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{Dialect: render.NewDialect(Name, capabilities, keywords.MustLoad(Name))}
}

// Package sqlite provides the SQLite dialect for aggql.
package sqlite

import (
	"github.com/zoobzio/aggql/internal/render"
	"github.com/zoobzio/aggql/keywords"
)

// Name identifies the dialect in configuration and keyword lists.
const Name = "sqlite"

// capabilities are the SQLite rendering options.
var capabilities = render.Capabilities{
	CountAll: "count(*)",
}

// Renderer implements the SQLite dialect.
type Renderer struct {
	render.Dialect
}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{Dialect: render.NewDialect(Name, capabilities, keywords.MustLoad(Name))}
}

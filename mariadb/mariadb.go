// Package mariadb provides the MariaDB dialect for aggql.
//
// The same SQL is accepted by MySQL.
package mariadb

import (
	"github.com/zoobzio/aggql/internal/render"
	"github.com/zoobzio/aggql/keywords"
)

// Name identifies the dialect in configuration and keyword lists.
const Name = "mariadb"

// capabilities are the MariaDB rendering options.
var capabilities = render.Capabilities{
	CountAll: "count(*)",
}

// Renderer implements the MariaDB dialect.
type Renderer struct {
	render.Dialect
}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{Dialect: render.NewDialect(Name, capabilities, keywords.MustLoad(Name))}
}

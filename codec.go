package aggql

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/aggql/internal/types"
)

// DecodeQuery decodes a query document. Documents starting with '{' are read
// as JSON, anything else as YAML.
func DecodeQuery(data []byte) (Query, error) {
	var q Query
	if err := decode(data, &q); err != nil {
		return Query{}, types.NewParseError("query", err)
	}
	return q, nil
}

// DecodeDatabase decodes a schema document, either {"tables": {...}} or a bare
// map of table name to table.
func DecodeDatabase(data []byte) (Database, error) {
	var db Database
	if err := decode(data, &db); err != nil {
		return Database{}, types.NewParseError("schema", err)
	}
	return db, nil
}

// CompileDocuments decodes both documents and compiles them as DuckDB SQL.
func CompileDocuments(queryDoc, schemaDoc []byte) (string, error) {
	return CompileDocumentsWith(DefaultDialect(), queryDoc, schemaDoc)
}

// CompileDocumentsWith decodes both documents and compiles them with dialect.
// Decoding errors are reported before any compilation starts.
func CompileDocumentsWith(dialect Dialect, queryDoc, schemaDoc []byte) (string, error) {
	q, err := DecodeQuery(queryDoc)
	if err != nil {
		return "", err
	}
	db, err := DecodeDatabase(schemaDoc)
	if err != nil {
		return "", err
	}
	return CompileWith(dialect, q, db)
}

func decode(data []byte, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return json.Unmarshal(trimmed, v)
	}
	return yaml.Unmarshal(trimmed, v)
}

package types

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Table describes how a table joins to the tables that may precede it.
// Relationships maps a preceding table name to the join conditions used when
// this table is joined after it.
type Table struct {
	Relationships map[string][]string `json:"relationships" yaml:"relationships"`
}

// Database is the relational model a query is compiled against.
//
// Relationships are directional: the conditions stored under table B for key A
// are consulted only when B is joined after A. Use RelateBoth to declare a join
// usable in either order.
type Database struct {
	Tables map[string]Table `json:"tables" yaml:"tables"`
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{Tables: make(map[string]Table)}
}

// AddTable registers a table with no relationships. Existing tables are left untouched.
func (d *Database) AddTable(name string) *Database {
	if d.Tables == nil {
		d.Tables = make(map[string]Table)
	}
	if _, ok := d.Tables[name]; !ok {
		d.Tables[name] = Table{Relationships: make(map[string][]string)}
	}
	return d
}

// Relate records the conditions used when table is joined after previous.
// Conditions accumulate across calls.
func (d *Database) Relate(table, previous string, conditions ...string) *Database {
	d.AddTable(table)
	t := d.Tables[table]
	if t.Relationships == nil {
		t.Relationships = make(map[string][]string)
	}
	t.Relationships[previous] = append(t.Relationships[previous], conditions...)
	d.Tables[table] = t
	return d
}

// RelateBoth records the same conditions in both directions.
func (d *Database) RelateBoth(a, b string, conditions ...string) *Database {
	d.Relate(a, b, conditions...)
	return d.Relate(b, a, conditions...)
}

// Conditions returns the join conditions used when table is joined after previous.
// The lookup never consults the reverse direction. An entry with no conditions
// counts as missing.
func (d Database) Conditions(table, previous string) ([]string, error) {
	t, ok := d.Tables[table]
	if !ok {
		return nil, NoRelationshipsError(table)
	}
	conds := t.Relationships[previous]
	if len(conds) == 0 {
		return nil, NoRelationshipError(previous, table)
	}
	return conds, nil
}

// UnmarshalJSON accepts both {"tables": {...}} and a bare table map.
func (d *Database) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if inner, ok := raw["tables"]; ok && len(raw) == 1 {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(inner, &probe); err == nil {
			if _, isTable := probe["relationships"]; !isTable {
				return json.Unmarshal(inner, &d.Tables)
			}
		}
	}
	return json.Unmarshal(data, &d.Tables)
}

// UnmarshalYAML accepts both a tables: mapping and a bare table mapping.
func (d *Database) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if inner, ok := raw["tables"]; ok && len(raw) == 1 {
		var probe map[string]yaml.Node
		if err := inner.Decode(&probe); err == nil {
			if _, isTable := probe["relationships"]; !isTable {
				return inner.Decode(&d.Tables)
			}
		}
	}
	return value.Decode(&d.Tables)
}

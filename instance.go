package aggql

import (
	"fmt"
	"slices"
	"sort"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/aggql/internal/types"
)

// Instance validates queries against a DBML schema before compiling them.
// The relationships of the schema come from its refs, both the project level
// Ref blocks and the inline refs on columns.
type Instance struct {
	project *dbml.Project
	dialect Dialect
	db      Database
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> column name -> column
}

// NewFromDBML creates a new Instance from a DBML project. It fails when a ref
// names a column the project does not declare or pairs uneven column lists.
func NewFromDBML(project *dbml.Project) (*Instance, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	inst := &Instance{
		project: project,
		dialect: DefaultDialect(),
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		inst.tables[table.Name] = table
		inst.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			inst.fields[table.Name][col.Name] = col
		}
	}

	db, err := inst.buildDatabase()
	if err != nil {
		return nil, err
	}
	inst.db = db

	return inst, nil
}

// WithDialect returns a copy of the instance that compiles with dialect.
func (i *Instance) WithDialect(dialect Dialect) *Instance {
	clone := *i
	clone.dialect = dialect
	return &clone
}

// Dialect returns the dialect used by Compile.
func (i *Instance) Dialect() Dialect {
	return i.dialect
}

// HasTable reports whether the schema declares table.
func (i *Instance) HasTable(table string) bool {
	_, ok := i.tables[table]
	return ok
}

// TableNames returns every table in the schema in sorted order.
// It is a convenient source for the tables argument of Qualify.
func (i *Instance) TableNames() []string {
	names := make([]string, 0, len(i.tables))
	for name := range i.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TryC creates a validated column reference, returning an error if invalid.
func (i *Instance) TryC(table, column string) (Column, error) {
	c := Column{Table: table, Column: column}
	if err := i.validateColumn(c); err != nil {
		return Column{}, err
	}
	return c, nil
}

// C creates a validated column reference. It panics if the column is unknown.
func (i *Instance) C(table, column string) Column {
	c, err := i.TryC(table, column)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that every column referenced by query exists in the schema.
func (i *Instance) Validate(query Query) error {
	for _, c := range query.Columns() {
		if err := i.validateColumn(c); err != nil {
			return err
		}
	}
	return nil
}

// Compile validates query and compiles it against db.
func (i *Instance) Compile(query Query, db Database) (string, error) {
	if err := i.Validate(query); err != nil {
		return "", err
	}
	return CompileWith(i.dialect, query, db)
}

// Database returns the relationships declared by the schema refs. Every table
// is present, and each ref joins its two tables in either order with one
// equality condition per column pair. The result is a copy.
func (i *Instance) Database() Database {
	db := NewDatabase()
	for name, table := range i.db.Tables {
		db.AddTable(name)
		for previous, conds := range table.Relationships {
			db.Relate(name, previous, slices.Clone(conds)...)
		}
	}
	return *db
}

// CompileSchema validates query and compiles it against Database.
func (i *Instance) CompileSchema(query Query) (string, error) {
	return i.Compile(query, i.Database())
}

// Qualify runs the autocomplete rewrite with every schema table.
func (i *Instance) Qualify(text string, cursor int) string {
	return QualifyWith(i.dialect, text, i.TableNames(), cursor)
}

func (i *Instance) validateColumn(c Column) error {
	columns, ok := i.fields[c.Table]
	if !ok {
		return types.UnknownColumnError(c)
	}
	if _, ok := columns[c.Column]; !ok {
		return types.UnknownColumnError(c)
	}
	return nil
}

func (i *Instance) buildDatabase() (Database, error) {
	db := NewDatabase()
	for _, name := range i.TableNames() {
		db.AddTable(name)
	}

	for _, ref := range i.project.Refs {
		if ref == nil || ref.Left == nil || ref.Right == nil {
			continue
		}
		if len(ref.Left.Columns) != len(ref.Right.Columns) {
			return Database{}, types.NewParseError("ref", fmt.Errorf(
				"%s lists %d columns but %s lists %d",
				ref.Left.Table, len(ref.Left.Columns), ref.Right.Table, len(ref.Right.Columns)))
		}
		for n := range ref.Left.Columns {
			left := Column{Table: ref.Left.Table, Column: ref.Left.Columns[n]}
			right := Column{Table: ref.Right.Table, Column: ref.Right.Columns[n]}
			if err := i.relate(db, left, right); err != nil {
				return Database{}, err
			}
		}
	}

	// Inline refs, in table then column order.
	for _, name := range i.TableNames() {
		for _, col := range i.tables[name].Columns {
			if col.InlineRef == nil {
				continue
			}
			left := Column{Table: name, Column: col.Name}
			right := Column{Table: col.InlineRef.Table, Column: col.InlineRef.Column}
			if err := i.relate(db, left, right); err != nil {
				return Database{}, err
			}
		}
	}

	return *db, nil
}

// relate records "left = right" in both directions. Refs within one table
// describe no join and are skipped, as is a condition already recorded.
func (i *Instance) relate(db *Database, left, right Column) error {
	if err := i.validateColumn(left); err != nil {
		return err
	}
	if err := i.validateColumn(right); err != nil {
		return err
	}
	if left.Table == right.Table {
		return nil
	}
	cond := fmt.Sprintf("%s = %s", left, right)
	if slices.Contains(db.Tables[left.Table].Relationships[right.Table], cond) {
		return nil
	}
	db.RelateBoth(left.Table, right.Table, cond)
	return nil
}

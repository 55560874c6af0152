package types

import (
	"errors"
	"fmt"
)

// ErrorKind separates malformed input from queries that cannot be compiled.
type ErrorKind string

const (
	// KindParse marks query or schema documents that could not be decoded.
	KindParse ErrorKind = "parse"
	// KindCompile marks well-formed input that cannot be turned into SQL.
	KindCompile ErrorKind = "compile"
)

// Sentinel errors matched with errors.Is.
var (
	ErrNoTables        = errors.New("at least one table is required")
	ErrNoRelationships = errors.New("table has no relationships")
	ErrNoRelationship  = errors.New("no relationship between tables")
	ErrFilterArity     = errors.New("wrong number of filter values")
	ErrEmptySelection  = errors.New("query selects no labels or aggregations")
	ErrUnknownColumn   = errors.New("column not found in schema")
	ErrUnknownDialect  = errors.New("unknown dialect")
	ErrUnknownValue    = errors.New("unknown enum value")
)

// Error is the single error type returned for domain failures.
// Table and Related name the tables involved, when there are any.
type Error struct {
	Err     error
	Kind    ErrorKind
	Table   string
	Related string
	Msg     string
}

// Error returns the error string.
func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind) + " error"
}

// Unwrap returns the underlying sentinel or decoding error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewParseError wraps a decoding failure.
func NewParseError(what string, err error) *Error {
	return &Error{
		Kind: KindParse,
		Err:  err,
		Msg:  fmt.Sprintf("invalid %s: %v", what, err),
	}
}

// NoTablesError reports an attempt to join an empty table list.
func NoTablesError() *Error {
	return &Error{
		Kind: KindCompile,
		Err:  ErrNoTables,
		Msg:  "there must be at least one table to build a FROM clause",
	}
}

// NoRelationshipsError reports a table with no relationship map in the schema.
func NoRelationshipsError(table string) *Error {
	return &Error{
		Kind:  KindCompile,
		Err:   ErrNoRelationships,
		Table: table,
		Msg:   fmt.Sprintf("table %s has no relationships and cannot be included in joins", table),
	}
}

// NoRelationshipError reports a missing relationship from table back to previous.
func NoRelationshipError(previous, table string) *Error {
	return &Error{
		Kind:    KindCompile,
		Err:     ErrNoRelationship,
		Table:   table,
		Related: previous,
		Msg:     fmt.Sprintf("no relationship exists between %s and %s", previous, table),
	}
}

// FilterArityError reports a filter whose value count does not fit its operator.
func FilterArityError(f Filter, want string) *Error {
	return &Error{
		Kind:  KindCompile,
		Err:   ErrFilterArity,
		Table: f.Column.Table,
		Msg: fmt.Sprintf("%s filter on %s requires %s, got %d",
			f.Operator, f.Column, want, len(f.Values)),
	}
}

// EmptySelectionError reports a query with nothing to select.
func EmptySelectionError() *Error {
	return &Error{
		Kind: KindCompile,
		Err:  ErrEmptySelection,
		Msg:  "query must have at least one label or aggregation",
	}
}

// UnknownColumnError reports a column missing from a validating schema.
func UnknownColumnError(c Column) *Error {
	return &Error{
		Kind:  KindCompile,
		Err:   ErrUnknownColumn,
		Table: c.Table,
		Msg:   fmt.Sprintf("column %s not found in schema", c),
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

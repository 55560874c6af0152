package aggql

import "github.com/zoobzio/aggql/internal/types"

// Error is returned for every parse and compile failure.
// It is re-exported from internal/types for use by consumers.
type Error = types.Error

// ErrorKind separates parse failures from compile failures.
type ErrorKind = types.ErrorKind

// Re-export error kinds for public API.
const (
	KindParse   = types.KindParse
	KindCompile = types.KindCompile
)

// Sentinel errors, matched with errors.Is.
var (
	ErrNoTables        = types.ErrNoTables
	ErrNoRelationships = types.ErrNoRelationships
	ErrNoRelationship  = types.ErrNoRelationship
	ErrFilterArity     = types.ErrFilterArity
	ErrEmptySelection  = types.ErrEmptySelection
	ErrUnknownColumn   = types.ErrUnknownColumn
	ErrUnknownDialect  = types.ErrUnknownDialect
	ErrUnknownValue    = types.ErrUnknownValue
)

// IsParse reports whether err is a parse failure.
func IsParse(err error) bool {
	return types.IsKind(err, KindParse)
}

// IsCompile reports whether err is a compile failure.
func IsCompile(err error) bool {
	return types.IsKind(err, KindCompile)
}

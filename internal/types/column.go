package types

// Column references one column of one table.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type Column struct {
	Table  string `json:"table" yaml:"table"`
	Column string `json:"column" yaml:"column"`
}

// String renders the column as table.column.
func (c Column) String() string {
	if c.Table == "" {
		return c.Column
	}
	return c.Table + "." + c.Column
}

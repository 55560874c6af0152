package types

import (
	"fmt"
	"strings"
)

// Operator represents the filter comparison operators.
type Operator string

const (
	EQ      Operator = "eq"
	IN      Operator = "in"
	BETWEEN Operator = "between"
)

// ParseOperator accepts an operator name in any case; "equal" is an alias for "eq".
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eq", "equal", "=":
		return EQ, nil
	case "in":
		return IN, nil
	case "between":
		return BETWEEN, nil
	default:
		return "", fmt.Errorf("%w: operator %q", ErrUnknownValue, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operator) UnmarshalText(text []byte) error {
	parsed, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o), nil
}

// Filter restricts rows by comparing a column against literal values.
// Values are emitted verbatim, so string literals must carry their own quotes.
type Filter struct {
	Column   Column   `json:"column" yaml:"column"`
	Operator Operator `json:"operator" yaml:"operator"`
	Values   []string `json:"values" yaml:"values"`
	Negate   bool     `json:"negate" yaml:"negate"`
}

// Validate checks the value count against the operator:
// EQ takes exactly one value, IN at least one, BETWEEN exactly two.
func (f Filter) Validate() error {
	switch f.Operator {
	case EQ:
		if len(f.Values) != 1 {
			return FilterArityError(f, "exactly one value")
		}
	case IN:
		if len(f.Values) == 0 {
			return FilterArityError(f, "at least one value")
		}
	case BETWEEN:
		if len(f.Values) != 2 {
			return FilterArityError(f, "exactly two values")
		}
	default:
		return &Error{
			Kind:  KindCompile,
			Err:   ErrUnknownValue,
			Table: f.Column.Table,
			Msg:   fmt.Sprintf("filter on %s has unknown operator %q", f.Column, f.Operator),
		}
	}
	return nil
}

package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AggregationType represents the supported aggregate functions.
type AggregationType string

const (
	AggSum   AggregationType = "sum"
	AggAvg   AggregationType = "avg"
	AggMin   AggregationType = "min"
	AggMax   AggregationType = "max"
	AggCount AggregationType = "count"
)

// ParseAggregationType accepts a function name in any case.
func ParseAggregationType(s string) (AggregationType, error) {
	switch t := AggregationType(strings.ToLower(strings.TrimSpace(s))); t {
	case AggSum, AggAvg, AggMin, AggMax, AggCount:
		return t, nil
	default:
		return "", fmt.Errorf("%w: aggregation type %q", ErrUnknownValue, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AggregationType) UnmarshalText(text []byte) error {
	parsed, err := ParseAggregationType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t AggregationType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// Aggregation applies an aggregate function to a column.
// Alias overrides the output name, which defaults to the column name.
type Aggregation struct {
	Column Column          `json:"column" yaml:"column"`
	Type   AggregationType `json:"type" yaml:"type"`
	Alias  string          `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// OutputName returns the alias the aggregation is selected as.
func (a Aggregation) OutputName() string {
	if a.Alias != "" {
		return a.Alias
	}
	return a.Column.Column
}

// aggregationDoc accepts the legacy aggregation_type field next to type.
type aggregationDoc struct {
	Column          Column          `json:"column" yaml:"column"`
	Type            AggregationType `json:"type" yaml:"type"`
	AggregationType AggregationType `json:"aggregation_type" yaml:"aggregation_type"`
	Alias           string          `json:"alias" yaml:"alias"`
}

func (d aggregationDoc) aggregation() (Aggregation, error) {
	t := d.Type
	if t == "" {
		t = d.AggregationType
	}
	if t == "" {
		return Aggregation{}, fmt.Errorf("%w: aggregation on %s has no type", ErrUnknownValue, d.Column)
	}
	return Aggregation{Column: d.Column, Type: t, Alias: d.Alias}, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Aggregation) UnmarshalJSON(data []byte) error {
	var doc aggregationDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	agg, err := doc.aggregation()
	if err != nil {
		return err
	}
	*a = agg
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Aggregation) UnmarshalYAML(value *yaml.Node) error {
	var doc aggregationDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	agg, err := doc.aggregation()
	if err != nil {
		return err
	}
	*a = agg
	return nil
}

package types

// Query describes what to project, aggregate and filter.
// Its columns are expected to belong to tables present in the Database it is
// compiled against.
type Query struct {
	Labels       []Column      `json:"labels" yaml:"labels"`
	Aggregations []Aggregation `json:"aggregations" yaml:"aggregations"`
	Filters      []Filter      `json:"filters" yaml:"filters"`
}

// Columns returns every column the query references, in aggregation, label,
// filter order. Duplicates are kept.
func (q Query) Columns() []Column {
	cols := make([]Column, 0, len(q.Aggregations)+len(q.Labels)+len(q.Filters))
	for _, agg := range q.Aggregations {
		cols = append(cols, agg.Column)
	}
	cols = append(cols, q.Labels...)
	for _, f := range q.Filters {
		cols = append(cols, f.Column)
	}
	return cols
}

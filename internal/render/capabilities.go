package render

// Capabilities describes the rendering differences between dialects.
type Capabilities struct {
	// CountAll is emitted for COUNT aggregations, which ignore their column.
	CountAll string
}

// DefaultCapabilities renders COUNT as count().
func DefaultCapabilities() Capabilities {
	return Capabilities{CountAll: "count()"}
}

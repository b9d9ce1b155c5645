package model

import "strings"

// Sort orders accepted by the database's query grammar.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// CollectionData is one row of a collection: an open mapping from property
// name to whatever JSON value the database returned. The shape is not
// statically enforced.
type CollectionData map[string]interface{}

// Property is a named field declared on a collection.
type Property struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	DataType    []string `json:"dataType,omitempty"`
}

// CollectionInfo describes one collection (schema class) as shown in the
// catalog: its name, declared properties and current object count. Instances
// are built fresh on every catalog fetch and never persisted.
type CollectionInfo struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Count       int64      `json:"count"`
	Properties  []Property `json:"properties"`
}

// PropertyNames returns the declared property names in schema order.
func (c *CollectionInfo) PropertyNames() []string {
	names := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		names[i] = p.Name
	}
	return names
}

// SortDirective is an optional ordering request for a collection data fetch.
type SortDirective struct {
	Property string `json:"property"`
	Order    string `json:"order"`
}

// IsValid reports whether the directive can be translated into the database's
// sort clause. A zero directive is not valid; callers treat it as "no sort".
func (s *SortDirective) IsValid() bool {
	if s == nil || s.Property == "" {
		return false
	}
	order := strings.ToLower(s.Order)
	return order == SortAscending || order == SortDescending
}

// NormalizedOrder returns the lower-cased order, defaulting to ascending.
func (s *SortDirective) NormalizedOrder() string {
	if s == nil {
		return SortAscending
	}
	if strings.ToLower(s.Order) == SortDescending {
		return SortDescending
	}
	return SortAscending
}

package model

// Schema is the database's declaration of its classes, as returned by the
// /v1/schema endpoint. A missing classes field decodes to an empty list.
type Schema struct {
	Classes []Class `json:"classes"`
}

// Class is one declared schema class (collection).
type Class struct {
	Class       string     `json:"class"`
	Description string     `json:"description,omitempty"`
	Properties  []Property `json:"properties,omitempty"`
}

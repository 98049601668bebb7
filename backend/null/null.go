// Package null provides a serializer backend that discards all output.
// It implements only the mandatory backend surface, making it the
// cheapest way to count statements or to benchmark the dispatch path
// without paying for formatting.
package null

import (
	"github.com/c360/semserial/rdf"
	"github.com/c360/semserial/serializer"
)

// Serializer counts statements and writes nothing. Namespace
// declarations are unsupported; start and end run without hooks.
type Serializer struct {
	statements int
}

// New constructs a null backend for a session
func New(_ *serializer.Session, _ string) (serializer.Backend, error) {
	return &Serializer{}, nil
}

// SerializeStatement counts the statement and discards it
func (z *Serializer) SerializeStatement(_ *serializer.Session, _ rdf.Statement) error {
	z.statements++
	return nil
}

// Terminate implements the mandatory backend surface; nothing to release
func (z *Serializer) Terminate(_ *serializer.Session) {}

// Statements returns the number of statements discarded so far
func (z *Serializer) Statements() int {
	return z.statements
}

// Register adds the null syntax to a registry
func Register(registry *serializer.Registry) error {
	return registry.Register(serializer.Registration{
		Name:  "null",
		Label: "Discard serialized output",
		New:   New,
	})
}

// Package debug provides a serializer backend emitting line-per-event
// diagnostic text.
package debug

import (
	"fmt"

	"github.com/c360/semserial/option"
	"github.com/c360/semserial/rdf"
	"github.com/c360/semserial/serializer"
)

// Serializer writes one plain-text line per serialization event and
// keeps the session locator pointing at the next output line.
type Serializer struct {
	statements int
	lines      int
}

// New constructs a debug backend for a session
func New(_ *serializer.Session, _ string) (serializer.Backend, error) {
	return &Serializer{}, nil
}

// Start begins a cycle. The base URI header is written unless the
// session's writeBaseURI option is off.
func (d *Serializer) Start(s *serializer.Session) error {
	d.statements = 0
	d.lines = 0

	if s.Option(option.WriteBaseURI) != 0 {
		if base := s.BaseURI(); base != "" {
			return d.emit(s, "base <%s>", base)
		}
	}
	return nil
}

// DeclareNamespace writes a prefix mapping line
func (d *Serializer) DeclareNamespace(s *serializer.Session, uri, prefix string) error {
	return d.emit(s, "prefix %s: <%s>", prefix, uri)
}

// DeclareNamespaceFrom writes a prefix mapping line from a binding
func (d *Serializer) DeclareNamespaceFrom(s *serializer.Session, ns rdf.Namespace) error {
	return d.emit(s, "prefix %s: <%s>", ns.Prefix, ns.URI)
}

// SerializeStatement writes one statement line
func (d *Serializer) SerializeStatement(s *serializer.Session, st rdf.Statement) error {
	err := d.emit(s, "%s %s %s .",
		formatTerm(st.Subject), formatTerm(st.Predicate), formatTerm(st.Object))
	if err != nil {
		return err
	}
	d.statements++
	return nil
}

// End writes the cycle trailer with the statement count
func (d *Serializer) End(s *serializer.Session) error {
	return d.emit(s, "# %d statements", d.statements)
}

// Terminate implements the mandatory backend surface; nothing to release
func (d *Serializer) Terminate(_ *serializer.Session) {}

// Statements returns the number of statements written in the current
// cycle
func (d *Serializer) Statements() int {
	return d.statements
}

// emit writes one line through the session and advances the locator to
// the start of the next line.
func (d *Serializer) emit(s *serializer.Session, format string, args ...any) error {
	if _, err := fmt.Fprintf(s, format+"\n", args...); err != nil {
		return err
	}
	d.lines++
	s.SetPosition(d.lines+1, 1)
	return nil
}

// formatTerm renders a term for diagnostic output: IRIs in angle
// brackets, blank nodes and literals in their own notation.
func formatTerm(t rdf.Term) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == rdf.TermIRI {
		return "<" + t.String() + ">"
	}
	return t.String()
}

// Register adds the debug syntax to a registry
func Register(registry *serializer.Registry) error {
	return registry.Register(serializer.Registration{
		Name:     "debug",
		Label:    "Line-per-event diagnostic text",
		MimeType: "text/plain",
		New:      New,
	})
}

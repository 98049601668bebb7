package rdf

import "fmt"

// Statement is an RDF triple. The serialization layer forwards statements
// to backends unmodified; predicates are conventionally IRIs but the core
// does not enforce that.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// IsZero reports whether the statement has no terms.
func (s Statement) IsZero() bool {
	return s.Subject == nil && s.Predicate == nil && s.Object == nil
}

// String returns a diagnostic representation of the statement. It is not
// a wire format; concrete syntaxes apply their own escaping.
func (s Statement) String() string {
	return fmt.Sprintf("%s %s %s", termString(s.Subject), termString(s.Predicate), termString(s.Object))
}

func termString(t Term) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Namespace is a prefix/URI pair declared to a serializer. An empty Prefix
// means the default namespace.
type Namespace struct {
	Prefix string
	URI    string
}

// String returns "prefix: uri" for diagnostics.
func (n Namespace) String() string {
	return fmt.Sprintf("%s: %s", n.Prefix, n.URI)
}

// Locator describes where serialization output is positioned: the base URI
// plus a line and column. Line and column are reset whenever a session is
// bound to a new destination.
type Locator struct {
	URI    string
	Line   int
	Column int
}

package serializer

import "github.com/c360/semserial/rdf"

// Backend is the mandatory surface of a syntax implementation. A backend
// receives the session it serves on every call; sink writes and option
// reads go through the session.
type Backend interface {
	// SerializeStatement writes a single statement in the backend's syntax.
	SerializeStatement(s *Session, st rdf.Statement) error

	// Terminate releases backend resources. It is called exactly once when
	// the session closes, whether or not a sink was ever bound.
	Terminate(s *Session)
}

// Starter is implemented by backends that emit output when a sink is
// bound, such as a syntax header or document preamble.
type Starter interface {
	Start(s *Session) error
}

// Ender is implemented by backends that emit output when a serialization
// cycle ends, such as a document trailer or statements held back for
// grouping.
type Ender interface {
	End(s *Session) error
}

// NamespaceDeclarer is implemented by backends that accept namespace
// prefix mappings for abbreviated output.
type NamespaceDeclarer interface {
	DeclareNamespace(s *Session, uri, prefix string) error
}

// BulkNamespaceDeclarer is implemented by backends that accept a whole
// namespace binding in one call. Sessions prefer this hook over
// NamespaceDeclarer when a backend provides both.
type BulkNamespaceDeclarer interface {
	DeclareNamespaceFrom(s *Session, ns rdf.Namespace) error
}

// IsNamespaceCapable checks whether a backend accepts namespace
// declarations through either hook.
func IsNamespaceCapable(b Backend) bool {
	if _, ok := b.(NamespaceDeclarer); ok {
		return true
	}
	_, ok := b.(BulkNamespaceDeclarer)
	return ok
}

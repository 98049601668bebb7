// Package semserial provides a dispatch core for pluggable RDF serializers:
// a registry of output syntaxes, stateful serialization sessions, and a
// typed option subsystem, with sinks for files, buffers, and messaging
// systems.
//
// # Philosophy: Dispatch, Not Syntax
//
// SemSerial separates WHAT gets serialized from HOW a syntax writes it:
//
// Dispatch core (this module):
//   - Registry: named factories for output syntaxes, with alias lookup
//   - Session: lifecycle management from creation through sink binding,
//     statement emission, and teardown
//   - Options: a typed catalogue of serializer knobs shared by every syntax
//   - Sinks: files, buffers, handles, NATS, JetStream, WebSocket
//
// Syntax backends (in-tree and external):
//   - Implement the small Backend interface plus optional capabilities
//   - Register through backendregistry or their own Register functions
//   - Never manage sinks, options, or lifecycle themselves
//
// SemSerial MUST NOT contain:
//   - Triple stores or graph persistence
//   - RDF parsing (serialization only)
//   - Syntax-specific logic in the dispatch core
//
// Full syntax implementations (RDF/XML, Turtle, N-Triples) belong in
// separate backend packages built on the capability interfaces.
//
// # Architecture
//
// One registry serves many concurrent sessions; each session drives one
// backend through one sink at a time:
//
//	┌─────────────────────────────────────┐
//	│           Registry                  │  Factory catalogue
//	│   (register, lookup, enumerate)     │  Name + alias dispatch
//	└─────────────────────────────────────┘
//	           ↓ creates
//	┌─────────────────────────────────────┐
//	│           Sessions                  │  Lifecycle + options
//	│  (start, declare, serialize, end)   │  Error classification
//	└─────────────────────────────────────┘
//	           ↓ write through
//	┌─────────────────────────────────────┐
//	│            Sinks                    │  File, buffer, handle,
//	│    (owned or caller-managed)        │  NATS, JetStream, WS
//	└─────────────────────────────────────┘
//
// # Module Packages
//
// Dispatch core:
//   - serializer: registry, factories, sessions, backend capabilities
//   - option: typed option catalogue with kind and area checking
//   - rdf: statements, terms, namespaces, locators
//   - sink: output destinations with explicit ownership rules
//
// Backends:
//   - backend/null: discards output, counts statements
//   - backend/debug: line-per-event diagnostic text
//   - backendregistry: one-call registration of the in-tree set
//
// Infrastructure:
//   - config: YAML/JSON serialization profiles
//   - errors: classified errors with sentinel matching
//   - metric: Prometheus instrumentation and serving
//   - vocabulary: well-known RDF namespaces and terms
//
// # Usage Patterns
//
// Basic serialization:
//
//	registry := serializer.NewRegistry()
//	defer registry.Close()
//	backendregistry.Register(registry)
//
//	session, _ := serializer.NewSession(registry, "debug")
//	defer session.Close()
//
//	buf, _ := session.StartToBuffer("http://example.org/")
//	session.SerializeStatement(rdf.Statement{
//		Subject:   rdf.IRI{Value: "http://example.org/doc"},
//		Predicate: vocabulary.DCTitle,
//		Object:    rdf.Literal{Lexical: "Example", Lang: "en"},
//	})
//	session.End()
//	fmt.Print(buf.String())
//
// Custom backend:
//
//	func Register(registry *serializer.Registry) error {
//		return registry.Register(serializer.Registration{
//			Name:     "ntriples",
//			Label:    "N-Triples",
//			MimeType: "application/n-triples",
//			New: func(s *serializer.Session, name string) (serializer.Backend, error) {
//				return &Serializer{}, nil
//			},
//		})
//	}
//
// # Extension Points
//
// Backends implement serializer.Backend and opt into capabilities by
// implementing Starter, Ender, NamespaceDeclarer, or
// BulkNamespaceDeclarer. The session discovers capabilities by type
// assertion; a backend only implements what its syntax needs.
//
// Sinks implement io.Writer and io.Closer. Anything that accepts bytes
// can be a serialization target; the session handles ownership and
// release ordering.
//
// # Design Principles
//
// Separation of Concerns:
//   - Dispatch ≠ syntax: the core never inspects serialized bytes
//   - Session state ≠ backend state: backends keep only syntax state
//   - Options are typed and validated once, in one catalogue
//
// Explicit Lifecycle:
//   - Sessions move created → bound → ended, and may rebind
//   - Sink ownership is decided at bind time, never renegotiated
//   - Backend hook errors return to callers verbatim
//
// Testability:
//   - Explicit dependencies (no globals, no init registration)
//   - Backends test through real sessions with buffer sinks
//   - Integration tests with testcontainers
package semserial

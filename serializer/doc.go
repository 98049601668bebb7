// Package serializer provides the dispatch core for RDF serialization,
// enabling syntax discovery, registration, session lifecycle management,
// and statement dispatch to pluggable backends.
//
// # Overview
//
// The serializer package defines the abstractions every output syntax
// plugs into: a Registry of Factory records describing registered
// syntaxes, Session objects carrying per-use state through their
// lifecycle, and the Backend interface family concrete syntaxes
// implement. The package contains no syntax knowledge of its own; it
// resolves names to factories, walks sessions through their states, and
// forwards statements in arrival order.
//
// The Registry serves as the central catalogue, handling registration,
// name and alias lookup, enumeration, and teardown with thread-safe
// reads.
//
// # Registration Pattern
//
// Syntaxes use EXPLICIT registration rather than init() self-registration.
// This provides:
//   - Testability: isolated registries per test, no global state
//   - Explicitness: the wired syntax set is visible in one place
//   - Control: the embedding program decides what gets registered
//   - No side effects: importing a backend package registers nothing
//
// Registration flow:
//
//  1. Each backend package exports a Register(*serializer.Registry) error function
//  2. backendregistry.RegisterAll() orchestrates all registrations
//  3. The program explicitly calls RegisterAll() with a created Registry
//  4. Syntaxes are now available for session creation
//
// Example backend registration:
//
//	// In backend/null/null.go
//	func Register(registry *serializer.Registry) error {
//		return registry.Register(serializer.Registration{
//			Name:  "null",
//			Label: "Discard serialized output",
//			New: func(s *serializer.Session, name string) (serializer.Backend, error) {
//				return &Serializer{}, nil
//			},
//		})
//	}
//
//	// In backendregistry/register.go
//	func RegisterAll(registry *serializer.Registry) error {
//		if err := null.Register(registry); err != nil {
//			return err
//		}
//		// ... more registrations
//		return nil
//	}
//
// # Quick Start
//
// Serializing statements to a file:
//
//	registry := serializer.NewRegistry()
//	if err := backendregistry.RegisterAll(registry); err != nil {
//		return err
//	}
//	defer registry.Close()
//
//	session, err := serializer.NewSession(registry, "debug")
//	if err != nil {
//		return err
//	}
//	defer session.Close()
//
//	if err := session.StartToFilename("out.txt"); err != nil {
//		return err
//	}
//	if err := session.DeclareNamespace("http://example.org/ns#", "ex"); err != nil {
//		return err
//	}
//	err = session.SerializeStatement(rdf.Statement{
//		Subject:   rdf.IRI{Value: "http://example.org/s"},
//		Predicate: rdf.IRI{Value: "http://example.org/p"},
//		Object:    rdf.Literal{Lexical: "o"},
//	})
//	if err != nil {
//		return err
//	}
//	if err := session.End(); err != nil {
//		return err
//	}
//
// An empty syntax name selects the first-registered factory, so
// NewSession(registry, "") always works on a non-empty registry.
//
// # Backend Interface
//
// Backends implement the two mandatory methods plus any of four optional
// capability interfaces:
//
//	type Backend interface {
//		SerializeStatement(s *Session, st rdf.Statement) error
//		Terminate(s *Session)
//	}
//
// Optional capabilities, discovered by type assertion at call time:
//
//   - Starter: Start(s) runs when a sink is bound
//   - Ender: End(s) runs when a cycle ends, before the sink is released
//   - NamespaceDeclarer: DeclareNamespace(s, uri, prefix) receives prefix mappings
//   - BulkNamespaceDeclarer: DeclareNamespaceFrom(s, ns) receives whole bindings
//
// A backend without a capability simply omits the method. Calling
// DeclareNamespace on a session whose backend declares neither namespace
// capability fails with ErrUnsupported; Start and End hooks are skipped
// silently when absent.
//
// Backends write their output through the session:
//
//	func (b *Serializer) SerializeStatement(s *serializer.Session, st rdf.Statement) error {
//		_, err := fmt.Fprintf(s, "%s .\n", st)
//		return err
//	}
//
// Session implements io.Writer, so fmt and the standard encoders work
// directly and byte accounting stays uniform across backends.
//
// # Session Lifecycle
//
// A session moves through four states:
//
//	created ──start──▶ bound ──end──▶ ended
//	   ▲                 │              │
//	   └────── start ◀───┴──────────────┘      any state ──close──▶ closed
//
// Rules the dispatch core enforces:
//
//   - SerializeStatement, DeclareNamespace, DeclareNamespaceFrom, and End
//     require a bound sink and fail with ErrUnboundSink otherwise
//   - Starting while bound releases the previous sink per its ownership,
//     then binds the new one
//   - End runs the backend's end hook, then releases a session-owned sink
//     regardless of the hook's outcome
//   - A session survives any number of start/end cycles; options persist
//     across cycles
//   - Close runs the backend's Terminate hook exactly once; every
//     operation on a closed session fails with ErrSessionClosed, and
//     repeated Close calls are no-ops
//
// If a backend's Start hook fails, the just-acquired sink is released per
// its ownership and the session stays unbound, so a failed start never
// leaks a file handle or leaves a half-bound session.
//
// # Sink Ownership
//
// Who closes the sink depends on how it was bound:
//
//   - StartToSink: caller-owned; the session never closes it
//   - StartToFilename: session-owned; the created file is closed at End
//   - StartToBuffer: session-owned; the buffer is sealed at End but its
//     contents remain readable
//   - StartToHandle: the wrapper is session-owned, the underlying
//     *os.File stays the caller's to close
//
// StartToFilename derives the base URI from the path as a file: URI;
// the other start methods take the base URI explicitly.
//
// # Options
//
// Each session carries a typed option store validated against the
// serializer area. Numeric and string options are distinct kinds; a
// mismatched set or get never mutates state. Sessions start with the
// creation-time defaults: writeBaseURI=1, relativeURIs=1,
// prefixElements=0, xmlVersion=10, xmlDeclaration=1.
//
//	session.SetOption(option.WriteBaseURI, 0)
//	session.SetOptionString(option.JSONCallback, "handleData")
//	v := session.Option(option.XMLVersion)       // 10
//	cb, ok := session.OptionString(option.JSONCallback)
//
// Option reads on a mismatched id return -1 (numeric) or ("", false)
// (string) rather than an error, matching the option package's getter
// contract.
//
// # Error Handling
//
// The package follows the library-wide error classification:
//
//   - Lookup misses wrap errors.ErrNotFound (invalid)
//   - Duplicate registration wraps errors.ErrDuplicateName (fatal)
//   - Malformed registrations wrap errors.ErrInvalidRegistration (invalid)
//   - Lifecycle violations wrap errors.ErrUnboundSink, errors.ErrUnsupported,
//     or errors.ErrSessionClosed (invalid)
//
// Backend hook errors are returned to the caller verbatim, without
// wrapping, so a backend's own sentinel errors survive errors.Is checks
// at the call site. Classification helpers work on everything this
// package returns:
//
//	if err := session.SerializeStatement(st); err != nil {
//		if errors.IsTransient(err) {
//			// retry
//		}
//	}
//
// # Thread Safety
//
// Registry reads (Lookup, IsRegistered, Enumerate, Names) are safe for
// concurrent use; Register and Close are startup and shutdown phase
// operations, serialized by the registry's lock. Factories are immutable
// once registered and may be shared freely.
//
// Sessions are NOT safe for concurrent use. Each session belongs to one
// goroutine; concurrent serialization uses one session per goroutine,
// which the shared registry supports without coordination.
//
// # Testing
//
// Isolated registries make backend tests self-contained:
//
//	registry := serializer.NewRegistry()
//	err := registry.Register(serializer.Registration{
//		Name: "mock",
//		New: func(s *serializer.Session, name string) (serializer.Backend, error) {
//			return &mockBackend{}, nil
//		},
//	})
//
// A mock backend implementing only the mandatory interface exercises the
// capability-miss paths; adding Starter or Ender methods exercises the
// hook paths. Sessions bound with StartToBuffer keep output in memory
// for assertion.
//
// # Design Decisions
//
// Capability Interfaces: optional behavior is discovered by type
// assertion at call time rather than declared through nil-able function
// fields. The compiler checks hook signatures, and a backend's
// capabilities are visible in its method set.
//
// First Match Wins: lookup scans factories in registration order,
// matching each factory's name and then its alias before moving on. An
// earlier factory's alias therefore shadows a later factory's name;
// registration order is an interface, not an accident.
//
// Sessions Are Single-Goroutine: serialization is inherently ordered, so
// per-session locking would buy nothing. The registry is the shared,
// locked object; sessions are cheap and per-use.
//
// Verbatim Hook Errors: wrapping backend errors would break errors.Is
// on backend sentinels. The dispatch core wraps only its own failures.
//
// # Integration Points
//
// The serializer package integrates with:
//
//   - rdf: statements, namespaces, and locators dispatched to backends
//   - option: the per-session typed option store
//   - sink: the byte destinations sessions bind to
//   - metric: session lifecycle, throughput, and error recording
//   - errors: classification and wrapping of dispatch-core failures
//
// Data flow:
//
//	Caller → Session → Backend → Session.Write → Sink
package serializer

// Package errors provides standardized error handling patterns for SemSerial.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, the caller may retry), Invalid (bad input or caller
// state, do not retry), and Fatal (unrecoverable, stop processing).
//
// Classification lets callers make informed decisions about retries and
// failure handling without hardcoded error string matching. The library
// itself never retries; classification exists so callers can.
//
// # Error Classification
//
// Errors are classified based on their type or content:
//
//   - Transient: sink open failures, context timeouts (retry with a different
//     destination is reasonable)
//   - Invalid: unknown serializer names, option area/kind mismatches,
//     operations on an unbound or closed session (do not retry)
//   - Fatal: duplicate factory registration (programmer error, stop)
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if reg.IsRegistered(name) {
//	    return errors.ErrDuplicateName
//	}
//
// Wrap errors with context for debugging:
//
//	if err := s.sink.Close(); err != nil {
//	    return errors.Wrap(err, "Session", "End", "sink close")
//	}
//
// Check classification at the call site:
//
//	if err := session.StartToFilename("", path); err != nil {
//	    if errors.IsTransient(err) {
//	        // session is still unbound; retry with another destination
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() preserves the original error's classification through
// the chain.
//
// # Standard Error Variables
//
// Pre-defined error variables, organized by category:
//
//   - Registry: ErrDuplicateName, ErrNotFound
//   - Session lifecycle: ErrUnboundSink, ErrUnsupported, ErrSessionClosed
//   - Options: ErrInvalidOption
//   - Sinks: ErrSinkOpen, ErrSinkClosed
//
// Use these variables instead of creating custom error messages so callers
// can match with errors.Is.
//
// # Integration with errors.As/Is
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("component: %s, class: %s", ce.Component, ce.Class)
//	}
//
//	wrapped := errors.WrapFatal(errors.ErrDuplicateName, "Registry", "Register", "duplicate check")
//	errors.Is(wrapped, errors.ErrDuplicateName) // true
//	errors.IsFatal(wrapped)                     // true
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors

// Package debug provides a serializer backend that emits one diagnostic
// text line per serialization event. It implements every optional
// backend capability, which makes it the reference exerciser for the
// dispatch core: start and end hooks, both namespace hooks, option
// reads, and locator updates all flow through it.
//
// # Output Format
//
// Each event becomes one line:
//
//	base <http://example.org/base>
//	prefix ex: <http://example.org/ns#>
//	<http://example.org/s> <http://example.org/p> "o" .
//	# 1 statements
//
// IRIs print in angle brackets, blank nodes as _:id, literals in their
// quoted form with any language tag or datatype. The trailer line
// reports the statement count for the cycle.
//
// # Options
//
// The backend honors the session's writeBaseURI option: when it is set
// to zero the base header line is omitted. All other options are
// ignored.
//
// # Position Tracking
//
// After every emitted line the backend advances the session locator to
// the first column of the next line, so Session.Locator() always
// reports where the next event will land. Binding a new sink resets the
// position along with the line counter.
//
// # Usage
//
//	registry := serializer.NewRegistry()
//	if err := debug.Register(registry); err != nil {
//	    return err
//	}
//
//	session, err := serializer.NewSession(registry, "debug")
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	buf, _ := session.StartToBuffer("http://example.org/base")
//	_ = session.SerializeStatement(st)
//	_ = session.End()
//	fmt.Print(buf.String())
package debug

// Package backendregistry provides serializer backend registration for
// SemSerial. One call wires every in-tree syntax into a registry.
package backendregistry

import (
	"errors"

	"github.com/c360/semserial/backend/debug"
	"github.com/c360/semserial/backend/null"
	pkgerrors "github.com/c360/semserial/errors"
	"github.com/c360/semserial/serializer"
)

// Register registers all in-tree serializer backends with the provided
// registry:
//
//   - null: discards output, counts statements
//   - debug: line-per-event diagnostic text
//
// Registration order is meaningful: the first-registered syntax is the
// default a session resolves for an empty name, so null comes first.
// External backends register themselves with their own Register
// functions after this call.
func Register(registry *serializer.Registry) error {
	// Nil registry is a programming error (fatal), not invalid input
	if registry == nil {
		return pkgerrors.WrapFatal(
			errors.New("registry cannot be nil"),
			"BackendRegistry", "Register", "registry validation")
	}

	if err := null.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "BackendRegistry", "Register", "null backend registration")
	}

	if err := debug.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "BackendRegistry", "Register", "debug backend registration")
	}

	return nil
}

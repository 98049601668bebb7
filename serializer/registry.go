package serializer

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/c360/semserial/errors"
	"github.com/c360/semserial/metric"
)

// Registration describes one pluggable output syntax. The registry copies
// the identity strings into a Factory it owns; the record itself is not
// retained after Register returns.
type Registration struct {
	// Name is the unique primary lookup key, e.g. "turtle".
	Name string
	// Label is a human-readable description for listings.
	Label string
	// MimeType is the syntax's preferred MIME type, if any.
	MimeType string
	// Alias is an optional secondary lookup key.
	Alias string
	// URIString identifies the syntax specification, if any.
	URIString string

	// New constructs the per-session backend state. The name the caller
	// requested is forwarded so one backend can serve an aliased variant
	// differently.
	New func(s *Session, name string) (Backend, error)

	// Finish runs once at registry teardown.
	Finish func()
}

// Factory is a registry-owned description of one registered syntax.
// Factories are shared by every session created from them and must not
// be mutated; the registry must outlive all such sessions.
type Factory struct {
	name      string
	label     string
	mimeType  string
	alias     string
	uriString string
	newFn     func(*Session, string) (Backend, error)
	finishFn  func()
}

// Name returns the factory's unique primary lookup key.
func (f *Factory) Name() string { return f.name }

// Label returns the factory's human-readable description.
func (f *Factory) Label() string { return f.label }

// MimeType returns the syntax's preferred MIME type, or "".
func (f *Factory) MimeType() string { return f.mimeType }

// Alias returns the factory's secondary lookup key, or "".
func (f *Factory) Alias() string { return f.alias }

// URIString returns the syntax specification URI, or "".
func (f *Factory) URIString() string { return f.uriString }

// Info holds metadata about one registered syntax
type Info struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	MimeType  string `json:"mime_type,omitempty"`
	URIString string `json:"uri,omitempty"`
}

// Registry owns the catalogue of registered serializer factories in
// registration order. The first-registered factory is the default
// returned by Lookup(""). Reads are safe for concurrent use; Register
// and Close are startup/shutdown-phase operations.
type Registry struct {
	mu        sync.RWMutex
	factories []*Factory
	logger    *slog.Logger
	metrics   *metric.Metrics
	closed    bool
}

// RegistryOption configures a Registry at construction
type RegistryOption func(*Registry)

// WithLogger sets the logger for registration and teardown events.
// Sessions created from the registry inherit it unless overridden.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics attaches metrics collection. Sessions created from the
// registry inherit the metrics unless overridden.
func WithMetrics(m *metric.Metrics) RegistryOption {
	return func(r *Registry) {
		r.metrics = m
	}
}

// NewRegistry creates an empty serializer registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds one syntax to the catalogue. Duplicate names are a fatal
// configuration error: registration is a deliberate startup-phase act and
// a collision means two backends claim the same key. The record is
// appended first and validated second; a record that fails validation is
// removed again so the registry never retains a half-entry.
func (r *Registry) Register(reg Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.WrapInvalid(
			fmt.Errorf("registry is closed: %w", errors.ErrInvalidRegistration),
			"Registry", "Register", "state check")
	}

	for _, f := range r.factories {
		if f.name == reg.Name {
			return errors.WrapFatal(
				fmt.Errorf("factory %q: %w", reg.Name, errors.ErrDuplicateName),
				"Registry", "Register", "duplicate name check")
		}
	}

	f := &Factory{
		name:      reg.Name,
		label:     reg.Label,
		mimeType:  reg.MimeType,
		alias:     reg.Alias,
		uriString: reg.URIString,
		newFn:     reg.New,
		finishFn:  reg.Finish,
	}
	r.factories = append(r.factories, f)

	if err := validateFactory(f); err != nil {
		r.factories = r.factories[:len(r.factories)-1]
		return errors.WrapInvalid(err, "Registry", "Register", "validate registration")
	}

	r.logger.Debug("registered serializer",
		"name", f.name,
		"label", f.label,
		"mime_type", f.mimeType,
		"alias", f.alias)

	if r.metrics != nil {
		r.metrics.RecordFactoriesRegistered(len(r.factories))
	}

	return nil
}

func validateFactory(f *Factory) error {
	if f.name == "" {
		return fmt.Errorf("%w: name must not be empty", errors.ErrInvalidRegistration)
	}
	if f.newFn == nil {
		return fmt.Errorf("%w: %q has no constructor", errors.ErrInvalidRegistration, f.name)
	}
	return nil
}

// Lookup resolves a factory by name. An empty name returns the
// first-registered factory. A non-empty name is matched against each
// factory's Name and then its Alias, in registration order; the first
// hit wins, so an earlier factory's alias shadows a later factory's name.
func (r *Registry) Lookup(name string) (*Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		if len(r.factories) == 0 {
			return nil, errors.WrapInvalid(
				fmt.Errorf("no serializers registered: %w", errors.ErrNotFound),
				"Registry", "Lookup", "default factory")
		}
		return r.factories[0], nil
	}

	for _, f := range r.factories {
		if f.name == name || (f.alias != "" && f.alias == name) {
			return f, nil
		}
	}

	return nil, errors.WrapInvalid(
		fmt.Errorf("serializer %q: %w", name, errors.ErrNotFound),
		"Registry", "Lookup", "name scan")
}

// IsRegistered reports whether Lookup(name) would succeed
func (r *Registry) IsRegistered(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Enumerate returns metadata for the factory at the given registration
// index. Out-of-range indexes fail with NotFound.
func (r *Registry) Enumerate(index int) (Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.factories) {
		return Info{}, errors.WrapInvalid(
			fmt.Errorf("index %d out of range: %w", index, errors.ErrNotFound),
			"Registry", "Enumerate", "bounds check")
	}

	f := r.factories[index]
	return Info{
		Name:      f.name,
		Label:     f.label,
		MimeType:  f.mimeType,
		URIString: f.uriString,
	}, nil
}

// Names returns the registered syntax names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.factories))
	for i, f := range r.factories {
		names[i] = f.name
	}
	return names
}

// Close tears down the registry: every factory's Finish hook runs in
// registration order and the catalogue is emptied. Close is idempotent,
// and a closed registry accepts no further registrations.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	for _, f := range r.factories {
		if f.finishFn != nil {
			f.finishFn()
		}
	}

	n := len(r.factories)
	r.factories = nil

	if r.metrics != nil {
		r.metrics.RecordFactoriesRegistered(0)
	}
	r.logger.Debug("serializer registry closed", "factories", n)
}

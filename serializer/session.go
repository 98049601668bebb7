package serializer

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360/semserial/errors"
	"github.com/c360/semserial/metric"
	"github.com/c360/semserial/option"
	"github.com/c360/semserial/rdf"
	"github.com/c360/semserial/sink"
)

// Session is one instantiated use of a registered syntax: it holds the
// backend returned by the factory constructor, at most one bound sink,
// the base locator, and the per-session option store. A session survives
// any number of start/end cycles and is closed exactly once by its
// owner. Sessions are not safe for concurrent use.
type Session struct {
	registry *Registry
	factory  *Factory
	backend  Backend

	out      sink.Sink
	ownsSink bool

	baseURI string
	locator rdf.Locator
	options *option.Store

	id      string
	logger  *slog.Logger
	metrics *metric.Metrics

	state     State
	boundAt   time.Time
	closeOnce sync.Once
}

// SessionOption configures a Session at creation
type SessionOption func(*Session)

// WithSessionLogger overrides the logger inherited from the registry
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSessionMetrics overrides the metrics inherited from the registry
func WithSessionMetrics(m *metric.Metrics) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// NewSession resolves a factory by name and instantiates its backend. An
// empty name selects the first-registered syntax. The session starts
// unbound with the documented option defaults; bind a destination with
// one of the Start methods. A constructor failure hands nothing back.
func NewSession(registry *Registry, name string, opts ...SessionOption) (*Session, error) {
	factory, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	s := &Session{
		registry: registry,
		factory:  factory,
		options:  option.NewStore(option.AreaSerializer),
		id:       uuid.NewString(),
		logger:   registry.logger,
		metrics:  registry.metrics,
		state:    StateCreated,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id, "syntax", factory.name)

	s.applyDefaults()

	backend, err := factory.newFn(s, name)
	if err != nil {
		return nil, errors.Wrap(err, "Session", "NewSession", "backend construction")
	}
	if backend == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("constructor for %q returned no backend: %w",
				factory.name, errors.ErrInvalidRegistration),
			"Session", "NewSession", "backend construction")
	}
	s.backend = backend

	s.logger.Debug("session created")
	return s, nil
}

// applyDefaults sets the documented creation-time option values: base
// URI and relative URI emission on, XML 1.0 with declaration, no
// namespace prefixes on elements.
func (s *Session) applyDefaults() {
	defaults := []struct {
		id    option.Option
		value int
	}{
		{option.WriteBaseURI, 1},
		{option.RelativeURIs, 1},
		{option.PrefixElements, 0},
		{option.XMLVersion, 10},
		{option.XMLDeclaration, 1},
	}
	for _, d := range defaults {
		_ = s.options.Set(d.id, d.value)
	}
}

// StartToSink binds an externally owned sink. The caller retains
// ownership and must close the sink itself once the session has ended.
func (s *Session) StartToSink(baseURI string, out sink.Sink) error {
	if err := s.checkOpen("StartToSink"); err != nil {
		return err
	}
	if out == nil {
		return errors.WrapInvalid(
			fmt.Errorf("nil sink: %w", errors.ErrSinkOpen),
			"Session", "StartToSink", "bind sink")
	}
	s.unbind()
	return s.bind("StartToSink", baseURI, out, false)
}

// StartToFilename creates the named file and binds it as a session-owned
// sink, closed automatically when the cycle ends. The base URI becomes
// the file: URI of the path.
func (s *Session) StartToFilename(path string) error {
	if err := s.checkOpen("StartToFilename"); err != nil {
		return err
	}
	s.unbind()
	f, err := sink.NewFile(path)
	if err != nil {
		return err
	}
	return s.bind("StartToFilename", fileURI(path), f, true)
}

// StartToBuffer binds a fresh in-memory buffer as a session-owned sink
// and returns it. The buffer's contents remain readable after End.
func (s *Session) StartToBuffer(baseURI string) (*sink.Buffer, error) {
	if err := s.checkOpen("StartToBuffer"); err != nil {
		return nil, err
	}
	s.unbind()
	buf := sink.NewBuffer()
	if err := s.bind("StartToBuffer", baseURI, buf, true); err != nil {
		return nil, err
	}
	return buf, nil
}

// StartToHandle wraps an already open file and binds the wrapper as a
// session-owned sink. Closing the wrapper never closes the underlying
// handle; that stays the caller's responsibility.
func (s *Session) StartToHandle(baseURI string, f *os.File) error {
	if err := s.checkOpen("StartToHandle"); err != nil {
		return err
	}
	if f == nil {
		return errors.WrapInvalid(
			fmt.Errorf("nil file handle: %w", errors.ErrSinkOpen),
			"Session", "StartToHandle", "wrap handle")
	}
	s.unbind()
	return s.bind("StartToHandle", baseURI, sink.ForHandle(f), true)
}

// unbind releases any bound sink per its ownership and drops back to the
// created state. A close error from the outgoing sink is logged, not
// returned; the new binding proceeds regardless.
func (s *Session) unbind() {
	if err := s.releaseSink(); err != nil {
		s.logger.Warn("closing previously bound sink failed", "error", err)
	}
	s.state = StateCreated
}

// bind installs the new sink and base URI, resets the locator, and runs
// the backend's start hook if it has one. A hook failure releases the
// just-acquired sink per its ownership and leaves the session unbound.
func (s *Session) bind(method, baseURI string, out sink.Sink, owned bool) error {
	s.baseURI = baseURI
	s.locator = rdf.Locator{URI: baseURI}
	s.out = out
	s.ownsSink = owned

	if starter, ok := s.backend.(Starter); ok {
		if err := starter.Start(s); err != nil {
			if relErr := s.releaseSink(); relErr != nil {
				s.logger.Warn("releasing sink after failed start", "error", relErr)
			}
			s.state = StateCreated
			s.recordError(err)
			return err
		}
	}

	s.state = StateBound
	s.boundAt = time.Now()

	if s.metrics != nil {
		s.metrics.RecordSessionStarted(s.factory.name)
	}
	s.logger.Debug("session bound",
		"method", method,
		"base_uri", baseURI,
		"owns_sink", owned)
	return nil
}

// DeclareNamespace passes a namespace prefix mapping to the backend; an
// empty prefix declares the default namespace. Requires a bound sink and
// a backend with the single-pair hook.
func (s *Session) DeclareNamespace(uri, prefix string) error {
	if err := s.checkBound("DeclareNamespace"); err != nil {
		return err
	}
	declarer, ok := s.backend.(NamespaceDeclarer)
	if !ok {
		return errors.WrapInvalid(
			fmt.Errorf("%s: %w", s.factory.name, errors.ErrUnsupported),
			"Session", "DeclareNamespace", "capability check")
	}
	return declarer.DeclareNamespace(s, uri, prefix)
}

// DeclareNamespaceFrom passes a whole namespace binding to the backend,
// preferring its bulk hook and falling back to the single-pair hook.
// Requires a bound sink.
func (s *Session) DeclareNamespaceFrom(ns rdf.Namespace) error {
	if err := s.checkBound("DeclareNamespaceFrom"); err != nil {
		return err
	}
	if bulk, ok := s.backend.(BulkNamespaceDeclarer); ok {
		return bulk.DeclareNamespaceFrom(s, ns)
	}
	if declarer, ok := s.backend.(NamespaceDeclarer); ok {
		return declarer.DeclareNamespace(s, ns.URI, ns.Prefix)
	}
	return errors.WrapInvalid(
		fmt.Errorf("%s: %w", s.factory.name, errors.ErrUnsupported),
		"Session", "DeclareNamespaceFrom", "capability check")
}

// SerializeStatement forwards one statement to the backend in exactly
// the order received; this layer never buffers, batches, or reorders.
// The backend's result is returned verbatim. Requires a bound sink.
func (s *Session) SerializeStatement(st rdf.Statement) error {
	if err := s.checkBound("SerializeStatement"); err != nil {
		return err
	}
	if err := s.backend.SerializeStatement(s, st); err != nil {
		s.recordError(err)
		return err
	}
	if s.metrics != nil {
		s.metrics.RecordStatement(s.factory.name)
	}
	return nil
}

// End finishes the current cycle. The backend's end hook runs first;
// afterwards a session-owned sink is closed and the slot cleared
// regardless of the hook's outcome. The hook's error takes precedence
// over a close error in the return value.
func (s *Session) End() error {
	if err := s.checkBound("End"); err != nil {
		return err
	}

	var hookErr error
	if ender, ok := s.backend.(Ender); ok {
		hookErr = ender.End(s)
	}

	closeErr := s.releaseSink()
	s.state = StateEnded

	status := "ok"
	if hookErr != nil || closeErr != nil {
		status = "error"
	}
	if s.metrics != nil {
		s.metrics.RecordSessionEnded(s.factory.name, status, time.Since(s.boundAt))
	}
	s.logger.Debug("session ended", "status", status)

	if hookErr != nil {
		s.recordError(hookErr)
		return hookErr
	}
	if closeErr != nil {
		s.recordError(closeErr)
		return errors.Wrap(closeErr, "Session", "End", "close owned sink")
	}
	return nil
}

// Close releases the session. The backend's Terminate hook runs exactly
// once even if the session was never bound, and any still-bound owned
// sink is closed. Later calls are no-ops returning nil.
func (s *Session) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		s.backend.Terminate(s)
		closeErr = s.releaseSink()
		s.options = option.NewStore(option.AreaSerializer)
		s.state = StateClosed
		s.logger.Debug("session closed")
	})
	if closeErr != nil {
		return errors.Wrap(closeErr, "Session", "Close", "close owned sink")
	}
	return nil
}

// releaseSink closes the bound sink if the session owns it and clears
// the slot either way.
func (s *Session) releaseSink() error {
	if s.out == nil {
		return nil
	}
	var err error
	if s.ownsSink {
		err = s.out.Close()
	}
	s.out = nil
	s.ownsSink = false
	return err
}

// Write sends bytes to the bound sink. Backends emit their output
// through the session so byte accounting stays uniform.
func (s *Session) Write(p []byte) (int, error) {
	if s.out == nil {
		return 0, errors.WrapInvalid(errors.ErrUnboundSink, "Session", "Write", "state check")
	}
	n, err := s.out.Write(p)
	if n > 0 && s.metrics != nil {
		s.metrics.RecordBytes(s.factory.name, n)
	}
	return n, err
}

// SetOption stores a numeric option value on the session
func (s *Session) SetOption(id option.Option, value int) error {
	return s.options.Set(id, value)
}

// SetOptionString stores a string option value, or parses and stores a
// numeric one when the id's kind is numeric
func (s *Session) SetOptionString(id option.Option, value string) error {
	return s.options.SetString(id, value)
}

// Option returns the stored numeric value for id, or -1 on an area or
// kind mismatch
func (s *Session) Option(id option.Option) int {
	return s.options.Get(id)
}

// OptionString returns the stored string value for id and whether one
// was set
func (s *Session) OptionString(id option.Option) (string, bool) {
	return s.options.GetString(id)
}

// Sink returns the currently bound sink, or nil when unbound
func (s *Session) Sink() sink.Sink { return s.out }

// Locator returns a copy of the current output locator
func (s *Session) Locator() rdf.Locator { return s.locator }

// SetPosition updates the locator's line and column. Backends call this
// as they track output position.
func (s *Session) SetPosition(line, column int) {
	s.locator.Line, s.locator.Column = line, column
}

// Registry returns the registry this session was resolved from
func (s *Session) Registry() *Registry { return s.registry }

// Factory returns the factory this session was created from
func (s *Session) Factory() *Factory { return s.factory }

// BaseURI returns the base URI set by the most recent start, if any
func (s *Session) BaseURI() string { return s.baseURI }

// State returns the session's lifecycle state
func (s *Session) State() State { return s.state }

// ID returns the session's unique identifier
func (s *Session) ID() string { return s.id }

func (s *Session) checkOpen(method string) error {
	if s.state == StateClosed {
		return errors.WrapInvalid(errors.ErrSessionClosed, "Session", method, "state check")
	}
	return nil
}

func (s *Session) checkBound(method string) error {
	if err := s.checkOpen(method); err != nil {
		return err
	}
	if s.out == nil {
		return errors.WrapInvalid(errors.ErrUnboundSink, "Session", method, "state check")
	}
	return nil
}

func (s *Session) recordError(err error) {
	if s.metrics != nil && err != nil {
		s.metrics.RecordError(s.factory.name, errors.Classify(err).String())
	}
}

// fileURI converts a filesystem path to a file: URI for use as a base
// URI. A path that cannot be made absolute is used as given.
func fileURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

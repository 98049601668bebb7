package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/c360/semserial/errors"
)

// MetricsRegistry manages Prometheus metrics registration for the
// serialization runtime. It owns the core serializer metrics and
// accepts additional collectors from backends and embedding programs.
type MetricsRegistry struct {
	prometheusRegistry *prometheus.Registry

	// Metrics holds the core serializer metrics, pre-registered
	Metrics *Metrics

	// registeredMetrics tracks registrations by component/name key so
	// collectors can be unregistered cleanly
	registeredMetrics map[string]prometheus.Collector
	mu                sync.RWMutex
}

// MetricsRegistrar is the interface backends and embedding programs use
// to attach their own collectors to the shared registry.
type MetricsRegistrar interface {
	// Register adds a collector under a component/name key. Registering
	// the same key twice is an error.
	Register(component, name string, collector prometheus.Collector) error

	// Unregister removes a previously registered collector. It reports
	// whether the collector was found and removed.
	Unregister(component, name string) bool
}

// NewMetricsRegistry creates a registry with the default metric identity
func NewMetricsRegistry() *MetricsRegistry {
	return NewMetricsRegistryWithOptions(DefaultOptions())
}

// NewMetricsRegistryWithOptions creates a registry with the core
// serializer metrics plus Go runtime and process collectors registered.
func NewMetricsRegistryWithOptions(opts Options) *MetricsRegistry {
	registry := prometheus.NewRegistry()

	mr := &MetricsRegistry{
		prometheusRegistry: registry,
		Metrics:            NewMetrics(opts),
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	mr.registerCore()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return mr
}

// registerCore registers the core serializer metrics. These are created
// once per registry, so registration cannot conflict.
func (mr *MetricsRegistry) registerCore() {
	mr.prometheusRegistry.MustRegister(
		mr.Metrics.SessionsStarted,
		mr.Metrics.SessionsEnded,
		mr.Metrics.SessionDuration,
		mr.Metrics.StatementsTotal,
		mr.Metrics.BytesWritten,
		mr.Metrics.ErrorsTotal,
		mr.Metrics.FactoriesRegistered,
	)
}

// Register adds a collector under a component/name key
func (mr *MetricsRegistry) Register(component, name string, collector prometheus.Collector) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	key := component + "/" + name
	if _, exists := mr.registeredMetrics[key]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("duplicate metric registration for %s", key),
			"MetricsRegistry", "Register", "duplicate key check")
	}

	if err := mr.prometheusRegistry.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if stderrors.As(err, &are) {
			return errors.WrapInvalid(
				fmt.Errorf("prometheus conflict for metric %s: %w", key, err),
				"MetricsRegistry", "Register", "prometheus registration")
		}
		return errors.WrapFatal(err, "MetricsRegistry", "Register", "prometheus registration")
	}

	mr.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a collector registered under a component/name key
func (mr *MetricsRegistry) Unregister(component, name string) bool {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	key := component + "/" + name
	collector, exists := mr.registeredMetrics[key]
	if !exists {
		return false
	}

	delete(mr.registeredMetrics, key)
	return mr.prometheusRegistry.Unregister(collector)
}

// Registry returns the underlying Prometheus registry for use with
// promhttp handlers.
func (mr *MetricsRegistry) Registry() *prometheus.Registry {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.prometheusRegistry
}

// Package metric provides Prometheus-based metrics collection and an HTTP
// server for monitoring RDF serialization.
//
// The package offers a centralized metrics registry managing both core
// serializer metrics (session lifecycle, statement throughput, bytes
// written, error classes) and custom metrics from backends or embedding
// programs. It includes an HTTP server exposing metrics in Prometheus
// format for monitoring system integration.
//
// # Architecture
//
// The package follows a three-layer design:
//
//  1. Core Metrics: serializer-level metrics automatically registered (Metrics type)
//  2. Registrar: extensible registration for backend-specific metrics (MetricsRegistrar interface)
//  3. HTTP Server: metrics endpoint with health checks (Server type)
//
// This architecture separates runtime concerns (core metrics) from
// backend concerns (custom collectors) while providing a unified metrics
// endpoint for monitoring systems.
//
// # Basic Usage
//
// Setting up metrics collection and the HTTP server:
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(":9090", "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil {
//	        log.Printf("Metrics server error: %v", err)
//	    }
//	}()
//	defer server.Stop()
//
//	// Hand the core metrics to the serializer registry; sessions record
//	// through them automatically.
//	reg := serializer.NewRegistry(serializer.WithMetrics(registry.Metrics))
//
// The metrics server exposes Prometheus-formatted metrics at
// http://localhost:9090/metrics and a health check at
// http://localhost:9090/health.
//
// # Core Metrics
//
// The package automatically registers core serializer metrics tracking:
//
//   - Session lifecycle: sessions_started_total, sessions_ended_total
//   - Session latency: session_duration_seconds
//   - Throughput: statements_total, bytes_written_total
//   - Error tracking: errors_total (labeled by severity class)
//   - Registry state: factories_registered
//
// Sessions and the factory registry record through the Metrics helpers:
//
//	m := registry.Metrics
//
//	// Session lifecycle
//	m.RecordSessionStarted("turtle")
//	m.RecordSessionEnded("turtle", "ok", 120*time.Millisecond)
//
//	// Throughput
//	m.RecordStatement("turtle")
//	m.RecordBytes("turtle", 512)
//
//	// Error tracking
//	m.RecordError("turtle", "invalid")
//
//	// Registry state
//	m.RecordFactoriesRegistered(3)
//
// # Custom Metrics
//
// Backends and embedding programs register custom collectors through the
// registrar:
//
//	triples := prometheus.NewCounter(prometheus.CounterOpts{
//	    Name: "turtle_abbreviations_total",
//	    Help: "Total number of abbreviated triples emitted",
//	})
//	err := registry.Register("turtle-backend", "abbreviations", triples)
//
// Any prometheus.Collector works, including vectors:
//
//	depthVec := prometheus.NewGaugeVec(
//	    prometheus.GaugeOpts{
//	        Name: "writer_nesting_depth",
//	        Help: "Current element nesting depth by writer",
//	    },
//	    []string{"writer"},
//	)
//	err = registry.Register("xml-backend", "nesting_depth", depthVec)
//
// Collectors are keyed by component and name so they can be removed when
// a backend shuts down:
//
//	registry.Unregister("turtle-backend", "abbreviations")
//
// # HTTP Server
//
// The metrics server provides three endpoints:
//
//   - GET / - HTML page with links to metrics and health endpoints
//   - GET /metrics - Prometheus-formatted metrics (default path, configurable)
//   - GET /health - plain-text health check response
//
// Server configuration:
//
//	// Default configuration (addr :9090, path /metrics)
//	server := metric.NewServer("", "", registry)
//
//	// Custom configuration
//	server := metric.NewServer(":8080", "/prometheus", registry)
//
//	// Start server (blocking)
//	if err := server.Start(); err != nil {
//	    log.Fatalf("Failed to start metrics server: %v", err)
//	}
//
//	// Stop server (from another goroutine)
//	if err := server.Stop(); err != nil {
//	    log.Printf("Error stopping server: %v", err)
//	}
//
// Start returns nil after Stop closes the server.
//
// # Prometheus Integration
//
// The package uses the official Prometheus Go client library and exposes
// metrics in OpenMetrics format. Configure Prometheus to scrape the
// endpoint:
//
//	# prometheus.yml
//	scrape_configs:
//	  - job_name: 'semserial'
//	    static_configs:
//	      - targets: ['localhost:9090']
//	    metrics_path: '/metrics'
//	    scrape_interval: 15s
//
// Core metrics use the namespace "semserial" and the subsystem
// "serializer":
//   - semserial_serializer_sessions_started_total{syntax="..."}
//   - semserial_serializer_statements_total{syntax="..."}
//   - semserial_serializer_errors_total{syntax="...",class="..."}
//
// Custom metrics use the names provided at construction. The identity is
// configurable through Options for programs embedding more than one
// serialization runtime:
//
//	registry := metric.NewMetricsRegistryWithOptions(metric.Options{
//	    Namespace: "myapp",
//	    Subsystem: "export",
//	})
//
// # MetricsRegistrar Interface
//
// Backends accept the MetricsRegistrar interface for dependency
// injection:
//
//	type TurtleBackend struct {
//	    abbreviations prometheus.Counter
//	}
//
//	func NewTurtleBackend(metrics metric.MetricsRegistrar) (*TurtleBackend, error) {
//	    c := prometheus.NewCounter(prometheus.CounterOpts{
//	        Name: "turtle_abbreviations_total",
//	        Help: "Total number of abbreviated triples emitted",
//	    })
//	    if err := metrics.Register("turtle-backend", "abbreviations", c); err != nil {
//	        return nil, err
//	    }
//	    return &TurtleBackend{abbreviations: c}, nil
//	}
//
// This enables testing with mock registrars and keeps backends loosely
// coupled to the registry implementation.
//
// # Thread Safety
//
// All registry operations are thread-safe:
//   - Register and Unregister use mutex protection
//   - Metric recording is lock-free (Prometheus guarantee)
//   - Registry() is safe for concurrent access
//
// Sessions in different goroutines may record through the same Metrics
// instance without coordination.
//
// # Error Handling
//
// Register returns errors for:
//
//   - Duplicate registration: the same component/name key registered twice
//   - Prometheus conflicts: a collector colliding with an already
//     registered metric name
//   - Internal failures: other Prometheus registration errors
//
// Duplicate and conflict errors classify as invalid; internal failures
// classify as fatal:
//
//	err := registry.Register("turtle-backend", "abbreviations", c)
//	if errors.IsInvalid(err) {
//	    log.Printf("Metric already registered, skipping")
//	} else if err != nil {
//	    log.Fatalf("Failed to register metric: %v", err)
//	}
//
// # Testing
//
// Verify recorded values by gathering from the underlying registry:
//
//	func TestBackendMetrics(t *testing.T) {
//	    registry := metric.NewMetricsRegistry()
//	    registry.Metrics.RecordStatement("turtle")
//
//	    families, err := registry.Registry().Gather()
//	    require.NoError(t, err)
//	    // Assert on the gathered metric families
//	}
//
// # Design Decisions
//
// Centralized Registry: a single registry per process ensures a
// consistent metric namespace, prevents duplication, and gives one scrape
// endpoint for all serialization activity.
//
// Generic Register: a single Register(component, name, collector) method
// replaces per-type registration methods. Prometheus collectors share one
// interface, so per-type methods add surface without adding safety.
//
// Prometheus Direct Integration: the official Prometheus client is used
// rather than an abstraction to leverage native features and ensure
// compatibility with the Prometheus ecosystem.
//
// Optional Wiring: the serializer packages accept a nil *Metrics and skip
// recording, so programs that do not scrape pay nothing.
package metric

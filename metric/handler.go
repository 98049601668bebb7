package metric

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360/semserial/errors"
)

// Server exposes a metrics registry over HTTP
type Server struct {
	addr     string
	path     string
	server   *http.Server
	registry *MetricsRegistry
	mu       sync.Mutex
}

// NewServer creates a metrics HTTP server. An empty addr defaults to
// ":9090" and an empty path defaults to "/metrics".
func NewServer(addr, path string, registry *MetricsRegistry) *Server {
	if addr == "" {
		addr = ":9090"
	}
	if path == "" {
		path = "/metrics"
	}

	return &Server{
		addr:     addr,
		path:     path,
		registry: registry,
	}
}

// Start runs the HTTP server. It blocks until the server stops and
// returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.server != nil {
		s.mu.Unlock()
		return errors.WrapInvalid(
			fmt.Errorf("metrics server already started on %s", s.addr),
			"MetricsServer", "Start", "state check")
	}

	mux := http.NewServeMux()
	mux.Handle(s.path, promhttp.HandlerFor(
		s.registry.Registry(),
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<html>
<head><title>SemSerial Metrics</title></head>
<body>
<h1>SemSerial Metrics</h1>
<p><a href="%s">Metrics</a></p>
<p><a href="/health">Health</a></p>
</body>
</html>`, s.path)
	})

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.server = srv

	// ListenAndServe blocks; release the lock first so Stop can run
	s.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.WrapFatal(err, "MetricsServer", "Start", "listen and serve")
	}
	return nil
}

// Stop shuts down the HTTP server
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}

	err := s.server.Close()
	s.server = nil
	if err != nil {
		return errors.WrapTransient(err, "MetricsServer", "Stop", "close server")
	}
	return nil
}

// Address returns the URL at which metrics are served
func (s *Server) Address() string {
	addr := s.addr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return fmt.Sprintf("http://%s%s", addr, s.path)
}

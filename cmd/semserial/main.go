// Package main implements the SemSerial command-line tool. It drives the
// serializer dispatch core end to end: backend registration, session
// creation, profile and option application, and statement serialization
// to a file, stdout, or messaging sink.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/semserial/backendregistry"
	"github.com/c360/semserial/config"
	"github.com/c360/semserial/errors"
	"github.com/c360/semserial/metric"
	"github.com/c360/semserial/natsclient"
	"github.com/c360/semserial/option"
	"github.com/c360/semserial/rdf"
	"github.com/c360/semserial/serializer"
	"github.com/c360/semserial/sink"
	"github.com/c360/semserial/vocabulary"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semserial"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	// Run application with proper error handling
	if err := run(); err != nil {
		slog.Error("Serialization failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	// Parse and validate CLI flags
	cliCfg, logger, shouldExit, err := initializeCLI()
	if shouldExit || err != nil {
		return err
	}

	// Setup metrics and the serializer registry
	metricsRegistry := metric.NewMetricsRegistry()
	registerBuildInfo(metricsRegistry)

	registry := serializer.NewRegistry(
		serializer.WithLogger(logger),
		serializer.WithMetrics(metricsRegistry.Metrics),
	)
	defer registry.Close()

	if err := backendregistry.Register(registry); err != nil {
		return fmt.Errorf("register backends: %w", err)
	}
	slog.Debug("Serializer backends registered", "syntaxes", registry.Names())

	// Listing modes exit before any session work
	if cliCfg.List {
		return listSyntaxes(registry)
	}
	if cliCfg.ListOptions {
		return listOptions()
	}

	// Optional metrics endpoint. Start blocks, so it runs in its own
	// goroutine; Stop on the way out shuts it down.
	if cliCfg.MetricsAddr != "" {
		server := metric.NewServer(cliCfg.MetricsAddr, "/metrics", metricsRegistry)
		go func() {
			if err := server.Start(); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() { _ = server.Stop() }()
		slog.Info("Metrics server listening", "address", server.Address())
	}

	// Resolve the run profile from flags and file
	profile, err := resolveProfile(cliCfg)
	if err != nil {
		return err
	}

	return serialize(registry, profile, cliCfg.Count)
}

// initializeCLI parses flags and sets up logging
func initializeCLI() (*CLIConfig, *slog.Logger, bool, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return nil, nil, false, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil, nil, true, nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil, nil, true, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	return cliCfg, logger, false, nil
}

// registerBuildInfo publishes the binary's version as a gauge alongside
// the core serializer metrics.
func registerBuildInfo(metricsRegistry *metric.MetricsRegistry) {
	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "semserial",
		Name:      "build_info",
		Help:      "Build information for the semserial binary.",
	}, []string{"version", "build_time"})
	buildInfo.WithLabelValues(Version, BuildTime).Set(1)

	if err := metricsRegistry.Register("cli", "build_info", buildInfo); err != nil {
		slog.Warn("Could not register build info metric", "error", err)
	}
}

// listSyntaxes prints the registered syntaxes in registration order.
func listSyntaxes(registry *serializer.Registry) error {
	for i := 0; ; i++ {
		info, err := registry.Enumerate(i)
		if err != nil {
			break
		}
		line := fmt.Sprintf("%-10s %s", info.Name, info.Label)
		if info.MimeType != "" {
			line += fmt.Sprintf(" (%s)", info.MimeType)
		}
		fmt.Println(line)
	}
	return nil
}

// listOptions prints the serializer option catalogue.
func listOptions() error {
	for _, desc := range option.Serializer() {
		fmt.Printf("%-22s %-8s %-18s %s\n", desc.Name, desc.Kind, desc.Areas, desc.Label)
	}
	return nil
}

// resolveProfile builds the run profile from -profile and individual
// flags. Explicit flags override stored profile fields so a profile can
// be tweaked per run.
func resolveProfile(cliCfg *CLIConfig) (*config.Profile, error) {
	profile := &config.Profile{}

	if cliCfg.ProfilePath != "" {
		loaded, err := config.Load(cliCfg.ProfilePath)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		profile = loaded
		slog.Debug("Profile loaded", "path", cliCfg.ProfilePath, "profile", profile.String())
	}

	if flagPassed("syntax") || profile.Syntax == "" {
		profile.Syntax = cliCfg.Syntax
	}
	if cliCfg.BaseURI != "" {
		profile.BaseURI = cliCfg.BaseURI
	}
	if cliCfg.OutputPath != "" {
		profile.Output = config.Output{Kind: config.OutputFile, Path: cliCfg.OutputPath}
	}
	if cliCfg.NATSUrl != "" {
		profile.Output = config.Output{
			Kind:    config.OutputNATS,
			URL:     cliCfg.NATSUrl,
			Subject: cliCfg.Subject,
		}
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return profile, nil
}

// serialize runs one full session cycle: create, apply options, start,
// declare namespaces, emit statements, end.
func serialize(registry *serializer.Registry, profile *config.Profile, count int) error {
	session, err := serializer.NewSession(registry, profile.Syntax)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer func() { _ = session.Close() }()

	if err := profile.Apply(session); err != nil {
		return fmt.Errorf("apply profile: %w", err)
	}

	cleanup, err := startSession(session, profile)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	slog.Info("Session started",
		"syntax", session.Factory().Name(),
		"base_uri", session.BaseURI(),
		"session_id", session.ID())

	declareNamespaces(session)

	start := time.Now()
	for _, st := range syntheticStatements(count) {
		if err := session.SerializeStatement(st); err != nil {
			return fmt.Errorf("serialize statement: %w", err)
		}
	}

	if err := session.End(); err != nil {
		return fmt.Errorf("end session: %w", err)
	}

	slog.Info("Serialization complete",
		"syntax", session.Factory().Name(),
		"statements", count,
		"duration", time.Since(start))

	return nil
}

// startSession binds the session to the profile's target. The returned
// cleanup releases caller-owned resources; run it after End.
func startSession(session *serializer.Session, profile *config.Profile) (func(), error) {
	out := &profile.Output
	switch out.Kind {
	case "", config.OutputStdout:
		return nil, session.StartToHandle(profile.BaseURI, os.Stdout)

	case config.OutputFile:
		if profile.BaseURI == "" {
			// Base URI derives from the output path.
			return nil, session.StartToFilename(out.Path)
		}
		f, err := os.Create(out.Path)
		if err != nil {
			return nil, fmt.Errorf("create output file: %w", err)
		}
		if err := session.StartToHandle(profile.BaseURI, f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("start session: %w", err)
		}
		return func() { _ = f.Close() }, nil

	case config.OutputNATS:
		return startNATS(session, profile)

	case config.OutputJetStream:
		return startJetStream(session, profile)

	case config.OutputWebSocket:
		return startWebSocket(session, profile)

	default:
		return nil, fmt.Errorf("unknown output kind %q", out.Kind)
	}
}

// connectNATS establishes the managed NATS connection and waits for it
// to be ready.
func connectNATS(url string) (*natsclient.Client, error) {
	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithTimeout(10*time.Second),
		natsclient.WithDisconnectCallback(func(err error) {
			slog.Warn("NATS connection lost, output is buffered until reconnect", "error", err)
		}),
		natsclient.WithReconnectCallback(func() {
			slog.Info("NATS connection restored")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	ctx := context.Background()
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("NATS connection timeout: %w", err)
	}

	return client, nil
}

// startNATS connects and binds a chunked publishing sink. The session
// does not own external sinks, so cleanup closes the sink to flush the
// buffered remainder before dropping the connection.
func startNATS(session *serializer.Session, profile *config.Profile) (func(), error) {
	client, err := connectNATS(profile.Output.URL)
	if err != nil {
		return nil, err
	}

	natsSink, err := sink.NewNATS(client.Conn(), profile.Output.Subject)
	if err != nil {
		_ = client.Close(context.Background())
		return nil, fmt.Errorf("create NATS sink: %w", err)
	}

	if err := session.StartToSink(profile.BaseURI, natsSink); err != nil {
		_ = client.Close(context.Background())
		return nil, fmt.Errorf("start session: %w", err)
	}

	slog.Info("Publishing to NATS", "url", client.URL(), "subject", profile.Output.Subject)
	return func() {
		_ = natsSink.Close()
		_ = client.Close(context.Background())
	}, nil
}

// startJetStream binds a persistent publishing sink; cleanup waits for
// outstanding acks before draining the connection.
func startJetStream(session *serializer.Session, profile *config.Profile) (func(), error) {
	client, err := connectNATS(profile.Output.URL)
	if err != nil {
		return nil, err
	}

	js, err := client.JetStream()
	if err != nil {
		_ = client.Close(context.Background())
		return nil, fmt.Errorf("JetStream unavailable: %w", err)
	}

	jsSink, err := sink.NewJetStream(js, profile.Output.Subject)
	if err != nil {
		_ = client.Close(context.Background())
		return nil, fmt.Errorf("create JetStream sink: %w", err)
	}

	if err := session.StartToSink(profile.BaseURI, jsSink); err != nil {
		_ = client.Close(context.Background())
		return nil, fmt.Errorf("start session: %w", err)
	}

	slog.Info("Publishing to JetStream", "url", client.URL(), "subject", profile.Output.Subject)
	return func() {
		if err := jsSink.Close(); err != nil {
			slog.Warn("JetStream flush failed", "error", err)
		}
		_ = client.Close(context.Background())
	}, nil
}

// startWebSocket dials the endpoint and binds the connection as a sink.
func startWebSocket(session *serializer.Session, profile *config.Profile) (func(), error) {
	wsSink, err := sink.DialWebSocket(profile.Output.URL)
	if err != nil {
		return nil, fmt.Errorf("dial websocket: %w", err)
	}

	if err := session.StartToSink(profile.BaseURI, wsSink); err != nil {
		_ = wsSink.Close()
		return nil, fmt.Errorf("start session: %w", err)
	}

	slog.Info("Streaming to websocket", "url", profile.Output.URL)
	return func() { _ = wsSink.Close() }, nil
}

// declareNamespaces offers the common namespaces to the backend. Backends
// without namespace support are fine; everything else is just logged.
func declareNamespaces(session *serializer.Session) {
	for _, ns := range vocabulary.Common() {
		if err := session.DeclareNamespaceFrom(ns); err != nil {
			if stderrors.Is(err, errors.ErrUnsupported) {
				slog.Debug("Backend takes no namespace declarations",
					"syntax", session.Factory().Name())
				return
			}
			slog.Warn("Namespace declaration failed", "prefix", ns.Prefix, "error", err)
		}
	}
}

// syntheticStatements builds n sample statements cycling through term
// shapes: IRI objects, language-tagged literals, typed literals, and
// blank node subjects.
func syntheticStatements(n int) []rdf.Statement {
	stmts := make([]rdf.Statement, 0, n)
	for i := 0; i < n; i++ {
		subject := rdf.IRI{Value: fmt.Sprintf("http://example.org/resource/%d", i)}

		var st rdf.Statement
		switch i % 4 {
		case 0:
			st = rdf.Statement{
				Subject:   subject,
				Predicate: vocabulary.RDFType,
				Object:    rdf.IRI{Value: "http://example.org/Document"},
			}
		case 1:
			st = rdf.Statement{
				Subject:   subject,
				Predicate: vocabulary.DCTitle,
				Object:    rdf.Literal{Lexical: fmt.Sprintf("Document %d", i), Lang: "en"},
			}
		case 2:
			st = rdf.Statement{
				Subject:   subject,
				Predicate: rdf.IRI{Value: "http://example.org/rank"},
				Object:    rdf.Literal{Lexical: strconv.Itoa(i), Datatype: vocabulary.XSDInteger},
			}
		default:
			st = rdf.Statement{
				Subject:   rdf.BlankNode{ID: fmt.Sprintf("b%d", i)},
				Predicate: vocabulary.RDFSLabel,
				Object:    rdf.Literal{Lexical: fmt.Sprintf("node %d", i)},
			}
		}
		stmts = append(stmts, st)
	}
	return stmts
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ProfilePath string
	Syntax      string
	BaseURI     string
	OutputPath  string
	NATSUrl     string
	Subject     string
	Count       int
	MetricsAddr string
	LogLevel    string
	LogFormat   string
	List        bool
	ListOptions bool
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ProfilePath, "profile",
		getEnv("SEMSERIAL_PROFILE", ""),
		"Path to a YAML/JSON serialization profile (env: SEMSERIAL_PROFILE)")

	flag.StringVar(&cfg.Syntax, "syntax",
		getEnv("SEMSERIAL_SYNTAX", "debug"),
		"Serializer syntax name (env: SEMSERIAL_SYNTAX)")

	flag.StringVar(&cfg.BaseURI, "base", "",
		"Base URI for the serialization")

	flag.StringVar(&cfg.OutputPath, "o", "",
		"Output file path (default stdout)")

	flag.StringVar(&cfg.NATSUrl, "nats",
		getEnv("SEMSERIAL_NATS_URL", ""),
		"NATS server URL; publish output instead of writing a file (env: SEMSERIAL_NATS_URL)")

	flag.StringVar(&cfg.Subject, "subject", "rdf.serialized",
		"Subject for -nats output")

	flag.IntVar(&cfg.Count, "count",
		getEnvInt("SEMSERIAL_COUNT", 10),
		"Number of synthetic statements to serialize (env: SEMSERIAL_COUNT)")

	flag.StringVar(&cfg.MetricsAddr, "metrics-addr",
		getEnv("SEMSERIAL_METRICS_ADDR", ""),
		"Prometheus metrics listen address, empty to disable (env: SEMSERIAL_METRICS_ADDR)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("SEMSERIAL_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: SEMSERIAL_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("SEMSERIAL_LOG_FORMAT", "text"),
		"Log format: json, text (env: SEMSERIAL_LOG_FORMAT)")

	flag.BoolVar(&cfg.List, "list", false, "List registered syntaxes and exit")
	flag.BoolVar(&cfg.ListOptions, "options", false, "List serializer options and exit")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp || cfg.List || cfg.ListOptions {
		return nil
	}

	// Validate profile file exists when given
	if cfg.ProfilePath != "" {
		if _, err := os.Stat(cfg.ProfilePath); err != nil {
			return fmt.Errorf("profile file not found: %s", cfg.ProfilePath)
		}
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.Count < 0 {
		return fmt.Errorf("invalid statement count: %d", cfg.Count)
	}

	if cfg.OutputPath != "" && cfg.NATSUrl != "" {
		return fmt.Errorf("-o and -nats are mutually exclusive")
	}

	return nil
}

// flagPassed reports whether a flag was set explicitly on the command line.
func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - RDF Serializer Dispatch

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # List registered syntaxes
  %s -list

  # Serialize 100 synthetic statements to a file
  %s -syntax=debug -count=100 -o=out.txt

  # Run from a stored profile with debug logging
  %s -profile=profiles/debug.yaml -log-level=debug

  # Publish serialized output to NATS
  %s -nats=nats://localhost:4222 -subject=rdf.serialized

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// Package config loads serialization profiles for SemSerial sessions.
//
// A profile captures one serializer run in a YAML or JSON file: which
// syntax to use, the base URI, option assignments, and the output target.
// The format is chosen by file extension (.yaml/.yml or .json).
//
// # Basic Usage
//
// Loading, validating, and applying a profile:
//
//	profile, err := config.Load("profiles/turtle.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := profile.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
//	session, err := serializer.NewSession(registry, profile.Syntax)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer session.Close()
//
//	if err := profile.Apply(session); err != nil {
//		log.Fatal(err)
//	}
//
// # Profile Format
//
// A YAML profile:
//
//	syntax: turtle
//	base_uri: http://example.org/
//	options:
//	  writeBaseURI: 1
//	  jsonCallback: handleTriples
//	output:
//	  kind: file
//	  path: /data/out.ttl
//
// Numeric options accept integers, booleans, or numeric strings; string
// options accept strings. Output kinds are stdout (the default), file,
// nats, jetstream, and websocket; file needs path, the messaging kinds
// need subject, websocket needs url.
//
// # Environment Expansion
//
// ${VAR} references in string values expand from the environment at load
// time, so one profile serves multiple deployments:
//
//	output:
//	  kind: nats
//	  url: ${NATS_URL}
//	  subject: rdf.serialized
//
// # Validation
//
// Load parses without validating so callers can inspect or adjust a
// profile first. Validate checks option names against the catalogue,
// value types against option kinds, option areas (serializer options
// only), and the output target's required fields. A profile that passes
// Validate applies to a session without error.
//
// # Security
//
// Profile reads are limited to regular files of at most 1MB to guard
// against mistaken paths.
package config

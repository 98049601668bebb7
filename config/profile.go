package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/semserial/errors"
	"github.com/c360/semserial/option"
	"github.com/c360/semserial/serializer"
)

// maxProfileSize caps profile file reads. Profiles are small; anything
// larger is a mistaken path.
const maxProfileSize = 1 << 20

// Output target kinds understood by profiles and the CLI.
const (
	OutputStdout    = "stdout"
	OutputFile      = "file"
	OutputNATS      = "nats"
	OutputJetStream = "jetstream"
	OutputWebSocket = "websocket"
)

// Profile captures one serializer run: which syntax to use, the base URI,
// option assignments, and where the output goes.
type Profile struct {
	Syntax  string         `json:"syntax,omitempty" yaml:"syntax,omitempty"`
	BaseURI string         `json:"base_uri,omitempty" yaml:"base_uri,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Output  Output         `json:"output,omitempty" yaml:"output,omitempty"`
}

// Output describes the serialization target.
type Output struct {
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
}

// Load reads a profile from a YAML or JSON file, chosen by extension, and
// expands ${VAR} references in string values. Load does not validate; call
// Validate before applying the profile to a session.
func Load(path string) (*Profile, error) {
	data, err := safeReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Profile", "Load", "read profile file")
	}

	var p Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.WrapInvalid(err, "Profile", "Load", "parse YAML")
		}
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.WrapInvalid(err, "Profile", "Load", "parse JSON")
		}
	default:
		return nil, errors.WrapInvalid(
			fmt.Errorf("unsupported profile format %q (want .yaml, .yml, or .json)", filepath.Ext(path)),
			"Profile", "Load", "detect format")
	}

	p.expandEnv()
	return &p, nil
}

// safeReadFile reads a profile file with basic safety checks.
func safeReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty profile path")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}
	if info.Size() > maxProfileSize {
		return nil, fmt.Errorf("profile too large: %d bytes > %d", info.Size(), maxProfileSize)
	}

	return os.ReadFile(path)
}

// expandEnv expands ${VAR} references in every string field so profiles can
// carry deployment-specific values without editing.
func (p *Profile) expandEnv() {
	p.Syntax = os.ExpandEnv(p.Syntax)
	p.BaseURI = os.ExpandEnv(p.BaseURI)
	p.Output.Kind = os.ExpandEnv(p.Output.Kind)
	p.Output.Path = os.ExpandEnv(p.Output.Path)
	p.Output.URL = os.ExpandEnv(p.Output.URL)
	p.Output.Subject = os.ExpandEnv(p.Output.Subject)
	for name, value := range p.Options {
		if s, ok := value.(string); ok {
			p.Options[name] = os.ExpandEnv(s)
		}
	}
}

// Validate checks option names against the catalogue, value types against
// option kinds, and the output target's required fields. A profile that
// passes Validate applies to a serializer session without error.
func (p *Profile) Validate() error {
	for name, value := range p.Options {
		id, ok := option.FromName(name)
		if !ok {
			return errors.WrapInvalid(fmt.Errorf("unknown option %q", name),
				"Profile", "Validate", "resolve option names")
		}
		desc, _ := option.Describe(id)
		if !desc.Areas.Has(option.AreaSerializer) {
			return errors.WrapInvalid(
				fmt.Errorf("option %q does not apply to serializers (area %s)", name, desc.Areas),
				"Profile", "Validate", "check option areas")
		}
		if err := checkOptionValue(desc, value); err != nil {
			return errors.WrapInvalid(err, "Profile", "Validate", "check option values")
		}
	}

	if err := p.Output.validate(); err != nil {
		return errors.WrapInvalid(err, "Profile", "Validate", "check output target")
	}
	return nil
}

// checkOptionValue confirms a value fits the option's kind. Numeric options
// accept integers, booleans, and numeric strings; string options accept
// strings only.
func checkOptionValue(desc option.Description, value any) error {
	switch desc.Kind {
	case option.KindNumeric:
		switch v := value.(type) {
		case bool:
			return nil
		case int:
			if v < 0 {
				return fmt.Errorf("option %q cannot be negative: %d", desc.Name, v)
			}
			return nil
		case int64:
			if v < 0 {
				return fmt.Errorf("option %q cannot be negative: %d", desc.Name, v)
			}
			return nil
		case float64:
			if v < 0 {
				return fmt.Errorf("option %q cannot be negative: %v", desc.Name, v)
			}
			return nil
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("option %q needs a numeric value, got %q", desc.Name, v)
			}
			if n < 0 {
				return fmt.Errorf("option %q cannot be negative: %d", desc.Name, n)
			}
			return nil
		default:
			return fmt.Errorf("option %q needs a numeric value, got %T", desc.Name, value)
		}
	case option.KindString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("option %q needs a string value, got %T", desc.Name, value)
		}
		return nil
	default:
		return fmt.Errorf("option %q has unknown kind", desc.Name)
	}
}

// validate checks that the target kind carries its required fields.
func (o *Output) validate() error {
	switch o.Kind {
	case "", OutputStdout:
		return nil
	case OutputFile:
		if o.Path == "" {
			return fmt.Errorf("output kind %q requires path", o.Kind)
		}
	case OutputNATS, OutputJetStream:
		if o.Subject == "" {
			return fmt.Errorf("output kind %q requires subject", o.Kind)
		}
	case OutputWebSocket:
		if o.URL == "" {
			return fmt.Errorf("output kind %q requires url", o.Kind)
		}
	default:
		return fmt.Errorf("unknown output kind %q", o.Kind)
	}
	return nil
}

// Apply sets the profile's options on a session. Syntax selection and sink
// binding happen before the session exists, so Apply covers only what a
// live session accepts.
func (p *Profile) Apply(s *serializer.Session) error {
	for name, value := range p.Options {
		id, ok := option.FromName(name)
		if !ok {
			return errors.WrapInvalid(fmt.Errorf("unknown option %q", name),
				"Profile", "Apply", "resolve option names")
		}
		if err := applyOption(s, id, value); err != nil {
			return errors.Wrap(err, "Profile", "Apply", "set option "+name)
		}
	}
	return nil
}

// applyOption coerces a profile value into the session's option store.
func applyOption(s *serializer.Session, id option.Option, value any) error {
	switch v := value.(type) {
	case bool:
		n := 0
		if v {
			n = 1
		}
		return s.SetOption(id, n)
	case int:
		return s.SetOption(id, v)
	case int64:
		return s.SetOption(id, int(v))
	case float64:
		return s.SetOption(id, int(v))
	case string:
		return s.SetOptionString(id, v)
	default:
		return fmt.Errorf("unsupported value type %T", value)
	}
}

// String returns a JSON representation of the profile.
func (p *Profile) String() string {
	data, _ := json.MarshalIndent(p, "", "  ")
	return string(data)
}

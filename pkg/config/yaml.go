package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses YAML config content into a Config.
// Unknown keys are rejected so typos surface as errors rather than silently
// falling back to defaults.
func ParseYAML(content []byte) (*Config, error) {
	cfg := NewConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: defaults apply.
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks semantic constraints the YAML schema cannot express.
func (c *Config) Validate() error {
	switch Severity(c.SeverityDefault) {
	case SeverityError, SeverityWarning, SeverityInfo, "":
	default:
		return fmt.Errorf("invalid severity_default %q", c.SeverityDefault)
	}

	for id, rc := range c.Rules {
		if rc.Severity == nil {
			continue
		}
		switch Severity(*rc.Severity) {
		case SeverityError, SeverityWarning, SeverityInfo:
		default:
			return fmt.Errorf("rule %s: invalid severity %q", id, *rc.Severity)
		}
	}

	return nil
}

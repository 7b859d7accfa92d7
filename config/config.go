// Package config loads section sort descriptors from YAML and resolves them
// against a registry of field accessors.
//
//	name: tasks
//	sortDescriptors:
//	  - key: name
//	    ascending: false
//	  - key: title
//	    natural: true
//	  - key: label
//	    collation: sv
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	errs "github.com/amp-labs/sections/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyKey           = errors.New("sort descriptor has no key")
	ErrConflictingOrder   = errors.New("sort descriptor cannot be both natural and collated")
	ErrNegativeWorkers    = errors.New("parallelism must not be negative")
	ErrUnknownField       = errors.New("unknown sort field")
	ErrFieldNotText       = errors.New("sort field has no text accessor")
	ErrInvalidCollation   = errors.New("invalid collation language")
	ErrFieldMissingAccess = errors.New("sort field has no compare or text accessor")
)

// Descriptor is one entry of sortDescriptors.
type Descriptor struct {
	Key string `yaml:"key"`

	// Ascending defaults to true when omitted.
	Ascending *bool `yaml:"ascending,omitempty"`

	// Natural compares text with embedded numbers numerically.
	Natural bool `yaml:"natural,omitempty"`

	// Collation is a BCP 47 tag selecting locale-aware text order.
	Collation string `yaml:"collation,omitempty"`
}

// IsAscending applies the default direction.
func (d Descriptor) IsAscending() bool {
	return d.Ascending == nil || *d.Ascending
}

// Controller is the configuration of one sectioned controller.
type Controller struct {
	Name            string       `yaml:"name"`
	Parallelism     int          `yaml:"parallelism,omitempty"`
	SortDescriptors []Descriptor `yaml:"sortDescriptors"`
}

// Parse decodes and validates a YAML document. Unknown fields are rejected.
// An empty document yields an empty configuration.
func Parse(data []byte) (*Controller, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Controller

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing controller config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Controller, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading controller config: %w", err)
	}

	return Parse(data)
}

// Validate reports every structural problem at once.
func (c *Controller) Validate() error {
	var problems errs.Collection

	if c.Parallelism < 0 {
		problems.Addf("%w: %d", ErrNegativeWorkers, c.Parallelism)
	}

	for i, d := range c.SortDescriptors {
		if d.Key == "" {
			problems.Addf("%w (entry %d)", ErrEmptyKey, i)
		}

		if d.Natural && d.Collation != "" {
			problems.Addf("%w (%q)", ErrConflictingOrder, d.Key)
		}
	}

	return problems.Err()
}
